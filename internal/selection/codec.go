package selection

import (
	"strconv"
	"strings"
)

// Codec decodes selection strings for one selector. It knows which prefixes
// are valid in its context and which kind a bare number stands for.
//
// Decoding never fails. Pieces that cannot be decoded are dropped, since the
// raw values come from form fields an editor may have changed by hand.
type Codec struct {
	primary  Kind
	prefixes map[string]Kind
	legacy   map[string]Kind
	slots    bool
}

// NewCodec creates a codec accepting the given kinds. primary is the kind a
// purely numeric piece decodes to; pass 0 to drop bare numbers.
func NewCodec(primary Kind, kinds ...Kind) *Codec {
	c := &Codec{
		primary:  primary,
		prefixes: make(map[string]Kind),
		legacy:   make(map[string]Kind),
	}
	for _, k := range kinds {
		if k == KindContentSlot {
			c.slots = true
			continue
		}
		c.prefixes[k.Prefix()] = k
	}
	return c
}

// WithLegacy registers an underscore alias such as "cat" for "cat_12".
func (c *Codec) WithLegacy(alias string, kind Kind) *Codec {
	c.legacy[alias] = kind
	return c
}

// Predefined codecs, one per selector plus a context free one.
//
// The bare numeric fallback is ambiguous across selectors: "12" is a category
// id for CategoryCodec and a category-article id for ArticleCodec. Only
// decode bare numbers with the codec of the selector that stored them.
var (
	CategoryCodec    = NewCodec(KindCategory, KindCategory).WithLegacy("cat", KindCategory)
	ArticleCodec     = NewCodec(KindCategoryArticle, KindCategoryArticle).WithLegacy("art", KindCategoryArticle)
	ContentSlotCodec = NewCodec(0, KindContentSlot)
	FileCodec        = NewCodec(0, KindUploadFile, KindDbfsFile)
	Universal        = withLegacyAliases(NewCodec(0, allKinds...))
)

var allKinds = []Kind{KindCategory, KindCategoryArticle, KindContentSlot, KindUploadFile, KindDbfsFile}

func withLegacyAliases(c *Codec) *Codec {
	return c.WithLegacy("cat", KindCategory).WithLegacy("art", KindCategoryArticle)
}

// Primary returns the kind bare numbers decode to, or 0.
func (c *Codec) Primary() Kind {
	return c.primary
}

// DecodeMany splits raw on commas and decodes every piece it understands,
// preserving order and duplicates.
func (c *Codec) DecodeMany(raw string) []Token {
	var tokens []Token
	for _, piece := range strings.Split(raw, ValuesDelimiter) {
		if t, ok := c.Decode(piece); ok {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// Decode decodes a single piece.
func (c *Codec) Decode(piece string) (Token, bool) {
	piece = strings.TrimSpace(piece)
	if piece == "" {
		return Token{}, false
	}

	if isDigits(piece) {
		id, ok := parseID(piece)
		if !ok || c.primary == 0 {
			return Token{}, false
		}
		return Token{Kind: c.primary, ID: id}, true
	}

	parts := strings.Split(piece, IDDelimiter)
	if len(parts) != 2 {
		return c.decodeLegacy(piece)
	}
	left, right := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	id, ok := parseID(right)
	if !ok {
		return Token{}, false
	}

	if kind, ok := c.prefixes[strings.ToLower(left)]; ok {
		return Token{Kind: kind, ID: id}, true
	}
	if !c.slots {
		return Token{}, false
	}
	idType, ok := parseID(left)
	if !ok {
		return Token{}, false
	}
	return ContentSlot(idType, id), true
}

func (c *Codec) decodeLegacy(piece string) (Token, bool) {
	if len(c.legacy) == 0 {
		return Token{}, false
	}
	alias, raw, found := strings.Cut(piece, "_")
	if !found {
		return Token{}, false
	}
	id, ok := parseID(raw)
	if !ok {
		return Token{}, false
	}
	kind, ok := c.legacy[strings.ToLower(alias)]
	if !ok {
		return Token{}, false
	}
	return Token{Kind: kind, ID: id}, true
}

// ToSingleID returns the id of the only distinct token of the wanted kind in
// raw. It returns 0 when there is none or when several ids are present.
func (c *Codec) ToSingleID(raw string, want Kind) int {
	id, found := 0, false
	for _, t := range c.DecodeMany(raw) {
		if t.Kind != want {
			continue
		}
		if found && t.ID != id {
			return 0
		}
		id, found = t.ID, true
	}
	return id
}

// ResolveID normalizes a reference given either as an int or as an encoded
// string ("idcat:3" or "3") to an id of the wanted kind. Invalid input
// resolves to 0.
func ResolveID[T int | string](ref T, codec *Codec, want Kind) int {
	switch v := any(ref).(type) {
	case int:
		if v < 0 {
			return 0
		}
		return v
	case string:
		return codec.ToSingleID(v, want)
	}
	return 0
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// parseID accepts a plain run of digits that fits an int.
func parseID(s string) (int, bool) {
	if !isDigits(s) {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
