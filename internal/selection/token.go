// Package selection encodes and decodes the identifiers stored by CMS selector
// controls. A selection string is a comma separated list of tokens such as
// "idcat:3,idcat:7" or "idupl:12,iddbfs:4".
package selection

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies the domain an encoded id belongs to.
type Kind int

const (
	KindCategory Kind = iota + 1
	KindCategoryArticle
	KindContentSlot
	KindUploadFile
	KindDbfsFile
)

// Delimiters of the token grammar.
const (
	ValuesDelimiter = ","
	IDDelimiter     = ":"
)

var kindNames = map[Kind]string{
	KindCategory:        "category",
	KindCategoryArticle: "category-article",
	KindContentSlot:     "content-slot",
	KindUploadFile:      "upload-file",
	KindDbfsFile:        "dbfs-file",
}

var kindPrefixes = map[Kind]string{
	KindCategory:        "idcat",
	KindCategoryArticle: "idcatart",
	KindUploadFile:      "idupl",
	KindDbfsFile:        "iddbfs",
}

// Prefix returns the token prefix of the kind. Content slots have none, they
// use the legacy "<idtype>:<typeid>" form.
func (k Kind) Prefix() string {
	return kindPrefixes[k]
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	name, ok := kindNames[k]
	if !ok {
		return nil, fmt.Errorf("unknown selection kind %d", int(k))
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	kind, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// ParseKind resolves a kind from its name ("category") or its prefix ("idcat").
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for kind, name := range kindNames {
		if s == name || (kindPrefixes[kind] != "" && s == kindPrefixes[kind]) {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("unknown selection kind %q", s)
}

// Token is a tagged identifier. For KindContentSlot, ID holds the content
// type id (idtype) and TypeID the slot number (typeid).
type Token struct {
	Kind   Kind `json:"kind"`
	ID     int  `json:"id"`
	TypeID int  `json:"type_id,omitempty"`
}

func Category(id int) Token        { return Token{Kind: KindCategory, ID: id} }
func CategoryArticle(id int) Token { return Token{Kind: KindCategoryArticle, ID: id} }
func UploadFile(id int) Token      { return Token{Kind: KindUploadFile, ID: id} }
func DbfsFile(id int) Token        { return Token{Kind: KindDbfsFile, ID: id} }

func ContentSlot(idType, typeID int) Token {
	return Token{Kind: KindContentSlot, ID: idType, TypeID: typeID}
}

// IsZero reports whether the token carries no kind, e.g. synthetic rows.
func (t Token) IsZero() bool {
	return t.Kind == 0
}

// String returns the canonical encoding of the token.
func (t Token) String() string {
	return Encode(t)
}

// Encode is a pure function of the token's kind and value.
func Encode(t Token) string {
	switch t.Kind {
	case KindContentSlot:
		return strconv.Itoa(t.ID) + IDDelimiter + strconv.Itoa(t.TypeID)
	case KindCategory, KindCategoryArticle, KindUploadFile, KindDbfsFile:
		return t.Kind.Prefix() + IDDelimiter + strconv.Itoa(t.ID)
	default:
		return ""
	}
}

// Join encodes the tokens as a comma separated list in insertion order.
// Duplicates are kept.
func Join(tokens []Token) string {
	parts := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if enc := Encode(t); enc != "" {
			parts = append(parts, enc)
		}
	}
	return strings.Join(parts, ValuesDelimiter)
}
