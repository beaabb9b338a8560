package selection

import (
	"math"

	"github.com/RoaringBitmap/roaring"
)

// Set is a membership set of tokens used to mark selected rows.
// Ids are kept in one bitmap per kind; content slots are stored as pairs.
type Set struct {
	ids   map[Kind]*roaring.Bitmap
	slots map[[2]int]struct{}
}

// NewSet creates a set holding the given tokens.
func NewSet(tokens ...Token) *Set {
	s := &Set{
		ids:   make(map[Kind]*roaring.Bitmap),
		slots: make(map[[2]int]struct{}),
	}
	for _, t := range tokens {
		s.Add(t)
	}
	return s
}

// Set builds the set of all tokens codec understands in raw.
func (c *Codec) Set(raw string) *Set {
	return NewSet(c.DecodeMany(raw)...)
}

// Add inserts t. Tokens without a kind or with ids outside the uint32 range
// are ignored.
func (s *Set) Add(t Token) {
	if t.IsZero() {
		return
	}
	if t.Kind == KindContentSlot {
		s.slots[[2]int{t.ID, t.TypeID}] = struct{}{}
		return
	}
	id, ok := bitmapID(t.ID)
	if !ok {
		return
	}
	bm, ok := s.ids[t.Kind]
	if !ok {
		bm = roaring.New()
		s.ids[t.Kind] = bm
	}
	bm.Add(id)
}

// Contains reports whether t is in the set.
func (s *Set) Contains(t Token) bool {
	if t.Kind == KindContentSlot {
		_, ok := s.slots[[2]int{t.ID, t.TypeID}]
		return ok
	}
	id, ok := bitmapID(t.ID)
	if !ok {
		return false
	}
	bm, ok := s.ids[t.Kind]
	return ok && bm.Contains(id)
}

// Len returns the number of distinct tokens.
func (s *Set) Len() int {
	n := len(s.slots)
	for _, bm := range s.ids {
		n += int(bm.GetCardinality())
	}
	return n
}

// IDs returns the distinct ids of kind in ascending order.
func (s *Set) IDs(kind Kind) []int {
	bm, ok := s.ids[kind]
	if !ok {
		return nil
	}
	out := make([]int, 0, bm.GetCardinality())
	it := bm.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}
	return out
}

func bitmapID(id int) (uint32, bool) {
	if id < 0 || uint64(id) > math.MaxUint32 {
		return 0, false
	}
	return uint32(id), true
}
