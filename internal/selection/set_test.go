package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	s := Universal.Set("idcat:2,idcatart:2,idcat:9,idcat:2")

	assert.True(t, s.Contains(Category(2)))
	assert.True(t, s.Contains(Category(9)))
	assert.True(t, s.Contains(CategoryArticle(2)))
	assert.False(t, s.Contains(Category(1)))
	assert.False(t, s.Contains(CategoryArticle(9)))
	assert.False(t, s.Contains(Token{}))

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []int{2, 9}, s.IDs(KindCategory))
	assert.Nil(t, s.IDs(KindUploadFile))
}

func TestSetContentSlots(t *testing.T) {
	s := ContentSlotCodec.Set("1:2,3:4")

	assert.True(t, s.Contains(ContentSlot(1, 2)))
	assert.False(t, s.Contains(ContentSlot(2, 1)))
	assert.Equal(t, 2, s.Len())
}

func TestSetIgnoresNegativeIDs(t *testing.T) {
	s := NewSet(Category(-1), Token{})

	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Contains(Category(-1)))
}
