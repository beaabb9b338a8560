package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name  string
		token Token
		want  string
	}{
		{name: "category", token: Category(3), want: "idcat:3"},
		{name: "category article", token: CategoryArticle(17), want: "idcatart:17"},
		{name: "content slot uses legacy pair", token: ContentSlot(4, 2), want: "4:2"},
		{name: "upload file", token: UploadFile(9), want: "idupl:9"},
		{name: "dbfs file", token: DbfsFile(1), want: "iddbfs:1"},
		{name: "zero token", token: Token{}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Encode(tt.token))
			assert.Equal(t, tt.want, tt.token.String())
		})
	}
}

func TestRoundTrip(t *testing.T) {
	ids := []int{0, 1, 42, 99999}
	for _, id := range ids {
		for _, token := range []Token{
			Category(id),
			CategoryArticle(id),
			ContentSlot(id, id+1),
			UploadFile(id),
			DbfsFile(id),
		} {
			got := Universal.DecodeMany(Encode(token))
			require.Len(t, got, 1, "token %s", Encode(token))
			assert.Equal(t, token, got[0])

			got = CodecFor(token.Kind).DecodeMany(Encode(token))
			require.Len(t, got, 1, "token %s", Encode(token))
			assert.Equal(t, token, got[0])
		}
	}
}

func TestDecodeMany(t *testing.T) {
	tests := []struct {
		name  string
		codec *Codec
		raw   string
		want  []Token
	}{
		{
			name:  "multiple values keep order",
			codec: CategoryCodec,
			raw:   "idcat:3,idcat:7",
			want:  []Token{Category(3), Category(7)},
		},
		{
			name:  "unknown prefix is dropped",
			codec: CategoryCodec,
			raw:   "idcat:3,bogus:9,idcat:7",
			want:  []Token{Category(3), Category(7)},
		},
		{
			name:  "duplicates are kept",
			codec: CategoryCodec,
			raw:   "idcat:3,idcat:3",
			want:  []Token{Category(3), Category(3)},
		},
		{
			name:  "bare number decodes to primary kind",
			codec: CategoryCodec,
			raw:   "12",
			want:  []Token{Category(12)},
		},
		{
			name:  "bare number is an article for the article codec",
			codec: ArticleCodec,
			raw:   "12",
			want:  []Token{CategoryArticle(12)},
		},
		{
			name:  "id beyond int range is dropped",
			codec: CategoryCodec,
			raw:   "idcat:3,idcat:99999999999999999999,99999999999999999999,cat_99999999999999999999,idcat:7",
			want:  []Token{Category(3), Category(7)},
		},
		{
			name:  "content slot beyond int range is dropped",
			codec: ContentSlotCodec,
			raw:   "99999999999999999999:1,2:99999999999999999999,2:1",
			want:  []Token{ContentSlot(2, 1)},
		},
		{
			name:  "bare number dropped without primary kind",
			codec: FileCodec,
			raw:   "12,idupl:3",
			want:  []Token{UploadFile(3)},
		},
		{
			name:  "prefix of another selector is dropped",
			codec: CategoryCodec,
			raw:   "idcatart:5,idcat:1",
			want:  []Token{Category(1)},
		},
		{
			name:  "whitespace around pieces is ignored",
			codec: FileCodec,
			raw:   " idupl:3 , iddbfs:4 ",
			want:  []Token{UploadFile(3), DbfsFile(4)},
		},
		{
			name:  "too many parts dropped",
			codec: ContentSlotCodec,
			raw:   "1:2:3,4:5",
			want:  []Token{ContentSlot(4, 5)},
		},
		{
			name:  "non numeric value dropped",
			codec: CategoryCodec,
			raw:   "idcat:abc,idcat:-3,idcat:",
			want:  nil,
		},
		{
			name:  "legacy underscore forms",
			codec: Universal,
			raw:   "cat_4,art_8,foo_1",
			want:  []Token{Category(4), CategoryArticle(8)},
		},
		{
			name:  "empty input",
			codec: Universal,
			raw:   "",
			want:  nil,
		},
		{
			name:  "only delimiters",
			codec: Universal,
			raw:   ",,,",
			want:  nil,
		},
		{
			name:  "prefix match is case insensitive",
			codec: FileCodec,
			raw:   "IDUPL:2",
			want:  []Token{UploadFile(2)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.codec.DecodeMany(tt.raw))
		})
	}
}

func TestToSingleID(t *testing.T) {
	tests := []struct {
		name  string
		codec *Codec
		raw   string
		kind  Kind
		want  int
	}{
		{name: "single token", codec: CategoryCodec, raw: "idcat:5", kind: KindCategory, want: 5},
		{name: "bare number", codec: CategoryCodec, raw: "5", kind: KindCategory, want: 5},
		{name: "none of kind", codec: Universal, raw: "idupl:5", kind: KindCategory, want: 0},
		{name: "ambiguous", codec: CategoryCodec, raw: "idcat:5,idcat:6", kind: KindCategory, want: 0},
		{name: "repeated same id", codec: CategoryCodec, raw: "idcat:5,idcat:5", kind: KindCategory, want: 5},
		{name: "other kinds ignored", codec: Universal, raw: "idupl:1,idcat:9", kind: KindCategory, want: 9},
		{name: "garbage", codec: CategoryCodec, raw: "nonsense", kind: KindCategory, want: 0},
		{name: "overflowing neighbor", codec: CategoryCodec, raw: "idcat:5,idcat:99999999999999999999", kind: KindCategory, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.codec.ToSingleID(tt.raw, tt.kind))
		})
	}
}

func TestResolveID(t *testing.T) {
	assert.Equal(t, 7, ResolveID(7, CategoryCodec, KindCategory))
	assert.Equal(t, 0, ResolveID(-1, CategoryCodec, KindCategory))
	assert.Equal(t, 7, ResolveID("idcat:7", CategoryCodec, KindCategory))
	assert.Equal(t, 7, ResolveID("7", CategoryCodec, KindCategory))
	assert.Equal(t, 7, ResolveID("cat_7", CategoryCodec, KindCategory))
	assert.Equal(t, 0, ResolveID("", CategoryCodec, KindCategory))
	assert.Equal(t, 5, ResolveID("idcat:5,idcat:99999999999999999999", CategoryCodec, KindCategory))
}

func TestJoin(t *testing.T) {
	tokens := []Token{Category(1), {}, CategoryArticle(2), Category(1)}
	assert.Equal(t, "idcat:1,idcatart:2,idcat:1", Join(tokens))
	assert.Equal(t, "", Join(nil))
}

func TestParseKind(t *testing.T) {
	kind, err := ParseKind("category-article")
	require.NoError(t, err)
	assert.Equal(t, KindCategoryArticle, kind)

	kind, err = ParseKind("IDDBFS")
	require.NoError(t, err)
	assert.Equal(t, KindDbfsFile, kind)

	_, err = ParseKind("bogus")
	assert.Error(t, err)
}

func TestKindText(t *testing.T) {
	text, err := KindUploadFile.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "upload-file", string(text))

	var k Kind
	require.NoError(t, k.UnmarshalText([]byte("content-slot")))
	assert.Equal(t, KindContentSlot, k)

	_, err = Kind(99).MarshalText()
	assert.Error(t, err)
}
