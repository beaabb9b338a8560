package selection

// SelectedCategories interprets a stored category selection without rendering.
func SelectedCategories(raw string) []Token {
	return CategoryCodec.DecodeMany(raw)
}

// SelectedArticles interprets a stored category-article selection.
func SelectedArticles(raw string) []Token {
	return ArticleCodec.DecodeMany(raw)
}

// SelectedContentSlots interprets a stored "<idtype>:<typeid>" selection.
func SelectedContentSlots(raw string) []Token {
	return ContentSlotCodec.DecodeMany(raw)
}

// SelectedFiles interprets a stored upload/dbfs selection.
func SelectedFiles(raw string) []Token {
	return FileCodec.DecodeMany(raw)
}

// CodecFor returns the codec a selector of the given kind stores its values
// with. Unknown kinds get the context free Universal codec.
func CodecFor(kind Kind) *Codec {
	switch kind {
	case KindCategory:
		return CategoryCodec
	case KindCategoryArticle:
		return ArticleCodec
	case KindContentSlot:
		return ContentSlotCodec
	case KindUploadFile, KindDbfsFile:
		return FileCodec
	default:
		return Universal
	}
}
