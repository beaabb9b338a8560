package models

// SelectorOptions configures one render call. Fields that do not apply to a
// selector are ignored by it.
type SelectorOptions struct {
	// StartLevel restricts the category tree to level < StartLevel. 0 = all.
	StartLevel int `json:"start_level,omitempty"`
	// WithArticles lists each category's articles below it.
	WithArticles bool `json:"with_articles,omitempty"`
	// DisableCategories makes category rows unselectable.
	DisableCategories bool `json:"disable_categories,omitempty"`

	// IncludeOffline lists offline articles in the article selector.
	IncludeOffline bool `json:"include_offline,omitempty"`

	// TypeRange is a comma separated content type id allow-list.
	TypeRange string `json:"type_range,omitempty"`

	// DirectoryIsSelectable allows directories to be chosen. Defaults to true.
	DirectoryIsSelectable *bool `json:"directory_is_selectable,omitempty"`
	// FilterEmptyDirectory hides directories without file children.
	FilterEmptyDirectory bool `json:"filter_empty_directory,omitempty"`
	// FileTypes restricts files by extension; entries may be glob patterns.
	FileTypes []string `json:"file_types,omitempty"`
}

// DirectoriesSelectable resolves the DirectoryIsSelectable default.
func (o SelectorOptions) DirectoriesSelectable() bool {
	return o.DirectoryIsSelectable == nil || *o.DirectoryIsSelectable
}
