package repositories

import (
	"context"

	"cmsselect/internal/domain/models"
)

// CategoryFilter selects the category tree of a client language.
type CategoryFilter struct {
	ClientID   int
	LanguageID int
	// MaxLevel restricts rows to level < MaxLevel. 0 means no restriction.
	MaxLevel int
}

// CategoryRepository reads the category tree.
type CategoryRepository interface {
	// ListTree returns categories in depth-first tree order.
	ListTree(ctx context.Context, filter CategoryFilter) ([]models.Category, error)
}

// ArticleFilter selects the articles of one category.
type ArticleFilter struct {
	CategoryID int
	LanguageID int
	OnlineOnly bool
}

// ArticleRepository reads category articles.
type ArticleRepository interface {
	// ListByCategory returns articles ordered by title.
	ListByCategory(ctx context.Context, filter ArticleFilter) ([]models.Article, error)
}

// ContentFilter selects content slots of a set of category articles.
type ContentFilter struct {
	CategoryArticleIDs []int
	LanguageID         int
	// TypeRange is a comma separated allow-list of content type ids taken from
	// operator configuration. Empty means all types.
	TypeRange string
}

// ContentRepository reads stored content values.
type ContentRepository interface {
	// ListByCategoryArticles returns values ordered by (idtype, typeid).
	ListByCategoryArticles(ctx context.Context, filter ContentFilter) ([]models.ContentValue, error)
}

// FileFilter selects upload or dbfs rows of a client.
type FileFilter struct {
	ClientID int
	// PathPrefix restricts rows to directories starting with it.
	PathPrefix string
	// FileTypes is an extension allow-list. Rows with an unknown type always pass.
	FileTypes []string
}

// UploadRepository reads the upload table.
type UploadRepository interface {
	// List returns rows ordered by dirname, filename. Rows of the database
	// file system mirrored into the table are excluded.
	List(ctx context.Context, filter FileFilter) ([]models.Upload, error)
}

// DbfsRepository reads the database file system table.
type DbfsRepository interface {
	// List returns rows ordered by dirname, filename.
	List(ctx context.Context, filter FileFilter) ([]models.DbfsEntry, error)
}
