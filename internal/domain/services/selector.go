package services

import (
	"context"

	"cmsselect/internal/domain/models"
)

// CategoryTreeSelector lists a client's category tree, optionally with the
// articles of each category nested below it.
type CategoryTreeSelector interface {
	Render(ctx context.Context, selectedCategories, selectedArticles string, opts models.SelectorOptions) (*models.Listing, error)
}

// ArticleSelector lists the articles of one category.
type ArticleSelector interface {
	// Render accepts a bare category id or an encoded "idcat:<id>" reference.
	Render(ctx context.Context, categoryRef, selectedArticles string, opts models.SelectorOptions) (*models.Listing, error)
	RenderID(ctx context.Context, categoryID int, selectedArticles string, opts models.SelectorOptions) (*models.Listing, error)
}

// ContentSlotSelector lists the stored content slots of selected articles.
type ContentSlotSelector interface {
	Render(ctx context.Context, selectedArticles, selectedSlots string, opts models.SelectorOptions) (*models.Listing, error)
}

// FileTreeSelector lists upload and dbfs entries as one tree.
type FileTreeSelector interface {
	Render(ctx context.Context, startPath, selectedFiles string, opts models.SelectorOptions) (*models.Listing, error)
}

// SelectorFactory builds selectors bound to a client and language.
type SelectorFactory interface {
	Categories(clientID, languageID int) (CategoryTreeSelector, error)
	Articles(clientID, languageID int) (ArticleSelector, error)
	ContentSlots(clientID, languageID int) (ContentSlotSelector, error)
	Files(clientID, languageID int) (FileTreeSelector, error)
}
