package selector

import (
	"context"
	"log/slog"

	"cmsselect/internal/domain/models"
	"cmsselect/internal/domain/repositories"
	"cmsselect/internal/domain/services"
	"cmsselect/internal/selection"
)

type articleSelector struct {
	articles repositories.ArticleRepository
	scope    Scope
	logger   *slog.Logger
}

// NewArticleSelector creates an article selector.
func NewArticleSelector(articles repositories.ArticleRepository, scope Scope, logger *slog.Logger) (services.ArticleSelector, error) {
	const component = "article selector"
	if err := requireRepo(component, "article repository", articles != nil); err != nil {
		return nil, err
	}
	if err := scope.validate(component); err != nil {
		return nil, err
	}
	return &articleSelector{articles: articles, scope: scope, logger: logger}, nil
}

// Render resolves categoryRef ("12" or "idcat:12") and lists its articles.
func (s *articleSelector) Render(ctx context.Context, categoryRef, selectedArticles string, opts Options) (*models.Listing, error) {
	categoryID := selection.ResolveID(categoryRef, selection.CategoryCodec, selection.KindCategory)
	return s.RenderID(ctx, categoryID, selectedArticles, opts)
}

// RenderID lists the online articles of a category ordered by title. A
// category id of 0 yields an empty, disabled listing.
func (s *articleSelector) RenderID(ctx context.Context, categoryID int, selectedArticles string, opts Options) (*models.Listing, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	listing := &models.Listing{}
	categoryID = selection.ResolveID(categoryID, selection.CategoryCodec, selection.KindCategory)
	if categoryID == 0 {
		listing.Disabled = true
		return listing, nil
	}

	articles, err := s.articles.ListByCategory(ctx, repositories.ArticleFilter{
		CategoryID: categoryID,
		LanguageID: s.scope.LanguageID,
		OnlineOnly: !opts.IncludeOffline,
	})
	if err != nil {
		return nil, wrapQuery("render articles", err)
	}
	if len(articles) == 0 {
		listing.Disabled = true
		return listing, nil
	}

	selected := selection.ArticleCodec.Set(selectedArticles)
	for _, art := range articles {
		listing.Nodes = append(listing.Nodes, articleNode(art, 0, selected))
	}

	s.logger.Debug("articles rendered",
		"category_id", categoryID,
		"language_id", s.scope.LanguageID,
		"articles", len(articles),
		"selected", listing.SelectedCount(),
	)
	return listing, nil
}
