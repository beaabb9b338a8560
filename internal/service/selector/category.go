package selector

import (
	"context"
	"log/slog"

	"cmsselect/internal/config"
	"cmsselect/internal/domain/models"
	"cmsselect/internal/domain/repositories"
	"cmsselect/internal/domain/services"
	"cmsselect/internal/sanitizer"
	"cmsselect/internal/selection"
)

type categoryTreeSelector struct {
	categories repositories.CategoryRepository
	articles   repositories.ArticleRepository
	scope      Scope
	logger     *slog.Logger
}

// NewCategoryTreeSelector creates a category tree selector. The article
// repository is only queried when WithArticles is set but must be present.
func NewCategoryTreeSelector(
	categories repositories.CategoryRepository,
	articles repositories.ArticleRepository,
	scope Scope,
	logger *slog.Logger,
) (services.CategoryTreeSelector, error) {
	const component = "category tree selector"
	if err := requireRepo(component, "category repository", categories != nil); err != nil {
		return nil, err
	}
	if err := requireRepo(component, "article repository", articles != nil); err != nil {
		return nil, err
	}
	if err := scope.validate(component); err != nil {
		return nil, err
	}
	return &categoryTreeSelector{
		categories: categories,
		articles:   articles,
		scope:      scope,
		logger:     logger,
	}, nil
}

// Render lists the category tree in the order the store delivers it. With
// WithArticles, each category is directly followed by its articles one level
// deeper.
func (s *categoryTreeSelector) Render(ctx context.Context, selectedCategories, selectedArticles string, opts Options) (*models.Listing, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	categories, err := s.categories.ListTree(ctx, repositories.CategoryFilter{
		ClientID:   s.scope.ClientID,
		LanguageID: s.scope.LanguageID,
		MaxLevel:   opts.StartLevel,
	})
	if err != nil {
		return nil, wrapQuery("render category tree", err)
	}

	listing := &models.Listing{}
	if len(categories) == 0 {
		listing.Disabled = true
		s.logger.Debug("category tree empty", "client_id", s.scope.ClientID, "language_id", s.scope.LanguageID)
		return listing, nil
	}

	selCats := selection.CategoryCodec.Set(selectedCategories)
	selArts := selection.ArticleCodec.Set(selectedArticles)

	articleCount := 0
	for _, cat := range categories {
		token := selection.Category(cat.ID)
		listing.Nodes = append(listing.Nodes, models.TreeNode{
			Token:      token,
			Value:      token.String(),
			Label:      ">" + urlDecode(cat.Name),
			Level:      cat.Level,
			Container:  true,
			Selectable: !opts.DisableCategories,
			Online:     cat.Visible && cat.Public,
			Selected:   selCats.Contains(token),
		})

		if !opts.WithArticles {
			continue
		}

		articles, err := s.articles.ListByCategory(ctx, repositories.ArticleFilter{
			CategoryID: cat.ID,
			LanguageID: s.scope.LanguageID,
		})
		if err != nil {
			return nil, wrapQuery("render category tree", err)
		}
		for _, art := range articles {
			listing.Nodes = append(listing.Nodes, articleNode(art, cat.Level+1, selArts))
		}
		articleCount += len(articles)
	}

	s.logger.Debug("category tree rendered",
		"client_id", s.scope.ClientID,
		"language_id", s.scope.LanguageID,
		"categories", len(categories),
		"articles", articleCount,
		"selected", listing.SelectedCount(),
	)
	return listing, nil
}

func articleNode(art models.Article, level int, selected *selection.Set) models.TreeNode {
	token := selection.CategoryArticle(art.CategoryArticleID)
	return models.TreeNode{
		Token:      token,
		Value:      token.String(),
		Label:      sanitizer.Truncate(urlDecode(art.Title), config.ArticleTitleLength),
		Level:      level,
		Selectable: true,
		Online:     art.Online,
		Selected:   selected.Contains(token),
	}
}
