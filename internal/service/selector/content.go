package selector

import (
	"context"
	"fmt"
	"log/slog"

	"cmsselect/internal/config"
	"cmsselect/internal/domain/models"
	"cmsselect/internal/domain/repositories"
	"cmsselect/internal/domain/services"
	"cmsselect/internal/sanitizer"
	"cmsselect/internal/selection"
)

type contentSlotSelector struct {
	contents repositories.ContentRepository
	stripper *sanitizer.Stripper
	scope    Scope
	logger   *slog.Logger
}

// NewContentSlotSelector creates a content slot selector.
func NewContentSlotSelector(
	contents repositories.ContentRepository,
	stripper *sanitizer.Stripper,
	scope Scope,
	logger *slog.Logger,
) (services.ContentSlotSelector, error) {
	const component = "content slot selector"
	if err := requireRepo(component, "content repository", contents != nil); err != nil {
		return nil, err
	}
	if stripper == nil {
		stripper = sanitizer.NewStripper()
	}
	if err := scope.validate(component); err != nil {
		return nil, err
	}
	return &contentSlotSelector{contents: contents, stripper: stripper, scope: scope, logger: logger}, nil
}

// Render lists the content slots of the selected category articles.
func (s *contentSlotSelector) Render(ctx context.Context, selectedArticles, selectedSlots string, opts Options) (*models.Listing, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	listing := &models.Listing{}
	articleIDs := selection.ArticleCodec.Set(selectedArticles).IDs(selection.KindCategoryArticle)
	if len(articleIDs) == 0 {
		listing.Disabled = true
		return listing, nil
	}

	values, err := s.contents.ListByCategoryArticles(ctx, repositories.ContentFilter{
		CategoryArticleIDs: articleIDs,
		LanguageID:         s.scope.LanguageID,
		TypeRange:          opts.TypeRange,
	})
	if err != nil {
		return nil, wrapQuery("render content slots", err)
	}
	if len(values) == 0 {
		listing.Disabled = true
		return listing, nil
	}

	selected := selection.ContentSlotCodec.Set(selectedSlots)
	for _, v := range values {
		token := selection.ContentSlot(v.TypeID, v.Index)
		listing.Nodes = append(listing.Nodes, models.TreeNode{
			Token:      token,
			Value:      token.String(),
			Label:      fmt.Sprintf("%s[%d]: %s", v.Type, v.Index, s.preview(v.Value)),
			Selectable: true,
			Online:     true,
			Selected:   selected.Contains(token),
		})
	}

	s.logger.Debug("content slots rendered",
		"articles", len(articleIDs),
		"type_range", opts.TypeRange,
		"slots", len(values),
		"selected", listing.SelectedCount(),
	)
	return listing, nil
}

func (s *contentSlotSelector) preview(value string) string {
	return s.stripper.Preview(urlDecode(value), config.ContentPreviewLength, config.ContentPreviewMarker)
}
