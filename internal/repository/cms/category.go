package cms

import (
	"context"
	"fmt"
	"log/slog"

	"cmsselect/internal/domain/models"
	"cmsselect/internal/domain/repositories"
	"cmsselect/internal/security"
)

// CategoryRepository implements repositories.CategoryRepository
type CategoryRepository struct {
	querier repositories.RowQuerier
	tables  *TableNames
	logger  *slog.Logger
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(config *RepositoryConfig) repositories.CategoryRepository {
	return &CategoryRepository{
		querier: config.Querier,
		tables:  config.Tables,
		logger:  config.Logger,
	}
}

// ListTree returns the client's categories in tree order.
func (r *CategoryRepository) ListTree(ctx context.Context, filter repositories.CategoryFilter) ([]models.Category, error) {
	query := fmt.Sprintf(`
		SELECT
			a.idcat AS idcat,
			b.name AS name,
			b.visible AS visible,
			b.public AS public,
			c.level AS level
		FROM %s AS a, %s AS b, %s AS c
		WHERE
			a.idclient = ? AND
			b.idlang = ? AND
			b.idcat = a.idcat AND
			c.idcat = a.idcat`,
		r.tables.Cat, r.tables.CatLang, r.tables.CatTree,
	)
	args := []any{filter.ClientID, filter.LanguageID}
	if filter.MaxLevel > 0 {
		query += " AND c.level < ?"
		args = append(args, filter.MaxLevel)
	}
	query += " ORDER BY c.idtree"

	records, err := r.querier.QueryRecords(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	categories := make([]models.Category, 0, len(records))
	for _, rec := range records {
		categories = append(categories, models.Category{
			ID:      security.ToInteger(rec["idcat"]),
			Name:    security.ToString(rec["name"]),
			Visible: security.ToBoolean(rec["visible"]),
			Public:  security.ToBoolean(rec["public"]),
			Level:   max(security.ToInteger(rec["level"]), 0),
		})
	}
	return categories, nil
}
