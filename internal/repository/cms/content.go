package cms

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"cmsselect/internal/domain/models"
	"cmsselect/internal/domain/repositories"
	"cmsselect/internal/security"
)

// ContentRepository implements repositories.ContentRepository
type ContentRepository struct {
	querier repositories.RowQuerier
	tables  *TableNames
	logger  *slog.Logger
}

// NewContentRepository creates a new content repository
func NewContentRepository(config *RepositoryConfig) repositories.ContentRepository {
	return &ContentRepository{
		querier: config.Querier,
		tables:  config.Tables,
		logger:  config.Logger,
	}
}

// ListByCategoryArticles returns the content values of the given category
// articles ordered by (idtype, typeid).
func (r *ContentRepository) ListByCategoryArticles(ctx context.Context, filter repositories.ContentFilter) ([]models.ContentValue, error) {
	if len(filter.CategoryArticleIDs) == 0 {
		return nil, nil
	}

	query := fmt.Sprintf(`
		SELECT
			a.typeid AS typeid,
			a.value AS value,
			a.idtype AS idtype,
			d.type AS type,
			d.description AS description
		FROM %s AS a, %s AS b, %s AS c, %s AS d
		WHERE
			a.idtype = d.idtype AND
			a.idartlang = b.idartlang AND
			b.idart = c.idart AND
			b.idlang = ?`,
		r.tables.Content, r.tables.ArtLang, r.tables.CatArt, r.tables.Type,
	)
	args := []any{filter.LanguageID}

	if filter.TypeRange != "" {
		types := parseTypeRange(filter.TypeRange)
		if len(types) == 0 {
			r.logger.Debug("type range has no usable ids", "type_range", filter.TypeRange)
			return nil, nil
		}
		query += fmt.Sprintf(" AND a.idtype IN (%s)", placeholders(len(types)))
		for _, t := range types {
			args = append(args, t)
		}
	}

	query += fmt.Sprintf(" AND c.idcatart IN (%s) ORDER BY a.idtype, a.typeid", placeholders(len(filter.CategoryArticleIDs)))
	for _, id := range filter.CategoryArticleIDs {
		args = append(args, id)
	}

	records, err := r.querier.QueryRecords(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list content values: %w", err)
	}

	values := make([]models.ContentValue, 0, len(records))
	for _, rec := range records {
		values = append(values, models.ContentValue{
			TypeID:      security.ToInteger(rec["idtype"]),
			Index:       security.ToInteger(rec["typeid"]),
			Value:       security.ToString(rec["value"]),
			Type:        security.ToString(rec["type"]),
			Description: security.ToString(rec["description"]),
		})
	}
	return values, nil
}

// parseTypeRange reads the comma separated id list into bind arguments.
func parseTypeRange(typeRange string) []int {
	var ids []int
	for _, part := range strings.Split(typeRange, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if id := security.ToInteger(part); id > 0 {
			ids = append(ids, id)
		}
	}
	return ids
}
