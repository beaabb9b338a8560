package cms

import (
	"context"
	"fmt"
	"log/slog"

	"cmsselect/internal/domain/models"
	"cmsselect/internal/domain/repositories"
	"cmsselect/internal/security"
)

// ArticleRepository implements repositories.ArticleRepository
type ArticleRepository struct {
	querier repositories.RowQuerier
	tables  *TableNames
	logger  *slog.Logger
}

// NewArticleRepository creates a new article repository
func NewArticleRepository(config *RepositoryConfig) repositories.ArticleRepository {
	return &ArticleRepository{
		querier: config.Querier,
		tables:  config.Tables,
		logger:  config.Logger,
	}
}

// ListByCategory returns the category's articles ordered by title.
func (r *ArticleRepository) ListByCategory(ctx context.Context, filter repositories.ArticleFilter) ([]models.Article, error) {
	query := fmt.Sprintf(`
		SELECT
			a.title AS title,
			b.idcatart AS idcatart,
			a.online AS online
		FROM %s AS a, %s AS b
		WHERE
			b.idcat = ? AND
			a.idart = b.idart AND
			a.idlang = ?`,
		r.tables.ArtLang, r.tables.CatArt,
	)
	if filter.OnlineOnly {
		query += " AND a.online = 1"
	}
	query += " ORDER BY a.title, b.idcatart"

	records, err := r.querier.QueryRecords(ctx, query, filter.CategoryID, filter.LanguageID)
	if err != nil {
		return nil, fmt.Errorf("list articles of category %d: %w", filter.CategoryID, err)
	}

	articles := make([]models.Article, 0, len(records))
	for _, rec := range records {
		articles = append(articles, models.Article{
			CategoryArticleID: security.ToInteger(rec["idcatart"]),
			Title:             security.ToString(rec["title"]),
			Online:            security.ToBoolean(rec["online"]),
		})
	}
	return articles, nil
}
