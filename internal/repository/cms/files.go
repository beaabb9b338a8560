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

// DbfsProtocol prefixes dbfs paths mirrored into other tables.
const DbfsProtocol = "dbfs:"

// StripDbfsPath removes the protocol marker and surrounding slashes.
func StripDbfsPath(path string) string {
	return strings.Trim(strings.TrimPrefix(path, DbfsProtocol), "/")
}

// literalTypes returns the lowercased file types usable in an SQL filter.
// Glob patterns cannot be expressed there, so any pattern disables the SQL
// filter and the caller filters in memory.
func literalTypes(fileTypes []string) ([]string, bool) {
	var types []string
	for _, t := range fileTypes {
		t = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(t), "."))
		if t == "" {
			continue
		}
		if strings.ContainsAny(t, "*?[]{}\\") {
			return nil, false
		}
		types = append(types, t)
	}
	return types, len(types) > 0
}

// UploadRepository implements repositories.UploadRepository
type UploadRepository struct {
	querier repositories.RowQuerier
	tables  *TableNames
	logger  *slog.Logger
}

// NewUploadRepository creates a new upload repository
func NewUploadRepository(config *RepositoryConfig) repositories.UploadRepository {
	return &UploadRepository{
		querier: config.Querier,
		tables:  config.Tables,
		logger:  config.Logger,
	}
}

// List returns the client's upload rows below filter.PathPrefix.
func (r *UploadRepository) List(ctx context.Context, filter repositories.FileFilter) ([]models.Upload, error) {
	query := fmt.Sprintf(`
		SELECT
			upl.idupl AS idupl,
			upl.filename AS filename,
			upl.dirname AS dirname,
			upl.filetype AS filetype,
			upl.size AS size
		FROM %s AS upl
		WHERE
			upl.idclient = ? AND
			upl.dirname NOT LIKE ?`,
		r.tables.Upl,
	)
	args := []any{filter.ClientID, DbfsProtocol + "%"}

	if filter.PathPrefix != "" {
		query += ` AND upl.dirname LIKE ? ESCAPE '\'`
		args = append(args, escapeLike(filter.PathPrefix)+"%")
	}

	if types, ok := literalTypes(filter.FileTypes); ok {
		query += fmt.Sprintf(` AND (LOWER(upl.filetype) IN (%s) OR upl.filetype = '' OR upl.filetype IS NULL)`, placeholders(len(types)))
		for _, t := range types {
			args = append(args, t)
		}
	}
	query += " ORDER BY upl.dirname, upl.filename"

	records, err := r.querier.QueryRecords(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list uploads: %w", err)
	}

	uploads := make([]models.Upload, 0, len(records))
	for _, rec := range records {
		uploads = append(uploads, models.Upload{
			ID:       security.ToInteger(rec["idupl"]),
			FileName: security.ToString(rec["filename"]),
			DirName:  security.ToString(rec["dirname"]),
			FileType: security.ToString(rec["filetype"]),
			Size:     security.ToInteger(rec["size"]),
		})
	}
	return uploads, nil
}

// DbfsRepository implements repositories.DbfsRepository
type DbfsRepository struct {
	querier repositories.RowQuerier
	tables  *TableNames
	logger  *slog.Logger
}

// NewDbfsRepository creates a new dbfs repository
func NewDbfsRepository(config *RepositoryConfig) repositories.DbfsRepository {
	return &DbfsRepository{
		querier: config.Querier,
		tables:  config.Tables,
		logger:  config.Logger,
	}
}

// List returns the client's dbfs rows below filter.PathPrefix. The prefix may
// carry the dbfs protocol marker.
func (r *DbfsRepository) List(ctx context.Context, filter repositories.FileFilter) ([]models.DbfsEntry, error) {
	query := fmt.Sprintf(`
		SELECT
			dbfs.iddbfs AS iddbfs,
			dbfs.filename AS filename,
			dbfs.dirname AS dirname,
			dbfs.mimetype AS mimetype,
			dbfs.size AS size
		FROM %s AS dbfs
		WHERE
			dbfs.idclient = ?`,
		r.tables.Dbfs,
	)
	args := []any{filter.ClientID}

	if prefix := StripDbfsPath(filter.PathPrefix); prefix != "" {
		query += ` AND dbfs.dirname LIKE ? ESCAPE '\'`
		args = append(args, escapeLike(prefix)+"%")
	}

	if types, ok := literalTypes(filter.FileTypes); ok {
		conds := make([]string, 0, len(types))
		for _, t := range types {
			conds = append(conds, `LOWER(dbfs.filename) LIKE ? ESCAPE '\'`)
			args = append(args, "%."+escapeLike(t))
		}
		query += fmt.Sprintf(` AND (%s OR dbfs.filename IN ('', '.') OR dbfs.filename IS NULL)`, strings.Join(conds, " OR "))
	}
	query += " ORDER BY dbfs.dirname, dbfs.filename"

	records, err := r.querier.QueryRecords(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list dbfs entries: %w", err)
	}

	entries := make([]models.DbfsEntry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, models.DbfsEntry{
			ID:       security.ToInteger(rec["iddbfs"]),
			FileName: security.ToString(rec["filename"]),
			DirName:  security.ToString(rec["dirname"]),
			MimeType: security.ToString(rec["mimetype"]),
			Size:     security.ToInteger(rec["size"]),
		})
	}
	return entries, nil
}
