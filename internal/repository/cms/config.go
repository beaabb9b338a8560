// Package cms reads the CMS tables the selectors list. Queries are written
// once with "?" placeholders and run on any repositories.RowQuerier.
package cms

import (
	"fmt"
	"log/slog"
	"strings"

	"cmsselect/internal/domain/repositories"
)

// RepositoryConfig holds configuration for repository implementations
type RepositoryConfig struct {
	Querier repositories.RowQuerier
	Tables  *TableNames
	Logger  *slog.Logger
}

// TableNames holds dynamically prefixed table names
type TableNames struct {
	Cat     string
	CatLang string
	CatTree string
	CatArt  string
	ArtLang string
	Content string
	Type    string
	Upl     string
	Dbfs    string
}

// NewTableNames creates table names with the given prefix
func NewTableNames(prefix string) *TableNames {
	return &TableNames{
		Cat:     fmt.Sprintf("%scat", prefix),
		CatLang: fmt.Sprintf("%scat_lang", prefix),
		CatTree: fmt.Sprintf("%scat_tree", prefix),
		CatArt:  fmt.Sprintf("%scat_art", prefix),
		ArtLang: fmt.Sprintf("%sart_lang", prefix),
		Content: fmt.Sprintf("%scontent", prefix),
		Type:    fmt.Sprintf("%stype", prefix),
		Upl:     fmt.Sprintf("%supl", prefix),
		Dbfs:    fmt.Sprintf("%sdbfs", prefix),
	}
}

// All lists the tables in dependency order.
func (t *TableNames) All() []string {
	return []string{t.Cat, t.CatLang, t.CatTree, t.CatArt, t.ArtLang, t.Type, t.Content, t.Upl, t.Dbfs}
}

// placeholders returns "?, ?, ..." for n arguments.
func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike escapes LIKE wildcards; queries declare ESCAPE '\'.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
