package cms_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cmsselect/internal/domain/repositories"
	"cmsselect/internal/repository/cms"
	"cmsselect/internal/repository/schema"
	"cmsselect/internal/repository/sqlite"
	"cmsselect/internal/seed"
)

const (
	clientID   = 1
	languageID = 1
)

func setup(t *testing.T) *cms.RepositoryConfig {
	t.Helper()
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store, err := sqlite.Open(":memory:", logger)
	require.NoError(t, err)
	t.Cleanup(store.Close)

	tables := cms.NewTableNames("con_")
	require.NoError(t, schema.Create(ctx, store, tables))
	require.NoError(t, seed.NewSeeder(store, tables, clientID, languageID, logger).SeedAll(ctx))

	return &cms.RepositoryConfig{Querier: store, Tables: tables, Logger: logger}
}

func TestCategoryListTree(t *testing.T) {
	cfg := setup(t)
	repo := cms.NewCategoryRepository(cfg)
	ctx := context.Background()

	cats, err := repo.ListTree(ctx, repositories.CategoryFilter{ClientID: clientID, LanguageID: languageID})
	require.NoError(t, err)
	require.Len(t, cats, 4)
	assert.Equal(t, []int{1, 2, 3, 4}, []int{cats[0].ID, cats[1].ID, cats[2].ID, cats[3].ID})
	assert.Equal(t, 2, cats[2].Level)
	assert.False(t, cats[2].Visible)
	assert.False(t, cats[3].Public)
	assert.Equal(t, "About%20us", cats[3].Name)

	cats, err = repo.ListTree(ctx, repositories.CategoryFilter{ClientID: clientID, LanguageID: languageID, MaxLevel: 1})
	require.NoError(t, err)
	assert.Len(t, cats, 2)

	cats, err = repo.ListTree(ctx, repositories.CategoryFilter{ClientID: 99, LanguageID: languageID})
	require.NoError(t, err)
	assert.Empty(t, cats)
}

func TestArticleListByCategory(t *testing.T) {
	cfg := setup(t)
	repo := cms.NewArticleRepository(cfg)
	ctx := context.Background()

	arts, err := repo.ListByCategory(ctx, repositories.ArticleFilter{CategoryID: 2, LanguageID: languageID})
	require.NoError(t, err)
	require.Len(t, arts, 2)
	// Ordered by title.
	assert.Equal(t, 3, arts[0].CategoryArticleID)
	assert.Equal(t, 2, arts[1].CategoryArticleID)
	assert.False(t, arts[1].Online)

	arts, err = repo.ListByCategory(ctx, repositories.ArticleFilter{CategoryID: 2, LanguageID: languageID, OnlineOnly: true})
	require.NoError(t, err)
	require.Len(t, arts, 1)
	assert.Equal(t, "Alpha%20release%20notes", arts[0].Title)
}

func TestContentListByCategoryArticles(t *testing.T) {
	cfg := setup(t)
	repo := cms.NewContentRepository(cfg)
	ctx := context.Background()

	values, err := repo.ListByCategoryArticles(ctx, repositories.ContentFilter{CategoryArticleIDs: []int{1}, LanguageID: languageID})
	require.NoError(t, err)
	require.Len(t, values, 4)
	assert.Equal(t, [2]int{1, 1}, [2]int{values[0].TypeID, values[0].Index})
	assert.Equal(t, [2]int{2, 2}, [2]int{values[2].TypeID, values[2].Index})
	assert.Equal(t, "CMS_HTML", values[1].Type)

	values, err = repo.ListByCategoryArticles(ctx, repositories.ContentFilter{CategoryArticleIDs: []int{1}, LanguageID: languageID, TypeRange: "2, 3"})
	require.NoError(t, err)
	assert.Len(t, values, 3)

	values, err = repo.ListByCategoryArticles(ctx, repositories.ContentFilter{CategoryArticleIDs: []int{1}, LanguageID: languageID, TypeRange: "x"})
	require.NoError(t, err)
	assert.Empty(t, values)

	values, err = repo.ListByCategoryArticles(ctx, repositories.ContentFilter{LanguageID: languageID})
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestUploadList(t *testing.T) {
	cfg := setup(t)
	repo := cms.NewUploadRepository(cfg)
	ctx := context.Background()

	uploads, err := repo.List(ctx, repositories.FileFilter{ClientID: clientID})
	require.NoError(t, err)
	// The dbfs mirror row is excluded.
	require.Len(t, uploads, 6)
	assert.Equal(t, "", uploads[0].DirName)
	for _, u := range uploads {
		assert.NotContains(t, u.DirName, cms.DbfsProtocol)
	}

	uploads, err = repo.List(ctx, repositories.FileFilter{ClientID: clientID, PathPrefix: "images/"})
	require.NoError(t, err)
	assert.Len(t, uploads, 3)

	uploads, err = repo.List(ctx, repositories.FileFilter{ClientID: clientID, FileTypes: []string{"pdf"}})
	require.NoError(t, err)
	// manual.pdf plus the directory row with an empty type.
	require.Len(t, uploads, 2)

	uploads, err = repo.List(ctx, repositories.FileFilter{ClientID: clientID, FileTypes: []string{"jp*g"}})
	require.NoError(t, err)
	assert.Len(t, uploads, 6, "patterns are filtered by the caller")
}

func TestFileTypeFilterIgnoresCase(t *testing.T) {
	cfg := setup(t)
	ctx := context.Background()

	execer, ok := cfg.Querier.(repositories.StatementExecer)
	require.True(t, ok)
	_, err := execer.ExecStatement(ctx,
		"INSERT INTO "+cfg.Tables.Upl+" (idupl, idclient, filename, dirname, filetype, size) VALUES (?, ?, ?, ?, ?, ?)",
		8, clientID, "REPORT.PDF", "docs/", "PDF", 0)
	require.NoError(t, err)

	uploads, err := cms.NewUploadRepository(cfg).List(ctx, repositories.FileFilter{ClientID: clientID, FileTypes: []string{"PDF"}})
	require.NoError(t, err)
	names := make([]string, 0, len(uploads))
	for _, u := range uploads {
		names = append(names, u.FileName)
	}
	assert.ElementsMatch(t, []string{"images", "manual.pdf", "REPORT.PDF"}, names)

	entries, err := cms.NewDbfsRepository(cfg).List(ctx, repositories.FileFilter{ClientID: clientID, FileTypes: []string{".TXT"}})
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestDbfsList(t *testing.T) {
	cfg := setup(t)
	repo := cms.NewDbfsRepository(cfg)
	ctx := context.Background()

	entries, err := repo.List(ctx, repositories.FileFilter{ClientID: clientID})
	require.NoError(t, err)
	require.Len(t, entries, 3)

	entries, err = repo.List(ctx, repositories.FileFilter{ClientID: clientID, PathPrefix: "dbfs:/media"})
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	entries, err = repo.List(ctx, repositories.FileFilter{ClientID: clientID, FileTypes: []string{"txt"}})
	require.NoError(t, err)
	// notes.txt plus the media directory row.
	assert.Len(t, entries, 2)
}

func TestStripDbfsPath(t *testing.T) {
	assert.Equal(t, "media/clips", cms.StripDbfsPath("dbfs:/media/clips/"))
	assert.Equal(t, "media", cms.StripDbfsPath("media"))
	assert.Equal(t, "", cms.StripDbfsPath("dbfs:/"))
}
