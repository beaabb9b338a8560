package selector

import (
	"context"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cmsselect/internal/clientinfo"
	"cmsselect/internal/domain"
	"cmsselect/internal/domain/models"
	"cmsselect/internal/i18n"
	"cmsselect/internal/sanitizer"
	"cmsselect/internal/storage"
)

const factoryClients = `
clients:
  - id: 1
    name: Demo
    upload:
      path: /upload/
    languages:
      1: de
      2: en
`

func newFactoryConfig(t *testing.T) FactoryConfig {
	t.Helper()
	registry, err := clientinfo.Parse([]byte(factoryClients))
	require.NoError(t, err)
	return FactoryConfig{
		Categories: threeCategories(),
		Articles:   newsArticles(),
		Contents:   &fakeContents{},
		Uploads:    &fakeUploads{rows: []models.Upload{{ID: 1, FileName: "a.txt"}}},
		Dbfs:       &fakeDbfs{},
		Clients:    registry,
		Paths:      storage.NewPathChecker(memfs.New()),
		Translator: i18n.New("en"),
		Stripper:   sanitizer.NewStripper(),
		Logger:     discardLogger(),
	}
}

func TestNewFactoryRequiresCollaborators(t *testing.T) {
	cfg := newFactoryConfig(t)
	cfg.Dbfs = nil

	_, err := NewFactory(cfg)
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestFactoryBuildsSelectors(t *testing.T) {
	f, err := NewFactory(newFactoryConfig(t))
	require.NoError(t, err)

	cats, err := f.Categories(1, 1)
	require.NoError(t, err)
	listing, err := cats.Render(context.Background(), "", "", Options{})
	require.NoError(t, err)
	assert.Len(t, listing.Nodes, 3)

	_, err = f.Articles(1, 1)
	require.NoError(t, err)
	_, err = f.ContentSlots(1, 1)
	require.NoError(t, err)

	_, err = f.Categories(0, 1)
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestFactoryFilesTranslatesHeaders(t *testing.T) {
	f, err := NewFactory(newFactoryConfig(t))
	require.NoError(t, err)

	files, err := f.Files(1, 1)
	require.NoError(t, err)
	listing, err := files.Render(context.Background(), "", "", Options{})
	require.NoError(t, err)
	assert.Equal(t, "Upload-Verzeichnis", listing.Nodes[0].Label)
	assert.Equal(t, "Datenbank-Dateisystem", listing.Nodes[len(listing.Nodes)-1].Label)

	files, err = f.Files(1, 2)
	require.NoError(t, err)
	listing, err = files.Render(context.Background(), "", "", Options{})
	require.NoError(t, err)
	assert.Equal(t, "Upload directory", listing.Nodes[0].Label)
}

func TestFactoryFilesUnknownClient(t *testing.T) {
	f, err := NewFactory(newFactoryConfig(t))
	require.NoError(t, err)

	_, err = f.Files(7, 1)
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}
