// Package seed loads a small demo client into the CMS tables and onto the
// upload medium.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"path"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"cmsselect/internal/domain/repositories"
	"cmsselect/internal/repository/cms"
)

// Seeder writes demo rows for one client and language.
type Seeder struct {
	store      repositories.Store
	tables     *cms.TableNames
	clientID   int
	languageID int
	logger     *slog.Logger
}

// NewSeeder creates a new demo seeder
func NewSeeder(store repositories.Store, tables *cms.TableNames, clientID, languageID int, logger *slog.Logger) *Seeder {
	return &Seeder{
		store:      store,
		tables:     tables,
		clientID:   clientID,
		languageID: languageID,
		logger:     logger,
	}
}

type row struct {
	table string
	cols  string
	args  []any
}

// UploadFiles are the demo files stored below the client's upload path.
// deleted.png has a row but no file, so it shows up as an orphan.
var UploadFiles = []string{
	"images/logo.png",
	"images/photo.jpg",
	"docs/manual.pdf",
	"readme.txt",
}

// SeedAll inserts every demo row inside one transaction.
func (s *Seeder) SeedAll(ctx context.Context) error {
	rows := s.rows()
	return s.store.ExecTx(ctx, func(ctx context.Context) error {
		for _, r := range rows {
			stmt := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", r.table, r.cols, placeholders(len(r.args)))
			if _, err := s.store.ExecStatement(ctx, stmt, r.args...); err != nil {
				return fmt.Errorf("seed %s: %w", r.table, err)
			}
		}
		s.logger.Info("demo data seeded", "rows", len(rows), "client", s.clientID, "language", s.languageID)
		return nil
	})
}

func (s *Seeder) rows() []row {
	t := s.tables
	c, l := s.clientID, s.languageID

	var rows []row
	add := func(table, cols string, args ...any) {
		rows = append(rows, row{table: table, cols: cols, args: args})
	}

	// Category tree: Home > News > Archive, About us
	cats := []struct {
		id, parent, level int
		name              string
		visible, public   int
	}{
		{1, 0, 0, "Home", 1, 1},
		{2, 1, 1, "News", 1, 1},
		{3, 2, 2, "Archive", 0, 1},
		{4, 0, 0, "About%20us", 1, 0},
	}
	for i, cat := range cats {
		add(t.Cat, "idcat, idclient, parentid", cat.id, c, cat.parent)
		add(t.CatLang, "idcatlang, idcat, idlang, name, visible, public", cat.id, cat.id, l, cat.name, cat.visible, cat.public)
		add(t.CatTree, "idtree, idcat, level", i+1, cat.id, cat.level)
	}

	arts := []struct {
		idart, idcat int
		title        string
		online       int
	}{
		{1, 1, "Welcome", 1},
		{2, 2, "Zebra%20crossing%20opened", 0},
		{3, 2, "Alpha%20release%20notes", 1},
		{4, 4, "Company history from the early days up to now", 1},
	}
	for _, a := range arts {
		add(t.ArtLang, "idartlang, idart, idlang, title, online", a.idart, a.idart, l, a.title, a.online)
		add(t.CatArt, "idcatart, idcat, idart", a.idart, a.idcat, a.idart)
	}

	add(t.Type, "idtype, type, description", 1, "CMS_HTMLHEAD", "Headline")
	add(t.Type, "idtype, type, description", 2, "CMS_HTML", "HTML text")
	add(t.Type, "idtype, type, description", 3, "CMS_IMG", "Image")

	add(t.Content, "idcontent, idartlang, idtype, typeid, value", 1, 1, 1, 1, "Welcome%20to%20the%20demo")
	add(t.Content, "idcontent, idartlang, idtype, typeid, value", 2, 1, 2, 1, "<p>This is the <b>first</b> paragraph of the demo page.</p>")
	add(t.Content, "idcontent, idartlang, idtype, typeid, value", 3, 1, 2, 2, "")
	add(t.Content, "idcontent, idartlang, idtype, typeid, value", 4, 1, 3, 1, "2")

	uploads := []struct {
		id               int
		dir, file, ftype string
	}{
		{1, "", "images", ""},
		{2, "images/", "logo.png", "png"},
		{3, "images/", "photo.jpg", "jpg"},
		{4, "images/", "deleted.png", "png"},
		{5, "docs/", "manual.pdf", "pdf"},
		{6, "", "readme.txt", "txt"},
		{7, "dbfs:/media/", "clip.mp4", "mp4"},
	}
	for _, u := range uploads {
		add(t.Upl, "idupl, idclient, filename, dirname, filetype, size", u.id, c, u.file, u.dir, u.ftype, 0)
	}

	dbfs := []struct {
		id        int
		dir, file string
		mime      string
	}{
		{1, "media", "", ""},
		{2, "media", "clip.mp4", "video/mp4"},
		{3, "", "notes.txt", "text/plain"},
	}
	for _, d := range dbfs {
		add(t.Dbfs, "iddbfs, idclient, dirname, filename, mimetype, size", d.id, c, d.dir, d.file, d.mime, 0)
	}

	return rows
}

// WriteUploadFiles creates the demo files below root on fs.
func WriteUploadFiles(fs billy.Filesystem, root string) error {
	for _, name := range UploadFiles {
		p := path.Join(root, name)
		if err := fs.MkdirAll(path.Dir(p), 0o755); err != nil {
			return fmt.Errorf("create %s: %w", path.Dir(p), err)
		}
		if err := util.WriteFile(fs, p, []byte(name), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", p, err)
		}
	}
	return nil
}

func placeholders(n int) string {
	s := ""
	for i := 0; i < n; i++ {
		if i > 0 {
			s += ", "
		}
		s += "?"
	}
	return s
}
