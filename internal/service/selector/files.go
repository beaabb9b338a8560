package selector

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"slices"
	"strings"

	"cmsselect/internal/clientinfo"
	"cmsselect/internal/config"
	"cmsselect/internal/domain"
	"cmsselect/internal/domain/models"
	"cmsselect/internal/domain/repositories"
	"cmsselect/internal/domain/services"
	"cmsselect/internal/i18n"
	"cmsselect/internal/repository/cms"
	"cmsselect/internal/selection"
	"cmsselect/internal/utils"
)

// FileTreeLabels are the translated group header texts.
type FileTreeLabels struct {
	Upload string
	Dbfs   string
}

// FileTreeConfig holds the collaborators of a file tree selector.
type FileTreeConfig struct {
	Uploads repositories.UploadRepository
	Dbfs    repositories.DbfsRepository
	Client  *clientinfo.Info
	Paths   PathOracle
	Labels  FileTreeLabels
	Scope   Scope
	Logger  *slog.Logger
}

type fileTreeSelector struct {
	cfg FileTreeConfig
}

// NewFileTreeSelector creates a file tree selector. Missing labels fall back
// to English.
func NewFileTreeSelector(cfg FileTreeConfig) (services.FileTreeSelector, error) {
	const component = "file tree selector"
	if err := requireRepo(component, "upload repository", cfg.Uploads != nil); err != nil {
		return nil, err
	}
	if err := requireRepo(component, "dbfs repository", cfg.Dbfs != nil); err != nil {
		return nil, err
	}
	if err := requireRepo(component, "path oracle", cfg.Paths != nil); err != nil {
		return nil, err
	}
	if cfg.Client == nil {
		return nil, domain.NewConfigurationError(component, "client info is required")
	}
	if err := cfg.Scope.validate(component); err != nil {
		return nil, err
	}
	if cfg.Labels.Upload == "" {
		cfg.Labels.Upload = i18n.MsgUploadDirectory
	}
	if cfg.Labels.Dbfs == "" {
		cfg.Labels.Dbfs = i18n.MsgDatabaseFileSystem
	}
	return &fileTreeSelector{cfg: cfg}, nil
}

// Render lists upload entries under one header and dbfs entries under a
// second one. Within a group every directory is followed by its files, then
// files of the root directory, then orphaned records.
func (s *fileTreeSelector) Render(ctx context.Context, startPath, selectedFiles string, opts Options) (*models.Listing, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	matcher, err := newTypeMatcher(opts.FileTypes)
	if err != nil {
		return nil, err
	}

	startPath = utils.NormalizeStartPath(startPath)
	if err := utils.ValidateStartPath(startPath); err != nil {
		return nil, fmt.Errorf("%w: start path: %v", domain.ErrValidation, err)
	}
	filter := repositories.FileFilter{
		ClientID:   s.cfg.Scope.ClientID,
		PathPrefix: startPath,
		FileTypes:  opts.FileTypes,
	}

	uploads, err := s.cfg.Uploads.List(ctx, filter)
	if err != nil {
		return nil, wrapQuery("render file tree", err)
	}
	dbfs, err := s.cfg.Dbfs.List(ctx, filter)
	if err != nil {
		return nil, wrapQuery("render file tree", err)
	}

	listing := &models.Listing{}
	if len(uploads)+len(dbfs) == 0 {
		listing.Disabled = true
		return listing, nil
	}

	selected := selection.FileCodec.Set(selectedFiles)
	b := treeBuilder{opts: opts, selected: selected}

	listing.Nodes = append(listing.Nodes, headerNode(s.cfg.Labels.Upload))
	listing.Nodes = append(listing.Nodes, b.build(s.uploadEntries(uploads, matcher))...)
	listing.Nodes = append(listing.Nodes, headerNode(s.cfg.Labels.Dbfs))
	listing.Nodes = append(listing.Nodes, b.build(dbfsEntries(dbfs, matcher))...)

	s.cfg.Logger.Debug("file tree rendered",
		"client_id", s.cfg.Scope.ClientID,
		"start_path", startPath,
		"uploads", len(uploads),
		"dbfs", len(dbfs),
		"nodes", len(listing.Nodes),
		"selected", listing.SelectedCount(),
	)
	return listing, nil
}

// uploadEntries classifies upload rows against the upload medium.
func (s *fileTreeSelector) uploadEntries(rows []models.Upload, matcher *typeMatcher) []models.FileEntry {
	entries := make([]models.FileEntry, 0, len(rows))
	for _, row := range rows {
		dir := row.DirName
		if dir == "/" {
			dir = ""
		}
		clean := strings.Trim("/"+dir+row.FileName, "/")
		if clean == "" {
			continue
		}

		e := models.FileEntry{
			Source:      models.SourceUpload,
			RawID:       row.ID,
			DirKey:      dirKey(dir),
			FileName:    row.FileName,
			DisplayName: row.FileName,
			Path:        clean,
			Extension:   row.FileType,
		}

		full := s.cfg.Client.UploadPath(clean)
		e.IsDir = s.cfg.Paths.IsDir(full)
		if e.IsDir {
			e.DirKey = dirKey(clean)
		} else {
			e.IsFile = s.cfg.Paths.IsFile(full)
			if !matcher.Match(e.Extension) {
				continue
			}
			if e.IsFile && s.cfg.Client.Upload.HTMLPath != "" {
				e.URL = s.cfg.Client.UploadURL(clean)
			}
		}
		entries = append(entries, e)
	}
	return entries
}

// dbfsEntries classifies dbfs rows. A row without file name is a directory.
func dbfsEntries(rows []models.DbfsEntry, matcher *typeMatcher) []models.FileEntry {
	entries := make([]models.FileEntry, 0, len(rows))
	for _, row := range rows {
		name := row.FileName
		if name == "." {
			name = ""
		}
		dir := cms.StripDbfsPath(row.DirName)
		clean := strings.Trim(dir+"/"+name, "/")
		if clean == "" {
			continue
		}

		e := models.FileEntry{
			Source:      models.SourceDbfs,
			RawID:       row.ID,
			DirKey:      dirKey(dir),
			FileName:    name,
			DisplayName: name,
			Path:        clean,
			IsDir:       name == "",
			IsFile:      name != "",
		}
		if e.IsDir {
			e.DisplayName = path.Base(clean)
		} else {
			e.Extension = strings.TrimPrefix(path.Ext(name), ".")
			if !matcher.Match(e.Extension) {
				continue
			}
		}
		entries = append(entries, e)
	}
	return entries
}

type treeBuilder struct {
	opts     Options
	selected *selection.Set
}

// build orders the entries of one store. Directories are unique per key, the
// last row of a key wins, and are sorted by path segments; directories that
// only exist through their files are added as unselectable containers.
func (b treeBuilder) build(entries []models.FileEntry) []models.TreeNode {
	dirs := map[string]*models.FileEntry{}
	files := map[string][]models.FileEntry{}
	var orphans []models.FileEntry

	for i := range entries {
		e := &entries[i]
		switch {
		case e.IsDir:
			dirs[e.DirKey] = e
		case e.IsFile:
			files[e.DirKey] = append(files[e.DirKey], *e)
		default:
			orphans = append(orphans, *e)
		}
	}

	keys := make([]string, 0, len(dirs)+len(files))
	for key := range dirs {
		keys = append(keys, key)
	}
	for key := range files {
		if _, ok := dirs[key]; !ok && key != rootKey {
			keys = append(keys, key)
		}
	}
	slices.SortFunc(keys, compareDirKeys)

	var nodes []models.TreeNode
	for _, key := range keys {
		children := files[key]
		if b.opts.FilterEmptyDirectory && len(children) == 0 {
			continue
		}
		depth := segments(key)
		nodes = append(nodes, b.dirNode(key, dirs[key], depth-1))
		for _, f := range children {
			nodes = append(nodes, b.fileNode(f, depth))
		}
	}
	for _, f := range files[rootKey] {
		nodes = append(nodes, b.fileNode(f, 0))
	}
	for _, o := range orphans {
		n := b.fileNode(o, 0)
		n.Label = o.Path
		n.Orphan = true
		nodes = append(nodes, n)
	}
	return nodes
}

func (b treeBuilder) dirNode(key string, e *models.FileEntry, level int) models.TreeNode {
	if e == nil {
		return models.TreeNode{
			Label:     path.Base(strings.Trim(key, "/")),
			Level:     level,
			Container: true,
			Online:    true,
			Icon:      config.FolderSymbol,
		}
	}
	token := e.Token()
	selectable := b.opts.DirectoriesSelectable()
	return models.TreeNode{
		Token:      token,
		Value:      token.String(),
		Label:      e.DisplayName,
		Level:      level,
		Container:  true,
		Selectable: selectable,
		Online:     true,
		Selected:   selectable && b.selected.Contains(token),
		Icon:       config.FolderSymbol,
	}
}

func (b treeBuilder) fileNode(e models.FileEntry, level int) models.TreeNode {
	token := e.Token()
	return models.TreeNode{
		Token:      token,
		Value:      token.String(),
		Label:      e.DisplayName,
		Level:      level,
		Selectable: true,
		Online:     true,
		Selected:   b.selected.Contains(token),
		URL:        e.URL,
	}
}

func headerNode(label string) models.TreeNode {
	return models.TreeNode{
		Label:     label,
		Container: true,
		Header:    true,
		Online:    true,
		Icon:      config.FolderSymbol,
	}
}

const rootKey = "/"

// dirKey turns a directory path into its "/a/b/" key; the root is "/".
func dirKey(dir string) string {
	dir = strings.Trim(dir, "/")
	if dir == "" {
		return rootKey
	}
	return "/" + dir + "/"
}

// segments counts the path segments of a key, 0 for the root.
func segments(key string) int {
	key = strings.Trim(key, "/")
	if key == "" {
		return 0
	}
	return strings.Count(key, "/") + 1
}

// compareDirKeys orders keys segment by segment so that a directory always
// precedes its subdirectories.
func compareDirKeys(a, b string) int {
	return slices.Compare(strings.Split(strings.Trim(a, "/"), "/"), strings.Split(strings.Trim(b, "/"), "/"))
}
