package models

import "cmsselect/internal/selection"

// TreeNode is one candidate entry of a selector listing. Nodes live for a
// single render call.
type TreeNode struct {
	Token      selection.Token `json:"token"`
	Value      string          `json:"value"`
	Label      string          `json:"label"`
	Level      int             `json:"level"`
	Container  bool            `json:"container"`
	Selectable bool            `json:"selectable"`
	Online     bool            `json:"online"`
	Selected   bool            `json:"selected"`
	Orphan     bool            `json:"orphan,omitempty"`
	Header     bool            `json:"header,omitempty"`
	Icon       string          `json:"icon,omitempty"`
	// URL is the public address of an upload file.
	URL string `json:"url,omitempty"`
}

// Listing is the result of one render. Disabled is set when the backing store
// produced no candidate rows at all.
type Listing struct {
	Nodes    []TreeNode `json:"nodes"`
	Disabled bool       `json:"disabled"`
}

// SelectedCount returns the number of selected nodes.
func (l *Listing) SelectedCount() int {
	n := 0
	for _, node := range l.Nodes {
		if node.Selected {
			n++
		}
	}
	return n
}

// FileSource names the store a FileEntry was read from.
type FileSource int

const (
	SourceUpload FileSource = iota + 1
	SourceDbfs
)

func (s FileSource) String() string {
	switch s {
	case SourceUpload:
		return "upload"
	case SourceDbfs:
		return "dbfs"
	default:
		return "unknown"
	}
}

// FileEntry is the unified shape of an upload or dbfs row before it becomes a
// TreeNode. DirKey is the "/a/b/" form of the directory the entry belongs to,
// or of the directory it is. Path is the slash-trimmed path, "" for root.
type FileEntry struct {
	Source      FileSource
	RawID       int
	DirKey      string
	FileName    string
	DisplayName string
	Path        string
	Extension   string
	URL         string
	IsDir       bool
	IsFile      bool
}

// Orphan reports an entry that is neither a directory nor a file on the
// backing medium.
func (e *FileEntry) Orphan() bool {
	return !e.IsDir && !e.IsFile
}

// Token returns the selection identity of the entry.
func (e *FileEntry) Token() selection.Token {
	if e.Source == SourceDbfs {
		return selection.DbfsFile(e.RawID)
	}
	return selection.UploadFile(e.RawID)
}
