// Package clientinfo reads the per client configuration the selectors need,
// mainly the filesystem root of a client's uploads.
package clientinfo

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"cmsselect/internal/domain"
)

// Info describes one CMS client.
type Info struct {
	ID        int            `yaml:"id"`
	Name      string         `yaml:"name"`
	Path      Location       `yaml:"path"`
	Upload    Location       `yaml:"upload"`
	Languages map[int]string `yaml:"languages"`
}

// Location is a filesystem directory together with the URL it is served under.
type Location struct {
	Path     string `yaml:"path"`
	HTMLPath string `yaml:"htmlpath"`
}

// UploadPath returns the absolute filesystem path of file below the upload
// directory. An empty file yields the directory itself.
func (i *Info) UploadPath(file string) string {
	return i.Upload.Path + file
}

// UploadURL returns the public URL of file below the upload directory.
func (i *Info) UploadURL(file string) string {
	return i.Upload.HTMLPath + file
}

// Locale returns the locale configured for a language id, or "".
func (i *Info) Locale(languageID int) string {
	return i.Languages[languageID]
}

type file struct {
	Clients []*Info `yaml:"clients"`
}

// Registry holds every configured client keyed by id.
type Registry struct {
	clients map[int]*Info
}

// Load reads a YAML client file.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read client file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML client configuration. Upload paths are normalized to end
// with a slash so that stored relative paths can be appended directly.
func Parse(data []byte) (*Registry, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse client file: %w", err)
	}

	r := &Registry{clients: make(map[int]*Info, len(f.Clients))}
	for _, c := range f.Clients {
		if c == nil {
			continue
		}
		if c.ID <= 0 {
			return nil, domain.NewConfigurationError("client registry", "invalid client id %d", c.ID)
		}
		if _, dup := r.clients[c.ID]; dup {
			return nil, domain.NewConfigurationError("client registry", "duplicate client id %d", c.ID)
		}
		c.Path.Path = withSlash(c.Path.Path)
		c.Upload.Path = withSlash(c.Upload.Path)
		if c.Upload.Path == "" && c.Path.Path != "" {
			c.Upload.Path = c.Path.Path + "upload/"
		}
		r.clients[c.ID] = c
	}
	return r, nil
}

// Get returns the client with the given id. Unknown clients are a
// configuration error.
func (r *Registry) Get(clientID int) (*Info, error) {
	if clientID <= 0 {
		return nil, domain.NewConfigurationError("client registry", "invalid client id %d", clientID)
	}
	info, ok := r.clients[clientID]
	if !ok {
		return nil, domain.NewConfigurationError("client registry", "could not initialize configuration for client %d", clientID)
	}
	return info, nil
}

// IDs lists the configured client ids in ascending order.
func (r *Registry) IDs() []int {
	ids := make([]int, 0, len(r.clients))
	for id := range r.clients {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func withSlash(p string) string {
	if p == "" || strings.HasSuffix(p, "/") {
		return p
	}
	return p + "/"
}
