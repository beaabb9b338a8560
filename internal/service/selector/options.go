// Package selector builds the option listings of the CMS selection controls:
// the category tree, category articles, content slots and the upload tree.
package selector

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gobwas/glob"

	"cmsselect/internal/domain"
	"cmsselect/internal/domain/models"
)

// Options configures one render call.
type Options = models.SelectorOptions

var typeRangePattern = regexp.MustCompile(`^[0-9]+(\s*,\s*[0-9]+)*$`)

// validateOptions checks opts before any query runs.
func validateOptions(opts Options) error {
	err := validation.ValidateStruct(&opts,
		validation.Field(&opts.StartLevel, validation.Min(0)),
		validation.Field(&opts.TypeRange,
			validation.Match(typeRangePattern).Error("must be a comma separated list of type ids"),
		),
		validation.Field(&opts.FileTypes, validation.Each(
			validation.Required,
			validation.Length(1, 32),
			validation.By(compilesAsGlob),
		)),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	return nil
}

func compilesAsGlob(value any) error {
	s, _ := value.(string)
	if _, err := glob.Compile(normalizeType(s)); err != nil {
		return fmt.Errorf("invalid file type pattern")
	}
	return nil
}

func normalizeType(t string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(t), "."))
}

// typeMatcher filters file rows by extension.
type typeMatcher struct {
	globs []glob.Glob
}

func newTypeMatcher(types []string) (*typeMatcher, error) {
	m := &typeMatcher{}
	for _, t := range types {
		t = normalizeType(t)
		if t == "" {
			continue
		}
		g, err := glob.Compile(t)
		if err != nil {
			return nil, fmt.Errorf("%w: file type %q: %v", domain.ErrValidation, t, err)
		}
		m.globs = append(m.globs, g)
	}
	return m, nil
}

// Match reports whether ext passes. An unknown (empty) extension always does.
func (m *typeMatcher) Match(ext string) bool {
	if len(m.globs) == 0 || ext == "" {
		return true
	}
	ext = strings.ToLower(ext)
	for _, g := range m.globs {
		if g.Match(ext) {
			return true
		}
	}
	return false
}

// urlDecode decodes stored CMS names the way they were encoded on write.
// Undecodable values are returned as is.
func urlDecode(s string) string {
	decoded, err := url.QueryUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}
