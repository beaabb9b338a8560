package httputil

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"cmsselect/internal/domain"
)

// QueryInt reads an integer query parameter. Missing or empty parameters
// yield def.
func QueryInt(r *http.Request, name string, def int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", domain.ErrValidation, name)
	}
	return n, nil
}

// QueryBool reads a boolean query parameter ("1", "true", "on", ...).
// Missing parameters yield false.
func QueryBool(r *http.Request, name string) (bool, error) {
	opt, err := QueryOptionalBool(r, name)
	if err != nil {
		return false, err
	}
	return opt.Or(false), nil
}

// QueryOptionalBool reads a boolean query parameter keeping track of whether
// it was sent at all.
func QueryOptionalBool(r *http.Request, name string) (OptionalBool, error) {
	q := r.URL.Query()
	if !q.Has(name) {
		return OptionalBool{}, nil
	}
	var opt OptionalBool
	if err := opt.UnmarshalText([]byte(q.Get(name))); err != nil {
		return OptionalBool{}, fmt.Errorf("%w: %s: %v", domain.ErrValidation, name, err)
	}
	return opt, nil
}

// QueryList splits a comma separated query parameter. Parameters given more
// than once are concatenated. Empty items are dropped.
func QueryList(r *http.Request, name string) []string {
	var out []string
	for _, raw := range r.URL.Query()[name] {
		for _, item := range strings.Split(raw, ",") {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
	}
	return out
}
