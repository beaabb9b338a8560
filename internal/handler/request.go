package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"cmsselect/internal/domain"
	"cmsselect/internal/httputil"
	"cmsselect/internal/module"
	"cmsselect/internal/render"
)

// Output formats of the selector endpoints.
const (
	FormatJSON = "json"
	FormatHTML = "html"
)

// DefaultFieldName names the control when neither name nor container/index is given.
const DefaultFieldName = "selection"

// selectorRequest holds the parameters shared by every selector endpoint.
type selectorRequest struct {
	ClientID   int
	LanguageID int
	Selected   string
	Format     string
	Field      render.Field
	// labelOverride is the caller supplied first option text, "" if absent.
	labelOverride string
}

func parseSelectorRequest(r *http.Request) (*selectorRequest, error) {
	clientID, err := strconv.Atoi(r.PathValue("client"))
	if err != nil || clientID <= 0 {
		return nil, fmt.Errorf("%w: client must be a positive integer", domain.ErrValidation)
	}

	req := &selectorRequest{ClientID: clientID, Selected: r.URL.Query().Get("selected")}

	if req.LanguageID, err = httputil.QueryInt(r, "lang", 1); err != nil {
		return nil, err
	}
	if req.LanguageID <= 0 {
		return nil, fmt.Errorf("%w: lang must be a positive integer", domain.ErrValidation)
	}

	req.Format = r.URL.Query().Get("format")
	switch req.Format {
	case "":
		req.Format = FormatJSON
	case FormatJSON, FormatHTML:
	default:
		return nil, fmt.Errorf("%w: unknown format %q", domain.ErrValidation, req.Format)
	}

	name, err := fieldName(r)
	if err != nil {
		return nil, err
	}
	req.Field.Name = name
	req.Field.ID = r.URL.Query().Get("id")
	if req.Field.Multiple, err = httputil.QueryBool(r, "multiple"); err != nil {
		return nil, err
	}
	if req.Field.Size, err = httputil.QueryInt(r, "size", 0); err != nil {
		return nil, err
	}
	if req.Field.NoFirstOption, err = httputil.QueryBool(r, "no_first_option"); err != nil {
		return nil, err
	}
	req.labelOverride = r.URL.Query().Get("label")

	return req, nil
}

// fieldName resolves the control name. container and index produce the
// module token name "C<container>CMS_VAR[<index>]".
func fieldName(r *http.Request) (string, error) {
	q := r.URL.Query()
	if q.Has("container") || q.Has("index") {
		container, err := httputil.QueryInt(r, "container", -1)
		if err != nil {
			return "", err
		}
		index, err := httputil.QueryInt(r, "index", -1)
		if err != nil {
			return "", err
		}
		if container < 0 || index < 0 {
			return "", fmt.Errorf("%w: container and index must both be given", domain.ErrValidation)
		}
		return module.NewToken(container, index, nil).Var(), nil
	}
	if name := q.Get("name"); name != "" {
		return name, nil
	}
	return DefaultFieldName, nil
}
