package handler

import (
	"log/slog"
	"net/http"

	"cmsselect/internal/domain/models"
	"cmsselect/internal/domain/services"
	"cmsselect/internal/httputil"
	"cmsselect/internal/i18n"
	"cmsselect/internal/render"
)

// SelectorHandler serves the four selectors over HTTP
type SelectorHandler struct {
	factory    services.SelectorFactory
	authorizer services.ClientAuthorizer
	translator *i18n.Translator
	logger     *slog.Logger
}

// NewSelectorHandler creates a new selector handler
func NewSelectorHandler(factory services.SelectorFactory, authorizer services.ClientAuthorizer, translator *i18n.Translator, logger *slog.Logger) *SelectorHandler {
	return &SelectorHandler{
		factory:    factory,
		authorizer: authorizer,
		translator: translator,
		logger:     logger,
	}
}

// SelectorResponse is the JSON form of a rendered selector.
type SelectorResponse struct {
	Name         string          `json:"name"`
	ValueFieldID string          `json:"value_field_id,omitempty"`
	OptionLabel  string          `json:"option_label,omitempty"`
	Listing      *models.Listing `json:"listing"`
}

// HealthCheck reports liveness
// GET /health
func (h *SelectorHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Categories renders the category tree
// GET /api/clients/{client}/selectors/categories
func (h *SelectorHandler) Categories(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, func(req *selectorRequest, opts *models.SelectorOptions) (*models.Listing, error) {
		var err error
		if opts.StartLevel, err = httputil.QueryInt(r, "start_level", 0); err != nil {
			return nil, err
		}
		if opts.WithArticles, err = httputil.QueryBool(r, "with_articles"); err != nil {
			return nil, err
		}
		if opts.DisableCategories, err = httputil.QueryBool(r, "disable_categories"); err != nil {
			return nil, err
		}

		sel, err := h.factory.Categories(req.ClientID, req.LanguageID)
		if err != nil {
			return nil, err
		}
		return sel.Render(r.Context(), req.Selected, r.URL.Query().Get("articles"), *opts)
	})
}

// Articles renders the articles of one category
// GET /api/clients/{client}/selectors/articles
func (h *SelectorHandler) Articles(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, func(req *selectorRequest, opts *models.SelectorOptions) (*models.Listing, error) {
		var err error
		if opts.IncludeOffline, err = httputil.QueryBool(r, "include_offline"); err != nil {
			return nil, err
		}

		sel, err := h.factory.Articles(req.ClientID, req.LanguageID)
		if err != nil {
			return nil, err
		}
		return sel.Render(r.Context(), r.URL.Query().Get("category"), req.Selected, *opts)
	})
}

// ContentSlots renders the content slots of the given articles
// GET /api/clients/{client}/selectors/content-slots
func (h *SelectorHandler) ContentSlots(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, func(req *selectorRequest, opts *models.SelectorOptions) (*models.Listing, error) {
		opts.TypeRange = r.URL.Query().Get("types")

		sel, err := h.factory.ContentSlots(req.ClientID, req.LanguageID)
		if err != nil {
			return nil, err
		}
		return sel.Render(r.Context(), r.URL.Query().Get("articles"), req.Selected, *opts)
	})
}

// Files renders the upload and dbfs file tree
// GET /api/clients/{client}/selectors/files
func (h *SelectorHandler) Files(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, func(req *selectorRequest, opts *models.SelectorOptions) (*models.Listing, error) {
		dirSelectable, err := httputil.QueryOptionalBool(r, "directory_selectable")
		if err != nil {
			return nil, err
		}
		opts.DirectoryIsSelectable = dirSelectable.Ptr()
		if opts.FilterEmptyDirectory, err = httputil.QueryBool(r, "filter_empty"); err != nil {
			return nil, err
		}
		opts.FileTypes = httputil.QueryList(r, "file_types")

		sel, err := h.factory.Files(req.ClientID, req.LanguageID)
		if err != nil {
			return nil, err
		}
		return sel.Render(r.Context(), r.URL.Query().Get("path"), req.Selected, *opts)
	})
}

type renderFunc func(req *selectorRequest, opts *models.SelectorOptions) (*models.Listing, error)

func (h *SelectorHandler) serve(w http.ResponseWriter, r *http.Request, fn renderFunc) {
	req, err := parseSelectorRequest(r)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	info, err := h.authorizer.CanAccessClient(httputil.GetClaims(r), req.ClientID)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	req.Field.OptionLabel = req.labelOverride
	if req.Field.OptionLabel == "" {
		tag := h.translator.Match(info.Locale(req.LanguageID), r.Header.Get("Accept-Language"))
		req.Field.OptionLabel = h.translator.Translate(tag, i18n.MsgPleaseChoose)
	}

	var opts models.SelectorOptions
	listing, err := fn(req, &opts)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	h.logger.Debug("selector rendered",
		"path", r.URL.Path,
		"client_id", req.ClientID,
		"nodes", len(listing.Nodes),
		"selected", listing.SelectedCount(),
		"request_id", httputil.GetRequestID(r),
	)

	if req.Format == FormatHTML {
		markup, err := render.String(listing, req.Field)
		if err != nil {
			handleError(w, r, h.logger, err)
			return
		}
		httputil.RespondHTML(w, http.StatusOK, markup)
		return
	}

	resp := SelectorResponse{Name: req.Field.Name, Listing: listing}
	if !req.Field.NoFirstOption {
		resp.OptionLabel = req.Field.OptionLabel
	}
	if req.Field.Multiple {
		resp.ValueFieldID = render.ValueFieldID(req.Field.Name)
	}
	httputil.RespondJSON(w, http.StatusOK, resp)
}
