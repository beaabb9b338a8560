package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"cmsselect/internal/domain"
	"cmsselect/internal/httputil"
	"cmsselect/internal/selection"
)

// SelectionHandler decodes stored selection strings without rendering
type SelectionHandler struct {
	logger *slog.Logger
}

// NewSelectionHandler creates a new selection handler
func NewSelectionHandler(logger *slog.Logger) *SelectionHandler {
	return &SelectionHandler{logger: logger}
}

// DecodedToken is one decoded identity with its canonical encoding.
type DecodedToken struct {
	selection.Token
	Value string `json:"value"`
}

// DecodeResponse lists the tokens decoded from a selection string.
type DecodeResponse struct {
	Kind   string         `json:"kind,omitempty"`
	Tokens []DecodedToken `json:"tokens"`
}

// Decode interprets a selection string with the codec of the given kind.
// Without kind, bare numbers are dropped.
// GET /api/selections/decode?kind=&value=
func (h *SelectionHandler) Decode(w http.ResponseWriter, r *http.Request) {
	codec := selection.Universal
	resp := DecodeResponse{Tokens: []DecodedToken{}}

	if raw := r.URL.Query().Get("kind"); raw != "" {
		kind, err := selection.ParseKind(raw)
		if err != nil {
			handleError(w, r, h.logger, fmt.Errorf("%w: %v", domain.ErrValidation, err))
			return
		}
		codec = selection.CodecFor(kind)
		resp.Kind = kind.String()
	}

	for _, t := range codec.DecodeMany(r.URL.Query().Get("value")) {
		resp.Tokens = append(resp.Tokens, DecodedToken{Token: t, Value: selection.Encode(t)})
	}
	httputil.RespondJSON(w, http.StatusOK, resp)
}
