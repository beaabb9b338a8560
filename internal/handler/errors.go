package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"cmsselect/internal/domain"
	"cmsselect/internal/httputil"
)

// handleError converts domain errors to HTTP responses
func handleError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	var configErr *domain.ConfigurationError
	extras := map[string]any{}
	if id := httputil.GetRequestID(r); id != "" {
		extras["request_id"] = id
	}

	switch {
	case errors.Is(err, domain.ErrValidation):
		httputil.RespondErrorWithExtras(w, http.StatusBadRequest, err.Error(), extras)
	case errors.Is(err, domain.ErrNotFound):
		httputil.RespondErrorWithExtras(w, http.StatusNotFound, err.Error(), extras)
	case errors.Is(err, domain.ErrUnauthorized):
		httputil.RespondErrorWithExtras(w, http.StatusUnauthorized, err.Error(), extras)
	case errors.Is(err, domain.ErrForbidden):
		httputil.RespondErrorWithExtras(w, http.StatusForbidden, err.Error(), extras)
	case errors.As(err, &configErr):
		logger.Error("selector misconfigured", "error", err, "path", r.URL.Path, "request_id", extras["request_id"])
		httputil.RespondErrorWithExtras(w, configErr.StatusCode(), configErr.Error(), extras)
	default:
		logger.Error("request failed", "error", err, "path", r.URL.Path, "request_id", extras["request_id"])
		httputil.RespondErrorWithExtras(w, http.StatusInternalServerError, "internal server error", extras)
	}
}
