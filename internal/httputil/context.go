package httputil

import (
	"context"
	"net/http"

	"cmsselect/internal/domain/models"
)

// Context key type to avoid collisions
type contextKey string

const (
	claimsKey    contextKey = "claims"
	requestIDKey contextKey = "requestID"
)

// WithClaims adds the verified token claims to the request context
func WithClaims(r *http.Request, claims *models.AdminClaims) *http.Request {
	ctx := context.WithValue(r.Context(), claimsKey, claims)
	return r.WithContext(ctx)
}

// GetClaims retrieves the token claims, nil when the request is unauthenticated
func GetClaims(r *http.Request) *models.AdminClaims {
	claims, _ := r.Context().Value(claimsKey).(*models.AdminClaims)
	return claims
}

// WithRequestID adds the request id to the request context
func WithRequestID(r *http.Request, id string) *http.Request {
	ctx := context.WithValue(r.Context(), requestIDKey, id)
	return r.WithContext(ctx)
}

// GetRequestID returns the request id, empty string if not set
func GetRequestID(r *http.Request) string {
	id, _ := r.Context().Value(requestIDKey).(string)
	return id
}
