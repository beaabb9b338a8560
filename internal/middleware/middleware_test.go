package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"cmsselect/internal/domain"
	"cmsselect/internal/domain/models"
	"cmsselect/internal/httputil"
)

type stubVerifier struct {
	claims *models.AdminClaims
	err    error
}

func (s stubVerifier) VerifyToken(string) (*models.AdminClaims, error) { return s.claims, s.err }
func (s stubVerifier) Close() error                                    { return nil }

func TestAuthMiddleware(t *testing.T) {
	var seen *models.AdminClaims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = httputil.GetClaims(r)
		w.WriteHeader(http.StatusNoContent)
	})

	claims := &models.AdminClaims{Role: "admin"}
	tests := []struct {
		name     string
		verifier stubVerifier
		path     string
		header   string
		want     int
		claims   *models.AdminClaims
	}{
		{name: "valid token", verifier: stubVerifier{claims: claims}, path: "/api/x", header: "Bearer abc", want: http.StatusNoContent, claims: claims},
		{name: "missing header", verifier: stubVerifier{claims: claims}, path: "/api/x", want: http.StatusUnauthorized},
		{name: "wrong scheme", verifier: stubVerifier{claims: claims}, path: "/api/x", header: "Basic abc", want: http.StatusUnauthorized},
		{name: "invalid token", verifier: stubVerifier{err: domain.ErrUnauthorized}, path: "/api/x", header: "Bearer abc", want: http.StatusUnauthorized},
		{name: "forbidden role", verifier: stubVerifier{err: domain.ErrForbidden}, path: "/api/x", header: "Bearer abc", want: http.StatusForbidden},
		{name: "public path", verifier: stubVerifier{err: domain.ErrUnauthorized}, path: "/health", want: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = nil
			h := AuthMiddleware(tt.verifier, "/health")(next)
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
			assert.Equal(t, tt.claims, seen)
		})
	}
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = httputil.GetRequestID(r)
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	_, err := uuid.Parse(seen)
	assert.NoError(t, err)
	assert.Equal(t, seen, w.Header().Get(RequestIDHeader))

	incoming := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, incoming)
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, incoming, seen)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "<script>")
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.NotEqual(t, "<script>", seen)
}

func TestRecovery(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := Recovery(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
