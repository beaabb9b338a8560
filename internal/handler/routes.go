package handler

import "net/http"

// PublicPaths are served without authentication.
var PublicPaths = []string{"/health"}

// RegisterRoutes mounts the API on mux.
func RegisterRoutes(mux *http.ServeMux, selectors *SelectorHandler, selections *SelectionHandler) {
	mux.HandleFunc("GET /health", selectors.HealthCheck)

	mux.HandleFunc("GET /api/clients/{client}/selectors/categories", selectors.Categories)
	mux.HandleFunc("GET /api/clients/{client}/selectors/articles", selectors.Articles)
	mux.HandleFunc("GET /api/clients/{client}/selectors/content-slots", selectors.ContentSlots)
	mux.HandleFunc("GET /api/clients/{client}/selectors/files", selectors.Files)

	mux.HandleFunc("GET /api/selections/decode", selections.Decode)
}
