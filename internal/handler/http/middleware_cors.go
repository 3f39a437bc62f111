package http

import (
	"net/http"

	"github.com/go-chi/cors"
)

// corsMaxAge is how long, in seconds, a browser may reuse a preflight answer.
const corsMaxAge = 300

// withCORS answers cross-origin requests from the configured origins; "*"
// allows any. Preflight requests are terminated here. An empty allow-list
// leaves responses without CORS headers.
func (h *Handler) withCORS(next http.Handler) http.Handler {
	if len(h.cfg.AllowedOrigins) == 0 {
		return next
	}

	return cors.Handler(cors.Options{
		AllowedOrigins: h.cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         corsMaxAge,
	})(next)
}
