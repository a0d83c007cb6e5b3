package kit

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RoutePattern prefers the chi route template over the raw path.
func RoutePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if rp := rctx.RoutePattern(); rp != "" {
			return rp
		}
	}
	return r.URL.Path
}
