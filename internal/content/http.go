package content

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"StudioSite/pkg/kit"
)

// Handler serves the assembled home-page content.
func Handler(l *Loader) http.Handler {
	r := chi.NewRouter()
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		kit.WriteJSON(w, http.StatusOK, l.Load(req.Context()))
	})
	return r
}
