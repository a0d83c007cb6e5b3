package brands

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"StudioSite/pkg/kit"
)

// Handler serves the hydrated list; consumers (the marquee sections)
// read it as-is.
func Handler(store *Store) http.Handler {
	r := chi.NewRouter()
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		kit.WriteJSON(w, http.StatusOK, store.Get())
	})
	return r
}
