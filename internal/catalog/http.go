package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"StudioSite/pkg/kit"
)

// Server exposes the store listing over HTTP. Filtering happens here,
// per request, over the canonical list; the stores never filter.
type Server struct {
	Store Store
	Log   *zap.Logger
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/", s.list)
	r.Get("/facets", s.facets)
	r.Get("/{id}", s.get)

	return r
}

type listResponse struct {
	Games []Game `json:"games"`
	Count int    `json:"count"`
	Total int    `json:"total"`
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	games, err := s.Store.List(r.Context())
	if err != nil {
		s.Log.Error("list games failed", zap.Error(err))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	q := r.URL.Query()
	state := FilterState{
		Query:    q.Get("q"),
		Genre:    q.Get("genre"),
		Platform: q.Get("platform"),
	}

	filtered := Filter(games, state)
	kit.WriteJSON(w, http.StatusOK, listResponse{
		Games: filtered,
		Count: len(filtered),
		Total: len(games),
	})
}

type facetsResponse struct {
	Genres    []string `json:"genres"`
	Platforms []string `json:"platforms"`
}

func (s *Server) facets(w http.ResponseWriter, r *http.Request) {
	games, err := s.Store.List(r.Context())
	if err != nil {
		s.Log.Error("list games failed", zap.Error(err))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	kit.WriteJSON(w, http.StatusOK, facetsResponse{
		Genres:    Genres(games),
		Platforms: Platforms(games),
	})
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	g, ok, err := s.Store.Get(r.Context(), id)
	if err != nil {
		s.Log.Error("get game failed", zap.Error(err), zap.String("id", id))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "not found", map[string]any{"id": id})
		return
	}
	kit.WriteJSON(w, http.StatusOK, g)
}
