package careers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"StudioSite/pkg/kit"
)

type positionsResponse struct {
	Positions   []Position `json:"positions"`
	Departments []string   `json:"departments"`
}

// Handler serves the open positions, optionally narrowed by the
// department query param.
func Handler() http.Handler {
	r := chi.NewRouter()
	r.Get("/positions", func(w http.ResponseWriter, req *http.Request) {
		all := OpenPositions()
		kit.WriteJSON(w, http.StatusOK, positionsResponse{
			Positions:   ByDepartment(all, req.URL.Query().Get("department")),
			Departments: Departments(all),
		})
	})
	return r
}
