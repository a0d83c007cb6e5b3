package contact

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"StudioSite/pkg/kit"
)

type Server struct {
	Store    Store
	Log      *zap.Logger
	validate *validator.Validate
}

func NewServer(store Store, log *zap.Logger) *Server {
	return &Server{
		Store:    store,
		Log:      log,
		validate: validator.New(),
	}
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Post("/", s.submit)
	return r
}

func (s *Server) submit(w http.ResponseWriter, r *http.Request) {
	var in Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "invalid json", nil)
		return
	}

	if err := s.validate.Struct(in); err != nil {
		details := map[string]string{}
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				details[fe.Field()] = fe.Tag()
			}
		}
		kit.WriteError(w, r, http.StatusBadRequest, "validation failed", details)
		return
	}

	sub := Submission{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		Subject:   in.Subject,
		Message:   in.Message,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.Store.Create(r.Context(), sub); err != nil {
		s.Log.Error("store submission failed", zap.Error(err))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	kit.WriteJSON(w, http.StatusCreated, map[string]string{"id": sub.ID})
}
