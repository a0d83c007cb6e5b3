package admin

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"StudioSite/internal/brands"
	"StudioSite/pkg/kit"
)

const tokenTTL = 1 * time.Hour

type Server struct {
	Creds  Credentials
	JWT    *TokenMaker
	Brands *brands.Store
	Log    *zap.Logger
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Post("/login", s.login)

	r.Group(func(pr chi.Router) {
		pr.Use(RequireToken(s.JWT))
		pr.Put("/brands", s.updateBrands)
	})

	return r
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "invalid json", nil)
		return
	}

	if err := s.Creds.Verify(req.Email, req.Password); err != nil {
		s.Log.Warn("admin login rejected", zap.String("email", req.Email))
		kit.WriteError(w, r, http.StatusUnauthorized, "invalid credentials", nil)
		return
	}

	token, err := s.JWT.New(req.Email, tokenTTL)
	if err != nil {
		s.Log.Error("sign token failed", zap.Error(err))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	kit.WriteJSON(w, http.StatusOK, loginResponse{
		AccessToken: token,
		ExpiresIn:   int64(tokenTTL.Seconds()),
	})
}

// updateBrands replaces the hydrated featured-brands list wholesale,
// the only mutation the hydration store defines.
func (s *Server) updateBrands(w http.ResponseWriter, r *http.Request) {
	var list []brands.Brand
	if err := json.NewDecoder(r.Body).Decode(&list); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "invalid json", nil)
		return
	}

	s.Brands.Set(list)
	s.Log.Info("brands replaced", zap.Int("count", len(list)))
	w.WriteHeader(http.StatusNoContent)
}

// RequireToken rejects requests without a valid operator bearer token.
func RequireToken(jwt *TokenMaker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authz := r.Header.Get("Authorization")
			raw, ok := strings.CutPrefix(authz, "Bearer ")
			if !ok {
				kit.WriteError(w, r, http.StatusUnauthorized, "missing token", nil)
				return
			}

			if _, err := jwt.Parse(raw); err != nil {
				kit.WriteError(w, r, http.StatusUnauthorized, "invalid token", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
