package users

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"medication-tracker/internal/middleware"
	"medication-tracker/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, issuer auth.TokenIssuer) {
	r.Route("/auth", func(ar chi.Router) {
		ar.Post("/signup", signupHandler(svc, issuer))
		ar.Post("/login", loginHandler(svc, issuer))
		ar.Post("/logout", logoutHandler())
	})

	r.Get("/me", meHandler(svc))
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type sessionResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      userResponse `json:"user"`
}

// signupHandler godoc
// @Summary Registro
// @Description Crea un usuario y devuelve un token de sesión (JWT HS256).
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body signupRequest true "Nombre, email y password"
// @Success 201 {object} sessionResponse
// @Failure 400 {string} string "invalid json / campos requeridos"
// @Failure 409 {string} string "email already registered"
// @Router /auth/signup [post]
func signupHandler(svc *Service, issuer auth.TokenIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req signupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		u, err := svc.Signup(r.Context(), req.Name, req.Email, req.Password)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeSession(w, http.StatusCreated, issuer, u)
	}
}

// loginHandler godoc
// @Summary Login
// @Description En modo mock cualquier email/password no vacío es válido; en modo local se verifica el password.
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body loginRequest true "Credenciales"
// @Success 200 {object} sessionResponse
// @Failure 400 {string} string "invalid json / campos requeridos"
// @Failure 401 {string} string "invalid credentials"
// @Router /auth/login [post]
func loginHandler(svc *Service, issuer auth.TokenIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		u, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeSession(w, http.StatusOK, issuer, u)
	}
}

// logoutHandler godoc
// @Summary Logout
// @Description Los tokens no tienen estado en servidor; el cliente descarta el suyo.
// @Tags auth
// @Success 204
// @Router /auth/logout [post]
func logoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}
}

// meHandler godoc
// @Summary Usuario actual
// @Tags auth
// @Produce json
// @Success 200 {object} userResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "user not found"
// @Router /me [get]
func meHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		u, err := svc.GetByID(r.Context(), claims.UserID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toUserResponse(u))
	}
}

func writeSession(w http.ResponseWriter, status int, issuer auth.TokenIssuer, u User) {
	if issuer == nil {
		http.Error(w, "token issuer not configured", http.StatusInternalServerError)
		return
	}

	token, exp, err := issuer.Issue(auth.Claims{UserID: u.ID, Email: u.Email, Name: u.Name})
	if err != nil {
		http.Error(w, "could not create token", http.StatusInternalServerError)
		return
	}

	writeJSON(w, status, sessionResponse{
		Token:     token,
		ExpiresAt: exp,
		User:      toUserResponse(u),
	})
}

func toUserResponse(u User) userResponse {
	return userResponse{ID: u.ID, Name: u.Name, Email: u.Email, CreatedAt: u.CreatedAt}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrInvalidCredentials):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, ErrEmailTaken):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
