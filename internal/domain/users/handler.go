package users

import (
	"net/http"
	"time"

	"pet-health-record/internal/middleware"
	"pet-health-record/internal/platform/httpx"
	"pet-health-record/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/auth", func(ar chi.Router) {
		ar.Post("/register", registerHandler(svc))
		ar.Post("/login", loginHandler(svc))
		ar.Post("/refresh", refreshHandler(svc))
		ar.Post("/logout", logoutHandler(svc))
	})

	r.Route("/users", func(ur chi.Router) {
		ur.Get("/", listUsersHandler(svc))
		ur.Get("/{userID}", getUserHandler(svc))
	})
}

type userResponse struct {
	ID          int64     `json:"id"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	CreatedAt   time.Time `json:"created_at"`
}

type registerResponse struct {
	userResponse
	Tokens auth.TokenPair `json:"tokens"`
}

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

type accessResponse struct {
	Access string `json:"access"`
}

// registerHandler godoc
// @Summary Registrar usuario
// @Description Crea un dueño de mascotas (nunca staff) y devuelve sus datos con un par de tokens JWT.
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body RegisterInput true "Datos de registro"
// @Success 201 {object} registerResponse
// @Failure 400 {object} httpx.ErrorBody "Errores por campo (email duplicado, password débil, etc)"
// @Router /auth/register [post]
func registerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterInput
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		u, pair, err := svc.Register(r.Context(), req)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, registerResponse{
			userResponse: toUserResponse(u),
			Tokens:       pair,
		})
	}
}

// loginHandler godoc
// @Summary Login
// @Description Intercambia email y password por un par refresh/access.
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body LoginInput true "Credenciales"
// @Success 200 {object} auth.TokenPair
// @Failure 400 {object} httpx.ErrorBody
// @Failure 401 {object} httpx.ErrorBody "No active account found with the given credentials"
// @Router /auth/login [post]
func loginHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginInput
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		pair, err := svc.Authenticate(r.Context(), req)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, pair)
	}
}

// refreshHandler godoc
// @Summary Refrescar access token
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body refreshRequest true "Refresh token"
// @Success 200 {object} accessResponse
// @Failure 401 {object} httpx.ErrorBody "Token is invalid or expired"
// @Router /auth/refresh [post]
func refreshHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req refreshRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		access, err := svc.Refresh(r.Context(), req.Refresh)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, accessResponse{Access: access})
	}
}

// logoutHandler godoc
// @Summary Logout
// @Description Revoca el refresh token (blacklist) hasta su expiración.
// @Tags auth
// @Accept json
// @Param payload body refreshRequest true "Refresh token"
// @Success 205
// @Failure 401 {object} httpx.ErrorBody
// @Router /auth/logout [post]
func logoutHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req refreshRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		if err := svc.Logout(r.Context(), req.Refresh); err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusResetContent)
	}
}

// listUsersHandler godoc
// @Summary Listar usuarios
// @Description Solo staff.
// @Tags users
// @Produce json
// @Param Authorization header string true "Bearer <access>"
// @Success 200 {array} userResponse
// @Failure 401 {object} httpx.ErrorBody
// @Failure 403 {object} httpx.ErrorBody
// @Router /users [get]
func listUsersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), middleware.Caller(r.Context()))
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		out := make([]userResponse, 0, len(items))
		for _, u := range items {
			out = append(out, toUserResponse(u))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// getUserHandler godoc
// @Summary Ver usuario
// @Description El propio usuario o staff.
// @Tags users
// @Produce json
// @Param Authorization header string true "Bearer <access>"
// @Param userID path int true "ID del usuario"
// @Success 200 {object} userResponse
// @Failure 401 {object} httpx.ErrorBody
// @Failure 403 {object} httpx.ErrorBody
// @Failure 404 {object} httpx.ErrorBody
// @Router /users/{userID} [get]
func getUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httpx.PathID(r, "userID")

		u, err := svc.Get(r.Context(), middleware.Caller(r.Context()), id)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toUserResponse(u))
	}
}

func toUserResponse(u User) userResponse {
	return userResponse{
		ID:          u.ID,
		FullName:    u.FullName,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		CreatedAt:   u.CreatedAt,
	}
}
