package pets

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"pet-health-record/internal/filtering"
	"pet-health-record/internal/middleware"
	"pet-health-record/internal/platform/apperr"
	"pet-health-record/internal/platform/caldate"
	"pet-health-record/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Post("/", createPetHandler(svc))
		pr.Get("/", listPetsHandler(svc))

		pr.Get("/{petID}", getPetHandler(svc))
		pr.Put("/{petID}", updatePetHandler(svc, false))
		pr.Patch("/{petID}", updatePetHandler(svc, true))
		pr.Delete("/{petID}", deletePetHandler(svc))
	})
}

type petResponse struct {
	ID        int64         `json:"id"`
	Name      string        `json:"name"`
	Species   Species       `json:"species"`
	Breed     string        `json:"breed"`
	BirthDate *caldate.Date `json:"birth_date" swaggertype:"string" example:"2023-05-01"`
	Weight    *Weight       `json:"weight" swaggertype:"string" example:"30.50"`
	OwnerID   int64         `json:"owner_id"`
	CreatedAt time.Time     `json:"created_at"`
}

// createPetHandler godoc
// @Summary Crear mascota
// @Description El owner siempre es el usuario autenticado; owner/owner_id en el body se ignoran.
// @Tags pets
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer <access>"
// @Param payload body Input true "Datos de la mascota"
// @Success 201 {object} petResponse
// @Failure 400 {object} httpx.ErrorBody
// @Failure 401 {object} httpx.ErrorBody
// @Router /pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller := middleware.Caller(r.Context())
		if caller == nil {
			httpx.WriteError(w, r, apperr.ErrUnauthenticated)
			return
		}

		var req Input
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		p, err := svc.Create(r.Context(), caller, req)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

// listPetsHandler godoc
// @Summary Listar mis mascotas
// @Tags pets
// @Produce json
// @Param Authorization header string true "Bearer <access>"
// @Param species query string false "dog, cat u other"
// @Param breed query string false "Raza exacta"
// @Param search query string false "Términos contra nombre y raza (AND)"
// @Param ordering query string false "name, created_at; prefijo - para desc"
// @Success 200 {array} petResponse
// @Failure 400 {object} httpx.ErrorBody
// @Failure 401 {object} httpx.ErrorBody
// @Router /pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), middleware.Caller(r.Context()), FilterFromQuery(r.URL.Query()))
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// getPetHandler godoc
// @Summary Ver mascota
// @Description 404 si no existe o si es de otro usuario.
// @Tags pets
// @Produce json
// @Param Authorization header string true "Bearer <access>"
// @Param petID path int true "ID de la mascota"
// @Success 200 {object} petResponse
// @Failure 401 {object} httpx.ErrorBody
// @Failure 404 {object} httpx.ErrorBody
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.Get(r.Context(), middleware.Caller(r.Context()), httpx.PathID(r, "petID"))
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// updatePetHandler godoc
// @Summary Actualizar mascota
// @Description PUT exige name y species; PATCH solo toca los campos enviados. birth_date/weight en null los limpia.
// @Tags pets
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer <access>"
// @Param petID path int true "ID de la mascota"
// @Param payload body Input true "Campos a actualizar"
// @Success 200 {object} petResponse
// @Failure 400 {object} httpx.ErrorBody
// @Failure 401 {object} httpx.ErrorBody
// @Failure 404 {object} httpx.ErrorBody
// @Router /pets/{petID} [put]
// @Router /pets/{petID} [patch]
func updatePetHandler(svc *Service, partial bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller := middleware.Caller(r.Context())
		if caller == nil {
			httpx.WriteError(w, r, apperr.ErrUnauthenticated)
			return
		}

		var req Input
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		p, err := svc.Update(r.Context(), caller, httpx.PathID(r, "petID"), req, partial)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// deletePetHandler godoc
// @Summary Borrar mascota
// @Description Borra también sus vacunaciones.
// @Tags pets
// @Param Authorization header string true "Bearer <access>"
// @Param petID path int true "ID de la mascota"
// @Success 204
// @Failure 401 {object} httpx.ErrorBody
// @Failure 404 {object} httpx.ErrorBody
// @Router /pets/{petID} [delete]
func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), middleware.Caller(r.Context()), httpx.PathID(r, "petID")); err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// FilterFromQuery arma el filtro desde ?species=&breed=&search=&ordering=.
func FilterFromQuery(q url.Values) ListFilter {
	return ListFilter{
		Species:  Species(strings.TrimSpace(q.Get("species"))),
		Breed:    strings.TrimSpace(q.Get("breed")),
		Search:   filtering.SearchTerms(q.Get("search")),
		Ordering: filtering.ParseOrdering(q.Get("ordering"), OrderingFields...),
	}
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:        p.ID,
		Name:      p.Name,
		Species:   p.Species,
		Breed:     p.Breed,
		BirthDate: p.BirthDate,
		Weight:    p.Weight,
		OwnerID:   p.OwnerID,
		CreatedAt: p.CreatedAt,
	}
}
