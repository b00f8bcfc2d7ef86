package vaccines

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"pet-health-record/internal/filtering"
	"pet-health-record/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/vaccines", func(vr chi.Router) {
		vr.Post("/", createVaccineHandler(svc))
		vr.Get("/", listVaccinesHandler(svc))

		vr.Get("/{vaccineID}", getVaccineHandler(svc))
		vr.Put("/{vaccineID}", updateVaccineHandler(svc, false))
		vr.Patch("/{vaccineID}", updateVaccineHandler(svc, true))
		vr.Delete("/{vaccineID}", deleteVaccineHandler(svc))
	})
}

type vaccineResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Manufacturer    string    `json:"manufacturer"`
	Description     string    `json:"description"`
	PeriodicityDays int       `json:"periodicity_days"`
	CreatedAt       time.Time `json:"created_at"`
}

// createVaccineHandler godoc
// @Summary Crear vacuna
// @Description Catálogo global, sin restricciones de acceso.
// @Tags vaccines
// @Accept json
// @Produce json
// @Param payload body Input true "Datos de la vacuna"
// @Success 201 {object} vaccineResponse
// @Failure 400 {object} httpx.ErrorBody
// @Router /vaccines [post]
func createVaccineHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req Input
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		v, err := svc.Create(r.Context(), req)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, toVaccineResponse(v))
	}
}

// listVaccinesHandler godoc
// @Summary Listar vacunas
// @Tags vaccines
// @Produce json
// @Param manufacturer query string false "Fabricante exacto"
// @Param search query string false "Términos contra nombre y fabricante (AND)"
// @Param ordering query string false "name, created_at; prefijo - para desc"
// @Success 200 {array} vaccineResponse
// @Router /vaccines [get]
func listVaccinesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), FilterFromQuery(r.URL.Query()))
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		out := make([]vaccineResponse, 0, len(items))
		for _, v := range items {
			out = append(out, toVaccineResponse(v))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// getVaccineHandler godoc
// @Summary Ver vacuna
// @Tags vaccines
// @Produce json
// @Param vaccineID path int true "ID de la vacuna"
// @Success 200 {object} vaccineResponse
// @Failure 404 {object} httpx.ErrorBody
// @Router /vaccines/{vaccineID} [get]
func getVaccineHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := svc.Get(r.Context(), httpx.PathID(r, "vaccineID"))
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toVaccineResponse(v))
	}
}

// updateVaccineHandler godoc
// @Summary Actualizar vacuna
// @Description PUT exige name y periodicity_days; PATCH solo los campos enviados.
// @Tags vaccines
// @Accept json
// @Produce json
// @Param vaccineID path int true "ID de la vacuna"
// @Param payload body Input true "Campos a actualizar"
// @Success 200 {object} vaccineResponse
// @Failure 400 {object} httpx.ErrorBody
// @Failure 404 {object} httpx.ErrorBody
// @Router /vaccines/{vaccineID} [put]
// @Router /vaccines/{vaccineID} [patch]
func updateVaccineHandler(svc *Service, partial bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req Input
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		v, err := svc.Update(r.Context(), httpx.PathID(r, "vaccineID"), req, partial)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toVaccineResponse(v))
	}
}

// deleteVaccineHandler godoc
// @Summary Borrar vacuna
// @Description Borra también las vacunaciones que la usan.
// @Tags vaccines
// @Param vaccineID path int true "ID de la vacuna"
// @Success 204
// @Failure 404 {object} httpx.ErrorBody
// @Router /vaccines/{vaccineID} [delete]
func deleteVaccineHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), httpx.PathID(r, "vaccineID")); err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func FilterFromQuery(q url.Values) ListFilter {
	return ListFilter{
		Manufacturer: strings.TrimSpace(q.Get("manufacturer")),
		Search:       filtering.SearchTerms(q.Get("search")),
		Ordering:     filtering.ParseOrdering(q.Get("ordering"), OrderingFields...),
	}
}

func toVaccineResponse(v Vaccine) vaccineResponse {
	return vaccineResponse{
		ID:              v.ID,
		Name:            v.Name,
		Manufacturer:    v.Manufacturer,
		Description:     v.Description,
		PeriodicityDays: v.PeriodicityDays,
		CreatedAt:       v.CreatedAt,
	}
}
