package vaccinations

import (
	"errors"
	"net/http"
	"net/url"
	"time"

	"pet-health-record/internal/filtering"
	"pet-health-record/internal/middleware"
	"pet-health-record/internal/platform/apperr"
	"pet-health-record/internal/platform/caldate"
	"pet-health-record/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/vaccinations", func(vr chi.Router) {
		vr.Post("/", createVaccinationHandler(svc))
		vr.Get("/", listVaccinationsHandler(svc))

		vr.Get("/{vaccinationID}", getVaccinationHandler(svc))
		vr.Put("/{vaccinationID}", updateVaccinationHandler(svc, false))
		vr.Patch("/{vaccinationID}", updateVaccinationHandler(svc, true))
		vr.Delete("/{vaccinationID}", deleteVaccinationHandler(svc))
	})
}

type vaccinationResponse struct {
	ID               int64         `json:"id"`
	Pet              int64         `json:"pet"`
	Vaccine          int64         `json:"vaccine"`
	ApplicationDate  caldate.Date  `json:"application_date" swaggertype:"string" example:"2024-01-01"`
	NextDueDate      *caldate.Date `json:"next_due_date" swaggertype:"string" example:"2025-01-01"`
	Notes            string        `json:"notes"`
	VeterinarianName string        `json:"veterinarian_name"`
	CreatedAt        time.Time     `json:"created_at"`
}

// createVaccinationHandler godoc
// @Summary Registrar vacunación
// @Description La mascota debe existir y ser del usuario autenticado. next_due_date se guarda tal cual llega.
// @Tags vaccinations
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer <access>"
// @Param payload body Input true "Datos de la vacunación"
// @Success 201 {object} vaccinationResponse
// @Failure 400 {object} httpx.ErrorBody "Errores por campo (pet ajeno, vacuna inexistente, fechas)"
// @Failure 401 {object} httpx.ErrorBody
// @Router /vaccinations [post]
func createVaccinationHandler(svc *Service) http.HandlerFunc {
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

		v, err := svc.Create(r.Context(), caller, req)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, toVaccinationResponse(v))
	}
}

// listVaccinationsHandler godoc
// @Summary Listar vacunaciones
// @Description Solo las de mascotas del usuario. Orden por defecto: application_date desc, luego nombre de la mascota.
// @Tags vaccinations
// @Produce json
// @Param Authorization header string true "Bearer <access>"
// @Param pet query int false "ID de mascota"
// @Param vaccine query int false "ID de vacuna"
// @Param upcoming query bool false "true: solo next_due_date >= hoy"
// @Param ordering query string false "application_date, next_due_date, created_at; prefijo - para desc"
// @Success 200 {array} vaccinationResponse
// @Failure 400 {object} httpx.ErrorBody
// @Failure 401 {object} httpx.ErrorBody
// @Router /vaccinations [get]
func listVaccinationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller := middleware.Caller(r.Context())
		if caller == nil {
			httpx.WriteError(w, r, apperr.ErrUnauthenticated)
			return
		}

		filter, err := FilterFromQuery(r.URL.Query())
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		items, err := svc.List(r.Context(), caller, filter)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		out := make([]vaccinationResponse, 0, len(items))
		for _, v := range items {
			out = append(out, toVaccinationResponse(v))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// getVaccinationHandler godoc
// @Summary Ver vacunación
// @Tags vaccinations
// @Produce json
// @Param Authorization header string true "Bearer <access>"
// @Param vaccinationID path int true "ID de la vacunación"
// @Success 200 {object} vaccinationResponse
// @Failure 401 {object} httpx.ErrorBody
// @Failure 404 {object} httpx.ErrorBody
// @Router /vaccinations/{vaccinationID} [get]
func getVaccinationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := svc.Get(r.Context(), middleware.Caller(r.Context()), httpx.PathID(r, "vaccinationID"))
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toVaccinationResponse(v))
	}
}

// updateVaccinationHandler godoc
// @Summary Actualizar vacunación
// @Description Si cambia pet, se vuelve a validar que sea del usuario.
// @Tags vaccinations
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer <access>"
// @Param vaccinationID path int true "ID de la vacunación"
// @Param payload body Input true "Campos a actualizar"
// @Success 200 {object} vaccinationResponse
// @Failure 400 {object} httpx.ErrorBody
// @Failure 401 {object} httpx.ErrorBody
// @Failure 404 {object} httpx.ErrorBody
// @Router /vaccinations/{vaccinationID} [put]
// @Router /vaccinations/{vaccinationID} [patch]
func updateVaccinationHandler(svc *Service, partial bool) http.HandlerFunc {
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

		v, err := svc.Update(r.Context(), caller, httpx.PathID(r, "vaccinationID"), req, partial)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toVaccinationResponse(v))
	}
}

// deleteVaccinationHandler godoc
// @Summary Borrar vacunación
// @Tags vaccinations
// @Param Authorization header string true "Bearer <access>"
// @Param vaccinationID path int true "ID de la vacunación"
// @Success 204
// @Failure 401 {object} httpx.ErrorBody
// @Failure 404 {object} httpx.ErrorBody
// @Router /vaccinations/{vaccinationID} [delete]
func deleteVaccinationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), middleware.Caller(r.Context()), httpx.PathID(r, "vaccinationID")); err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// FilterFromQuery lee ?pet=&vaccine=&upcoming=&ordering=. pet/vaccine no
// numéricos son 400; upcoming no reconocido se ignora.
func FilterFromQuery(q url.Values) (ListFilter, error) {
	fields := apperr.FieldErrors{}
	var filter ListFilter

	for _, f := range []struct {
		name string
		dst  **int64
	}{
		{"pet", &filter.PetID},
		{"vaccine", &filter.VaccineID},
	} {
		id, err := filtering.ParseID(f.name, q.Get(f.name))
		if err != nil {
			var fe apperr.FieldErrors
			if errors.As(err, &fe) {
				for k, msgs := range fe {
					fields[k] = append(fields[k], msgs...)
				}
				continue
			}
			return ListFilter{}, err
		}
		*f.dst = id
	}
	if err := fields.OrNil(); err != nil {
		return ListFilter{}, err
	}

	if upcoming, ok := filtering.ParseBool(q.Get("upcoming")); ok {
		filter.Upcoming = upcoming
	}
	filter.Ordering = filtering.ParseOrdering(q.Get("ordering"), OrderingFields...)
	return filter, nil
}

func toVaccinationResponse(v Vaccination) vaccinationResponse {
	return vaccinationResponse{
		ID:               v.ID,
		Pet:              v.PetID,
		Vaccine:          v.VaccineID,
		ApplicationDate:  v.ApplicationDate,
		NextDueDate:      v.NextDueDate,
		Notes:            v.Notes,
		VeterinarianName: v.VeterinarianName,
		CreatedAt:        v.CreatedAt,
	}
}
