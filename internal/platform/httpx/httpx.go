package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"pet-health-record/internal/platform/apperr"
	"pet-health-record/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// Antes writeJSON estaba duplicado en cada handler; con cuatro módulos ya
// conviene tenerlo en un solo lugar.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

// ErrorBody es el envelope de error: {"detail": string | {campo: [mensajes]}}.
type ErrorBody struct {
	Detail any `json:"detail"`
}

const (
	detailUnauthenticated = "Authentication credentials were not provided."
	detailForbidden       = "You do not have permission to perform this action."
	detailNotFound        = "Not found."
	detailInternal        = "Internal server error."
)

// StatusFor traduce un error de dominio a status + detail.
func StatusFor(err error) (int, any) {
	var fields apperr.FieldErrors
	if errors.As(err, &fields) {
		return http.StatusBadRequest, map[string][]string(fields)
	}

	switch {
	case errors.Is(err, apperr.ErrInvalidInput), errors.Is(err, apperr.ErrConflict):
		return http.StatusBadRequest, detailOr(err, "Invalid input.")
	case errors.Is(err, apperr.ErrUnauthenticated):
		return http.StatusUnauthorized, detailOr(err, detailUnauthenticated)
	case errors.Is(err, apperr.ErrPermissionDenied):
		return http.StatusForbidden, detailOr(err, detailForbidden)
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound, detailOr(err, detailNotFound)
	default:
		return http.StatusInternalServerError, detailInternal
	}
}

// WriteError escribe el envelope; los 500 se loguean y no exponen detalle.
// Usa el logger del request (middleware.RequestLog) si hay uno.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, detail := StatusFor(err)

	l := logger.FromContext(r.Context(), nil)
	if status >= http.StatusInternalServerError {
		l.Error("request failed", map[string]any{
			"method": r.Method,
			"path":   r.URL.Path,
			"error":  err,
		})
	} else {
		l.Debug("request rejected", map[string]any{
			"status": status,
			"error":  err,
		})
	}

	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", `Bearer realm="api"`)
	}
	WriteJSON(w, status, ErrorBody{Detail: detail})
}

func detailOr(err error, fallback string) string {
	var e *apperr.Error
	if errors.As(err, &e) && strings.TrimSpace(e.Detail()) != "" {
		return e.Detail()
	}
	return fallback
}

// DecodeJSON decodifica el body; campos desconocidos se ignoran (p.ej. owner).
func DecodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return apperr.Invalid("JSON parse error - empty body")
	}
	dec := json.NewDecoder(io.LimitReader(r.Body, 1<<20))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return apperr.Invalid("JSON parse error - empty body")
		}
		return apperr.Invalid(fmt.Sprintf("JSON parse error - %v", err))
	}
	return nil
}

// PathID lee un id numérico de la ruta. Un id inválido devuelve 0, que
// ningún repo encuentra: el servicio responde 404 después de chequear auth.
func PathID(r *http.Request, name string) int64 {
	id, err := strconv.ParseInt(strings.TrimSpace(chi.URLParam(r, name)), 10, 64)
	if err != nil || id <= 0 {
		return 0
	}
	return id
}
