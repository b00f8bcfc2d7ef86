package apperr

import (
	"errors"
	"sort"
	"strings"
)

// Taxonomía de errores compartida por servicios y handlers.
// Los repos envuelven ErrNotFound; httpx decide el status con errors.Is/As.
var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrUnauthenticated  = errors.New("unauthenticated")
	ErrPermissionDenied = errors.New("permission denied")
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflict")
)

// Error lleva un detalle visible para el cliente sin perder el sentinel.
type Error struct {
	kind   error
	detail string
}

func (e *Error) Error() string { return e.detail }
func (e *Error) Unwrap() error { return e.kind }

// Detail es el texto que se expone en {"detail": ...}.
func (e *Error) Detail() string { return e.detail }

func Invalid(detail string) error         { return &Error{kind: ErrInvalidInput, detail: detail} }
func Unauthenticated(detail string) error { return &Error{kind: ErrUnauthenticated, detail: detail} }
func Forbidden(detail string) error       { return &Error{kind: ErrPermissionDenied, detail: detail} }
func NotFound(detail string) error        { return &Error{kind: ErrNotFound, detail: detail} }

// FieldErrors mapea campo -> mensajes, p.ej. {"pet": ["..."]}.
type FieldErrors map[string][]string

func (f FieldErrors) Add(field, msg string) {
	f[field] = append(f[field], msg)
}

// OrNil devuelve nil si no hay errores (evita el clásico nil-interface no nil).
func (f FieldErrors) OrNil() error {
	if len(f) == 0 {
		return nil
	}
	return f
}

func (f FieldErrors) Error() string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(f[k], " "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (f FieldErrors) Unwrap() error { return ErrInvalidInput }

// Field arma un FieldErrors de un solo campo.
func Field(field, msg string) error {
	return FieldErrors{field: {msg}}
}
