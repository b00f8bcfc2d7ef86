// Package authz concentra los predicados de acceso por recurso.
// Los servicios los llaman antes de leer o mutar; ninguno hace I/O.
package authz

import (
	"pet-health-record/internal/platform/apperr"
	"pet-health-record/internal/ports/auth"
)

// Caller es quien hace el request. nil = anónimo.
type Caller = *auth.Claims

func Authenticated(c Caller) bool {
	return c != nil && c.UserID > 0
}

// CanListUsers: solo staff.
func CanListUsers(c Caller) bool {
	return Authenticated(c) && c.IsStaff
}

// CanViewUser: el propio usuario o staff.
func CanViewUser(c Caller, userID int64) bool {
	return Authenticated(c) && (c.IsStaff || c.UserID == userID)
}

// OwnsPet no tiene bypass de staff.
func OwnsPet(c Caller, ownerID int64) bool {
	return Authenticated(c) && c.UserID == ownerID
}

// OwnsVaccination: dueño de la mascota vacunada.
func OwnsVaccination(c Caller, petOwnerID int64) bool {
	return OwnsPet(c, petOwnerID)
}

// RequireAuthenticated devuelve ErrUnauthenticated si no hay caller.
func RequireAuthenticated(c Caller) error {
	if !Authenticated(c) {
		return apperr.ErrUnauthenticated
	}
	return nil
}
