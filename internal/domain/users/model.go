package users

import "time"

// User es el dueño de mascotas (y eventualmente staff).
// El login es por email; username existe por compatibilidad y por defecto es el email.
type User struct {
	ID       int64
	Username string
	Email    string

	PasswordHash string

	FullName    string
	PhoneNumber string

	IsStaff     bool
	IsSuperuser bool
	IsActive    bool

	DateJoined time.Time
	LastLogin  *time.Time
	CreatedAt  time.Time
}
