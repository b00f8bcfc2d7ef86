package users

import (
	"context"
	"errors"
	"time"
)

// ErrEmailTaken lo devuelven los repos ante un email duplicado.
var ErrEmailTaken = errors.New("email already registered")

type Repository interface {
	// Create asigna ID y created_at.
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	// List ordena por id.
	List(ctx context.Context) ([]User, error)
	UpdateLastLogin(ctx context.Context, id int64, at time.Time) error
	// Delete borra en cascada mascotas y vacunaciones.
	Delete(ctx context.Context, id int64) error
}
