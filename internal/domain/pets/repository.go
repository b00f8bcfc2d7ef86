package pets

import (
	"context"

	"pet-health-record/internal/filtering"
)

type Repository interface {
	// Create asigna ID y devuelve la mascota guardada.
	Create(ctx context.Context, p Pet) (Pet, error)
	GetByID(ctx context.Context, id int64) (Pet, error)
	ListByOwner(ctx context.Context, ownerID int64, filter ListFilter) ([]Pet, error)
	Update(ctx context.Context, p Pet) error
	// Delete borra en cascada las vacunaciones de la mascota.
	Delete(ctx context.Context, id int64) error
}

// ListFilter: todos los criterios se combinan con AND. Vacío = sin filtro.
type ListFilter struct {
	Species  Species
	Breed    string
	Search   []string // contra name y breed
	Ordering []filtering.OrderField
}

var (
	OrderingFields  = []string{"name", "created_at"}
	DefaultOrdering = []filtering.OrderField{{Field: "name"}}
)
