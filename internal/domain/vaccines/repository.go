package vaccines

import (
	"context"

	"pet-health-record/internal/filtering"
)

type Repository interface {
	Create(ctx context.Context, v Vaccine) (Vaccine, error)
	GetByID(ctx context.Context, id int64) (Vaccine, error)
	List(ctx context.Context, filter ListFilter) ([]Vaccine, error)
	Update(ctx context.Context, v Vaccine) error
	// Delete borra en cascada las vacunaciones que la referencian.
	Delete(ctx context.Context, id int64) error
}

type ListFilter struct {
	Manufacturer string
	Search       []string // contra name y manufacturer
	Ordering     []filtering.OrderField
}

var (
	OrderingFields  = []string{"name", "created_at"}
	DefaultOrdering = []filtering.OrderField{{Field: "name"}}
)
