package vaccinations

import (
	"context"

	"pet-health-record/internal/filtering"
	"pet-health-record/internal/platform/caldate"
)

type Repository interface {
	Create(ctx context.Context, v Vaccination) (Vaccination, error)
	GetByID(ctx context.Context, id int64) (Vaccination, error)
	// ListByOwner solo devuelve vacunaciones de mascotas de ownerID.
	ListByOwner(ctx context.Context, ownerID int64, filter ListFilter) ([]Vaccination, error)
	Update(ctx context.Context, v Vaccination) error
	Delete(ctx context.Context, id int64) error
}

type ListFilter struct {
	PetID     *int64
	VaccineID *int64

	// Upcoming lo setea el handler; el servicio lo traduce a DueOnOrAfter
	// con la fecha de hoy.
	Upcoming     bool
	DueOnOrAfter *caldate.Date

	Ordering []filtering.OrderField
}

// Campos de ordenamiento. pet_name solo se usa en el default.
const (
	OrderApplicationDate = "application_date"
	OrderNextDueDate     = "next_due_date"
	OrderCreatedAt       = "created_at"
	OrderPetName         = "pet_name"
)

var (
	OrderingFields  = []string{OrderApplicationDate, OrderNextDueDate, OrderCreatedAt}
	DefaultOrdering = []filtering.OrderField{
		{Field: OrderApplicationDate, Desc: true},
		{Field: OrderPetName},
	}
)
