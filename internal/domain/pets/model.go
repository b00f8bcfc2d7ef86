package pets

import (
	"time"

	"pet-health-record/internal/platform/caldate"
)

// Species define las especies soportadas.
// @Enum dog, cat, other
type Species string

const (
	SpeciesDog   Species = "dog"
	SpeciesCat   Species = "cat"
	SpeciesOther Species = "other"
)

func (s Species) Valid() bool {
	switch s {
	case SpeciesDog, SpeciesCat, SpeciesOther:
		return true
	default:
		return false
	}
}

// Pet es una mascota registrada. Siempre pertenece a un único usuario.
type Pet struct {
	ID      int64
	OwnerID int64

	Name    string
	Species Species
	Breed   string

	BirthDate *caldate.Date
	Weight    *Weight // kg, hasta 3 enteros y 2 decimales

	CreatedAt time.Time
}
