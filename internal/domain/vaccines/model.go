package vaccines

import "time"

// Vaccine es una entrada del catálogo global (compartido entre usuarios).
type Vaccine struct {
	ID           int64
	Name         string
	Manufacturer string
	Description  string

	// Días recomendados entre aplicaciones. Solo informativo.
	PeriodicityDays int

	CreatedAt time.Time
}
