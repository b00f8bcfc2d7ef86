package vaccinations

import (
	"time"

	"pet-health-record/internal/platform/caldate"
)

// Vaccination registra que a una mascota se le aplicó una vacuna.
// El owner implícito es el owner de la mascota.
type Vaccination struct {
	ID        int64
	PetID     int64
	VaccineID int64

	ApplicationDate caldate.Date
	// Lo informa el cliente; no se calcula desde periodicity_days.
	NextDueDate *caldate.Date

	Notes            string
	VeterinarianName string

	CreatedAt time.Time
}
