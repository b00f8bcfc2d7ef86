package memory

import (
	"fmt"
	"sync"
	"time"

	"pet-health-record/internal/domain/pets"
	"pet-health-record/internal/domain/users"
	"pet-health-record/internal/domain/vaccinations"
	"pet-health-record/internal/domain/vaccines"
	"pet-health-record/internal/platform/apperr"
)

var ErrNotFound = apperr.ErrNotFound

// Store guarda todo en memoria detrás de un único RWMutex, así los borrados
// en cascada (user -> pets -> vaccinations, vaccine -> vaccinations) son
// atómicos igual que con las FK ON DELETE CASCADE de Postgres.
type Store struct {
	mu sync.RWMutex

	users        map[int64]users.User
	pets         map[int64]pets.Pet
	vaccines     map[int64]vaccines.Vaccine
	vaccinations map[int64]vaccinations.Vaccination

	// jti -> expiración
	revoked map[string]time.Time

	lastID map[string]int64
	now    func() time.Time
}

func NewStore() *Store {
	return &Store{
		users:        make(map[int64]users.User),
		pets:         make(map[int64]pets.Pet),
		vaccines:     make(map[int64]vaccines.Vaccine),
		vaccinations: make(map[int64]vaccinations.Vaccination),
		revoked:      make(map[string]time.Time),
		lastID:       make(map[string]int64),
		now:          time.Now,
	}
}

func (s *Store) Users() users.Repository               { return &userRepo{s: s} }
func (s *Store) Pets() pets.Repository                 { return &petRepo{s: s} }
func (s *Store) Vaccines() vaccines.Repository         { return &vaccineRepo{s: s} }
func (s *Store) Vaccinations() vaccinations.Repository { return &vaccinationRepo{s: s} }
func (s *Store) Revocations() *RevocationStore         { return &RevocationStore{s: s} }

// nextID simula BIGSERIAL. Llamar con mu tomado.
func (s *Store) nextID(table string) int64 {
	s.lastID[table]++
	return s.lastID[table]
}

// Los deletes en cascada asumen mu tomado en escritura.

func (s *Store) deleteUserLocked(id int64) {
	for petID, p := range s.pets {
		if p.OwnerID == id {
			s.deletePetLocked(petID)
		}
	}
	delete(s.users, id)
}

func (s *Store) deletePetLocked(id int64) {
	for vid, v := range s.vaccinations {
		if v.PetID == id {
			delete(s.vaccinations, vid)
		}
	}
	delete(s.pets, id)
}

func (s *Store) deleteVaccineLocked(id int64) {
	for vid, v := range s.vaccinations {
		if v.VaccineID == id {
			delete(s.vaccinations, vid)
		}
	}
	delete(s.vaccines, id)
}

func notFound(kind string, id int64) error {
	return fmt.Errorf("%s %d: %w", kind, id, ErrNotFound)
}
