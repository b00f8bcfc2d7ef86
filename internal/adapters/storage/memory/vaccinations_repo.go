package memory

import (
	"context"
	"sort"
	"strings"

	"pet-health-record/internal/domain/vaccinations"
	"pet-health-record/internal/filtering"
	"pet-health-record/internal/platform/caldate"
)

type vaccinationRepo struct {
	s *Store
}

func (r *vaccinationRepo) Create(ctx context.Context, v vaccinations.Vaccination) (vaccinations.Vaccination, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.checkRefsLocked(v); err != nil {
		return vaccinations.Vaccination{}, err
	}

	v.ID = r.s.nextID("vaccinations")
	r.s.vaccinations[v.ID] = v
	return v, nil
}

func (r *vaccinationRepo) GetByID(ctx context.Context, id int64) (vaccinations.Vaccination, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	v, ok := r.s.vaccinations[id]
	if !ok {
		return vaccinations.Vaccination{}, notFound("vaccination", id)
	}
	return v, nil
}

func (r *vaccinationRepo) ListByOwner(ctx context.Context, ownerID int64, filter vaccinations.ListFilter) ([]vaccinations.Vaccination, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]vaccinations.Vaccination, 0)
	for _, v := range r.s.vaccinations {
		pet, ok := r.s.pets[v.PetID]
		if !ok || pet.OwnerID != ownerID {
			continue
		}
		if filter.PetID != nil && v.PetID != *filter.PetID {
			continue
		}
		if filter.VaccineID != nil && v.VaccineID != *filter.VaccineID {
			continue
		}
		if filter.DueOnOrAfter != nil {
			if v.NextDueDate == nil || v.NextDueDate.Before(*filter.DueOnOrAfter) {
				continue
			}
		}
		out = append(out, v)
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		c := filtering.Compare(filter.Ordering, func(field string) int {
			switch field {
			case vaccinations.OrderApplicationDate:
				return a.ApplicationDate.Compare(b.ApplicationDate)
			case vaccinations.OrderNextDueDate:
				return compareNullableDate(a.NextDueDate, b.NextDueDate)
			case vaccinations.OrderCreatedAt:
				return a.CreatedAt.Compare(b.CreatedAt)
			case vaccinations.OrderPetName:
				return strings.Compare(r.s.pets[a.PetID].Name, r.s.pets[b.PetID].Name)
			default:
				return 0
			}
		})
		if c != 0 {
			return c < 0
		}
		return a.ID < b.ID
	})

	return out, nil
}

func (r *vaccinationRepo) Update(ctx context.Context, v vaccinations.Vaccination) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.vaccinations[v.ID]
	if !ok {
		return notFound("vaccination", v.ID)
	}
	if err := r.checkRefsLocked(v); err != nil {
		return err
	}
	v.CreatedAt = current.CreatedAt
	r.s.vaccinations[v.ID] = v
	return nil
}

func (r *vaccinationRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.vaccinations[id]; !ok {
		return notFound("vaccination", id)
	}
	delete(r.s.vaccinations, id)
	return nil
}

// FK: pet y vaccine tienen que existir.
func (r *vaccinationRepo) checkRefsLocked(v vaccinations.Vaccination) error {
	if _, ok := r.s.pets[v.PetID]; !ok {
		return notFound("pet", v.PetID)
	}
	if _, ok := r.s.vaccines[v.VaccineID]; !ok {
		return notFound("vaccine", v.VaccineID)
	}
	return nil
}

// NULL va después de cualquier fecha (como Postgres en ASC).
func compareNullableDate(a, b *caldate.Date) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	default:
		return a.Compare(*b)
	}
}
