package memory

import (
	"context"
	"sort"
	"strings"

	"pet-health-record/internal/domain/vaccines"
	"pet-health-record/internal/filtering"
)

type vaccineRepo struct {
	s *Store
}

func (r *vaccineRepo) Create(ctx context.Context, v vaccines.Vaccine) (vaccines.Vaccine, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	v.ID = r.s.nextID("vaccines")
	r.s.vaccines[v.ID] = v
	return v, nil
}

func (r *vaccineRepo) GetByID(ctx context.Context, id int64) (vaccines.Vaccine, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	v, ok := r.s.vaccines[id]
	if !ok {
		return vaccines.Vaccine{}, notFound("vaccine", id)
	}
	return v, nil
}

func (r *vaccineRepo) List(ctx context.Context, filter vaccines.ListFilter) ([]vaccines.Vaccine, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]vaccines.Vaccine, 0, len(r.s.vaccines))
	for _, v := range r.s.vaccines {
		if filter.Manufacturer != "" && v.Manufacturer != filter.Manufacturer {
			continue
		}
		if !filtering.MatchesAll(filter.Search, v.Name, v.Manufacturer) {
			continue
		}
		out = append(out, v)
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		c := filtering.Compare(filter.Ordering, func(field string) int {
			switch field {
			case "name":
				return strings.Compare(a.Name, b.Name)
			case "created_at":
				return a.CreatedAt.Compare(b.CreatedAt)
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

func (r *vaccineRepo) Update(ctx context.Context, v vaccines.Vaccine) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.vaccines[v.ID]
	if !ok {
		return notFound("vaccine", v.ID)
	}
	v.CreatedAt = current.CreatedAt
	r.s.vaccines[v.ID] = v
	return nil
}

func (r *vaccineRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.vaccines[id]; !ok {
		return notFound("vaccine", id)
	}
	r.s.deleteVaccineLocked(id)
	return nil
}
