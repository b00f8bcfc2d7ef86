package memory

import (
	"context"
	"sort"
	"strings"

	"pet-health-record/internal/domain/pets"
	"pet-health-record/internal/filtering"
)

type petRepo struct {
	s *Store
}

func (r *petRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[p.OwnerID]; !ok {
		return pets.Pet{}, notFound("user", p.OwnerID)
	}

	p.ID = r.s.nextID("pets")
	r.s.pets[p.ID] = p
	return p, nil
}

func (r *petRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.pets[id]
	if !ok {
		return pets.Pet{}, notFound("pet", id)
	}
	return p, nil
}

func (r *petRepo) ListByOwner(ctx context.Context, ownerID int64, filter pets.ListFilter) ([]pets.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]pets.Pet, 0)
	for _, p := range r.s.pets {
		if p.OwnerID != ownerID {
			continue
		}
		if filter.Species != "" && p.Species != filter.Species {
			continue
		}
		if filter.Breed != "" && p.Breed != filter.Breed {
			continue
		}
		if !filtering.MatchesAll(filter.Search, p.Name, p.Breed) {
			continue
		}
		out = append(out, p)
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

func (r *petRepo) Update(ctx context.Context, p pets.Pet) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.pets[p.ID]
	if !ok {
		return notFound("pet", p.ID)
	}
	// owner y created_at no cambian
	p.OwnerID = current.OwnerID
	p.CreatedAt = current.CreatedAt
	r.s.pets[p.ID] = p
	return nil
}

func (r *petRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.pets[id]; !ok {
		return notFound("pet", id)
	}
	r.s.deletePetLocked(id)
	return nil
}
