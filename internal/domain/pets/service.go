package pets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-health-record/internal/authz"
	"pet-health-record/internal/platform/apperr"
	"pet-health-record/internal/platform/caldate"
	"pet-health-record/internal/platform/patch"
	"pet-health-record/internal/platform/validation"
	"pet-health-record/internal/ports/auth"
)

type Service struct {
	repo     Repository
	validate *validation.Validator
	now      func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:     repo,
		validate: validation.New(),
		now:      time.Now,
	}
}

// Input sirve para create (POST), update completo (PUT) y parcial (PATCH).
// owner/owner_id nunca se lee del body.
type Input struct {
	Name      *string                      `json:"name" validate:"omitnil,max=255"`
	Species   *string                      `json:"species" validate:"omitnil,oneof=dog cat other"`
	Breed     *string                      `json:"breed" validate:"omitnil,max=255"`
	BirthDate patch.Field[string]          `json:"birth_date" validate:"-"`
	Weight    patch.Field[json.RawMessage] `json:"weight" validate:"-"`
}

func (s *Service) Create(ctx context.Context, caller *auth.Claims, in Input) (Pet, error) {
	if err := authz.RequireAuthenticated(caller); err != nil {
		return Pet{}, err
	}

	p := Pet{OwnerID: caller.UserID}
	if err := s.apply(&p, in, false); err != nil {
		return Pet{}, err
	}
	p.CreatedAt = s.now().UTC()

	return s.repo.Create(ctx, p)
}

// List siempre filtra por owner = caller.
func (s *Service) List(ctx context.Context, caller *auth.Claims, filter ListFilter) ([]Pet, error) {
	if err := authz.RequireAuthenticated(caller); err != nil {
		return nil, err
	}
	if filter.Species != "" && !filter.Species.Valid() {
		return nil, apperr.Field("species", fmt.Sprintf(
			"Select a valid choice. %s is not one of the available choices.", filter.Species))
	}
	if len(filter.Ordering) == 0 {
		filter.Ordering = DefaultOrdering
	}
	return s.repo.ListByOwner(ctx, caller.UserID, filter)
}

// Get devuelve 404 tanto si no existe como si es de otro usuario.
func (s *Service) Get(ctx context.Context, caller *auth.Claims, id int64) (Pet, error) {
	if err := authz.RequireAuthenticated(caller); err != nil {
		return Pet{}, err
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Pet{}, err
	}
	if !authz.OwnsPet(caller, p.OwnerID) {
		return Pet{}, apperr.ErrNotFound
	}
	return p, nil
}

// Update: partial=false es PUT (name y species obligatorios), true es PATCH.
func (s *Service) Update(ctx context.Context, caller *auth.Claims, id int64, in Input, partial bool) (Pet, error) {
	p, err := s.Get(ctx, caller, id)
	if err != nil {
		return Pet{}, err
	}

	if err := s.apply(&p, in, partial); err != nil {
		return Pet{}, err
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, caller *auth.Claims, id int64) error {
	if _, err := s.Get(ctx, caller, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// apply valida in y lo vuelca sobre p. En modo completo los campos
// opcionales ausentes quedan vacíos.
func (s *Service) apply(p *Pet, in Input, partial bool) error {
	fields := apperr.FieldErrors{}
	if err := s.validate.Struct(in); err != nil {
		if !errors.As(err, &fields) {
			return err
		}
	}

	if !partial {
		if in.Name == nil {
			fields.Add("name", "This field is required.")
		}
		if in.Species == nil {
			fields.Add("species", "This field is required.")
		}
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		if _, dup := fields["name"]; !dup {
			fields.Add("name", "This field may not be blank.")
		}
	}

	var birth *caldate.Date
	if in.BirthDate.Present() && strings.TrimSpace(in.BirthDate.Value) != "" {
		d, err := caldate.Parse(in.BirthDate.Value)
		if err != nil {
			fields.Add("birth_date", "Date has wrong format. Use one of these formats instead: YYYY-MM-DD.")
		} else {
			birth = &d
		}
	}

	var weight *Weight
	if in.Weight.Present() {
		w, msg := ParseWeight(in.Weight.Value)
		if msg != "" {
			fields.Add("weight", msg)
		} else {
			weight = &w
		}
	}

	if err := fields.OrNil(); err != nil {
		return err
	}

	if in.Name != nil {
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Species != nil {
		p.Species = Species(*in.Species)
	}
	if in.Breed != nil {
		p.Breed = strings.TrimSpace(*in.Breed)
	} else if !partial {
		p.Breed = ""
	}
	if in.BirthDate.Set || !partial {
		p.BirthDate = birth
	}
	if in.Weight.Set || !partial {
		p.Weight = weight
	}
	return nil
}
