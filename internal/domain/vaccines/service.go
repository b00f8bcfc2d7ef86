package vaccines

import (
	"context"
	"errors"
	"strings"
	"time"

	"pet-health-record/internal/platform/apperr"
	"pet-health-record/internal/platform/validation"
)

// El catálogo no tiene restricciones de acceso: cualquiera (incluso
// anónimo) puede leer y modificar.
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

type Input struct {
	Name            *string `json:"name" validate:"omitnil,max=255"`
	Manufacturer    *string `json:"manufacturer" validate:"omitnil,max=255"`
	Description     *string `json:"description"`
	PeriodicityDays *int    `json:"periodicity_days" validate:"omitnil,min=1,max=2147483647"`
}

func (s *Service) Create(ctx context.Context, in Input) (Vaccine, error) {
	var v Vaccine
	if err := s.apply(&v, in, false); err != nil {
		return Vaccine{}, err
	}
	v.CreatedAt = s.now().UTC()
	return s.repo.Create(ctx, v)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Vaccine, error) {
	if len(filter.Ordering) == 0 {
		filter.Ordering = DefaultOrdering
	}
	return s.repo.List(ctx, filter)
}

func (s *Service) Get(ctx context.Context, id int64) (Vaccine, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, id int64, in Input, partial bool) (Vaccine, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Vaccine{}, err
	}
	if err := s.apply(&v, in, partial); err != nil {
		return Vaccine{}, err
	}
	if err := s.repo.Update(ctx, v); err != nil {
		return Vaccine{}, err
	}
	return v, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// Exists lo usa vaccinations para validar el campo vaccine.
func (s *Service) Exists(ctx context.Context, id int64) (bool, error) {
	_, err := s.repo.GetByID(ctx, id)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, apperr.ErrNotFound) {
		return false, nil
	}
	return false, err
}

func (s *Service) apply(v *Vaccine, in Input, partial bool) error {
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
		if in.PeriodicityDays == nil {
			fields.Add("periodicity_days", "This field is required.")
		}
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		if _, dup := fields["name"]; !dup {
			fields.Add("name", "This field may not be blank.")
		}
	}
	if err := fields.OrNil(); err != nil {
		return err
	}

	if in.Name != nil {
		v.Name = strings.TrimSpace(*in.Name)
	}
	if in.Manufacturer != nil {
		v.Manufacturer = strings.TrimSpace(*in.Manufacturer)
	} else if !partial {
		v.Manufacturer = ""
	}
	if in.Description != nil {
		v.Description = strings.TrimSpace(*in.Description)
	} else if !partial {
		v.Description = ""
	}
	if in.PeriodicityDays != nil {
		v.PeriodicityDays = *in.PeriodicityDays
	}
	return nil
}
