package vaccinations

import (
	"context"
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

// PetOwnerLookup evita importar pets entero (lo implementa pets.Service).
type PetOwnerLookup interface {
	OwnerOf(ctx context.Context, petID int64) (int64, error)
}

// VaccineLookup lo implementa vaccines.Service.
type VaccineLookup interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type Service struct {
	repo     Repository
	pets     PetOwnerLookup
	vaccines VaccineLookup
	validate *validation.Validator
	now      func() time.Time
}

func NewService(repo Repository, pets PetOwnerLookup, vaccines VaccineLookup) *Service {
	return &Service{
		repo:     repo,
		pets:     pets,
		vaccines: vaccines,
		validate: validation.New(),
		now:      time.Now,
	}
}

// WithClock fija el reloj que decide qué vacunaciones son "upcoming".
func (s *Service) WithClock(now func() time.Time) *Service {
	if now != nil {
		s.now = now
	}
	return s
}

type Input struct {
	Pet              *int64              `json:"pet"`
	Vaccine          *int64              `json:"vaccine"`
	ApplicationDate  *string             `json:"application_date" validate:"omitnil,isodate"`
	NextDueDate      patch.Field[string] `json:"next_due_date" validate:"-"`
	Notes            *string             `json:"notes"`
	VeterinarianName *string             `json:"veterinarian_name" validate:"omitnil,max=255"`
}

func (s *Service) Create(ctx context.Context, caller *auth.Claims, in Input) (Vaccination, error) {
	if err := authz.RequireAuthenticated(caller); err != nil {
		return Vaccination{}, err
	}

	var v Vaccination
	if err := s.apply(ctx, caller, &v, in, false); err != nil {
		return Vaccination{}, err
	}
	v.CreatedAt = s.now().UTC()

	return s.repo.Create(ctx, v)
}

// List devuelve solo vacunaciones de mascotas del caller.
// Upcoming = next_due_date >= hoy (fecha calendario del server); sin fecha no entra.
func (s *Service) List(ctx context.Context, caller *auth.Claims, filter ListFilter) ([]Vaccination, error) {
	if err := authz.RequireAuthenticated(caller); err != nil {
		return nil, err
	}

	if filter.Upcoming {
		today := caldate.Of(s.now())
		filter.DueOnOrAfter = &today
	}
	if len(filter.Ordering) == 0 {
		filter.Ordering = DefaultOrdering
	}
	return s.repo.ListByOwner(ctx, caller.UserID, filter)
}

// Get: 404 si no existe o si la mascota es de otro usuario.
func (s *Service) Get(ctx context.Context, caller *auth.Claims, id int64) (Vaccination, error) {
	if err := authz.RequireAuthenticated(caller); err != nil {
		return Vaccination{}, err
	}

	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Vaccination{}, err
	}
	owner, err := s.pets.OwnerOf(ctx, v.PetID)
	if err != nil {
		return Vaccination{}, err
	}
	if !authz.OwnsVaccination(caller, owner) {
		return Vaccination{}, apperr.ErrNotFound
	}
	return v, nil
}

func (s *Service) Update(ctx context.Context, caller *auth.Claims, id int64, in Input, partial bool) (Vaccination, error) {
	v, err := s.Get(ctx, caller, id)
	if err != nil {
		return Vaccination{}, err
	}

	if err := s.apply(ctx, caller, &v, in, partial); err != nil {
		return Vaccination{}, err
	}
	if err := s.repo.Update(ctx, v); err != nil {
		return Vaccination{}, err
	}
	return v, nil
}

func (s *Service) Delete(ctx context.Context, caller *auth.Claims, id int64) error {
	if _, err := s.Get(ctx, caller, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// apply valida formato, existencia y ownership del pet antes de tocar v.
func (s *Service) apply(ctx context.Context, caller *auth.Claims, v *Vaccination, in Input, partial bool) error {
	fields := apperr.FieldErrors{}
	if err := s.validate.Struct(in); err != nil {
		if !errors.As(err, &fields) {
			return err
		}
	}

	if !partial {
		if in.Pet == nil {
			fields.Add("pet", "This field is required.")
		}
		if in.Vaccine == nil {
			fields.Add("vaccine", "This field is required.")
		}
		if in.ApplicationDate == nil {
			fields.Add("application_date", "This field is required.")
		}
	}

	if in.Pet != nil {
		msg, err := s.checkPet(ctx, caller, *in.Pet)
		if err != nil {
			return err
		}
		if msg != "" {
			fields.Add("pet", msg)
		}
	}
	if in.Vaccine != nil {
		ok, err := s.vaccines.Exists(ctx, *in.Vaccine)
		if err != nil {
			return err
		}
		if !ok {
			fields.Add("vaccine", invalidPK(*in.Vaccine))
		}
	}

	var applied caldate.Date
	if in.ApplicationDate != nil {
		if d, err := caldate.Parse(*in.ApplicationDate); err == nil {
			applied = d
		}
	}

	var due *caldate.Date
	if in.NextDueDate.Present() && strings.TrimSpace(in.NextDueDate.Value) != "" {
		d, err := caldate.Parse(in.NextDueDate.Value)
		if err != nil {
			fields.Add("next_due_date", "Date has wrong format. Use one of these formats instead: YYYY-MM-DD.")
		} else {
			due = &d
		}
	}

	if err := fields.OrNil(); err != nil {
		return err
	}

	if in.Pet != nil {
		v.PetID = *in.Pet
	}
	if in.Vaccine != nil {
		v.VaccineID = *in.Vaccine
	}
	if in.ApplicationDate != nil {
		v.ApplicationDate = applied
	}
	if in.NextDueDate.Set || !partial {
		v.NextDueDate = due
	}
	if in.Notes != nil {
		v.Notes = strings.TrimSpace(*in.Notes)
	} else if !partial {
		v.Notes = ""
	}
	if in.VeterinarianName != nil {
		v.VeterinarianName = strings.TrimSpace(*in.VeterinarianName)
	} else if !partial {
		v.VeterinarianName = ""
	}
	return nil
}

// checkPet devuelve el mensaje de validación del campo pet (vacío = ok).
func (s *Service) checkPet(ctx context.Context, caller *auth.Claims, petID int64) (string, error) {
	owner, err := s.pets.OwnerOf(ctx, petID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return invalidPK(petID), nil
		}
		return "", err
	}
	if !authz.OwnsPet(caller, owner) {
		return "You can only create vaccinations for your own pets.", nil
	}
	return "", nil
}

func invalidPK(id int64) string {
	return fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", id)
}
