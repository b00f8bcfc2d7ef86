package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"pet-health-record/internal/domain/vaccinations"
	"pet-health-record/internal/platform/caldate"
)

type VaccinationsRepo struct {
	db *sql.DB
}

func NewVaccinationsRepo(db *sql.DB) *VaccinationsRepo {
	return &VaccinationsRepo{db: db}
}

const vaccinationColumns = `
	v.id, v.pet_id, v.vaccine_id,
	v.application_date, v.next_due_date,
	v.notes, v.veterinarian_name,
	v.created_at`

var vaccinationOrderColumns = map[string]string{
	vaccinations.OrderApplicationDate: "v.application_date",
	vaccinations.OrderNextDueDate:     "v.next_due_date",
	vaccinations.OrderCreatedAt:       "v.created_at",
	vaccinations.OrderPetName:         "p.name",
}

func (r *VaccinationsRepo) Create(ctx context.Context, v vaccinations.Vaccination) (vaccinations.Vaccination, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO vaccinations (
			pet_id, vaccine_id,
			application_date, next_due_date,
			notes, veterinarian_name,
			created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id
	`,
		v.PetID,
		v.VaccineID,
		v.ApplicationDate.Time(),
		nullDate(v.NextDueDate),
		v.Notes,
		v.VeterinarianName,
		v.CreatedAt,
	).Scan(&v.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return vaccinations.Vaccination{}, fmt.Errorf("pet %d / vaccine %d: %w", v.PetID, v.VaccineID, ErrNotFound)
		}
		return vaccinations.Vaccination{}, err
	}
	return v, nil
}

func (r *VaccinationsRepo) GetByID(ctx context.Context, id int64) (vaccinations.Vaccination, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+vaccinationColumns+` FROM vaccinations v WHERE v.id = $1`, id)
	v, err := scanVaccination(row)
	if errors.Is(err, sql.ErrNoRows) {
		return vaccinations.Vaccination{}, notFound("vaccination", id)
	}
	return v, err
}

// ListByOwner filtra por pets.owner_id con un JOIN; el mismo JOIN da pet_name
// para el orden por defecto.
func (r *VaccinationsRepo) ListByOwner(ctx context.Context, ownerID int64, filter vaccinations.ListFilter) ([]vaccinations.Vaccination, error) {
	var q query
	q.sb.WriteString(`SELECT ` + vaccinationColumns + `
		FROM vaccinations v
		JOIN pets p ON p.id = v.pet_id
		WHERE p.owner_id = ` + q.arg(ownerID))

	if filter.PetID != nil {
		q.sb.WriteString(" AND v.pet_id = " + q.arg(*filter.PetID))
	}
	if filter.VaccineID != nil {
		q.sb.WriteString(" AND v.vaccine_id = " + q.arg(*filter.VaccineID))
	}
	if filter.DueOnOrAfter != nil {
		// NULL >= x es NULL, así que las filas sin fecha quedan afuera.
		q.sb.WriteString(" AND v.next_due_date >= " + q.arg(filter.DueOnOrAfter.Time()))
	}
	q.orderBy(filter.Ordering, vaccinationOrderColumns, "v.id")

	rows, err := r.db.QueryContext(ctx, q.sb.String(), q.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]vaccinations.Vaccination, 0)
	for rows.Next() {
		v, err := scanVaccination(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *VaccinationsRepo) Update(ctx context.Context, v vaccinations.Vaccination) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE vaccinations
		SET
			pet_id = $2,
			vaccine_id = $3,
			application_date = $4,
			next_due_date = $5,
			notes = $6,
			veterinarian_name = $7
		WHERE id = $1
	`,
		v.ID,
		v.PetID,
		v.VaccineID,
		v.ApplicationDate.Time(),
		nullDate(v.NextDueDate),
		v.Notes,
		v.VeterinarianName,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("pet %d / vaccine %d: %w", v.PetID, v.VaccineID, ErrNotFound)
		}
		return err
	}
	return checkAffected(res, "vaccination", v.ID)
}

func (r *VaccinationsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM vaccinations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffected(res, "vaccination", id)
}

func scanVaccination(row rowScanner) (vaccinations.Vaccination, error) {
	var v vaccinations.Vaccination
	var applied time.Time
	var due sql.NullTime
	if err := row.Scan(
		&v.ID,
		&v.PetID,
		&v.VaccineID,
		&applied,
		&due,
		&v.Notes,
		&v.VeterinarianName,
		&v.CreatedAt,
	); err != nil {
		return vaccinations.Vaccination{}, err
	}

	v.ApplicationDate = caldate.Of(applied)
	if due.Valid {
		v.NextDueDate = caldate.Ptr(caldate.Of(due.Time))
	}
	return v, nil
}
