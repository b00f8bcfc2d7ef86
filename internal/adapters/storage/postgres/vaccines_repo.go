package postgres

import (
	"context"
	"database/sql"
	"errors"

	"pet-health-record/internal/domain/vaccines"
)

type VaccinesRepo struct {
	db *sql.DB
}

func NewVaccinesRepo(db *sql.DB) *VaccinesRepo {
	return &VaccinesRepo{db: db}
}

const vaccineColumns = `id, name, manufacturer, description, periodicity_days, created_at`

var vaccineOrderColumns = map[string]string{
	"name":       "name",
	"created_at": "created_at",
}

func (r *VaccinesRepo) Create(ctx context.Context, v vaccines.Vaccine) (vaccines.Vaccine, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO vaccines (name, manufacturer, description, periodicity_days, created_at)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id
	`, v.Name, v.Manufacturer, v.Description, v.PeriodicityDays, v.CreatedAt).Scan(&v.ID)
	if err != nil {
		return vaccines.Vaccine{}, err
	}
	return v, nil
}

func (r *VaccinesRepo) GetByID(ctx context.Context, id int64) (vaccines.Vaccine, error) {
	v, err := scanVaccine(r.db.QueryRowContext(ctx, `SELECT `+vaccineColumns+` FROM vaccines WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return vaccines.Vaccine{}, notFound("vaccine", id)
	}
	return v, err
}

func (r *VaccinesRepo) List(ctx context.Context, filter vaccines.ListFilter) ([]vaccines.Vaccine, error) {
	var q query
	q.sb.WriteString(`SELECT ` + vaccineColumns + ` FROM vaccines WHERE TRUE`)

	if filter.Manufacturer != "" {
		q.sb.WriteString(" AND manufacturer = " + q.arg(filter.Manufacturer))
	}
	q.search(filter.Search, "name", "manufacturer")
	q.orderBy(filter.Ordering, vaccineOrderColumns, "id")

	rows, err := r.db.QueryContext(ctx, q.sb.String(), q.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]vaccines.Vaccine, 0)
	for rows.Next() {
		v, err := scanVaccine(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *VaccinesRepo) Update(ctx context.Context, v vaccines.Vaccine) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE vaccines
		SET name = $2, manufacturer = $3, description = $4, periodicity_days = $5
		WHERE id = $1
	`, v.ID, v.Name, v.Manufacturer, v.Description, v.PeriodicityDays)
	if err != nil {
		return err
	}
	return checkAffected(res, "vaccine", v.ID)
}

func (r *VaccinesRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM vaccines WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffected(res, "vaccine", id)
}

func scanVaccine(row rowScanner) (vaccines.Vaccine, error) {
	var v vaccines.Vaccine
	err := row.Scan(&v.ID, &v.Name, &v.Manufacturer, &v.Description, &v.PeriodicityDays, &v.CreatedAt)
	return v, err
}
