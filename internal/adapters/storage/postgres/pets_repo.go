package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pet-health-record/internal/domain/pets"
	"pet-health-record/internal/platform/caldate"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

const petColumns = `
	id, owner_id,
	name, species, breed,
	birth_date, weight,
	created_at`

var petOrderColumns = map[string]string{
	"name":       "name",
	"created_at": "created_at",
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO pets (
			owner_id,
			name, species, breed,
			birth_date, weight,
			created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id
	`,
		p.OwnerID,
		p.Name,
		string(p.Species),
		p.Breed,
		nullDate(p.BirthDate),
		nullWeight(p.Weight),
		p.CreatedAt,
	).Scan(&p.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return pets.Pet{}, fmt.Errorf("owner %d: %w", p.OwnerID, ErrNotFound)
		}
		return pets.Pet{}, err
	}
	return p, nil
}

// Update no toca owner_id ni created_at.
func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET
			name = $2,
			species = $3,
			breed = $4,
			birth_date = $5,
			weight = $6
		WHERE id = $1
	`,
		p.ID,
		p.Name,
		string(p.Species),
		p.Breed,
		nullDate(p.BirthDate),
		nullWeight(p.Weight),
	)
	if err != nil {
		return err
	}
	return checkAffected(res, "pet", p.ID)
}

func (r *PetsRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	p, err := scanPet(r.db.QueryRowContext(ctx, `SELECT `+petColumns+` FROM pets WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return pets.Pet{}, notFound("pet", id)
	}
	return p, err
}

func (r *PetsRepo) ListByOwner(ctx context.Context, ownerID int64, filter pets.ListFilter) ([]pets.Pet, error) {
	var q query
	q.sb.WriteString(`SELECT ` + petColumns + ` FROM pets WHERE owner_id = ` + q.arg(ownerID))

	if filter.Species != "" {
		q.sb.WriteString(" AND species = " + q.arg(string(filter.Species)))
	}
	if filter.Breed != "" {
		q.sb.WriteString(" AND breed = " + q.arg(filter.Breed))
	}
	q.search(filter.Search, "name", "breed")
	q.orderBy(filter.Ordering, petOrderColumns, "id")

	rows, err := r.db.QueryContext(ctx, q.sb.String(), q.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PetsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffected(res, "pet", id)
}

func scanPet(row rowScanner) (pets.Pet, error) {
	var p pets.Pet
	var species string
	var bd sql.NullTime
	var weight sql.NullString
	if err := row.Scan(
		&p.ID,
		&p.OwnerID,
		&p.Name,
		&species,
		&p.Breed,
		&bd,
		&weight,
		&p.CreatedAt,
	); err != nil {
		return pets.Pet{}, err
	}

	p.Species = pets.Species(species)
	if bd.Valid {
		// birth_date es DATE: pgx lo trae como medianoche UTC
		p.BirthDate = caldate.Ptr(caldate.Of(bd.Time))
	}
	if weight.Valid {
		var w pets.Weight
		if err := w.Scan(weight.String); err != nil {
			return pets.Pet{}, err
		}
		p.Weight = &w
	}
	return p, nil
}

func nullDate(d *caldate.Date) any {
	if d == nil {
		return nil
	}
	return d.Time()
}

func nullWeight(w *pets.Weight) any {
	if w == nil {
		return nil
	}
	return w.String()
}
