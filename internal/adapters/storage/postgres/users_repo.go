package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"pet-health-record/internal/domain/users"
)

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

const userColumns = `
	id, username, email, password_hash,
	full_name, phone_number,
	is_staff, is_superuser, is_active,
	date_joined, last_login, created_at`

func (r *UsersRepo) Create(ctx context.Context, u users.User) (users.User, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO users (
			username, email, password_hash,
			full_name, phone_number,
			is_staff, is_superuser, is_active,
			date_joined, last_login, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		RETURNING id
	`,
		u.Username,
		u.Email,
		u.PasswordHash,
		u.FullName,
		u.PhoneNumber,
		u.IsStaff,
		u.IsSuperuser,
		u.IsActive,
		u.DateJoined,
		u.LastLogin,
		u.CreatedAt,
	).Scan(&u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return users.User{}, users.ErrEmailTaken
		}
		return users.User{}, err
	}
	return u, nil
}

func (r *UsersRepo) GetByID(ctx context.Context, id int64) (users.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return users.User{}, notFound("user", id)
	}
	return u, err
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if errors.Is(err, sql.ErrNoRows) {
		return users.User{}, fmt.Errorf("user %q: %w", email, ErrNotFound)
	}
	return u, err
}

func (r *UsersRepo) List(ctx context.Context) ([]users.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]users.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *UsersRepo) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	res, err := r.db.ExecContext(ctx, `UPDATE users SET last_login = $2 WHERE id = $1`, id, at)
	if err != nil {
		return err
	}
	return checkAffected(res, "user", id)
}

// Delete: las FK ON DELETE CASCADE se llevan pets y vaccinations.
func (r *UsersRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffected(res, "user", id)
}

// rowScanner cubre *sql.Row y *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (users.User, error) {
	var u users.User
	var lastLogin sql.NullTime
	if err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.FullName,
		&u.PhoneNumber,
		&u.IsStaff,
		&u.IsSuperuser,
		&u.IsActive,
		&u.DateJoined,
		&lastLogin,
		&u.CreatedAt,
	); err != nil {
		return users.User{}, err
	}
	if lastLogin.Valid {
		t := lastLogin.Time
		u.LastLogin = &t
	}
	return u, nil
}
