package postgres

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-health-record/internal/filtering"
	"pet-health-record/internal/platform/apperr"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

var ErrNotFound = apperr.ErrNotFound

//go:embed schema.sql
var schema string

// Open abre una conexión pool a Postgres usando pgx (database/sql).
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate aplica schema.sql. Es idempotente (CREATE ... IF NOT EXISTS).
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("postgres: migrate: %w", err)
	}
	return nil
}

func notFound(kind string, id int64) error {
	return fmt.Errorf("%s %d: %w", kind, id, ErrNotFound)
}

// 23505 = unique_violation
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// 23503 = foreign_key_violation
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}

func checkAffected(res sql.Result, kind string, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound(kind, id)
	}
	return nil
}

// query arma un SELECT con placeholders numerados, igual que ListByPet
// armaba el filtro de eventos.
type query struct {
	sb   strings.Builder
	args []any
}

func (q *query) arg(v any) string {
	q.args = append(q.args, v)
	return fmt.Sprintf("$%d", len(q.args))
}

// search agrega un AND por término; cada término matchea alguna columna.
func (q *query) search(terms []string, columns ...string) {
	for _, term := range terms {
		ph := q.arg("%" + escapeLike(term) + "%")
		ors := make([]string, 0, len(columns))
		for _, c := range columns {
			ors = append(ors, c+" ILIKE "+ph)
		}
		q.sb.WriteString(" AND (" + strings.Join(ors, " OR ") + ")")
	}
}

// orderBy traduce OrderField a columnas. Campos fuera de columns se ignoran.
// Postgres ya ordena NULL al final en ASC y al principio en DESC.
func (q *query) orderBy(order []filtering.OrderField, columns map[string]string, tieBreak string) {
	parts := make([]string, 0, len(order)+1)
	for _, o := range order {
		col, ok := columns[o.Field]
		if !ok {
			continue
		}
		if o.Desc {
			col += " DESC"
		}
		parts = append(parts, col)
	}
	parts = append(parts, tieBreak)
	q.sb.WriteString(" ORDER BY " + strings.Join(parts, ", "))
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
