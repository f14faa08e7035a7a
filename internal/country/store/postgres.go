package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"contactbook/internal/country/models"
	"contactbook/internal/sentinel"
)

// Postgres persists countries in PostgreSQL. Name uniqueness is enforced by
// the countries_name_key index, so concurrent creates cannot race past the
// service-level duplicate check.
type Postgres struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed country store.
func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (s *Postgres) Create(ctx context.Context, c *models.Country) error {
	query := `
		INSERT INTO countries (id, name)
		VALUES ($1, $2)
	`
	_, err := s.db.ExecContext(ctx, query, c.ID, c.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("country name must be unique: %w", sentinel.ErrAlreadyUsed)
		}
		return fmt.Errorf("create country: %w", err)
	}
	return nil
}

func (s *Postgres) List(ctx context.Context) ([]*models.Country, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM countries`)
	if err != nil {
		return nil, fmt.Errorf("list countries: %w", err)
	}
	defer rows.Close()

	var out []*models.Country
	for rows.Next() {
		var c models.Country
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan country: %w", err)
		}
		out = append(out, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list countries: %w", err)
	}
	return out, nil
}

func (s *Postgres) FindByID(ctx context.Context, countryID uuid.UUID) (*models.Country, error) {
	var c models.Country
	err := s.db.QueryRowContext(ctx, `SELECT id, name FROM countries WHERE id = $1`, countryID).
		Scan(&c.ID, &c.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find country by id: %w", err)
	}
	return &c, nil
}

func (s *Postgres) FindByName(ctx context.Context, name string) (*models.Country, error) {
	var c models.Country
	err := s.db.QueryRowContext(ctx, `SELECT id, name FROM countries WHERE name = $1`, name).
		Scan(&c.ID, &c.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find country by name: %w", err)
	}
	return &c, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
