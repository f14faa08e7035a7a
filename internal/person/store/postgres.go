package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"contactbook/internal/person/models"
	"contactbook/internal/sentinel"
)

// Postgres persists persons in PostgreSQL.
type Postgres struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed person store.
func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (s *Postgres) Create(ctx context.Context, p *models.Person) error {
	query := `
		INSERT INTO persons (id, person_name, email, date_of_birth, gender, country_id, address, receive_news_letters)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.db.ExecContext(ctx, query,
		p.ID,
		p.PersonName,
		nullString(p.Email),
		p.DateOfBirth,
		nullString(p.Gender),
		p.CountryID,
		nullString(p.Address),
		p.ReceiveNewsLetters,
	)
	if err != nil {
		return fmt.Errorf("create person: %w", err)
	}
	return nil
}

func (s *Postgres) List(ctx context.Context) ([]*models.Person, error) {
	rows, err := s.db.QueryContext(ctx, selectPersons)
	if err != nil {
		return nil, fmt.Errorf("list persons: %w", err)
	}
	defer rows.Close()
	return scanPersons(rows)
}

// ListMatching fetches all persons and filters client-side. The predicate is
// an arbitrary Go function, so it cannot be pushed into SQL.
func (s *Postgres) ListMatching(ctx context.Context, match func(*models.Person) bool) ([]*models.Person, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []*models.Person
	for _, p := range all {
		if match(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *Postgres) FindByID(ctx context.Context, personID uuid.UUID) (*models.Person, error) {
	row := s.db.QueryRowContext(ctx, selectPersons+` WHERE id = $1`, personID)
	p, err := scanPerson(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find person by id: %w", err)
	}
	return p, nil
}

func (s *Postgres) Update(ctx context.Context, p *models.Person) error {
	query := `
		UPDATE persons
		SET person_name = $2, email = $3, date_of_birth = $4, gender = $5,
		    country_id = $6, address = $7, receive_news_letters = $8
		WHERE id = $1
	`
	res, err := s.db.ExecContext(ctx, query,
		p.ID,
		p.PersonName,
		nullString(p.Email),
		p.DateOfBirth,
		nullString(p.Gender),
		p.CountryID,
		nullString(p.Address),
		p.ReceiveNewsLetters,
	)
	if err != nil {
		return fmt.Errorf("update person: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update person rows: %w", err)
	}
	if rows == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *Postgres) Delete(ctx context.Context, personID uuid.UUID) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM persons WHERE id = $1`, personID)
	if err != nil {
		return false, fmt.Errorf("delete person: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete person rows: %w", err)
	}
	return rows > 0, nil
}

const selectPersons = `
	SELECT id, person_name, email, date_of_birth, gender, country_id, address, receive_news_letters
	FROM persons`

type personRow interface {
	Scan(dest ...any) error
}

func scanPerson(row personRow) (*models.Person, error) {
	var p models.Person
	var email, gender, address sql.NullString
	if err := row.Scan(&p.ID, &p.PersonName, &email, &p.DateOfBirth, &gender, &p.CountryID, &address, &p.ReceiveNewsLetters); err != nil {
		return nil, err
	}
	p.Email = email.String
	p.Gender = gender.String
	p.Address = address.String
	return &p, nil
}

func scanPersons(rows *sql.Rows) ([]*models.Person, error) {
	var out []*models.Person
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("scan person: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan persons: %w", err)
	}
	return out, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
