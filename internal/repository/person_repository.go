package repository

import (
	"context"
	"errors"

	"recruitly/internal/database"
	"recruitly/internal/domain/person"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type PostgresPersonRepository struct {
	db database.DB
}

func NewPostgresPersonRepository(db database.DB) *PostgresPersonRepository {
	return &PostgresPersonRepository{db: db}
}

func (r *PostgresPersonRepository) Create(ctx context.Context, p person.NewPerson) (person.Person, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO person (name, surname, pnr, email, username, password, role_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING person_id, name, surname, pnr, email, username, password, role_id, created_at`,
		p.Name, p.Surname, p.Pnr, p.Email, p.Username, p.PasswordHash, p.Role.ID(),
	)

	created, err := scanPerson(row)
	if err != nil {
		if isUniqueViolation(err) {
			return person.Person{}, person.ErrConflict
		}
		return person.Person{}, err
	}
	return created, nil
}

func (r *PostgresPersonRepository) FindByID(ctx context.Context, id int64) (person.Person, error) {
	row := r.db.QueryRow(ctx,
		`SELECT person_id, name, surname, pnr, email, username, password, role_id, created_at
		 FROM person WHERE person_id = $1`,
		id,
	)
	return scanPerson(row)
}

func (r *PostgresPersonRepository) FindByUsername(ctx context.Context, username string) (person.Person, error) {
	row := r.db.QueryRow(ctx,
		`SELECT person_id, name, surname, pnr, email, username, password, role_id, created_at
		 FROM person WHERE username = $1`,
		username,
	)
	return scanPerson(row)
}

func scanPerson(row database.Row) (person.Person, error) {
	var p person.Person
	var roleID int16
	err := row.Scan(&p.ID, &p.Name, &p.Surname, &p.Pnr, &p.Email, &p.Username, &p.PasswordHash, &roleID, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return person.Person{}, person.ErrNotFound
		}
		return person.Person{}, err
	}

	role, ok := person.RoleFromID(roleID)
	if !ok {
		return person.Person{}, person.ErrNotFound
	}
	p.Role = role
	return p, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
