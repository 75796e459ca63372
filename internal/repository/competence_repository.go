package repository

import (
	"context"
	"errors"

	"recruitly/internal/database"
	"recruitly/internal/domain/application"

	"github.com/jackc/pgx/v5"
)

var ErrCompetenceNotFound = errors.New("competence not found")

// CompetenceRepository reads the static competence catalogue and the
// per-person rows created at submission time.
type CompetenceRepository interface {
	ListCompetences(ctx context.Context) ([]application.Competence, error)
	FindCompetenceByID(ctx context.Context, id int64) (application.Competence, error)
	FindProfilesByPerson(ctx context.Context, personID int64) ([]application.CompetenceProfile, error)
	FindAvailabilityByPerson(ctx context.Context, personID int64) ([]application.AvailabilityPeriod, error)
}

type PostgresCompetenceRepository struct {
	db database.DB
}

func NewPostgresCompetenceRepository(db database.DB) *PostgresCompetenceRepository {
	return &PostgresCompetenceRepository{db: db}
}

func (r *PostgresCompetenceRepository) ListCompetences(ctx context.Context) ([]application.Competence, error) {
	rows, err := r.db.Query(ctx,
		`SELECT competence_id, name FROM competence ORDER BY competence_id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]application.Competence, 0)
	for rows.Next() {
		var c application.Competence
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCompetenceRepository) FindCompetenceByID(ctx context.Context, id int64) (application.Competence, error) {
	row := r.db.QueryRow(ctx,
		`SELECT competence_id, name FROM competence WHERE competence_id = $1`,
		id,
	)

	var c application.Competence
	if err := row.Scan(&c.ID, &c.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return application.Competence{}, ErrCompetenceNotFound
		}
		return application.Competence{}, err
	}
	return c, nil
}

func (r *PostgresCompetenceRepository) FindProfilesByPerson(ctx context.Context, personID int64) ([]application.CompetenceProfile, error) {
	rows, err := r.db.Query(ctx,
		`SELECT competence_profile_id, person_id, competence_id, years_of_experience
		 FROM competence_profile
		 WHERE person_id = $1
		 ORDER BY competence_profile_id`,
		personID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]application.CompetenceProfile, 0)
	for rows.Next() {
		var cp application.CompetenceProfile
		if err := rows.Scan(&cp.ID, &cp.PersonID, &cp.CompetenceID, &cp.YearsOfExperience); err != nil {
			return nil, err
		}
		out = append(out, cp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCompetenceRepository) FindAvailabilityByPerson(ctx context.Context, personID int64) ([]application.AvailabilityPeriod, error) {
	rows, err := r.db.Query(ctx,
		`SELECT availability_id, person_id, from_date, to_date
		 FROM availability
		 WHERE person_id = $1
		 ORDER BY availability_id`,
		personID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]application.AvailabilityPeriod, 0)
	for rows.Next() {
		var av application.AvailabilityPeriod
		if err := rows.Scan(&av.ID, &av.PersonID, &av.FromDate, &av.ToDate); err != nil {
			return nil, err
		}
		out = append(out, av)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
