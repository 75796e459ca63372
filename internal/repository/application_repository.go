package repository

import (
	"context"
	"time"

	"recruitly/internal/database"
	"recruitly/internal/domain/application"
)

// ApplicationRepository covers the write side of the submission workflow and
// the raw application reads. Write methods take an explicit Querier so the
// usecase can scope them to a single transaction.
type ApplicationRepository interface {
	CreateApplication(ctx context.Context, q database.Querier, personID int64, status application.Status) (application.JobApplication, error)
	CreateCompetenceProfile(ctx context.Context, q database.Querier, personID, competenceID int64, yearsOfExperience float64) (application.CompetenceProfile, error)
	CreateAvailabilityPeriod(ctx context.Context, q database.Querier, personID int64, fromDate, toDate time.Time) (application.AvailabilityPeriod, error)
	ListApplications(ctx context.Context) ([]application.JobApplication, error)
	UpdateStatus(ctx context.Context, q database.Querier, id int64, status application.Status) (int64, error)
}

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

func (r *PostgresApplicationRepository) CreateApplication(ctx context.Context, q database.Querier, personID int64, status application.Status) (application.JobApplication, error) {
	if q == nil {
		q = r.db
	}

	row := q.QueryRow(ctx,
		`INSERT INTO job_application (person_id, status)
		 VALUES ($1, $2)
		 RETURNING job_application_id, person_id, status, created_at`,
		personID, string(status),
	)

	var app application.JobApplication
	var raw string
	if err := row.Scan(&app.ID, &app.PersonID, &raw, &app.CreatedAt); err != nil {
		return application.JobApplication{}, err
	}
	app.Status = application.Status(raw)
	return app, nil
}

func (r *PostgresApplicationRepository) CreateCompetenceProfile(ctx context.Context, q database.Querier, personID, competenceID int64, yearsOfExperience float64) (application.CompetenceProfile, error) {
	if q == nil {
		q = r.db
	}

	row := q.QueryRow(ctx,
		`INSERT INTO competence_profile (person_id, competence_id, years_of_experience)
		 VALUES ($1, $2, $3)
		 RETURNING competence_profile_id, person_id, competence_id, years_of_experience`,
		personID, competenceID, yearsOfExperience,
	)

	var cp application.CompetenceProfile
	if err := row.Scan(&cp.ID, &cp.PersonID, &cp.CompetenceID, &cp.YearsOfExperience); err != nil {
		return application.CompetenceProfile{}, err
	}
	return cp, nil
}

func (r *PostgresApplicationRepository) CreateAvailabilityPeriod(ctx context.Context, q database.Querier, personID int64, fromDate, toDate time.Time) (application.AvailabilityPeriod, error) {
	if q == nil {
		q = r.db
	}

	row := q.QueryRow(ctx,
		`INSERT INTO availability (person_id, from_date, to_date)
		 VALUES ($1, $2, $3)
		 RETURNING availability_id, person_id, from_date, to_date`,
		personID, fromDate, toDate,
	)

	var av application.AvailabilityPeriod
	if err := row.Scan(&av.ID, &av.PersonID, &av.FromDate, &av.ToDate); err != nil {
		return application.AvailabilityPeriod{}, err
	}
	return av, nil
}

func (r *PostgresApplicationRepository) ListApplications(ctx context.Context) ([]application.JobApplication, error) {
	rows, err := r.db.Query(ctx,
		`SELECT job_application_id, person_id, status, created_at
		 FROM job_application
		 ORDER BY job_application_id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]application.JobApplication, 0)
	for rows.Next() {
		var app application.JobApplication
		var raw string
		if err := rows.Scan(&app.ID, &app.PersonID, &raw, &app.CreatedAt); err != nil {
			return nil, err
		}
		app.Status = application.Status(raw)
		out = append(out, app)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresApplicationRepository) UpdateStatus(ctx context.Context, q database.Querier, id int64, status application.Status) (int64, error) {
	if q == nil {
		q = r.db
	}
	return q.Exec(ctx,
		`UPDATE job_application SET status = $1 WHERE job_application_id = $2`,
		string(status), id,
	)
}
