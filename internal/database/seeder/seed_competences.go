package seeder

import (
	"context"
	"fmt"

	"recruitly/internal/database"
)

// CompetencesSeeder installs the static competence catalogue the submission
// form offers. Idempotent; reruns are no-ops.
type CompetencesSeeder struct{}

func (CompetencesSeeder) Name() string { return "competences" }

func (CompetencesSeeder) Run(ctx context.Context, db database.DB) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	names := []string{
		"ticket sales",
		"lotteries",
		"roller coaster operation",
	}

	for _, name := range names {
		if _, err := tx.Exec(ctx,
			`INSERT INTO competence (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`,
			name,
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
