package seeder

import (
	"context"
	"fmt"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"recruitly/internal/database"
	"recruitly/internal/domain/person"
)

// RecruiterSeeder provisions the bootstrap recruiter account. Registration
// only ever creates applicants, so without this there is no way to review
// applications. Skipped unless both env vars are present.
type RecruiterSeeder struct{}

func (RecruiterSeeder) Name() string { return "recruiter" }

func (RecruiterSeeder) Run(ctx context.Context, db database.DB) error {
	username := strings.TrimSpace(os.Getenv("SEED_RECRUITER_USERNAME"))
	password := os.Getenv("SEED_RECRUITER_PASSWORD")
	if username == "" || password == "" {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if _, err := tx.Exec(ctx,
		`INSERT INTO person (name, surname, pnr, email, username, password, role_id)
		 VALUES ('Greta', 'Borg', '196001010000', $1, $2, $3, $4)
		 ON CONFLICT (username) DO NOTHING`,
		username+"@recruitly.local", username, string(hash), person.RoleRecruiter.ID(),
	); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
