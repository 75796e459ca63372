package seeder

import (
	"context"
	"fmt"
	"log"

	"recruitly/internal/database"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}

func RunAll(ctx context.Context, db database.DB, logger *log.Logger, seeders ...Seeder) error {
	if logger == nil {
		logger = log.Default()
	}
	for _, s := range seeders {
		if err := s.Run(ctx, db); err != nil {
			return fmt.Errorf("seeder %s: %w", s.Name(), err)
		}
		logger.Printf("seed | name=%s status=done", s.Name())
	}
	return nil
}
