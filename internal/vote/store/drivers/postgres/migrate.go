package postgres

import (
	"context"

	"github.com/aussiebroadwan/ballotbox/internal/vote/store/drivers/postgres/migrations"
	"github.com/pressly/goose/v3"
)

// ApplyMigrations runs every pending embedded goose migration.
func (s *Store) ApplyMigrations() error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.UpContext(context.Background(), s.db, ".")
}
