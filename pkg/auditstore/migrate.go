package auditstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file" // file:// migration source driver
	_ "github.com/jackc/pgx/v5/stdlib"                   // database/sql driver, required by golang-migrate

	"github.com/oryxlabs/realmcore/internal/logger"
)

// runMigrations applies every pending golang-migrate migration found
// at migrationsPath (a "file://..." source URL) against the postgres
// database at dsn. golang-migrate takes a postgres advisory lock for
// the duration, so concurrent realmcored replicas never race each
// other's DDL.
func runMigrations(ctx context.Context, dsn, migrationsPath string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open database/sql connection: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{
		MigrationsTable: "schema_migrations",
		DatabaseName:    "realmcore_audit",
	})
	if err != nil {
		return fmt.Errorf("create postgres migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(migrationsPath, "postgres", driver)
	if err != nil {
		return fmt.Errorf("create migrate instance from %s: %w", migrationsPath, err)
	}

	logger.Info("auditstore: applying migrations", "path", migrationsPath)
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
