package auditstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Driver selects the gorm dialect backing the audit log.
type Driver string

const (
	// DriverSQLite is the single-node, file-backed default, suitable
	// for a standalone realmcored or local development.
	DriverSQLite Driver = "sqlite"

	// DriverPostgres is the HA-capable backend, with schema managed by
	// golang-migrate rather than gorm's AutoMigrate (see migrate.go).
	DriverPostgres Driver = "postgres"
)

// Config configures the relational extraction audit log.
type Config struct {
	Driver         Driver
	DSN            string
	MigrationsPath string
}

// Store records and queries extraction runs.
type Store struct {
	db *gorm.DB
}

// Open connects to the configured database and ensures its schema is
// current: sqlite uses gorm's AutoMigrate (fine for a single dev
// process), postgres runs the golang-migrate migrations at
// cfg.MigrationsPath so multiple realmcored replicas never race each
// other's DDL.
func Open(ctx context.Context, cfg Config) (*Store, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case DriverSQLite, "":
		if err := os.MkdirAll(filepath.Dir(cfg.DSN), 0o755); err != nil {
			return nil, fmt.Errorf("auditstore: create sqlite directory: %w", err)
		}
		dsn := cfg.DSN + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
		dialector = sqlite.Open(dsn)
	case DriverPostgres:
		dialector = postgres.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("auditstore: unsupported driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("auditstore: connect: %w", err)
	}

	switch cfg.Driver {
	case DriverSQLite, "":
		if err := db.AutoMigrate(&ExtractionRecord{}); err != nil {
			return nil, fmt.Errorf("auditstore: automigrate: %w", err)
		}
	case DriverPostgres:
		if err := runMigrations(ctx, cfg.DSN, cfg.MigrationsPath); err != nil {
			return nil, fmt.Errorf("auditstore: migrate: %w", err)
		}
	}

	return &Store{db: db}, nil
}

// RecordExtraction implements adminapi.AuditRecorder: it appends one
// row describing the outcome of an extraction run. runErr is nil on
// success.
func (s *Store) RecordExtraction(ctx context.Context, buildVersion string, mapped, unmapped int, runErr error) error {
	rec := ExtractionRecord{
		BuildVersion:  buildVersion,
		RanAt:         time.Now(),
		MappedCount:   mapped,
		UnmappedCount: unmapped,
		Success:       runErr == nil,
	}
	if runErr != nil {
		rec.ErrorMessage = runErr.Error()
	}
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return fmt.Errorf("auditstore: record extraction: %w", err)
	}
	return nil
}

// Recent returns the most recent limit extraction records for
// buildVersion, newest first.
func (s *Store) Recent(ctx context.Context, buildVersion string, limit int) ([]ExtractionRecord, error) {
	var records []ExtractionRecord
	err := s.db.WithContext(ctx).
		Where("build_version = ?", buildVersion).
		Order("ran_at desc").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("auditstore: query recent for %s: %w", buildVersion, err)
	}
	return records, nil
}
