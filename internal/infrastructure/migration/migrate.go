// Package migration applies the SQL schema under migrations/ with golang-migrate.
package migration

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"
)

// DefaultDir is the migrations directory relative to the repository root
const DefaultDir = "migrations"

// Migrator runs the POS schema migrations against PostgreSQL
type Migrator struct {
	migrate *migrate.Migrate
	logger  *zap.Logger
}

// New creates a Migrator on an open database handle
func New(db *sql.DB, migrationsPath string, logger *zap.Logger) (*Migrator, error) {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(sourceURL(migrationsPath), "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	return &Migrator{migrate: m, logger: logger}, nil
}

// NewFromURL creates a Migrator from a postgres:// database URL
func NewFromURL(databaseURL, migrationsPath string, logger *zap.Logger) (*Migrator, error) {
	m, err := migrate.New(sourceURL(migrationsPath), databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	return &Migrator{migrate: m, logger: logger}, nil
}

func sourceURL(migrationsPath string) string {
	return "file://" + filepath.ToSlash(migrationsPath)
}

// ResolveDir finds the migrations directory. An explicit path wins; otherwise
// the working directory and the directory two levels above the executable
// are tried in that order.
func ResolveDir(explicit string) (string, error) {
	if explicit != "" {
		return filepath.Abs(explicit)
	}
	candidates := []string{DefaultDir}
	if exe, err := os.Executable(); err == nil {
		candidates = append(candidates, filepath.Join(filepath.Dir(exe), "..", "..", DefaultDir))
	}
	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return filepath.Abs(candidate)
		}
	}
	return filepath.Abs(DefaultDir)
}

// run executes one migrate operation. ErrNoChange is not an error; it is
// reported through the returned bool.
func (m *Migrator) run(op string, fn func() error) (bool, error) {
	err := fn()
	if errors.Is(err, migrate.ErrNoChange) {
		m.logger.Info("Schema already up to date", zap.String("operation", op))
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("migration %s failed: %w", op, err)
	}
	return true, nil
}

func (m *Migrator) logVersion(msg string) {
	version, dirty, err := m.Version()
	if err != nil {
		m.logger.Warn("Failed to read migration version", zap.Error(err))
		return
	}
	m.logger.Info(msg, zap.Uint("version", version), zap.Bool("dirty", dirty))
}

// Up applies all pending migrations
func (m *Migrator) Up() error {
	m.logger.Info("Running migrations up")
	changed, err := m.run("up", m.migrate.Up)
	if err != nil || !changed {
		return err
	}
	m.logVersion("Migrations completed")
	return nil
}

// Down rolls back every migration
func (m *Migrator) Down() error {
	m.logger.Info("Running migrations down")
	changed, err := m.run("down", m.migrate.Down)
	if err != nil || !changed {
		return err
	}
	m.logger.Info("All migrations rolled back")
	return nil
}

// Steps applies n migrations; a negative n rolls back
func (m *Migrator) Steps(n int) error {
	m.logger.Info("Running migration steps", zap.Int("steps", n))
	changed, err := m.run("steps", func() error { return m.migrate.Steps(n) })
	if err != nil || !changed {
		return err
	}
	m.logVersion("Migration steps completed")
	return nil
}

// GoTo migrates up or down to the given version
func (m *Migrator) GoTo(version uint) error {
	m.logger.Info("Migrating to version", zap.Uint("target_version", version))
	changed, err := m.run(fmt.Sprintf("goto %d", version), func() error { return m.migrate.Migrate(version) })
	if err != nil || !changed {
		return err
	}
	m.logVersion("Migration to version completed")
	return nil
}

// Version returns the applied version; 0 means nothing has been applied
func (m *Migrator) Version() (uint, bool, error) {
	version, dirty, err := m.migrate.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to get migration version: %w", err)
	}
	return version, dirty, nil
}

// Force records version as applied without running anything.
// It is the way out of a dirty schema after a failed migration.
func (m *Migrator) Force(version int) error {
	m.logger.Warn("Forcing migration version", zap.Int("version", version))
	if err := m.migrate.Force(version); err != nil {
		return fmt.Errorf("failed to force version %d: %w", version, err)
	}
	return nil
}

// Drop removes every table in the database
func (m *Migrator) Drop() error {
	m.logger.Warn("Dropping database - all data will be lost")
	if err := m.migrate.Drop(); err != nil {
		return fmt.Errorf("failed to drop database: %w", err)
	}
	return nil
}

// Close releases the source and database handles
func (m *Migrator) Close() error {
	sourceErr, dbErr := m.migrate.Close()
	return errors.Join(sourceErr, dbErr)
}
