package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/ziwei/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/ziwei/internal/core/domain"
	"github.com/custodia-labs/ziwei/internal/core/ports/driven"
	"github.com/custodia-labs/ziwei/internal/logger"
)

// DatabaseFileName is the chart history database inside the data directory.
const DatabaseFileName = "charts.db"

// Store is the SQLite-based chart history. Port implementations are
// exposed through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store in the specified data directory.
// If dataDir is empty, defaults to ~/.ziwei/data/charts.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".ziwei", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, DatabaseFileName)

	// WAL lets the MCP server and the CLI share the file.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	logger.Debug("Chart store opened at %s", dbPath)

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// ChartStore returns a ChartStore interface backed by this store.
func (s *Store) ChartStore() driven.ChartStore {
	return &chartStore{store: s}
}

// migrate applies pending up migrations in version order, each in its own
// transaction together with its schema_migrations row.
func (s *Store) migrate(fsys fs.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if name := entry.Name(); strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// "001_charts.up.sql" -> 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if err := s.apply(version, string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		logger.Debug("Applied migration %s", name)
	}

	return nil
}

func (s *Store) apply(version int, script string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(script); err != nil {
		_ = tx.Rollback()
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// ==================== Chart Store ====================

// chartStore implements driven.ChartStore.
type chartStore struct {
	store *Store
}

var _ driven.ChartStore = (*chartStore)(nil)

const chartColumns = "id, label, year_stem, year_branch, month, day, hour, created_at"

// Save stores or updates a saved chart.
func (s *chartStore) Save(ctx context.Context, chart domain.SavedChart) error {
	if chart.ID == "" {
		return domain.ErrInvalidInput
	}
	if err := chart.Input.Validate(); err != nil {
		return err
	}
	if chart.CreatedAt.IsZero() {
		chart.CreatedAt = time.Now().UTC()
	}

	in := chart.Input
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO charts (`+chartColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			label = excluded.label,
			year_stem = excluded.year_stem,
			year_branch = excluded.year_branch,
			month = excluded.month,
			day = excluded.day,
			hour = excluded.hour
	`, chart.ID, chart.Label, in.YearStem.Index(), in.YearBranch.Index(),
		in.Month.Index(), in.Day, in.Hour.Index(), chart.CreatedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("saving chart: %w", err)
	}
	return nil
}

// Get retrieves a saved chart by ID.
func (s *chartStore) Get(ctx context.Context, id string) (*domain.SavedChart, error) {
	row := s.store.db.QueryRowContext(ctx,
		"SELECT "+chartColumns+" FROM charts WHERE id = ?", id)

	chart, err := scanChart(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning chart: %w", err)
	}
	return chart, nil
}

// List returns all saved charts, newest first.
func (s *chartStore) List(ctx context.Context) ([]domain.SavedChart, error) {
	rows, err := s.store.db.QueryContext(ctx,
		"SELECT "+chartColumns+" FROM charts ORDER BY created_at DESC, id ASC")
	if err != nil {
		return nil, fmt.Errorf("querying charts: %w", err)
	}
	defer rows.Close()

	charts := []domain.SavedChart{}
	for rows.Next() {
		chart, err := scanChart(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning chart: %w", err)
		}
		charts = append(charts, *chart)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating charts: %w", err)
	}
	return charts, nil
}

// Delete removes a saved chart.
func (s *chartStore) Delete(ctx context.Context, id string) error {
	res, err := s.store.db.ExecContext(ctx, "DELETE FROM charts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting chart: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting chart: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanChart(row rowScanner) (*domain.SavedChart, error) {
	var chart domain.SavedChart
	var yearStem, yearBranch, month, hour int
	var createdAt int64
	if err := row.Scan(&chart.ID, &chart.Label, &yearStem, &yearBranch,
		&month, &chart.Input.Day, &hour, &createdAt); err != nil {
		return nil, err
	}

	chart.Input.YearStem = domain.Stem(yearStem)
	chart.Input.YearBranch = domain.Branch(yearBranch)
	chart.Input.Month = domain.Branch(month)
	chart.Input.Hour = domain.Branch(hour)
	chart.CreatedAt = time.Unix(0, createdAt).UTC()
	return &chart, nil
}
