// Package sqlite provides the SQLite-backed chart history store.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation. Store exposes driven.ChartStore through
// the ChartStore accessor.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql files,
// and applied versions are recorded in schema_migrations.
//
// # Data Location
//
// By default, the database is stored at ~/.ziwei/data/charts.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking provided
// by SQLite in WAL mode.
package sqlite
