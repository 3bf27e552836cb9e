// Package sqlite provides a unified SQLite-based implementation of driven port interfaces.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO. It implements the stores through a single database connection:
//
//   - CorpusIndexStore: the known corpus index (document name to topic id)
//   - AnalysisStore: analysis reports
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Applied versions are recorded in schema_migrations.
//
// # Data Location
//
// By default, the database is stored at ~/.gutentopics/data/gutentopics.db
package sqlite
