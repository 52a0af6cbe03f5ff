// Package sqlstore implements store.TaskStore on top of database/sql.
//
// Two drivers are supported: a local single-file SQLite database
// (modernc.org/sqlite, registered as "sqlite") and PostgreSQL through
// pgx's database/sql adapter (registered as "pgx"). Queries are written
// once with "?" placeholders and rebound for the active dialect. The
// schema is created by goose migrations embedded in the binary.
package sqlstore
