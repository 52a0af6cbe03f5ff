// Package testutils provides testing utilities shared by the package tests:
// a migrated SQLite database in a temporary directory, HTTP request and
// response helpers for the task API, and an in-memory slog handler for
// asserting on log output.
package testutils
