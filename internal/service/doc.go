// Package service contains the application-specific use cases for tasks.
// It validates input against the domain rules, delegates persistence to a
// store.TaskStore, and translates store errors into the three kinds the
// delivery layer understands: validation failures, not-found, and storage errors.
//
// The service layer depends on domain entities and repository interfaces (from store),
// but never on specific infrastructure implementations.
package service
