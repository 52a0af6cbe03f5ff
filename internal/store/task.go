package store

import (
	"context"

	"github.com/phrazzld/taskboard/internal/domain"
)

// TaskStore defines the interface for task persistence.
// Every method issues exactly one SQL statement.
type TaskStore interface {
	// List returns every task ordered by ID. Returns an empty slice when there are none.
	List(ctx context.Context) ([]domain.Task, error)

	// GetByID retrieves a task by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Task, error)

	// Create inserts a task and sets task.ID to the identifier assigned by the database.
	Create(ctx context.Context, task *domain.Task) error

	// Update replaces the title of the task with task.ID.
	// Returns ErrTaskNotFound if no row was changed.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes the task with the given ID.
	// Returns ErrTaskNotFound if no row was removed.
	Delete(ctx context.Context, id int64) error
}
