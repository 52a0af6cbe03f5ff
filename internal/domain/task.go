package domain

import "strings"

// Task is the sole persisted entity: an identifier assigned by the store and a title.
type Task struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// ValidateTitle reports whether title is acceptable for a task.
// A title made only of whitespace counts as empty.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return NewValidationError("title", "is required", ErrEmptyTitle)
	}
	return nil
}

// NewTask returns an unsaved task (ID zero) after validating its title.
func NewTask(title string) (*Task, error) {
	if err := ValidateTitle(title); err != nil {
		return nil, err
	}
	return &Task{Title: title}, nil
}

// Validate checks if the Task has valid data.
func (t *Task) Validate() error {
	return ValidateTitle(t.Title)
}
