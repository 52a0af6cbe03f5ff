package ui

import (
	"context"
	"log/slog"
	"strings"

	"github.com/phrazzld/taskboard/internal/domain"
)

// TaskAPI is the part of the API client the view needs.
type TaskAPI interface {
	ListTasks(ctx context.Context) ([]domain.Task, error)
	CreateTask(ctx context.Context, title string) (*domain.Task, error)
	UpdateTask(ctx context.Context, id int64, title string) (*domain.Task, error)
	DeleteTask(ctx context.Context, id int64) error
}

// Controller owns the view state and turns user intents into API calls.
// A failed call is logged and leaves the state as it was.
type Controller struct {
	api    TaskAPI
	logger *slog.Logger
	state  State
}

// NewController creates a Controller with an empty state.
func NewController(api TaskAPI, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		api:    api,
		logger: logger.With(slog.String("component", "task_view")),
		state:  State{Tasks: []domain.Task{}},
	}
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

func (c *Controller) dispatch(a Action) {
	c.state = Reduce(c.state, a)
}

// Mount loads the full task list once.
func (c *Controller) Mount(ctx context.Context) {
	tasks, err := c.api.ListTasks(ctx)
	if err != nil {
		c.logger.Error("failed to fetch tasks", slog.String("error", err.Error()))
		return
	}
	c.dispatch(Loaded{Tasks: tasks})
}

// SetDraft updates the add-task input.
func (c *Controller) SetDraft(draft string) {
	c.dispatch(DraftChanged{Draft: draft})
}

// Add creates a task from the draft. A blank draft is ignored.
func (c *Controller) Add(ctx context.Context) {
	if strings.TrimSpace(c.state.Draft) == "" {
		return
	}

	task, err := c.api.CreateTask(ctx, c.state.Draft)
	if err != nil {
		c.logger.Error("failed to add task", slog.String("error", err.Error()))
		return
	}
	c.dispatch(Added{Task: *task})
}

// StartEdit begins editing task id. Unknown ids are ignored.
func (c *Controller) StartEdit(id int64) {
	c.dispatch(EditStarted{ID: id})
}

// SetEditTitle updates the title of the edit in progress.
func (c *Controller) SetEditTitle(title string) {
	c.dispatch(EditTitleChanged{Title: title})
}

// Save sends the edit in progress. A blank title is ignored.
func (c *Controller) Save(ctx context.Context) {
	edit := c.state.Editing
	if edit == nil || strings.TrimSpace(edit.Title) == "" {
		return
	}

	task, err := c.api.UpdateTask(ctx, edit.ID, edit.Title)
	if err != nil {
		c.logger.Error("failed to update task",
			slog.Int64("task_id", edit.ID),
			slog.String("error", err.Error()))
		return
	}
	c.dispatch(Saved{Task: *task})
}

// Cancel drops the edit in progress without contacting the server.
func (c *Controller) Cancel() {
	c.dispatch(EditCanceled{})
}

// Delete removes task id.
func (c *Controller) Delete(ctx context.Context, id int64) {
	if err := c.api.DeleteTask(ctx, id); err != nil {
		c.logger.Error("failed to delete task",
			slog.Int64("task_id", id),
			slog.String("error", err.Error()))
		return
	}
	c.dispatch(Deleted{ID: id})
}
