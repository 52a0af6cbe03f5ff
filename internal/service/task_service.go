package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/taskboard/internal/domain"
	"github.com/phrazzld/taskboard/internal/platform/logger"
	"github.com/phrazzld/taskboard/internal/store"
)

// TaskService provides the task operations exposed by the API.
type TaskService interface {
	// ListTasks returns every task. The slice is never nil.
	ListTasks(ctx context.Context) ([]domain.Task, error)

	// GetTask returns the task with id, or ErrTaskNotFound.
	GetTask(ctx context.Context, id int64) (*domain.Task, error)

	// CreateTask validates title and persists a new task with a store-assigned ID.
	// A validation failure returns *domain.ValidationError and never touches the store.
	CreateTask(ctx context.Context, title string) (*domain.Task, error)

	// UpdateTask validates title and replaces the title of task id.
	// Returns ErrTaskNotFound when no task was changed.
	UpdateTask(ctx context.Context, id int64, title string) (*domain.Task, error)

	// DeleteTask removes task id. Returns ErrTaskNotFound when nothing was removed.
	DeleteTask(ctx context.Context, id int64) error
}

type taskServiceImpl struct {
	store  store.TaskStore
	logger *slog.Logger
}

// NewTaskService creates a TaskService backed by taskStore.
func NewTaskService(taskStore store.TaskStore, logger *slog.Logger) (TaskService, error) {
	if taskStore == nil {
		return nil, domain.NewValidationError("taskStore", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		return nil, domain.NewValidationError("logger", "cannot be nil", domain.ErrValidation)
	}

	return &taskServiceImpl{
		store:  taskStore,
		logger: logger.With(slog.String("component", "task_service")),
	}, nil
}

// ListTasks implements TaskService.ListTasks
func (s *taskServiceImpl) ListTasks(ctx context.Context) ([]domain.Task, error) {
	tasks, err := s.store.List(ctx)
	if err != nil {
		return nil, NewTaskServiceError("list_tasks", "failed to list tasks", err)
	}
	return tasks, nil
}

// GetTask implements TaskService.GetTask
func (s *taskServiceImpl) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	task, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, NewTaskServiceError("get_task", "failed to get task", err)
	}
	return task, nil
}

// CreateTask implements TaskService.CreateTask
func (s *taskServiceImpl) CreateTask(ctx context.Context, title string) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := domain.NewTask(title)
	if err != nil {
		log.Debug("rejected task creation", slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.store.Create(ctx, task); err != nil {
		return nil, NewTaskServiceError("create_task", "failed to create task", err)
	}

	return task, nil
}

// UpdateTask implements TaskService.UpdateTask
func (s *taskServiceImpl) UpdateTask(ctx context.Context, id int64, title string) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := domain.ValidateTitle(title); err != nil {
		log.Debug("rejected task update",
			slog.Int64("task_id", id),
			slog.String("error", err.Error()))
		return nil, err
	}

	task := &domain.Task{ID: id, Title: title}
	if err := s.store.Update(ctx, task); err != nil {
		return nil, NewTaskServiceError("update_task", "failed to update task", err)
	}

	return task, nil
}

// DeleteTask implements TaskService.DeleteTask
func (s *taskServiceImpl) DeleteTask(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return NewTaskServiceError("delete_task", "failed to delete task", err)
	}
	return nil
}
