package mocks

import (
	"context"

	"github.com/phrazzld/taskboard/internal/domain"
	"github.com/phrazzld/taskboard/internal/service"
)

// MockTaskService is a function-field mock of service.TaskService.
// Unset functions return zero values; CreateTask/UpdateTask echo their input.
type MockTaskService struct {
	ListTasksFn  func(ctx context.Context) ([]domain.Task, error)
	GetTaskFn    func(ctx context.Context, id int64) (*domain.Task, error)
	CreateTaskFn func(ctx context.Context, title string) (*domain.Task, error)
	UpdateTaskFn func(ctx context.Context, id int64, title string) (*domain.Task, error)
	DeleteTaskFn func(ctx context.Context, id int64) error

	// Calls records the name of every method invoked, in order.
	Calls []string
}

var _ service.TaskService = (*MockTaskService)(nil)

// ListTasks implements service.TaskService
func (m *MockTaskService) ListTasks(ctx context.Context) ([]domain.Task, error) {
	m.Calls = append(m.Calls, "ListTasks")
	if m.ListTasksFn != nil {
		return m.ListTasksFn(ctx)
	}
	return []domain.Task{}, nil
}

// GetTask implements service.TaskService
func (m *MockTaskService) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	m.Calls = append(m.Calls, "GetTask")
	if m.GetTaskFn != nil {
		return m.GetTaskFn(ctx, id)
	}
	return nil, service.ErrTaskNotFound
}

// CreateTask implements service.TaskService
func (m *MockTaskService) CreateTask(ctx context.Context, title string) (*domain.Task, error) {
	m.Calls = append(m.Calls, "CreateTask")
	if m.CreateTaskFn != nil {
		return m.CreateTaskFn(ctx, title)
	}
	return &domain.Task{ID: 1, Title: title}, nil
}

// UpdateTask implements service.TaskService
func (m *MockTaskService) UpdateTask(ctx context.Context, id int64, title string) (*domain.Task, error) {
	m.Calls = append(m.Calls, "UpdateTask")
	if m.UpdateTaskFn != nil {
		return m.UpdateTaskFn(ctx, id, title)
	}
	return &domain.Task{ID: id, Title: title}, nil
}

// DeleteTask implements service.TaskService
func (m *MockTaskService) DeleteTask(ctx context.Context, id int64) error {
	m.Calls = append(m.Calls, "DeleteTask")
	if m.DeleteTaskFn != nil {
		return m.DeleteTaskFn(ctx, id)
	}
	return nil
}
