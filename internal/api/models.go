package api

import "github.com/phrazzld/taskboard/internal/domain"

// TaskRequest is the body of POST /tasks and PUT /tasks/{id}.
type TaskRequest struct {
	Title string `json:"title" validate:"required"`
}

// Validate applies the domain title rule, so whitespace-only titles are
// rejected before the service is called.
func (r TaskRequest) Validate() error {
	return domain.ValidateTitle(r.Title)
}

// TaskResponse is the JSON representation of a task.
type TaskResponse struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{ID: task.ID, Title: task.Title}
}

func tasksToResponse(tasks []domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, taskToResponse(&tasks[i]))
	}
	return out
}
