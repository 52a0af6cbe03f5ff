package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/taskboard/internal/api/shared"
	"github.com/phrazzld/taskboard/internal/platform/logger"
	"github.com/phrazzld/taskboard/internal/service"
)

// TaskHandler serves the /tasks endpoints.
type TaskHandler struct {
	taskService service.TaskService
	logger      *slog.Logger
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService service.TaskService, logger *slog.Logger) *TaskHandler {
	if taskService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("taskService cannot be nil for TaskHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TaskHandler")
	}

	return &TaskHandler{
		taskService: taskService,
		logger:      logger.With(slog.String("component", "task_handler")),
	}
}

// ListTasks handles GET /tasks
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.ListTasks(r.Context())
	if err != nil {
		respondWithServiceError(w, r, err, MsgFetchTasksFailed)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, tasksToResponse(tasks))
}

// GetTask handles GET /tasks/{id}
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, err := getPathTaskID(r)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusNotFound, MsgTaskNotFound, err)
		return
	}

	task, err := h.taskService.GetTask(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, r, err, MsgFetchTaskFailed)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// CreateTask handles POST /tasks
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	req, ok := decodeTaskRequest(w, r)
	if !ok {
		return
	}

	task, err := h.taskService.CreateTask(r.Context(), req.Title)
	if err != nil {
		respondWithServiceError(w, r, err, MsgCreateFailed)
		return
	}

	log.Debug("task created", slog.Int64("task_id", task.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, taskToResponse(task))
}

// UpdateTask handles PUT /tasks/{id}
// The body is validated before the ID, so a bad title is reported even for
// an unknown task.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	req, ok := decodeTaskRequest(w, r)
	if !ok {
		return
	}

	id, err := getPathTaskID(r)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusNotFound, MsgTaskNotFound, err)
		return
	}

	task, err := h.taskService.UpdateTask(r.Context(), id, req.Title)
	if err != nil {
		respondWithServiceError(w, r, err, MsgUpdateFailed)
		return
	}

	log.Debug("task updated", slog.Int64("task_id", task.ID))
	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// DeleteTask handles DELETE /tasks/{id}
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathTaskID(r)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusNotFound, MsgTaskNotFound, err)
		return
	}

	if err := h.taskService.DeleteTask(r.Context(), id); err != nil {
		respondWithServiceError(w, r, err, MsgDeleteFailed)
		return
	}

	log.Debug("task deleted", slog.Int64("task_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{Message: MsgTaskDeleted})
}
