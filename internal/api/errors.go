package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/taskboard/internal/api/shared"
	"github.com/phrazzld/taskboard/internal/domain"
	"github.com/phrazzld/taskboard/internal/service"
	"github.com/phrazzld/taskboard/internal/store"
)

// Messages returned to clients. Internal error text never leaves the server.
const (
	MsgTitleRequired = "Title is required"
	MsgInvalidFormat = "Invalid request format"
	MsgTaskNotFound  = "Task not found"
	MsgUnexpected    = "An unexpected error occurred"

	MsgFetchTasksFailed = "Failed to fetch tasks"
	MsgFetchTaskFailed  = "Failed to fetch task"
	MsgCreateFailed     = "Failed to create task"
	MsgUpdateFailed     = "Failed to update task"
	MsgDeleteFailed     = "Failed to delete task"

	MsgTaskDeleted = "Task deleted successfully"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	case errors.Is(err, service.ErrTaskNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a user-facing message for err.
// Errors that map to 500 get MsgUnexpected; handlers replace it with the
// operation-specific failure message.
func GetSafeErrorMessage(err error) string {
	switch {
	case err == nil:
		return MsgUnexpected

	// The only constraint on a task is its title.
	case errors.Is(err, domain.ErrEmptyTitle),
		errors.Is(err, store.ErrInvalidEntity):
		return MsgTitleRequired

	case errors.Is(err, domain.ErrValidation):
		return MsgInvalidFormat

	case errors.Is(err, service.ErrTaskNotFound),
		errors.Is(err, store.ErrNotFound):
		return MsgTaskNotFound

	default:
		return MsgUnexpected
	}
}

// respondWithServiceError writes the response for an error returned by the
// task service. failure is the message used for storage errors.
func respondWithServiceError(w http.ResponseWriter, r *http.Request, err error, failure string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError {
		message = failure
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
