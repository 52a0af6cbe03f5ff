package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/phrazzld/taskboard/internal/api/shared"
)

var errInvalidTaskID = errors.New("task id is not a positive integer")

// getPathTaskID extracts the task ID from the {id} path parameter.
// Only positive base-10 integers are accepted.
func getPathTaskID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidTaskID
	}
	return id, nil
}

// decodeTaskRequest reads and validates the request body. On failure it
// writes the 400 response itself and returns false.
func decodeTaskRequest(w http.ResponseWriter, r *http.Request) (TaskRequest, bool) {
	var req TaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgInvalidFormat, err)
		return req, false
	}
	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgTitleRequired, err)
		return req, false
	}
	return req, true
}
