package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/phrazzld/taskboard/internal/domain"
	"github.com/phrazzld/taskboard/internal/mocks"
	"github.com/phrazzld/taskboard/internal/service"
	"github.com/phrazzld/taskboard/internal/testutils"
)

func newTestRouter(svc service.TaskService) http.Handler {
	r := chi.NewRouter()
	NewTaskHandler(svc, slog.Default()).Routes(r)
	return r
}

func storageError(op string) error {
	return &service.TaskServiceError{Operation: op, Message: "failed", Err: errors.New("database is locked")}
}

func TestNewTaskHandler_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { NewTaskHandler(nil, slog.Default()) })
	assert.Panics(t, func() { NewTaskHandler(&mocks.MockTaskService{}, nil) })
}

func TestListTasks(t *testing.T) {
	tests := []struct {
		name         string
		listFn       func(context.Context) ([]domain.Task, error)
		expectedCode int
		expectedBody string
	}{
		{
			name:         "empty",
			listFn:       func(context.Context) ([]domain.Task, error) { return []domain.Task{}, nil },
			expectedCode: http.StatusOK,
			expectedBody: `[]`,
		},
		{
			name: "tasks",
			listFn: func(context.Context) ([]domain.Task, error) {
				return []domain.Task{{ID: 1, Title: "Buy milk"}, {ID: 2, Title: "Walk dog"}}, nil
			},
			expectedCode: http.StatusOK,
			expectedBody: `[{"id":1,"title":"Buy milk"},{"id":2,"title":"Walk dog"}]`,
		},
		{
			name:         "storage failure",
			listFn:       func(context.Context) ([]domain.Task, error) { return nil, storageError("list_tasks") },
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := testutils.Serve(t, newTestRouter(&mocks.MockTaskService{ListTasksFn: tt.listFn}),
				http.MethodGet, "/tasks", nil)

			if tt.expectedBody == "" {
				testutils.AssertErrorResponse(t, rec, tt.expectedCode, MsgFetchTasksFailed)
				assert.NotContains(t, rec.Body.String(), "locked")
				return
			}
			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.JSONEq(t, tt.expectedBody, rec.Body.String())
		})
	}
}

func TestGetTask(t *testing.T) {
	svc := &mocks.MockTaskService{
		GetTaskFn: func(_ context.Context, id int64) (*domain.Task, error) {
			switch id {
			case 1:
				return &domain.Task{ID: 1, Title: "Buy milk"}, nil
			case 2:
				return nil, storageError("get_task")
			default:
				return nil, service.ErrTaskNotFound
			}
		},
	}
	router := newTestRouter(svc)

	rec := testutils.Serve(t, router, http.MethodGet, "/tasks/1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1,"title":"Buy milk"}`, rec.Body.String())

	testutils.AssertErrorResponse(t, testutils.Serve(t, router, http.MethodGet, "/tasks/99", nil),
		http.StatusNotFound, MsgTaskNotFound)
	testutils.AssertErrorResponse(t, testutils.Serve(t, router, http.MethodGet, "/tasks/2", nil),
		http.StatusInternalServerError, MsgFetchTaskFailed)
}

func TestTaskRoutes_InvalidIDIsNotFound(t *testing.T) {
	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		for _, id := range []string{"abc", "0", "-3", "1.5"} {
			t.Run(method+" "+id, func(t *testing.T) {
				svc := &mocks.MockTaskService{}
				rec := testutils.Serve(t, newTestRouter(svc), method, "/tasks/"+id, `{"title":"x"}`)

				testutils.AssertErrorResponse(t, rec, http.StatusNotFound, MsgTaskNotFound)
				assert.Empty(t, svc.Calls)
			})
		}
	}
}

func TestCreateTask(t *testing.T) {
	tests := []struct {
		name         string
		body         any
		createErr    error
		expectedCode int
		expectedMsg  string
		reachesSvc   bool
	}{
		{name: "created", body: map[string]string{"title": "Buy milk"}, expectedCode: http.StatusCreated, reachesSvc: true},
		{name: "missing title", body: map[string]string{}, expectedCode: http.StatusBadRequest, expectedMsg: MsgTitleRequired},
		{name: "empty title", body: map[string]string{"title": ""}, expectedCode: http.StatusBadRequest, expectedMsg: MsgTitleRequired},
		{name: "malformed json", body: `{"title":`, expectedCode: http.StatusBadRequest, expectedMsg: MsgInvalidFormat},
		{name: "title not a string", body: `{"title":42}`, expectedCode: http.StatusBadRequest, expectedMsg: MsgInvalidFormat},
		{name: "blank title", body: map[string]string{"title": " \t "}, expectedCode: http.StatusBadRequest, expectedMsg: MsgTitleRequired},
		{name: "trailing garbage", body: `{"title":"a"} junk`, expectedCode: http.StatusBadRequest, expectedMsg: MsgInvalidFormat},
		{name: "two json values", body: `{"title":"a"}{"title":"b"}`, expectedCode: http.StatusBadRequest, expectedMsg: MsgInvalidFormat},
		{
			name:         "validation error from service",
			body:         map[string]string{"title": "x"},
			createErr:    domain.NewValidationError("title", "is required", domain.ErrEmptyTitle),
			expectedCode: http.StatusBadRequest,
			expectedMsg:  MsgTitleRequired,
			reachesSvc:   true,
		},
		{
			name:         "storage failure",
			body:         map[string]string{"title": "x"},
			createErr:    storageError("create_task"),
			expectedCode: http.StatusInternalServerError,
			expectedMsg:  MsgCreateFailed,
			reachesSvc:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mocks.MockTaskService{}
			if tt.createErr != nil {
				svc.CreateTaskFn = func(context.Context, string) (*domain.Task, error) { return nil, tt.createErr }
			}

			rec := testutils.Serve(t, newTestRouter(svc), http.MethodPost, "/tasks", tt.body)

			if tt.expectedMsg != "" {
				testutils.AssertErrorResponse(t, rec, tt.expectedCode, tt.expectedMsg)
			} else {
				assert.Equal(t, tt.expectedCode, rec.Code)
				assert.JSONEq(t, `{"id":1,"title":"Buy milk"}`, rec.Body.String())
			}

			if tt.reachesSvc {
				assert.Equal(t, []string{"CreateTask"}, svc.Calls)
			} else {
				assert.Empty(t, svc.Calls)
			}
		})
	}
}

func TestUpdateTask(t *testing.T) {
	svc := &mocks.MockTaskService{
		UpdateTaskFn: func(_ context.Context, id int64, title string) (*domain.Task, error) {
			switch id {
			case 1:
				return &domain.Task{ID: 1, Title: title}, nil
			case 2:
				return nil, storageError("update_task")
			default:
				return nil, service.ErrTaskNotFound
			}
		},
	}
	router := newTestRouter(svc)

	rec := testutils.Serve(t, router, http.MethodPut, "/tasks/1", map[string]string{"title": "Buy bread"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1,"title":"Buy bread"}`, rec.Body.String())

	testutils.AssertErrorResponse(t,
		testutils.Serve(t, router, http.MethodPut, "/tasks/7", map[string]string{"title": "x"}),
		http.StatusNotFound, MsgTaskNotFound)
	testutils.AssertErrorResponse(t,
		testutils.Serve(t, router, http.MethodPut, "/tasks/2", map[string]string{"title": "x"}),
		http.StatusInternalServerError, MsgUpdateFailed)

	// 400 takes precedence over 404.
	testutils.AssertErrorResponse(t,
		testutils.Serve(t, router, http.MethodPut, "/tasks/7", map[string]string{}),
		http.StatusBadRequest, MsgTitleRequired)
	testutils.AssertErrorResponse(t,
		testutils.Serve(t, router, http.MethodPut, "/tasks/abc", `not json`),
		http.StatusBadRequest, MsgInvalidFormat)
	testutils.AssertErrorResponse(t,
		testutils.Serve(t, router, http.MethodPut, "/tasks/1", map[string]string{"title": "   "}),
		http.StatusBadRequest, MsgTitleRequired)
	testutils.AssertErrorResponse(t,
		testutils.Serve(t, router, http.MethodPut, "/tasks/1", `{"title":"a"},`),
		http.StatusBadRequest, MsgInvalidFormat)
}

func TestDeleteTask(t *testing.T) {
	svc := &mocks.MockTaskService{
		DeleteTaskFn: func(_ context.Context, id int64) error {
			switch id {
			case 1:
				return nil
			case 2:
				return storageError("delete_task")
			default:
				return service.ErrTaskNotFound
			}
		},
	}
	router := newTestRouter(svc)

	rec := testutils.Serve(t, router, http.MethodDelete, "/tasks/1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Task deleted successfully"}`, rec.Body.String())

	testutils.AssertErrorResponse(t, testutils.Serve(t, router, http.MethodDelete, "/tasks/5", nil),
		http.StatusNotFound, MsgTaskNotFound)
	testutils.AssertErrorResponse(t, testutils.Serve(t, router, http.MethodDelete, "/tasks/2", nil),
		http.StatusInternalServerError, MsgDeleteFailed)
}
