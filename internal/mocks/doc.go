// Package mocks provides centralized mock implementations for testing.
//
// Two styles are used, matching what each test needs:
//
//   - testify/mock types (TestifyMockTaskStore) when a test asserts on the
//     exact calls made, or that a call was never made.
//   - function-field types (MockTaskService) when a test only needs to stub
//     return values.
//
// Usage:
//
//	svc := &mocks.MockTaskService{
//	    GetTaskFn: func(ctx context.Context, id int64) (*domain.Task, error) {
//	        return &domain.Task{ID: id, Title: "Buy milk"}, nil
//	    },
//	}
package mocks
