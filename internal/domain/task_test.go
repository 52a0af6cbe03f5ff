package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		wantErr bool
	}{
		{name: "plain title", title: "Buy milk"},
		{name: "surrounding spaces kept", title: "  Buy bread "},
		{name: "empty", title: "", wantErr: true},
		{name: "whitespace only", title: " \t\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task, err := NewTask(tt.title)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, task)
				assert.True(t, errors.Is(err, ErrValidation))
				assert.True(t, errors.Is(err, ErrEmptyTitle))

				var vErr *ValidationError
				require.True(t, errors.As(err, &vErr))
				assert.Equal(t, "title", vErr.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(0), task.ID)
			assert.Equal(t, tt.title, task.Title)
		})
	}
}

func TestTask_Validate(t *testing.T) {
	assert.NoError(t, (&Task{ID: 3, Title: "x"}).Validate())
	assert.ErrorIs(t, (&Task{ID: 3}).Validate(), ErrValidation)
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("title", "is required", nil)

	assert.Equal(t, "invalid title: is required", err.Error())
	assert.ErrorIs(t, err, ErrValidation)
}
