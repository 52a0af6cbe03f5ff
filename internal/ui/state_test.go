package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phrazzld/taskboard/internal/domain"
)

func sample() State {
	return State{
		Tasks: []domain.Task{{ID: 1, Title: "Buy milk"}, {ID: 2, Title: "Walk dog"}},
		Draft: "draft",
	}
}

func TestReduce(t *testing.T) {
	tests := []struct {
		name   string
		state  State
		action Action
		want   State
	}{
		{
			name:   "loaded replaces list",
			state:  sample(),
			action: Loaded{Tasks: []domain.Task{{ID: 9, Title: "x"}}},
			want:   State{Tasks: []domain.Task{{ID: 9, Title: "x"}}, Draft: "draft"},
		},
		{
			name:   "draft changed",
			state:  sample(),
			action: DraftChanged{Draft: "new"},
			want:   State{Tasks: sample().Tasks, Draft: "new"},
		},
		{
			name:   "added appends and clears draft",
			state:  sample(),
			action: Added{Task: domain.Task{ID: 3, Title: "draft"}},
			want: State{Tasks: []domain.Task{
				{ID: 1, Title: "Buy milk"}, {ID: 2, Title: "Walk dog"}, {ID: 3, Title: "draft"},
			}},
		},
		{
			name:   "edit started copies title",
			state:  sample(),
			action: EditStarted{ID: 2},
			want:   State{Tasks: sample().Tasks, Draft: "draft", Editing: &Edit{ID: 2, Title: "Walk dog"}},
		},
		{
			name:   "edit of unknown id ignored",
			state:  sample(),
			action: EditStarted{ID: 99},
			want:   sample(),
		},
		{
			name:   "edit title without edit ignored",
			state:  sample(),
			action: EditTitleChanged{Title: "x"},
			want:   sample(),
		},
		{
			name:   "saved replaces by id and ends edit",
			state:  State{Tasks: sample().Tasks, Editing: &Edit{ID: 1, Title: "Buy bread"}},
			action: Saved{Task: domain.Task{ID: 1, Title: "Buy bread"}},
			want:   State{Tasks: []domain.Task{{ID: 1, Title: "Buy bread"}, {ID: 2, Title: "Walk dog"}}},
		},
		{
			name:   "cancel ends edit",
			state:  State{Tasks: sample().Tasks, Editing: &Edit{ID: 1, Title: "zzz"}},
			action: EditCanceled{},
			want:   State{Tasks: sample().Tasks},
		},
		{
			name:   "deleted removes by id",
			state:  sample(),
			action: Deleted{ID: 1},
			want:   State{Tasks: []domain.Task{{ID: 2, Title: "Walk dog"}}, Draft: "draft"},
		},
		{
			name:   "deleting edited task ends edit",
			state:  State{Tasks: sample().Tasks, Editing: &Edit{ID: 2, Title: "w"}},
			action: Deleted{ID: 2},
			want:   State{Tasks: []domain.Task{{ID: 1, Title: "Buy milk"}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Reduce(tt.state, tt.action))
		})
	}
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	in := State{Tasks: sample().Tasks, Editing: &Edit{ID: 1, Title: "Buy milk"}}

	Reduce(in, EditTitleChanged{Title: "changed"})
	Reduce(in, Deleted{ID: 1})
	Reduce(in, Saved{Task: domain.Task{ID: 2, Title: "changed"}})

	assert.Equal(t, []domain.Task{{ID: 1, Title: "Buy milk"}, {ID: 2, Title: "Walk dog"}}, in.Tasks)
	assert.Equal(t, &Edit{ID: 1, Title: "Buy milk"}, in.Editing)
}
