// Package ui implements the single-screen task view: its state, the pure
// reducer that advances it, a controller that issues API calls, and a text
// renderer.
package ui

import "github.com/phrazzld/taskboard/internal/domain"

// Edit is an in-progress edit of one task.
type Edit struct {
	ID    int64
	Title string
}

// State is everything the view displays. Tasks is a local copy of the
// server's list and is never re-fetched after a mutation.
type State struct {
	Tasks   []domain.Task
	Editing *Edit
	Draft   string
}

// Action describes a state transition.
type Action interface {
	isAction()
}

type (
	// Loaded replaces the task list.
	Loaded struct{ Tasks []domain.Task }
	// DraftChanged sets the add-task input.
	DraftChanged struct{ Draft string }
	// Added appends a created task and clears the draft.
	Added struct{ Task domain.Task }
	// EditStarted begins editing the task with ID.
	EditStarted struct{ ID int64 }
	// EditTitleChanged sets the title of the edit in progress.
	EditTitleChanged struct{ Title string }
	// Saved replaces the task with the same ID and ends the edit.
	Saved struct{ Task domain.Task }
	// EditCanceled ends the edit without changes.
	EditCanceled struct{}
	// Deleted removes the task with ID.
	Deleted struct{ ID int64 }
)

func (Loaded) isAction() {}
func (DraftChanged) isAction() {}
func (Added) isAction() {}
func (EditStarted) isAction() {}
func (EditTitleChanged) isAction() {}
func (Saved) isAction() {}
func (EditCanceled) isAction() {}
func (Deleted) isAction() {}

// Reduce returns the state that results from applying a to s.
// s is never modified; slices and the edit are copied.
func Reduce(s State, a Action) State {
	next := State{
		Tasks:   cloneTasks(s.Tasks),
		Editing: cloneEdit(s.Editing),
		Draft:   s.Draft,
	}

	switch a := a.(type) {
	case Loaded:
		next.Tasks = cloneTasks(a.Tasks)
	case DraftChanged:
		next.Draft = a.Draft
	case Added:
		next.Tasks = append(next.Tasks, a.Task)
		next.Draft = ""
	case EditStarted:
		if i := indexOf(next.Tasks, a.ID); i >= 0 {
			next.Editing = &Edit{ID: a.ID, Title: next.Tasks[i].Title}
		}
	case EditTitleChanged:
		if next.Editing != nil {
			next.Editing.Title = a.Title
		}
	case Saved:
		if i := indexOf(next.Tasks, a.Task.ID); i >= 0 {
			next.Tasks[i] = a.Task
		}
		next.Editing = nil
	case EditCanceled:
		next.Editing = nil
	case Deleted:
		if i := indexOf(next.Tasks, a.ID); i >= 0 {
			next.Tasks = append(next.Tasks[:i], next.Tasks[i+1:]...)
		}
		if next.Editing != nil && next.Editing.ID == a.ID {
			next.Editing = nil
		}
	}
	return next
}

func indexOf(tasks []domain.Task, id int64) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneTasks(tasks []domain.Task) []domain.Task {
	out := make([]domain.Task, len(tasks))
	copy(out, tasks)
	return out
}

func cloneEdit(e *Edit) *Edit {
	if e == nil {
		return nil
	}
	c := *e
	return &c
}
