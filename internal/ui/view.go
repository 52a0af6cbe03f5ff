package ui

import (
	"fmt"
	"io"
	"strings"
)

const separator = "------------"

// Render writes the screen for s to w.
//
//	------------
//	Task Manager
//	------------
//	new task: <draft>
//	   [1] Buy milk
//	 * editing [2]: Walk the dog
func Render(w io.Writer, s State) {
	fmt.Fprintln(w, separator)
	fmt.Fprintln(w, "Task Manager")
	fmt.Fprintln(w, separator)
	fmt.Fprintf(w, "new task: %s\n", normalizeTitle(s.Draft))

	if len(s.Tasks) == 0 {
		fmt.Fprintln(w, "(no tasks)")
		return
	}
	for _, task := range s.Tasks {
		if s.Editing != nil && s.Editing.ID == task.ID {
			fmt.Fprintf(w, " * editing [%d]: %s\n", task.ID, normalizeTitle(s.Editing.Title))
			continue
		}
		fmt.Fprintf(w, "   [%d] %s\n", task.ID, normalizeTitle(task.Title))
	}
}

// normalizeTitle keeps each task on one line.
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	return strings.ReplaceAll(title, "\n", " ")
}
