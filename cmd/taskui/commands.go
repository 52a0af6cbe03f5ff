package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/phrazzld/taskboard/internal/ui"
)

var errQuit = errors.New("quit")

const usage = `commands:
  add <title>    create a task
  edit <id>      start editing a task
  title <text>   change the title being edited
  save           save the edit
  cancel         discard the edit
  rm <id>        delete a task
  ls             redraw the screen
  help           show this text
  quit           exit
`

// session connects typed commands to a ui.Controller and redraws after each one.
type session struct {
	ctrl *ui.Controller
	out  io.Writer
}

// exec runs one input line. It returns errQuit when the user asks to leave
// and a usage error for malformed input; API failures are logged by the
// controller and never surface here.
func (s *session) exec(ctx context.Context, line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	name, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch name {
	case "add":
		s.ctrl.SetDraft(arg)
		s.ctrl.Add(ctx)
	case "edit":
		id, err := parseID(arg)
		if err != nil {
			return err
		}
		s.ctrl.StartEdit(id)
	case "title":
		s.ctrl.SetEditTitle(arg)
	case "save":
		s.ctrl.Save(ctx)
	case "cancel":
		s.ctrl.Cancel()
	case "rm":
		id, err := parseID(arg)
		if err != nil {
			return err
		}
		s.ctrl.Delete(ctx, id)
	case "ls", "refresh-screen":
	case "help":
		_, _ = io.WriteString(s.out, usage)
		return nil
	case "quit", "exit":
		return errQuit
	default:
		return fmt.Errorf("unknown command: %s", name)
	}

	ui.Render(s.out, s.ctrl.State())
	return nil
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid task id: %q", arg)
	}
	return id, nil
}
