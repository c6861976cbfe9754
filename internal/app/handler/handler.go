// Package handler provides a result type and chain function for action handlers.
package handler

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/serein/internal/keymap"
)

// Result represents the outcome of an action handler.
type Result struct {
	Handled bool
	Cmd     tea.Cmd
}

// NotHandled is returned when a handler ignores the action.
var NotHandled = Result{}

// HandledNoCmd is a convenience for handlers that act but return no command.
var HandledNoCmd = Result{Handled: true}

// Handled creates a Result indicating the action was handled with a command.
func Handled(cmd tea.Cmd) Result {
	return Result{Handled: true, Cmd: cmd}
}

// Handler attempts to handle a resolved action.
type Handler func(a keymap.Action) Result

// Chain offers a to each handler in order until one handles it. An empty
// action is never handled.
func Chain(a keymap.Action, handlers ...Handler) (bool, tea.Cmd) {
	if a == "" {
		return false, nil
	}
	for _, h := range handlers {
		if r := h(a); r.Handled {
			return true, r.Cmd
		}
	}
	return false, nil
}
