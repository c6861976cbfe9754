package handler

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/serein/internal/keymap"
)

func TestResults(t *testing.T) {
	if NotHandled.Handled || NotHandled.Cmd != nil {
		t.Error("NotHandled should be empty")
	}
	if !HandledNoCmd.Handled || HandledNoCmd.Cmd != nil {
		t.Error("HandledNoCmd should be handled without a command")
	}
	cmd := func() tea.Msg { return "test" }
	if r := Handled(cmd); !r.Handled || r.Cmd == nil {
		t.Error("Handled(cmd) should carry the command")
	}
}

func TestChain_StopsAtFirstHandler(t *testing.T) {
	var calls []string
	first := func(keymap.Action) Result {
		calls = append(calls, "first")
		return NotHandled
	}
	second := func(a keymap.Action) Result {
		calls = append(calls, "second")
		if a == keymap.ActionStop {
			return Handled(func() tea.Msg { return "stopped" })
		}
		return NotHandled
	}
	third := func(keymap.Action) Result {
		calls = append(calls, "third")
		return HandledNoCmd
	}

	handled, cmd := Chain(keymap.ActionStop, first, second, third)

	if !handled {
		t.Fatal("expected action to be handled")
	}
	if cmd == nil || cmd() != "stopped" {
		t.Error("expected the second handler's command")
	}
	if len(calls) != 2 {
		t.Errorf("calls = %v, want first and second only", calls)
	}
}

func TestChain_NothingHandles(t *testing.T) {
	handled, cmd := Chain(keymap.ActionStop, func(keymap.Action) Result { return NotHandled })
	if handled || cmd != nil {
		t.Error("expected not handled")
	}
}

func TestChain_EmptyAction(t *testing.T) {
	called := false
	handled, _ := Chain("", func(keymap.Action) Result {
		called = true
		return HandledNoCmd
	})
	if handled || called {
		t.Error("empty action should not reach handlers")
	}
}
