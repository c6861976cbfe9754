//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"slices"
	"testing"
)

func TestResolver_Resolve(t *testing.T) {
	bindings := []Binding{
		{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
		{ActionPlayPause, []string{" "}, "Play/pause", "player"},
		{ActionNewEntry, []string{"n"}, "New entry", "journal"},
		{ActionNewAffirmation, []string{"enter", "n"}, "New affirmation", "home"},
	}

	r := NewResolver(bindings)

	tests := []struct {
		name     string
		key      string
		contexts []string
		expected Action
	}{
		{"global key", "q", []string{"home", "global"}, ActionQuit},
		{"context key", " ", []string{"player", "global"}, ActionPlayPause},
		{"same key in home", "n", []string{"home", "global"}, ActionNewAffirmation},
		{"same key in journal", "n", []string{"journal", "global"}, ActionNewEntry},
		{"first context wins", "n", []string{"journal", "home"}, ActionNewEntry},
		{"inactive context", " ", []string{"home", "global"}, ""},
		{"no contexts", "q", nil, ""},
		{"unknown key", "x", []string{"global"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := r.Resolve(tt.key, tt.contexts...)
			if result != tt.expected {
				t.Errorf("Resolve(%q, %v) = %q, want %q", tt.key, tt.contexts, result, tt.expected)
			}
		})
	}
}

func TestResolver_KeysFor(t *testing.T) {
	bindings := []Binding{
		{ActionMoveUp, []string{"k", "up"}, "Move up", "meditations"},
		{ActionMoveUp, []string{"k", "up"}, "Previous entry", "journal"},
		{ActionQuit, []string{"q"}, "Quit", "global"},
	}

	r := NewResolver(bindings)

	if got := r.KeysFor(ActionMoveUp); !slices.Equal(got, []string{"k", "up"}) {
		t.Errorf("KeysFor(MoveUp) = %v, want [k up]", got)
	}
	if got := r.KeysFor(ActionStop); got != nil {
		t.Errorf("KeysFor(Stop) = %v, want nil", got)
	}
}

func TestResolver_DefaultBindings(t *testing.T) {
	r := NewResolver(All)

	if got := r.Resolve("right", "player", "meditations", "global"); got != ActionSeekForward {
		t.Errorf("right = %q, want %q", got, ActionSeekForward)
	}
	if got := r.Resolve("ctrl+s", "editor"); got != ActionSubmit {
		t.Errorf("ctrl+s in editor = %q, want %q", got, ActionSubmit)
	}
	if got := r.Resolve("s", "editor"); got != "" {
		t.Errorf("s in editor = %q, want no action", got)
	}
}
