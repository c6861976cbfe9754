package app

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/serein/internal/app/popupctl"
	"github.com/llehouerou/serein/internal/audio"
	"github.com/llehouerou/serein/internal/catalog"
	"github.com/llehouerou/serein/internal/journal"
	"github.com/llehouerou/serein/internal/media"
	"github.com/llehouerou/serein/internal/notify"
	"github.com/llehouerou/serein/internal/playback"
	"github.com/llehouerou/serein/internal/state"
	"github.com/llehouerou/serein/internal/ui/testutil"
)

type testEnv struct {
	el       *media.Mock
	ctrl     *playback.Controller
	state    *state.Mock
	notifier *recordingNotifier
	catalog  *catalog.Catalog
}

type recordingNotifier struct {
	sent []notify.Notification
}

func (r *recordingNotifier) Notify(n notify.Notification) (uint32, error) {
	r.sent = append(r.sent, n)
	return uint32(len(r.sent)), nil
}

func (r *recordingNotifier) Close(uint32) error { return nil }

func newTestModel(t *testing.T) (Model, *testEnv) {
	t.Helper()
	env := &testEnv{
		el:       media.NewMock(),
		state:    state.NewMock(),
		notifier: &recordingNotifier{},
		catalog:  catalog.Default(),
	}
	env.ctrl = playback.New(audio.New(env.el, audio.Options{}), nil)
	t.Cleanup(env.ctrl.Close)

	m := New(Deps{
		Catalog:          env.catalog,
		Player:           env.ctrl,
		Journal:          journal.NewService(nil, nil, nil),
		State:            env.state,
		Notifier:         env.notifier,
		AudioBase:        "/srv/serein/audio",
		Rand:             rand.New(rand.NewPCG(1, 2)),
		AffirmationDelay: time.Millisecond,
	})
	m.statusDelay = time.Millisecond
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 32})
	return m, env
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func step(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func press(t *testing.T, m Model, key string) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(testutil.Key(key))
	return next.(Model), cmd
}

// typeText sends text to the model as one rune sequence.
func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	return update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

// drain feeds every message cmd produces back into the model until no
// command is left. The player subscription must be closed first.
func drain(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	for range 100 {
		if cmd == nil {
			return m
		}
		var next []tea.Cmd
		for _, msg := range testutil.Run(cmd) {
			var c tea.Cmd
			m, c = step(t, m, msg)
			next = append(next, c)
		}
		cmd = tea.Batch(next...)
	}
	t.Fatal("commands did not settle")
	return m
}

// findMsg runs cmd and returns the first message of type T.
func findMsg[T any](t *testing.T, cmd tea.Cmd) T {
	t.Helper()
	for _, msg := range testutil.Run(cmd) {
		if v, ok := msg.(T); ok {
			return v
		}
	}
	var zero T
	t.Fatalf("no %T produced", zero)
	return zero
}

func writeAudio(t *testing.T, name string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestModel_ViewSwitching(t *testing.T) {
	m, _ := newTestModel(t)
	if m.view != ViewHome {
		t.Fatalf("initial view = %v, want home", m.view)
	}

	m, _ = press(t, m, "tab")
	if m.view != ViewMeditations {
		t.Errorf("after tab view = %v, want meditations", m.view)
	}
	m, _ = press(t, m, "3")
	if m.view != ViewJournal {
		t.Errorf("after 3 view = %v, want journal", m.view)
	}
	m, _ = press(t, m, "tab")
	if m.view != ViewHome {
		t.Errorf("tab should wrap to home, got %v", m.view)
	}
	m, _ = press(t, m, "f2")
	if m.view != ViewMeditations {
		t.Errorf("after F2 view = %v, want meditations", m.view)
	}
}

func TestModel_Quit(t *testing.T) {
	for _, key := range []string{"q", "ctrl+c"} {
		t.Run(key, func(t *testing.T) {
			m, _ := newTestModel(t)
			_, cmd := press(t, m, key)
			findMsg[tea.QuitMsg](t, cmd)
		})
	}
}

func TestModel_HelpPopup(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = press(t, m, "2")

	m, _ = press(t, m, "?")
	if m.popups.ActivePopup() != popupctl.Help {
		t.Fatalf("active popup = %v, want help", m.popups.ActivePopup())
	}
	out := testutil.StripANSI(m.View())
	if !strings.Contains(out, "Play/pause") {
		t.Errorf("help should list player bindings:\n%s", out)
	}

	m, cmd := press(t, m, "esc")
	for _, msg := range testutil.Run(cmd) {
		m = update(t, m, msg)
	}
	if m.popups.ActivePopup() != popupctl.None {
		t.Errorf("help still open: %v", m.popups.ActivePopup())
	}
}

func TestModel_ViewFitsScreen(t *testing.T) {
	m, _ := newTestModel(t)
	for _, key := range []string{"1", "2", "3"} {
		m, _ = press(t, m, key)
		lines := strings.Split(m.View(), "\n")
		if len(lines) != 32 {
			t.Errorf("view %s has %d lines, want 32", m.view, len(lines))
		}
	}
}

func TestModel_StatusTimeout(t *testing.T) {
	m, _ := newTestModel(t)
	m.setStatus("first", false)
	stale := m.statusVersion
	m.setStatus("second", false)

	m = update(t, m, StatusTimeoutMsg{Version: stale})
	if m.status != "second" {
		t.Errorf("stale timeout cleared status, got %q", m.status)
	}

	m = update(t, m, StatusTimeoutMsg{Version: m.statusVersion})
	if m.status != "" {
		t.Errorf("status = %q, want cleared", m.status)
	}
}
