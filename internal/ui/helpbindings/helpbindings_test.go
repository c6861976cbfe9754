package helpbindings

import (
	"strings"
	"testing"

	"github.com/llehouerou/serein/internal/ui/testutil"
)

func newTestHelp(contexts ...string) Model {
	m := New(contexts...)
	m.SetSize(80, 20)
	return m
}

func TestHelpBindings_Close(t *testing.T) {
	for _, key := range []string{"esc", "q", "?"} {
		t.Run(key, func(t *testing.T) {
			m := newTestHelp("global")

			_, cmd := m.Update(testutil.Key(key))

			msgs := testutil.Run(cmd)
			if len(msgs) != 1 {
				t.Fatalf("got %d messages, want 1", len(msgs))
			}
			if _, ok := msgs[0].(CloseMsg); !ok {
				t.Errorf("got %T, want CloseMsg", msgs[0])
			}
		})
	}
}

func TestHelpBindings_Content(t *testing.T) {
	m := newTestHelp("global", "player")

	out := testutil.StripANSI(m.content())

	if !strings.Contains(out, "Global") || !strings.Contains(out, "Player") {
		t.Errorf("missing category headers:\n%s", out)
	}
	if !testutil.ContainsLine(out, "space") || !testutil.ContainsLine(out, "Play/pause") {
		t.Errorf("space binding not shown:\n%s", out)
	}
	if strings.Contains(out, "Journal") {
		t.Errorf("journal bindings shown without being requested:\n%s", out)
	}
	if strings.Index(out, "Global") > strings.Index(out, "Player") {
		t.Error("categories out of order")
	}
}

func TestHelpBindings_Scroll(t *testing.T) {
	m := newTestHelp("global", "home", "meditations", "player", "journal", "editor")
	m.SetSize(80, 12)

	m, _ = m.Update(testutil.Key("k"))
	if m.offset != 0 {
		t.Errorf("offset = %d after scrolling up at top, want 0", m.offset)
	}

	for range 100 {
		m, _ = m.Update(testutil.Key("j"))
	}
	if m.offset != m.maxOffset() {
		t.Errorf("offset = %d, want clamped to %d", m.offset, m.maxOffset())
	}
	if m.offset == 0 {
		t.Error("expected the full help to need scrolling at this height")
	}
}

func TestHelpBindings_View(t *testing.T) {
	m := newTestHelp("global")
	base := strings.Repeat(strings.Repeat(".", 80)+"\n", 19) + strings.Repeat(".", 80)

	out := testutil.StripANSI(m.View(base))

	if !strings.Contains(out, "Help") || !strings.Contains(out, "Quit application") {
		t.Errorf("help dialog not drawn:\n%s", out)
	}
}
