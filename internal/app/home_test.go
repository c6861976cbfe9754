package app

import (
	"context"
	"strings"
	"testing"

	"github.com/llehouerou/serein/internal/app/popupctl"
	"github.com/llehouerou/serein/internal/catalog"
	"github.com/llehouerou/serein/internal/ui/testutil"
)

func withAffirmation(t *testing.T, m Model, a catalog.Affirmation) Model {
	t.Helper()
	return update(t, m, AffirmationReadyMsg{Affirmation: a, OK: true})
}

func TestHome_NewAffirmation(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := press(t, m, "enter")
	if !m.home.generating {
		t.Fatal("expected generating after enter")
	}

	// A second request while drawing is ignored.
	m, again := press(t, m, "n")
	if again != nil {
		t.Error("expected no command while an affirmation is being drawn")
	}

	ready := findMsg[AffirmationReadyMsg](t, cmd)
	if !ready.OK || ready.Affirmation.Text == "" {
		t.Fatalf("got %+v, want an affirmation", ready)
	}
	m = update(t, m, ready)

	if m.home.generating || !m.home.has {
		t.Errorf("generating=%v has=%v, want false/true", m.home.generating, m.home.has)
	}
	out := testutil.StripANSI(m.View())
	if !strings.Contains(out, ready.Affirmation.Theme) {
		t.Errorf("view missing theme %q:\n%s", ready.Affirmation.Theme, out)
	}
}

func TestHome_EmptyCatalog(t *testing.T) {
	m, _ := newTestModel(t)
	m = update(t, m, AffirmationReadyMsg{OK: false})
	if m.home.has {
		t.Error("no affirmation should be shown")
	}
	if !m.statusIsError {
		t.Errorf("expected an error status, got %q", m.status)
	}
}

func TestHome_SaveAffirmation(t *testing.T) {
	m, env := newTestModel(t)
	m = withAffirmation(t, m, catalog.Affirmation{Theme: "peace", Text: "I am calm."})

	m, cmd := press(t, m, "ctrl+s")
	saved := findMsg[AffirmationSavedMsg](t, cmd)
	if saved.Err != nil || !saved.Added {
		t.Fatalf("got %+v, want added", saved)
	}
	m = update(t, m, saved)
	if !m.home.saved {
		t.Error("current affirmation should be marked saved")
	}
	if m.status != "Affirmation saved" {
		t.Errorf("status = %q", m.status)
	}

	_, cmd = press(t, m, "S")
	dup := findMsg[AffirmationSavedMsg](t, cmd)
	m = update(t, m, dup)
	if dup.Added {
		t.Error("saving twice should not add a duplicate")
	}
	if !strings.Contains(m.status, "Already") {
		t.Errorf("status = %q, want duplicate notice", m.status)
	}

	items, _ := env.state.ListAffirmations(context.Background())
	if len(items) != 1 {
		t.Errorf("stored %d affirmations, want 1", len(items))
	}
}

func TestHome_SaveWithoutAffirmation(t *testing.T) {
	m, env := newTestModel(t)
	m, _ = press(t, m, "ctrl+s")

	if m.status == "" {
		t.Error("expected a hint in the status line")
	}
	items, _ := env.state.ListAffirmations(context.Background())
	if len(items) != 0 {
		t.Errorf("stored %d affirmations, want 0", len(items))
	}
}

func TestHome_SavedListAndDelete(t *testing.T) {
	m, env := newTestModel(t)
	ctx := context.Background()
	if _, err := env.state.SaveAffirmation(ctx, "growth", "I grow every day."); err != nil {
		t.Fatal(err)
	}
	if _, err := env.state.SaveAffirmation(ctx, "peace", "I am calm."); err != nil {
		t.Fatal(err)
	}

	m, cmd := press(t, m, "v")
	m = update(t, m, findMsg[SavedAffirmationsMsg](t, cmd))
	if len(m.home.items) != 2 {
		t.Fatalf("listed %d items, want 2", len(m.home.items))
	}
	out := testutil.StripANSI(m.View())
	if !strings.Contains(out, "I am calm.") || !strings.Contains(out, "Saved affirmations") {
		t.Errorf("saved list not shown:\n%s", out)
	}

	m, _ = press(t, m, "j")
	if m.home.cursor.Pos() != 1 {
		t.Errorf("cursor = %d, want 1", m.home.cursor.Pos())
	}
	target := m.home.items[1]

	m, _ = press(t, m, "d")
	if m.popups.ActivePopup() != popupctl.Confirm {
		t.Fatalf("active popup = %v, want confirm", m.popups.ActivePopup())
	}
	m, cmd = press(t, m, "y")
	m, cmd = step(t, m, findMsg[popupctl.ConfirmResultMsg](t, cmd))
	deleted := findMsg[AffirmationDeletedMsg](t, cmd)
	if deleted.ID != target.ID || deleted.Err != nil {
		t.Fatalf("got %+v, want delete of %d", deleted, target.ID)
	}
	m = update(t, m, deleted)
	m = update(t, m, findMsg[SavedAffirmationsMsg](t, m.loadSavedCmd()))

	if len(m.home.items) != 1 {
		t.Errorf("listed %d items after delete, want 1", len(m.home.items))
	}
	if m.home.cursor.Pos() != 0 {
		t.Errorf("cursor = %d, want clamped to 0", m.home.cursor.Pos())
	}
}

func TestHome_DeleteCancelled(t *testing.T) {
	m, env := newTestModel(t)
	if _, err := env.state.SaveAffirmation(context.Background(), "peace", "I am calm."); err != nil {
		t.Fatal(err)
	}
	m, cmd := press(t, m, "v")
	m = update(t, m, findMsg[SavedAffirmationsMsg](t, cmd))

	m, _ = press(t, m, "d")
	m, cmd = press(t, m, "n")
	_, cmd = step(t, m, findMsg[popupctl.ConfirmResultMsg](t, cmd))

	if cmd != nil {
		t.Error("cancelled confirm should not delete")
	}
}

func TestHome_SavedMarkerFromList(t *testing.T) {
	m, env := newTestModel(t)
	if _, err := env.state.SaveAffirmation(context.Background(), "peace", "I am calm."); err != nil {
		t.Fatal(err)
	}
	m = update(t, m, findMsg[SavedAffirmationsMsg](t, m.loadSavedCmd()))

	m = withAffirmation(t, m, catalog.Affirmation{Theme: "peace", Text: "I am calm."})

	if !m.home.saved {
		t.Error("an affirmation already in the list should show as saved")
	}
}
