package state

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
)

func openTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := Open(filepath.Join(t.TempDir(), "serein.db"), nil)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { m.Close() })
	return m
}

func TestOpen_SchemaVersion(t *testing.T) {
	m := openTestManager(t)

	var version int
	if err := m.db.QueryRow(`SELECT version FROM schema_version`).Scan(&version); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if version != currentSchemaVersion {
		t.Errorf("version = %d, want %d", version, currentSchemaVersion)
	}
}

func TestOpen_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "serein.db")
	ctx := context.Background()

	m, err := Open(path, nil)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if _, err := m.SaveAffirmation(ctx, "peace", "I am calm."); err != nil {
		t.Fatalf("SaveAffirmation failed: %v", err)
	}
	if err := m.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	m, err = Open(path, nil)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer m.Close()

	saved, err := m.ListAffirmations(ctx)
	if err != nil {
		t.Fatalf("ListAffirmations failed: %v", err)
	}
	if len(saved) != 1 || saved[0].Text != "I am calm." {
		t.Errorf("saved = %+v, want the affirmation from the first session", saved)
	}
}

func TestSaveAffirmation_Dedup(t *testing.T) {
	m := openTestManager(t)
	ctx := context.Background()

	added, err := m.SaveAffirmation(ctx, "strength", "I am resilient.")
	if err != nil || !added {
		t.Fatalf("first save: added=%v err=%v", added, err)
	}
	added, err = m.SaveAffirmation(ctx, "strength", "I am resilient.")
	if err != nil {
		t.Fatalf("second save failed: %v", err)
	}
	if added {
		t.Error("second save of same text should report added=false")
	}

	saved, _ := m.ListAffirmations(ctx)
	if len(saved) != 1 {
		t.Errorf("len = %d, want 1", len(saved))
	}
}

func TestListAffirmations_NewestFirst(t *testing.T) {
	m := openTestManager(t)
	ctx := context.Background()

	for _, text := range []string{"one", "two", "three"} {
		if _, err := m.SaveAffirmation(ctx, "growth", text); err != nil {
			t.Fatalf("SaveAffirmation(%q) failed: %v", text, err)
		}
	}

	saved, err := m.ListAffirmations(ctx)
	if err != nil {
		t.Fatalf("ListAffirmations failed: %v", err)
	}
	if len(saved) != 3 {
		t.Fatalf("len = %d, want 3", len(saved))
	}
	if saved[0].Text != "three" || saved[2].Text != "one" {
		t.Errorf("order = %q, %q, %q; want newest first", saved[0].Text, saved[1].Text, saved[2].Text)
	}
	if saved[0].Theme != "growth" {
		t.Errorf("Theme = %q, want %q", saved[0].Theme, "growth")
	}
}

func TestDeleteAffirmation(t *testing.T) {
	m := openTestManager(t)
	ctx := context.Background()

	if _, err := m.SaveAffirmation(ctx, "peace", "Be still."); err != nil {
		t.Fatalf("SaveAffirmation failed: %v", err)
	}
	saved, _ := m.ListAffirmations(ctx)

	if err := m.DeleteAffirmation(ctx, saved[0].ID); err != nil {
		t.Fatalf("DeleteAffirmation failed: %v", err)
	}
	if err := m.DeleteAffirmation(ctx, 999); err != nil {
		t.Errorf("deleting unknown id should not fail: %v", err)
	}

	ok, err := m.IsAffirmationSaved(ctx, "Be still.")
	if err != nil {
		t.Fatalf("IsAffirmationSaved failed: %v", err)
	}
	if ok {
		t.Error("affirmation still reported as saved after delete")
	}
}

func TestJournalEntries_RoundTrip(t *testing.T) {
	m := openTestManager(t)
	ctx := context.Background()
	at := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

	id, err := m.SaveJournalEntry(ctx, JournalEntry{
		Text:      "Work has been overwhelming.",
		Response:  "It sounds like a lot is on your plate.",
		FollowUps: []string{"What is one thing you can set down?", "Who could help?"},
		Source:    "local",
		CreatedAt: at,
	})
	if err != nil {
		t.Fatalf("SaveJournalEntry failed: %v", err)
	}
	if id == 0 {
		t.Error("expected non-zero id")
	}

	entries, err := m.ListJournalEntries(ctx, 0)
	if err != nil {
		t.Fatalf("ListJournalEntries failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("len = %d, want 1", len(entries))
	}
	e := entries[0]
	if e.ID != id || e.Source != "local" || e.Response != "It sounds like a lot is on your plate." {
		t.Errorf("entry = %+v", e)
	}
	if len(e.FollowUps) != 2 || e.FollowUps[1] != "Who could help?" {
		t.Errorf("FollowUps = %q", e.FollowUps)
	}
	if !e.CreatedAt.Equal(at) {
		t.Errorf("CreatedAt = %v, want %v", e.CreatedAt, at)
	}
}

func TestListJournalEntries_Limit(t *testing.T) {
	m := openTestManager(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	for i := range 5 {
		_, err := m.SaveJournalEntry(ctx, JournalEntry{
			Text:      "entry",
			Response:  "reply",
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
		if err != nil {
			t.Fatalf("SaveJournalEntry failed: %v", err)
		}
	}

	entries, err := m.ListJournalEntries(ctx, 2)
	if err != nil {
		t.Fatalf("ListJournalEntries failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len = %d, want 2", len(entries))
	}
	if !entries[0].CreatedAt.Equal(base.Add(4 * time.Hour)) {
		t.Errorf("first entry CreatedAt = %v, want newest", entries[0].CreatedAt)
	}
	if entries[0].FollowUps == nil || len(entries[0].FollowUps) != 0 {
		t.Errorf("FollowUps = %#v, want empty non-nil slice", entries[0].FollowUps)
	}
}

func TestGetVolume_Unset(t *testing.T) {
	m := openTestManager(t)

	_, ok, err := m.GetVolume(context.Background())
	if err != nil {
		t.Fatalf("GetVolume failed: %v", err)
	}
	if ok {
		t.Error("expected no saved volume on a fresh database")
	}
}

func TestSaveVolume_Debounced(t *testing.T) {
	m := openTestManager(t)
	ctx := context.Background()

	m.SaveVolume(0.2)
	m.SaveVolume(0.4)

	deadline := time.Now().Add(5 * time.Second)
	for {
		v, ok, err := m.GetVolume(ctx)
		if err != nil {
			t.Fatalf("GetVolume failed: %v", err)
		}
		if ok {
			if v != 0.4 {
				t.Errorf("volume = %v, want 0.4", v)
			}
			return
		}
		if time.Now().After(deadline) {
			t.Fatal("volume was never saved")
		}
		time.Sleep(50 * time.Millisecond)
	}
}

// syncBuffer collects log output written from the debounce timer.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSaveVolume_FailureLogged(t *testing.T) {
	var out syncBuffer
	logger := hclog.New(&hclog.LoggerOptions{Output: &out, Level: hclog.Warn})

	m, err := Open(filepath.Join(t.TempDir(), "serein.db"), logger)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer m.Close()

	if _, err := m.db.Exec(`DROP TABLE player_state`); err != nil {
		t.Fatalf("drop failed: %v", err)
	}
	m.SaveVolume(0.3)

	deadline := time.Now().Add(5 * time.Second)
	for !strings.Contains(out.String(), "volume not saved") {
		if time.Now().After(deadline) {
			t.Fatal("failed save was never logged")
		}
		time.Sleep(50 * time.Millisecond)
	}

	line := out.String()
	for _, want := range []string{"[WARN]", "op=\"save volume\"", "volume=0.3", "player_state"} {
		if !strings.Contains(line, want) {
			t.Errorf("log %q does not contain %q", line, want)
		}
	}
}

func TestClose_FlushesPendingVolume(t *testing.T) {
	path := filepath.Join(t.TempDir(), "serein.db")
	m, err := Open(path, nil)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	m.SaveVolume(0.55)
	if err := m.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	m, err = Open(path, nil)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer m.Close()

	v, ok, err := m.GetVolume(context.Background())
	if err != nil || !ok {
		t.Fatalf("GetVolume: ok=%v err=%v", ok, err)
	}
	if v != 0.55 {
		t.Errorf("volume = %v, want 0.55", v)
	}
}
