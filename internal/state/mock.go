package state

import (
	"context"
	"slices"
	"sync"
	"time"
)

// Mock is an in-memory test double for Manager.
type Mock struct {
	mu           sync.Mutex
	affirmations []SavedAffirmation
	entries      []JournalEntry
	volume       *float64
	nextID       int64
	// Err, when set, is returned by every fallible method.
	Err error
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) SaveAffirmation(_ context.Context, theme, text string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return false, m.Err
	}
	for _, a := range m.affirmations {
		if a.Text == text {
			return false, nil
		}
	}
	m.nextID++
	m.affirmations = append(m.affirmations, SavedAffirmation{
		ID: m.nextID, Theme: theme, Text: text, SavedAt: time.Now(),
	})
	return true, nil
}

func (m *Mock) ListAffirmations(context.Context) ([]SavedAffirmation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	out := slices.Clone(m.affirmations)
	slices.Reverse(out)
	return out, nil
}

func (m *Mock) DeleteAffirmation(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.affirmations = slices.DeleteFunc(m.affirmations, func(a SavedAffirmation) bool { return a.ID == id })
	return nil
}

func (m *Mock) IsAffirmationSaved(_ context.Context, text string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return false, m.Err
	}
	return slices.ContainsFunc(m.affirmations, func(a SavedAffirmation) bool { return a.Text == text }), nil
}

func (m *Mock) SaveJournalEntry(_ context.Context, e JournalEntry) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return 0, m.Err
	}
	m.nextID++
	e.ID = m.nextID
	m.entries = append(m.entries, e)
	return e.ID, nil
}

func (m *Mock) ListJournalEntries(_ context.Context, limit int) ([]JournalEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	out := slices.Clone(m.entries)
	slices.Reverse(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *Mock) GetVolume(context.Context) (float64, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.volume == nil {
		return 0, false, m.Err
	}
	return *m.volume, true, m.Err
}

func (m *Mock) SaveVolume(volume float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volume = &volume
}

func (m *Mock) Close() error { return nil }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
