package state

import "context"

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	SaveAffirmation(ctx context.Context, theme, text string) (bool, error)
	ListAffirmations(ctx context.Context) ([]SavedAffirmation, error)
	DeleteAffirmation(ctx context.Context, id int64) error
	IsAffirmationSaved(ctx context.Context, text string) (bool, error)
	SaveJournalEntry(ctx context.Context, e JournalEntry) (int64, error)
	ListJournalEntries(ctx context.Context, limit int) ([]JournalEntry, error)
	GetVolume(ctx context.Context) (float64, bool, error)
	SaveVolume(volume float64)
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
