package state

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	dbutil "github.com/llehouerou/serein/internal/db"
)

// JournalEntry is a submitted journal text with the reply it received.
type JournalEntry struct {
	ID        int64
	Text      string
	Response  string
	FollowUps []string
	Source    string // "remote" or "local"
	CreatedAt time.Time
}

// SaveJournalEntry stores e and returns its id. A zero CreatedAt is set to
// the current time.
func (m *Manager) SaveJournalEntry(ctx context.Context, e JournalEntry) (int64, error) {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	followUps := e.FollowUps
	if followUps == nil {
		followUps = []string{}
	}
	encoded, err := json.Marshal(followUps)
	if err != nil {
		return 0, err
	}

	var id int64
	err = dbutil.WithTx(ctx, m.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO journal_entries (text, response, follow_ups, source, created_at)
			VALUES (?, ?, ?, ?, ?)
		`, e.Text, e.Response, string(encoded), e.Source, e.CreatedAt.UnixMilli())
		if err != nil {
			return err
		}
		id, err = res.LastInsertId()
		return err
	})
	return id, err
}

// ListJournalEntries returns up to limit entries, newest first. A limit of
// zero or less returns all entries.
func (m *Manager) ListJournalEntries(ctx context.Context, limit int) ([]JournalEntry, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := m.db.QueryContext(ctx, `
		SELECT id, text, response, follow_ups, source, created_at
		FROM journal_entries
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []JournalEntry
	for rows.Next() {
		var e JournalEntry
		var followUps string
		var source sql.NullString
		var createdAt int64
		if err := rows.Scan(&e.ID, &e.Text, &e.Response, &followUps, &source, &createdAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(followUps), &e.FollowUps); err != nil {
			return nil, fmt.Errorf("journal entry %d: follow-ups: %w", e.ID, err)
		}
		e.Source = dbutil.NullStringValue(source)
		e.CreatedAt = time.UnixMilli(createdAt)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
