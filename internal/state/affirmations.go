package state

import (
	"context"
	"database/sql"
	"time"
)

// SavedAffirmation is an affirmation the user kept from the home view.
type SavedAffirmation struct {
	ID      int64
	Theme   string
	Text    string
	SavedAt time.Time
}

// SaveAffirmation stores an affirmation. Saving the same text twice keeps
// the first copy and reports added=false.
func (m *Manager) SaveAffirmation(ctx context.Context, theme, text string) (added bool, err error) {
	res, err := m.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO saved_affirmations (theme, text, saved_at)
		VALUES (?, ?, ?)
	`, theme, text, time.Now().UnixMilli())
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ListAffirmations returns saved affirmations, newest first.
func (m *Manager) ListAffirmations(ctx context.Context) ([]SavedAffirmation, error) {
	rows, err := m.db.QueryContext(ctx, `
		SELECT id, theme, text, saved_at
		FROM saved_affirmations
		ORDER BY saved_at DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SavedAffirmation
	for rows.Next() {
		var a SavedAffirmation
		var savedAt int64
		if err := rows.Scan(&a.ID, &a.Theme, &a.Text, &savedAt); err != nil {
			return nil, err
		}
		a.SavedAt = time.UnixMilli(savedAt)
		out = append(out, a)
	}
	return out, rows.Err()
}

// DeleteAffirmation removes a saved affirmation. Unknown ids are ignored.
func (m *Manager) DeleteAffirmation(ctx context.Context, id int64) error {
	_, err := m.db.ExecContext(ctx, `DELETE FROM saved_affirmations WHERE id = ?`, id)
	return err
}

// IsAffirmationSaved reports whether text has been saved.
func (m *Manager) IsAffirmationSaved(ctx context.Context, text string) (bool, error) {
	var one int
	err := m.db.QueryRowContext(ctx, `SELECT 1 FROM saved_affirmations WHERE text = ?`, text).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	return err == nil, err
}
