package state

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// GetVolume returns the saved volume, or ok=false when none was saved.
func (m *Manager) GetVolume(ctx context.Context) (volume float64, ok bool, err error) {
	row := m.db.QueryRowContext(ctx, `SELECT volume FROM player_state WHERE id = 1`)
	err = row.Scan(&volume)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return volume, true, nil
}

// SaveVolume schedules a volume save. Rapid changes collapse into one write;
// Close flushes the last one.
func (m *Manager) SaveVolume(volume float64) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pendingVolume = &volume

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(saveDebounce, func() {
		m.saveMu.Lock()
		pending := m.pendingVolume
		m.pendingVolume = nil
		m.saveMu.Unlock()

		if pending != nil {
			m.flushVolume(*pending)
		}
	})
}

func saveVolume(ctx context.Context, db *sql.DB, volume float64) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO player_state (id, volume) VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET volume = excluded.volume
	`, volume)
	return err
}
