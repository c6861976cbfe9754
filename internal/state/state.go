// Package state persists what the user keeps between sessions: saved
// affirmations, journal entries and the player volume.
package state

import (
	"context"
	"database/sql"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/hashicorp/go-hclog"

	dbutil "github.com/llehouerou/serein/internal/db"
	"github.com/llehouerou/serein/internal/errmsg"
)

const (
	appName      = "serein"
	dbFileName   = "serein.db"
	saveDebounce = 500 * time.Millisecond
)

type Manager struct {
	db  *sql.DB
	log hclog.Logger

	saveMu        sync.Mutex
	saveTimer     *time.Timer
	pendingVolume *float64
}

// Open opens the database at path, or the default location under the XDG
// data directory when path is empty. Failed background writes are logged
// to logger, which may be nil.
func Open(path string, logger hclog.Logger) (*Manager, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if path == "" {
		var err error
		path, err = getDBPath()
		if err != nil {
			return nil, err
		}
	}

	db, err := dbutil.Open(path)
	if err != nil {
		return nil, err
	}

	if err := initSchema(context.Background(), db); err != nil {
		db.Close()
		return nil, err
	}

	return &Manager{db: db, log: logger}, nil
}

// Close flushes a pending volume save and closes the database.
func (m *Manager) Close() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	pending := m.pendingVolume
	m.pendingVolume = nil
	m.saveMu.Unlock()

	if pending != nil {
		m.flushVolume(*pending)
	}

	return m.db.Close()
}

// flushVolume writes a debounced volume. Nobody waits on it, so a failure
// is only logged.
func (m *Manager) flushVolume(volume float64) {
	if err := saveVolume(context.Background(), m.db, volume); err != nil {
		m.log.Warn("volume not saved", "op", string(errmsg.OpVolumeSave), "volume", volume, "error", err)
	}
}

func getDBPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}
