package state

import (
	"database/sql"
	"errors"
	"path/filepath"

	"github.com/adrg/xdg"

	dbutil "github.com/llehouerou/backdrop/internal/db"
)

const (
	appName    = "backdrop"
	dbFileName = "backdrop.db"

	// DefaultKey namespaces the playback record inside the key/value table.
	DefaultKey = "backdrop.music_state"
)

// Manager stores the playback record as JSON in a SQLite key/value table.
// Writes go straight to the database; there is no write-behind queue.
type Manager struct {
	db  *sql.DB
	key string
}

// Open opens the state database at path. An empty path selects the XDG data dir.
func Open(path, key string) (*Manager, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	if key == "" {
		key = DefaultKey
	}

	db, err := dbutil.Open(path)
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Manager{db: db, key: key}, nil
}

// DefaultPath returns the database location under the XDG data directory.
func DefaultPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}

// Key returns the key the record is stored under.
func (m *Manager) Key() string { return m.key }

// Load returns the stored record, or Default() when it is absent, unreadable
// or corrupt. It never fails.
func (m *Manager) Load() PersistedState {
	raw, err := m.raw()
	if err != nil {
		return Default()
	}
	return Decode(raw)
}

func (m *Manager) raw() (string, error) {
	var value string
	err := m.db.QueryRow(`SELECT value FROM kv_store WHERE key = ?`, m.key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return value, err
}

// Save replaces the stored record.
func (m *Manager) Save(s PersistedState) error {
	value, err := Encode(s)
	if err != nil {
		return err
	}
	return m.SaveRaw(value)
}

// SaveRaw stores value verbatim under the record key.
func (m *Manager) SaveRaw(value string) error {
	_, err := m.db.Exec(`
		INSERT INTO kv_store (key, value, updated_at)
		VALUES (?, ?, strftime('%s', 'now'))
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`, m.key, value)
	return err
}

// Close closes the database.
func (m *Manager) Close() error {
	return m.db.Close()
}
