// internal/state/interface.go
package state

// Store is the persistence contract used by the playback controller.
type Store interface {
	Load() PersistedState
	Save(s PersistedState) error
	Close() error
}

// Verify Manager implements Store at compile time.
var _ Store = (*Manager)(nil)
