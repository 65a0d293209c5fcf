// internal/state/mock.go
package state

import "sync"

// Mock is an in-memory Store with the same JSON semantics as Manager.
type Mock struct {
	mu      sync.Mutex
	raw     string
	saves   []PersistedState
	saveErr error
	gate    chan struct{}
	closed  bool
}

// NewMock creates a new mock store holding no record.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) Load() PersistedState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Decode(m.raw)
}

func (m *Mock) Save(s PersistedState) error {
	m.mu.Lock()
	gate := m.gate
	m.mu.Unlock()
	if gate != nil {
		<-gate
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	raw, err := Encode(s)
	if err != nil {
		return err
	}
	m.raw = raw
	m.saves = append(m.saves, s)
	return nil
}

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Test helpers

// SetRaw replaces the stored record with an arbitrary string.
func (m *Mock) SetRaw(raw string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.raw = raw
}

// SetState stores s as if it had been saved earlier.
func (m *Mock) SetState(s PersistedState) {
	raw, _ := Encode(s)
	m.SetRaw(raw)
}

// HoldSave makes every Save block until the returned function is called.
func (m *Mock) HoldSave() (release func()) {
	gate := make(chan struct{})
	m.mu.Lock()
	m.gate = gate
	m.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			m.gate = nil
			m.mu.Unlock()
			close(gate)
		})
	}
}

func (m *Mock) SetSaveError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveErr = err
}

// Saves returns every record passed to Save, oldest first.
func (m *Mock) Saves() []PersistedState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]PersistedState(nil), m.saves...)
}

// Current returns the record a Load would return.
func (m *Mock) Current() PersistedState { return m.Load() }

func (m *Mock) IsClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// Verify Mock implements Store at compile time.
var _ Store = (*Mock)(nil)
