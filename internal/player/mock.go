// internal/player/mock.go
package player

import (
	"sync"
	"time"
)

// Mock is a test double for Player. It emits the same signals a real player
// would, synchronously from the calling goroutine.
type Mock struct {
	mu         sync.Mutex
	state      State
	source     string
	position   time.Duration
	duration   time.Duration
	volume     float64
	trackInfo  *TrackInfo
	playErr    error
	playGate   chan struct{}
	loads      []string
	playCalls  int
	pauseCalls int
	seekCalls  []time.Duration
	interacted bool
	loadID     uint64
	events     emitter
	closed     bool
}

// NewMock creates a new mock player for testing.
func NewMock() *Mock {
	return &Mock{
		state:  Stopped,
		volume: 1,
		events: newEmitter(),
	}
}

func (m *Mock) Load(loc string) error {
	m.mu.Lock()
	wasPlaying := m.state == Playing
	prev, prevLoad := m.source, m.loadID
	m.loadID++
	m.loads = append(m.loads, loc)
	m.source = loc
	m.position = 0
	m.state = Stopped
	m.mu.Unlock()

	if wasPlaying {
		m.events.send(Event{Kind: EventPause, Source: prev, Load: prevLoad})
	}
	return nil
}

func (m *Mock) Play() error {
	m.mu.Lock()
	m.playCalls++
	gate := m.playGate
	m.mu.Unlock()

	if gate != nil {
		<-gate
	}

	m.mu.Lock()
	if m.source == "" {
		m.mu.Unlock()
		return ErrNoSource
	}
	if m.playErr != nil {
		err := m.playErr
		m.mu.Unlock()
		return err
	}
	if m.state == Playing {
		m.mu.Unlock()
		return nil
	}
	m.state = Playing
	ev := Event{Kind: EventPlay, Source: m.source, Position: m.position, Load: m.loadID}
	m.mu.Unlock()

	m.events.send(ev)
	return nil
}

func (m *Mock) Pause() {
	m.mu.Lock()
	m.pauseCalls++
	if m.state != Playing {
		m.mu.Unlock()
		return
	}
	m.state = Paused
	ev := Event{Kind: EventPause, Source: m.source, Position: m.position, Load: m.loadID}
	m.mu.Unlock()

	m.events.send(ev)
}

func (m *Mock) Paused() bool { return m.State() != Playing }

func (m *Mock) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Mock) LoadID() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loadID
}

func (m *Mock) Source() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.source
}

func (m *Mock) Position() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.position
}

func (m *Mock) SetPosition(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seekCalls = append(m.seekCalls, d)
	m.position = d
}

func (m *Mock) Duration() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.duration
}

func (m *Mock) TrackInfo() *TrackInfo {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.trackInfo
}

func (m *Mock) NotifyInteraction() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.interacted = true
}

func (m *Mock) SetVolume(level float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volume = clampLevel(level)
}

func (m *Mock) Volume() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.volume
}

func (m *Mock) Events() <-chan Event { return m.events.ch }

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.closed {
		m.closed = true
		close(m.events.closed)
	}
	return nil
}

// Test helpers

func (m *Mock) SetPlayError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playErr = err
}

// HoldPlay makes every Play block until the returned function is called.
func (m *Mock) HoldPlay() (release func()) {
	gate := make(chan struct{})
	m.mu.Lock()
	m.playGate = gate
	m.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			m.playGate = nil
			m.mu.Unlock()
			close(gate)
		})
	}
}

func (m *Mock) SetDuration(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.duration = d
}

func (m *Mock) SetTrackInfo(info *TrackInfo) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trackInfo = info
}

func (m *Mock) Loads() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.loads...)
}

func (m *Mock) PlayCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playCalls
}

func (m *Mock) PauseCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pauseCalls
}

func (m *Mock) SeekCalls() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]time.Duration(nil), m.seekCalls...)
}

func (m *Mock) Interacted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.interacted
}

// SimulateTimeUpdate advances the position and emits a time update.
func (m *Mock) SimulateTimeUpdate(pos time.Duration) {
	m.mu.Lock()
	m.position = pos
	src, load := m.source, m.loadID
	m.mu.Unlock()
	m.events.send(Event{Kind: EventTimeUpdate, Source: src, Position: pos, Load: load})
}

// SimulateEnded plays out the track: pause (if playing) then ended.
func (m *Mock) SimulateEnded() {
	m.mu.Lock()
	wasPlaying := m.state == Playing
	m.state = Paused
	m.position = m.duration
	src, pos, load := m.source, m.position, m.loadID
	m.mu.Unlock()

	if wasPlaying {
		m.events.send(Event{Kind: EventPause, Source: src, Position: pos, Load: load})
	}
	m.events.send(Event{Kind: EventEnded, Source: src, Position: pos, Load: load})
}

// SimulateExternalPause pauses as the platform would (device unplugged, etc.).
func (m *Mock) SimulateExternalPause() {
	m.mu.Lock()
	if m.state != Playing {
		m.mu.Unlock()
		return
	}
	m.state = Paused
	ev := Event{Kind: EventPause, Source: m.source, Position: m.position, Load: m.loadID}
	m.mu.Unlock()
	m.events.send(ev)
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
