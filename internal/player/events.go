package player

import "time"

// EventKind identifies a playback signal.
type EventKind int

const (
	// EventTimeUpdate fires periodically while playing.
	EventTimeUpdate EventKind = iota
	// EventPause fires whenever playback stops advancing, whoever caused it.
	EventPause
	// EventPlay fires when playback starts or resumes.
	EventPlay
	// EventEnded fires when the track reaches its end, after EventPause.
	EventEnded
)

func (k EventKind) String() string {
	switch k {
	case EventTimeUpdate:
		return "timeupdate"
	case EventPause:
		return "pause"
	case EventPlay:
		return "play"
	case EventEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Event is a playback signal with the source and position it fired at.
type Event struct {
	Kind     EventKind
	Source   string
	Position time.Duration
	// Load is the LoadID of the source the signal belongs to. Two loads of
	// the same location have different IDs.
	Load uint64
}

const (
	eventBufferSize = 64
	// sendTimeout bounds how long a discrete signal waits for a full buffer.
	// The consumer may itself be inside a Load or Pause that is sending.
	sendTimeout = time.Second
)

// emitter fans player signals into a buffered channel.
type emitter struct {
	ch     chan Event
	closed chan struct{}
}

func newEmitter() emitter {
	return emitter{
		ch:     make(chan Event, eventBufferSize),
		closed: make(chan struct{}),
	}
}

// send delivers a discrete signal. It gives up once the player is closed or
// the buffer stays full for sendTimeout, and reports whether ev was queued.
func (e emitter) send(ev Event) bool {
	select {
	case e.ch <- ev:
		return true
	default:
	}
	timer := time.NewTimer(sendTimeout)
	defer timer.Stop()
	select {
	case e.ch <- ev:
		return true
	case <-e.closed:
	case <-timer.C:
	}
	return false
}

// sendTick delivers a time update unless the consumer is lagging, keeping
// half the buffer free for discrete signals.
func (e emitter) sendTick(ev Event) {
	if len(e.ch) >= eventBufferSize/2 {
		return
	}
	select {
	case e.ch <- ev:
	default:
	}
}
