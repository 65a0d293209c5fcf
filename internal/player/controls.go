package player

import (
	"time"

	"github.com/gopxl/beep/v2/speaker"
)

// Pause pauses playback.
func (p *Player) Pause() {
	p.mu.Lock()
	if p.state != Playing || p.ctrl == nil {
		p.mu.Unlock()
		return
	}
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
	p.state = Paused
	p.stopTickerLocked()
	ev := Event{Kind: EventPause, Source: p.source, Position: p.positionLocked(), Load: p.generation}
	p.mu.Unlock()

	p.events.send(ev)
}

// Position returns the current playback position.
func (p *Player) Position() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.positionLocked()
}

func (p *Player) positionLocked() time.Duration {
	if p.streamer == nil {
		return p.pending
	}
	// Read position without the speaker lock - may be slightly stale but avoids deadlocks.
	return p.format.SampleRate.D(p.streamer.Position())
}

// SetPosition moves playback to d. Before the source is opened the position
// is remembered and applied on open.
func (p *Player) SetPosition(d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	d = max(d, 0)
	if p.streamer == nil {
		p.pending = d
		return
	}
	p.seekLocked(d)
}

func (p *Player) seekLocked(d time.Duration) {
	n := p.format.SampleRate.N(d)
	// Clamp to valid range
	n = min(max(n, 0), max(p.streamer.Len()-1, 0))

	speaker.Lock()
	_ = p.streamer.Seek(n)
	speaker.Unlock()
	p.ended = false
}

// Duration returns the length of the opened source, or 0 before it is opened.
func (p *Player) Duration() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.streamer == nil {
		return 0
	}
	return p.format.SampleRate.D(p.streamer.Len())
}

// Close stops playback and releases resources. Play fails afterwards.
func (p *Player) Close() error {
	p.closeOnce.Do(func() {
		p.mu.Lock()
		p.releaseLocked()
		p.isClosed = true
		p.state = Stopped
		p.mu.Unlock()
		close(p.events.closed)
	})
	return nil
}

// releaseLocked detaches from the speaker and closes the stream.
func (p *Player) releaseLocked() {
	p.stopTickerLocked()
	if p.ctrl != nil {
		speaker.Clear()
	}
	if p.streamer != nil {
		p.streamer.Close()
		p.streamer = nil
	}
	p.ctrl = nil
	p.volume = nil
}

// finished handles the end of an attached stream.
func (p *Player) finished(id uint64) {
	p.mu.Lock()
	if id != p.attachment || p.ctrl == nil {
		p.mu.Unlock()
		return
	}
	p.ctrl = nil
	p.volume = nil
	p.ended = true
	wasPlaying := p.state == Playing
	p.state = Paused
	p.stopTickerLocked()
	src, pos, load := p.source, p.positionLocked(), p.generation
	p.mu.Unlock()

	if wasPlaying {
		p.events.send(Event{Kind: EventPause, Source: src, Position: pos, Load: load})
	}
	p.events.send(Event{Kind: EventEnded, Source: src, Position: pos, Load: load})
}

func (p *Player) startTickerLocked() {
	p.stopTickerLocked()
	stop := make(chan struct{})
	p.tickStop = stop
	go p.tickLoop(stop)
}

func (p *Player) stopTickerLocked() {
	if p.tickStop != nil {
		close(p.tickStop)
		p.tickStop = nil
	}
}

func (p *Player) tickLoop(stop <-chan struct{}) {
	ticker := time.NewTicker(p.tickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			p.mu.Lock()
			if p.tickStop != stop {
				p.mu.Unlock()
				return
			}
			ev := Event{Kind: EventTimeUpdate, Source: p.source, Position: p.positionLocked(), Load: p.generation}
			p.mu.Unlock()
			p.events.sendTick(ev)
		}
	}
}
