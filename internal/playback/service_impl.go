package playback

import (
	"context"
	"errors"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/llehouerou/backdrop/internal/errmsg"
	"github.com/llehouerou/backdrop/internal/location"
	"github.com/llehouerou/backdrop/internal/logging"
	"github.com/llehouerou/backdrop/internal/player"
	"github.com/llehouerou/backdrop/internal/state"
)

// DefaultAdvanceDelay separates the source switch at the end of a track from
// the play attempt on the next one.
const DefaultAdvanceDelay = 160 * time.Millisecond

// NoTracksLabel replaces the track label when nothing can be played.
const NoTracksLabel = "No tracks"

// Options configures Start.
type Options struct {
	Player   player.Interface
	Store    state.Store
	Resolver Resolver
	// Candidates is the playlist before probing.
	Candidates []string
	// AdvanceDelay defaults to DefaultAdvanceDelay when zero.
	AdvanceDelay time.Duration
	Logger       *log.Logger
}

// Verify serviceImpl implements Service at compile time.
var _ Service = (*serviceImpl)(nil)

// serviceImpl runs every state mutation on a single goroutine. Public methods
// post closures to the loop and wait for their result.
type serviceImpl struct {
	player       player.Interface
	store        state.Store
	logger       *log.Logger
	advanceDelay time.Duration

	inbox     chan func()
	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup

	subs   []*Subscription
	subsMu sync.Mutex
	closed bool

	// Owned by the loop.
	status     Status
	playlist   []string
	index      int
	persisted  state.PersistedState
	playing    bool
	label      string
	generation uint64
	suppressed bool   // a pause command superseded the in-flight attempt
	inFlight   bool   // a current-generation Play has not reported back yet
	loadID     uint64 // player LoadID of the rendered track
}

// Start loads the persisted state, starts the controller loop and resolves
// the candidates in the background. The playlist is usable once a
// PlaylistChange with a non-loading status has been published.
//
// ctx bounds the resolution only; the loop runs until Close. Close does not
// close the player or the store.
func Start(ctx context.Context, opts Options) (Service, error) {
	if opts.Player == nil {
		return nil, errors.New("playback: player is required")
	}
	if opts.Store == nil {
		return nil, errors.New("playback: state store is required")
	}
	if opts.Resolver == nil {
		return nil, errors.New("playback: resolver is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	delay := opts.AdvanceDelay
	if delay <= 0 {
		delay = DefaultAdvanceDelay
	}

	persisted := opts.Store.Load()
	s := &serviceImpl{
		player:       opts.Player,
		store:        opts.Store,
		logger:       logger.With("component", "playback"),
		advanceDelay: delay,
		inbox:        make(chan func()),
		done:         make(chan struct{}),
		status:       StatusLoading,
		persisted:    persisted,
		index:        persisted.Index,
	}

	s.wg.Add(1)
	go s.run()

	candidates := append([]string(nil), opts.Candidates...)
	go func() {
		tracks := opts.Resolver.Resolve(ctx, candidates)
		s.post(func() { s.onResolved(tracks) })
	}()

	return s, nil
}

func (s *serviceImpl) run() {
	defer s.wg.Done()
	events := s.player.Events()
	for {
		select {
		case <-s.done:
			return
		case fn := <-s.inbox:
			fn()
		case ev := <-events:
			s.handlePlayerEvent(ev)
		}
	}
}

// post queues fn on the loop. It reports false once the service is closed.
func (s *serviceImpl) post(fn func()) bool {
	select {
	case s.inbox <- fn:
		return true
	case <-s.done:
		return false
	}
}

// call runs fn on the loop and returns its result.
func (s *serviceImpl) call(fn func() error) error {
	result := make(chan error, 1)
	if !s.post(func() { result <- fn() }) {
		return ErrClosed
	}
	// The loop received fn, so it runs before the loop looks at done again.
	return <-result
}

// Playback control

func (s *serviceImpl) Next() error {
	return s.call(func() error { return s.step(1, "next") })
}

func (s *serviceImpl) Previous() error {
	return s.call(func() error { return s.step(-1, "previous") })
}

func (s *serviceImpl) Toggle() error {
	return s.call(s.toggle)
}

// Play attempts playback without touching the persisted enabled flag.
func (s *serviceImpl) Play() error {
	return s.call(func() error {
		if err := s.ready(); err != nil {
			return err
		}
		s.attemptPlay("play", nil)
		return nil
	})
}

// Pause stops audio and leaves the persisted enabled flag alone, like a
// pause issued by the platform.
func (s *serviceImpl) Pause() error {
	return s.call(func() error {
		if err := s.ready(); err != nil {
			return err
		}
		s.pauseNow()
		return nil
	})
}

// Playlist replacement

func (s *serviceImpl) SetPlaylist(locations []string) error {
	if len(locations) == 0 {
		return ErrEmptyPlaylist
	}
	tracks := append([]string(nil), locations...)
	return s.call(func() error {
		s.replacePlaylist(tracks)
		return nil
	})
}

func (s *serviceImpl) SetSource(loc string) error {
	if loc == "" {
		return ErrEmptyLocation
	}
	return s.call(func() error {
		tracks := append([]string(nil), s.playlist...)
		if len(tracks) == 0 {
			tracks = []string{loc}
		} else {
			tracks[0] = loc
		}
		s.replacePlaylist(tracks)
		return nil
	})
}

// State queries

func (s *serviceImpl) Player() player.Interface {
	return s.player
}

// Snapshot returns the zero Snapshot once the service is closed.
func (s *serviceImpl) Snapshot() Snapshot {
	var snap Snapshot
	_ = s.call(func() error {
		snap = s.snapshot()
		return nil
	})
	return snap
}

func (s *serviceImpl) snapshot() Snapshot {
	snap := Snapshot{
		Status:   s.status,
		State:    s.state(),
		Playlist: append([]string(nil), s.playlist...),
		Index:    s.index,
		Label:    s.label,
		Enabled:  s.persisted.Enabled,
		Time:     s.persisted.Time,
	}
	if s.status == StatusReady {
		snap.Position = s.player.Position()
		snap.Duration = s.player.Duration()
	}
	return snap
}

// Subscribe creates a new event subscription. A subscription taken after
// Close is already done.
func (s *serviceImpl) Subscribe() *Subscription {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()

	sub := newSubscription()
	if s.closed {
		sub.close()
		return sub
	}
	s.subs = append(s.subs, sub)
	return sub
}

// Close stops the loop and closes all subscriptions.
func (s *serviceImpl) Close() error {
	s.closeOnce.Do(func() {
		close(s.done)
		s.wg.Wait()

		s.subsMu.Lock()
		s.closed = true
		for _, sub := range s.subs {
			sub.close()
		}
		s.subs = nil
		s.subsMu.Unlock()
	})
	return nil
}

// Loop-owned helpers. Nothing below may be called off the loop.

func (s *serviceImpl) ready() error {
	switch s.status {
	case StatusLoading:
		return ErrNotReady
	case StatusNoTracks:
		return ErrNoTracks
	default:
		return nil
	}
}

func (s *serviceImpl) state() State {
	switch {
	case s.status != StatusReady:
		return StateStopped
	case s.playing:
		return StatePlaying
	default:
		return StatePaused
	}
}

func (s *serviceImpl) currentLocation() string {
	if s.index < 0 || s.index >= len(s.playlist) {
		return ""
	}
	return s.playlist[s.index]
}

func (s *serviceImpl) step(delta int, op string) error {
	if err := s.ready(); err != nil {
		return err
	}
	n := len(s.playlist)
	prev := s.index
	s.selectIndex(((s.index+delta)%n + n) % n)
	s.persisted.Enabled = true
	s.persist()
	s.render(prev)
	s.attemptPlay(op, nil)
	return nil
}

func (s *serviceImpl) toggle() error {
	if err := s.ready(); err != nil {
		return err
	}
	// A pending attempt counts as playing, so the press pauses it.
	if s.player.Paused() && !s.inFlight {
		s.attemptPlay("toggle", func() {
			s.persisted.Enabled = true
			s.persisted.Time = floorSeconds(s.player.Position())
			s.persist()
		})
		return nil
	}
	s.pauseNow()
	s.persisted.Enabled = false
	s.persisted.Time = floorSeconds(s.player.Position())
	s.persist()
	return nil
}

// pauseNow pauses the player and invalidates any in-flight play attempt.
func (s *serviceImpl) pauseNow() {
	s.player.Pause()
	s.generation++
	s.suppressed = true
	s.inFlight = false
	s.setPlaying(false)
}

// selectIndex moves to track i from its beginning. Every track change
// invalidates in-flight play attempts.
func (s *serviceImpl) selectIndex(i int) {
	s.index = i
	s.persisted.Index = i
	s.persisted.Time = 0
	s.generation++
	s.inFlight = false
}

func (s *serviceImpl) replacePlaylist(tracks []string) {
	prev := s.index
	s.playlist = tracks
	s.status = StatusReady
	s.selectIndex(0)
	s.persist()
	s.publishPlaylist()
	s.render(prev)
}

// render points the player at the current track, seeking to the persisted
// time, and publishes the new label.
func (s *serviceImpl) render(prevIndex int) {
	loc := s.currentLocation()
	s.label = location.Label(loc)
	if err := s.player.Load(loc); err != nil {
		s.logger.Warn(errmsg.FormatWith(errmsg.OpSourceLoad, loc, err))
	}
	s.loadID = s.player.LoadID()
	if s.persisted.Time > 0 {
		s.player.SetPosition(secondsToDuration(s.persisted.Time))
	}
	// Load stopped the previous source; its pause signal is ignored as stale.
	s.setPlaying(false)

	ev := TrackChange{
		PreviousIndex: prevIndex,
		Index:         s.index,
		Location:      loc,
		Label:         s.label,
	}
	s.publish(func(sub *Subscription) { sub.sendTrack(ev) })
}

func (s *serviceImpl) onResolved(tracks []string) {
	if s.status != StatusLoading {
		s.logger.Debug("playlist replaced before resolution, dropping resolved list", "tracks", len(tracks))
		return
	}
	s.playlist = tracks

	if len(tracks) == 0 {
		s.status = StatusNoTracks
		s.label = NoTracksLabel
		s.logger.Warn("no playable tracks")
		s.publishPlaylist()
		return
	}

	if s.index < 0 || s.index >= len(tracks) {
		s.logger.Debug("persisted index out of range, starting from the first track",
			"index", s.index, "tracks", len(tracks))
		s.index = 0
		s.persisted.Index = 0
		s.persist()
	}
	s.status = StatusReady
	s.logger.Info("playlist ready", "tracks", len(tracks), "index", s.index)
	s.publishPlaylist()
	s.render(s.index)

	if s.persisted.Enabled {
		s.attemptPlay("resume", nil)
	}
}

func (s *serviceImpl) handlePlayerEvent(ev player.Event) {
	if ev.Load != s.loadID || ev.Source != s.currentLocation() {
		s.logger.Debug("ignoring player event from previous source", "kind", ev.Kind, "source", ev.Source)
		return
	}
	switch ev.Kind {
	case player.EventTimeUpdate:
		s.persisted.Time = floorSeconds(ev.Position)
		s.persist()
		s.publish(func(sub *Subscription) { sub.sendPosition(ev.Position) })
	case player.EventPause:
		s.setPlaying(false)
	case player.EventPlay:
		s.setPlaying(true)
	case player.EventEnded:
		s.onEnded()
	}
}

func (s *serviceImpl) onEnded() {
	n := len(s.playlist)
	if n == 0 {
		return
	}
	prev := s.index
	s.selectIndex((s.index + 1) % n)
	s.persist()
	s.render(prev)

	gen := s.generation
	time.AfterFunc(s.advanceDelay, func() {
		s.post(func() {
			if gen != s.generation {
				s.logger.Debug("track changed during advance delay, skipping auto-play")
				return
			}
			s.attemptPlay("advance", nil)
		})
	})
}

// attemptPlay calls Play off the loop and applies the outcome on the loop.
// onSuccess runs only if nothing superseded the attempt in the meantime.
func (s *serviceImpl) attemptPlay(op string, onSuccess func()) {
	gen := s.generation
	loc := s.currentLocation()
	s.suppressed = false
	s.inFlight = true

	go func() {
		err := s.player.Play()
		s.post(func() { s.playResult(op, loc, gen, err, onSuccess) })
	}()
}

func (s *serviceImpl) playResult(op, loc string, gen uint64, err error, onSuccess func()) {
	if gen != s.generation {
		s.logger.Debug("discarding stale play result", "op", op, "location", loc, "err", err)
		if err == nil && s.suppressed && loc == s.currentLocation() {
			s.player.Pause()
		}
		return
	}
	s.inFlight = false
	if err != nil {
		s.logger.Debug("play rejected", "op", op, "location", loc, "err", err)
		s.setPlaying(false)
		ev := ErrorEvent{Operation: op, Location: loc, Err: err}
		s.publish(func(sub *Subscription) { sub.sendError(ev) })
		return
	}
	s.setPlaying(true)
	if onSuccess != nil {
		onSuccess()
	}
}

func (s *serviceImpl) setPlaying(playing bool) {
	if s.playing == playing {
		return
	}
	prev := s.state()
	s.playing = playing
	ev := StateChange{Previous: prev, Current: s.state()}
	if ev.Previous == ev.Current {
		return
	}
	s.publish(func(sub *Subscription) { sub.sendState(ev) })
}

func (s *serviceImpl) persist() {
	if err := s.store.Save(s.persisted); err != nil {
		s.logger.Warn(errmsg.Format(errmsg.OpStateSave, err))
	}
}

func (s *serviceImpl) publishPlaylist() {
	ev := PlaylistChange{
		Tracks: append([]string(nil), s.playlist...),
		Index:  s.index,
		Status: s.status,
	}
	s.publish(func(sub *Subscription) { sub.sendPlaylist(ev) })
}

func (s *serviceImpl) publish(send func(*Subscription)) {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	for _, sub := range s.subs {
		send(sub)
	}
}

func floorSeconds(d time.Duration) float64 {
	return math.Floor(d.Seconds())
}

func secondsToDuration(sec float64) time.Duration {
	return time.Duration(sec * float64(time.Second))
}
