package player

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/llehouerou/backdrop/internal/logging"
)

var (
	// ErrAutoplayBlocked rejects Play before any user interaction when autoplay is off.
	ErrAutoplayBlocked = errors.New("autoplay blocked until user interaction")
	// ErrNoSource rejects Play when no source has been loaded.
	ErrNoSource = errors.New("no source loaded")
	// ErrUnsupportedFormat rejects sources whose extension has no decoder.
	ErrUnsupportedFormat = errors.New("unsupported format")
	// ErrSourceChanged rejects a Play whose source was replaced while it was being opened.
	ErrSourceChanged = errors.New("source changed while opening")
	// ErrClosed rejects Play after Close.
	ErrClosed = errors.New("player closed")
)

const (
	// DefaultTickInterval matches the cadence of a media element's time updates.
	DefaultTickInterval = 250 * time.Millisecond
	defaultFetchTimeout = 30 * time.Second
)

// Options configures a Player.
type Options struct {
	// Autoplay allows Play before NotifyInteraction has been called.
	Autoplay     bool
	TickInterval time.Duration
	// Volume is the initial level, 0.0 to 1.0. Zero selects full volume;
	// call SetVolume(0) to mute.
	Volume     float64
	HTTPClient *http.Client
	Logger     *log.Logger
}

// Player plays one source at a time through the shared beep speaker.
type Player struct {
	mu sync.Mutex

	autoplay     bool
	interacted   bool
	tickInterval time.Duration
	httpClient   *http.Client
	logger       *log.Logger

	state       State
	source      string
	generation  uint64 // bumped by Load; stale opens compare against it
	attachment  uint64 // bumped per speaker.Play; stale end callbacks compare against it
	pending     time.Duration
	ended       bool
	streamer    beep.StreamSeekCloser
	format      beep.Format
	ctrl        *beep.Ctrl
	volume      *effects.Volume
	volumeLevel float64
	trackInfo   *TrackInfo
	tickStop    chan struct{}

	events    emitter
	closeOnce sync.Once
	isClosed  bool
}

var (
	speakerMu          sync.Mutex
	speakerInitialized bool
	speakerSampleRate  beep.SampleRate
)

// New creates a player with nothing loaded.
func New(opts Options) *Player {
	if opts.TickInterval <= 0 {
		opts.TickInterval = DefaultTickInterval
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: defaultFetchTimeout}
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.Volume == 0 {
		opts.Volume = 1
	}
	return &Player{
		autoplay:     opts.Autoplay,
		tickInterval: opts.TickInterval,
		httpClient:   opts.HTTPClient,
		logger:       opts.Logger,
		state:        Stopped,
		volumeLevel:  clampLevel(opts.Volume),
		events:       newEmitter(),
	}
}

// ensureSpeaker initializes the speaker once, at the first track's sample rate.
func ensureSpeaker(format beep.Format) (beep.SampleRate, error) {
	speakerMu.Lock()
	defer speakerMu.Unlock()

	if speakerInitialized {
		return speakerSampleRate, nil
	}
	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		return 0, err
	}
	speakerSampleRate = format.SampleRate
	speakerInitialized = true
	return speakerSampleRate, nil
}

// NotifyInteraction records a user gesture.
func (p *Player) NotifyInteraction() {
	p.mu.Lock()
	p.interacted = true
	p.mu.Unlock()
}

// State returns the current playback state.
func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Paused reports whether audio is not currently advancing.
func (p *Player) Paused() bool { return p.State() != Playing }

// LoadID returns the generation of the loaded source.
func (p *Player) LoadID() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.generation
}

// Source returns the loaded location.
func (p *Player) Source() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.source
}

// TrackInfo returns metadata of the opened source, or nil before the first Play.
func (p *Player) TrackInfo() *TrackInfo {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.trackInfo == nil {
		return nil
	}
	info := *p.trackInfo
	return &info
}

// Events returns the signal channel.
func (p *Player) Events() <-chan Event { return p.events.ch }
