package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DefaultPlaylist is used when no playlist is configured.
var DefaultPlaylist = []string{
	"audio/song.mpeg",
	"audio/song2.mp3",
	"audio/song3.mp3",
}

const (
	defaultAdvanceDelay  = 160 * time.Millisecond
	defaultTickInterval  = 250 * time.Millisecond
	defaultProbeTimeout  = 5 * time.Second
	defaultLogLevel      = "info"
	defaultNotifyTimeout = 5000
)

type Config struct {
	Playlist []string `koanf:"playlist"` // candidate locations: paths, file:// or http(s):// URLs
	Icons    string   `koanf:"icons"`    // "nerd", "unicode", or "none"
	Autoplay *bool    `koanf:"autoplay"` // start without a key press (default: true)
	Volume   *float64 `koanf:"volume"`   // 0.0-1.0 (default: 1)

	StatePath string `koanf:"state_path"` // sqlite file (default: XDG data dir)
	StateKey  string `koanf:"state_key"`  // record key (default: backdrop.music_state)

	AdvanceDelay time.Duration `koanf:"advance_delay"` // pause between tracks (default: 160ms)
	TickInterval time.Duration `koanf:"tick_interval"` // position update rate (default: 250ms)

	Probe         ProbeConfig         `koanf:"probe"`
	Log           LogConfig           `koanf:"log"`
	Notifications NotificationsConfig `koanf:"notifications"`
}

// NotificationsConfig holds desktop notification settings.
type NotificationsConfig struct {
	Enabled      *bool `koanf:"enabled"`        // master switch (default: false)
	ShowAlbumArt *bool `koanf:"show_album_art"` // use cover art as icon (default: true)
	Timeout      int32 `koanf:"timeout"`        // ms (default: 5000)
}

// ProbeConfig holds playlist probing settings.
type ProbeConfig struct {
	Timeout time.Duration `koanf:"timeout"` // per-candidate timeout (default: 5s)
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `koanf:"level"` // debug, info, warn, error (default: info)
	File  string `koanf:"file"`  // log file (default: XDG state dir)
}

func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given TOML files in order, later files overriding
// earlier ones. Missing files are skipped.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	// Expand ~ in local playlist entries
	for i, loc := range cfg.Playlist {
		cfg.Playlist[i] = expandPath(strings.TrimSpace(loc))
	}

	if cfg.StatePath != "" {
		cfg.StatePath = expandPath(cfg.StatePath)
	}
	if cfg.Log.File != "" {
		cfg.Log.File = expandPath(cfg.Log.File)
	}
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/backdrop/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "backdrop", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetPlaylist returns the configured playlist, or DefaultPlaylist.
func (c *Config) GetPlaylist() []string {
	if len(c.Playlist) == 0 {
		return append([]string(nil), DefaultPlaylist...)
	}
	return append([]string(nil), c.Playlist...)
}

// AutoplayEnabled reports whether playback may start before any key press.
func (c *Config) AutoplayEnabled() bool {
	return c.Autoplay == nil || *c.Autoplay
}

// GetVolume returns the volume clamped to 0..1 (default: 1).
func (c *Config) GetVolume() float64 {
	if c.Volume == nil {
		return 1
	}
	return min(max(*c.Volume, 0), 1)
}

// GetAdvanceDelay returns the delay before auto-advance plays the next track.
func (c *Config) GetAdvanceDelay() time.Duration {
	if c.AdvanceDelay <= 0 {
		return defaultAdvanceDelay
	}
	return c.AdvanceDelay
}

// GetTickInterval returns the position update interval.
func (c *Config) GetTickInterval() time.Duration {
	if c.TickInterval <= 0 {
		return defaultTickInterval
	}
	return c.TickInterval
}

// GetProbeTimeout returns the per-candidate probe timeout.
func (c *Config) GetProbeTimeout() time.Duration {
	if c.Probe.Timeout <= 0 {
		return defaultProbeTimeout
	}
	return c.Probe.Timeout
}

// GetLogLevel returns the configured log level name (default: info).
func (c *Config) GetLogLevel() string {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
		return c.Log.Level
	default:
		return defaultLogLevel
	}
}

// NotificationsEnabled reports whether now-playing notifications are sent.
func (n NotificationsConfig) NotificationsEnabled() bool {
	return n.Enabled != nil && *n.Enabled
}

// AlbumArtEnabled reports whether notifications carry the cover as icon.
func (n NotificationsConfig) AlbumArtEnabled() bool {
	return n.ShowAlbumArt == nil || *n.ShowAlbumArt
}

// GetTimeout returns the notification timeout in milliseconds.
func (n NotificationsConfig) GetTimeout() int32 {
	if n.Timeout <= 0 {
		return defaultNotifyTimeout
	}
	return n.Timeout
}
