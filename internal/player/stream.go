package player

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"

	"github.com/llehouerou/backdrop/internal/location"
)

const (
	extMP3  = ".mp3"
	extMPEG = ".mpeg"
	extFLAC = ".flac"
	extWAV  = ".wav"
)

// IsSupported reports whether the location's extension has a decoder.
func IsSupported(loc string) bool {
	switch location.Ext(loc) {
	case extMP3, extMPEG, extFLAC, extWAV:
		return true
	}
	return false
}

// opened is a decoded source ready to be attached to the speaker.
type opened struct {
	streamer beep.StreamSeekCloser
	format   beep.Format
	info     *TrackInfo
}

// Load stops current audio and selects a new source.
func (p *Player) Load(loc string) error {
	p.mu.Lock()
	if p.isClosed {
		p.mu.Unlock()
		return ErrClosed
	}
	wasPlaying := p.state == Playing
	prev, pos, prevLoad := p.source, p.positionLocked(), p.generation
	p.releaseLocked()
	p.generation++
	p.source = loc
	p.pending = 0
	p.ended = false
	p.trackInfo = nil
	p.state = Stopped
	p.mu.Unlock()

	if wasPlaying {
		p.events.send(Event{Kind: EventPause, Source: prev, Position: pos, Load: prevLoad})
	}
	return nil
}

// Play opens the source if needed and starts or resumes audio.
func (p *Player) Play() error {
	p.mu.Lock()
	if err := p.checkPlayableLocked(); err != nil {
		p.mu.Unlock()
		return err
	}
	if p.state == Playing {
		p.mu.Unlock()
		return nil
	}

	if p.streamer == nil {
		src, gen := p.source, p.generation
		p.mu.Unlock()

		o, err := p.open(src)
		if err != nil {
			return err
		}

		p.mu.Lock()
		if gen != p.generation || p.isClosed {
			p.mu.Unlock()
			o.streamer.Close()
			return ErrSourceChanged
		}
		if p.streamer == nil {
			p.installLocked(o)
		} else {
			// A concurrent Play got there first.
			o.streamer.Close()
		}
		if p.state == Playing {
			p.mu.Unlock()
			return nil
		}
	}

	if err := p.startLocked(); err != nil {
		p.mu.Unlock()
		return err
	}
	ev := Event{Kind: EventPlay, Source: p.source, Position: p.positionLocked(), Load: p.generation}
	p.mu.Unlock()

	p.events.send(ev)
	return nil
}

func (p *Player) checkPlayableLocked() error {
	switch {
	case p.isClosed:
		return ErrClosed
	case !p.autoplay && !p.interacted:
		return ErrAutoplayBlocked
	case p.source == "":
		return ErrNoSource
	}
	return nil
}

// installLocked adopts an opened source and applies any pending seek.
func (p *Player) installLocked(o *opened) {
	p.streamer = o.streamer
	p.format = o.format
	p.trackInfo = o.info
	p.state = Paused
	if p.pending > 0 {
		p.seekLocked(p.pending)
	}
	p.pending = 0
}

// startLocked attaches the stream to the speaker, or unpauses it.
func (p *Player) startLocked() error {
	if p.ctrl != nil {
		speaker.Lock()
		p.ctrl.Paused = false
		speaker.Unlock()
		p.state = Playing
		p.startTickerLocked()
		return nil
	}

	rate, err := ensureSpeaker(p.format)
	if err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	if p.ended {
		_ = p.streamer.Seek(0)
		p.ended = false
	}

	var playStreamer beep.Streamer = p.streamer
	if p.format.SampleRate != rate {
		playStreamer = beep.Resample(4, p.format.SampleRate, rate, p.streamer)
	}
	p.ctrl = &beep.Ctrl{Streamer: playStreamer, Paused: false}
	p.volume = &effects.Volume{
		Streamer: p.ctrl,
		Base:     2,
		Volume:   levelToVolume(p.volumeLevel),
		Silent:   p.volumeLevel <= 0,
	}

	p.attachment++
	id := p.attachment
	speaker.Play(beep.Seq(p.volume, beep.Callback(func() {
		// Runs on the speaker goroutine with the speaker locked.
		go p.finished(id)
	})))

	p.state = Playing
	p.startTickerLocked()
	return nil
}

// open fetches and decodes a source without holding the player lock.
func (p *Player) open(loc string) (*opened, error) {
	ext := location.Ext(loc)
	if !IsSupported(loc) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	rc, err := p.openSource(loc)
	if err != nil {
		return nil, err
	}

	info := readTrackInfo(rc, loc)
	if _, err := rc.Seek(0, io.SeekStart); err != nil {
		rc.Close()
		return nil, err
	}

	var streamer beep.StreamSeekCloser
	var format beep.Format

	switch ext {
	case extMP3, extMPEG:
		streamer, format, err = decodeGoMP3(rc)
		info.Format = "MP3"
	case extFLAC:
		// Skip ID3v2 tag if present (some taggers add it to FLAC files)
		if err = skipID3v2(rc); err == nil {
			streamer, format, err = flac.Decode(rc)
		}
		info.Format = "FLAC"
	case extWAV:
		streamer, format, err = wav.Decode(rc)
		info.Format = "WAV"
	}
	if err != nil {
		rc.Close()
		return nil, fmt.Errorf("decode %s: %w", location.Label(loc), err)
	}

	info.Duration = format.SampleRate.D(streamer.Len())
	info.SampleRate = int(format.SampleRate)
	return &opened{streamer: streamer, format: format, info: info}, nil
}

// readSeekNopCloser gives an in-memory body the closer the decoders expect.
type readSeekNopCloser struct {
	*bytes.Reader
}

func (readSeekNopCloser) Close() error { return nil }

// openSource returns a seekable reader over a local file or a downloaded URL.
func (p *Player) openSource(loc string) (io.ReadSeekCloser, error) {
	if !location.IsRemote(loc) {
		path, err := location.LocalPath(loc)
		if err != nil {
			return nil, err
		}
		return os.Open(path)
	}

	req, err := http.NewRequest(http.MethodGet, loc, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	p.logger.Debug("fetched remote track", "location", loc, "size", humanize.Bytes(uint64(len(body))))
	return readSeekNopCloser{bytes.NewReader(body)}, nil
}

// skipID3v2 skips an ID3v2 tag if present at the beginning of the file.
// Some FLAC files have ID3v2 tags prepended, which the FLAC decoder doesn't handle.
func skipID3v2(r io.ReadSeeker) error {
	header := make([]byte, 10)
	n, err := io.ReadFull(r, header)
	if err != nil && n == 0 {
		return err
	}
	if n < 10 || string(header[0:3]) != "ID3" {
		_, err = r.Seek(0, io.SeekStart)
		return err
	}

	// ID3v2 size is a syncsafe integer: 7 bits per byte.
	size := int64(header[6])<<21 | int64(header[7])<<14 | int64(header[8])<<7 | int64(header[9])

	_, err = r.Seek(10+size, io.SeekStart)
	return err
}
