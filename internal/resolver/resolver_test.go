package resolver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/backdrop/internal/location"
)

var errUnavailable = errors.New("unavailable")

// availableSet returns a prober that accepts only the given locations.
func availableSet(locations ...string) Prober {
	ok := make(map[string]bool, len(locations))
	for _, l := range locations {
		ok[l] = true
	}
	return ProberFunc(func(_ context.Context, location string) error {
		if ok[location] {
			return nil
		}
		return errUnavailable
	})
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		candidates []string
		available  []string
		want       []string
	}{
		{
			name:       "all available",
			candidates: []string{"a", "b", "c"},
			available:  []string{"a", "b", "c"},
			want:       []string{"a", "b", "c"},
		},
		{
			name:       "subset keeps original order",
			candidates: []string{"a", "b", "c", "d"},
			available:  []string{"d", "b"},
			want:       []string{"b", "d"},
		},
		{
			name:       "none available falls back to original",
			candidates: []string{"a", "b", "c"},
			available:  nil,
			want:       []string{"a", "b", "c"},
		},
		{
			name:       "single unavailable candidate falls back",
			candidates: []string{"only"},
			available:  nil,
			want:       []string{"only"},
		},
		{
			name:       "empty input",
			candidates: nil,
			want:       []string{},
		},
		{
			name:       "duplicates are probed independently",
			candidates: []string{"a", "x", "a"},
			available:  []string{"a"},
			want:       []string{"a", "a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(availableSet(tt.available...), nil)

			got := r.Resolve(context.Background(), tt.candidates)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_FallbackIsACopy(t *testing.T) {
	candidates := []string{"a", "b"}
	r := New(availableSet(), nil)

	got := r.Resolve(context.Background(), candidates)
	got[0] = "changed"

	assert.Equal(t, "a", candidates[0])
}

func TestResolve_ProbesConcurrently(t *testing.T) {
	var inFlight, peak atomic.Int32
	release := make(chan struct{})
	prober := ProberFunc(func(_ context.Context, _ string) error {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		<-release
		inFlight.Add(-1)
		return nil
	})
	r := New(prober, nil)

	done := make(chan []string)
	go func() { done <- r.Resolve(context.Background(), []string{"a", "b", "c"}) }()

	require.Eventually(t, func() bool { return peak.Load() == 3 }, time.Second, time.Millisecond)
	close(release)

	assert.Equal(t, []string{"a", "b", "c"}, <-done)
}

func TestHTTPProber(t *testing.T) {
	var mu sync.Mutex
	var methods []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		methods = append(methods, r.Method)
		mu.Unlock()
		switch r.URL.Path {
		case "/ok.mp3":
			w.WriteHeader(http.StatusOK)
		case "/partial.mp3":
			w.WriteHeader(http.StatusPartialContent)
		case "/moved.mp3":
			http.Redirect(w, r, "/ok.mp3", http.StatusFound)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	p := NewHTTPProber(time.Second)
	ctx := context.Background()

	assert.NoError(t, p.Probe(ctx, srv.URL+"/ok.mp3"))
	assert.NoError(t, p.Probe(ctx, srv.URL+"/partial.mp3"))
	assert.NoError(t, p.Probe(ctx, srv.URL+"/moved.mp3"))
	assert.Error(t, p.Probe(ctx, srv.URL+"/missing.mp3"))

	mu.Lock()
	defer mu.Unlock()
	for _, m := range methods {
		assert.Equal(t, http.MethodHead, m)
	}
}

func TestHTTPProber_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := NewHTTPProber(time.Second).Probe(context.Background(), srv.URL+"/a.mp3")

	assert.ErrorContains(t, err, "unexpected status")
}

func TestHTTPProber_Timeout(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	err := NewHTTPProber(20*time.Millisecond).Probe(context.Background(), srv.URL+"/slow.mp3")

	assert.Error(t, err)
}

func TestHTTPProber_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	assert.Error(t, NewHTTPProber(time.Second).Probe(context.Background(), url+"/a.mp3"))
}

func TestFileProber(t *testing.T) {
	dir := t.TempDir()
	track := filepath.Join(dir, "song.mp3")
	require.NoError(t, os.WriteFile(track, []byte("fake"), 0o600))

	p := FileProber{}
	ctx := context.Background()

	assert.NoError(t, p.Probe(ctx, track))
	assert.NoError(t, p.Probe(ctx, "file://"+track))
	assert.Error(t, p.Probe(ctx, filepath.Join(dir, "missing.mp3")))
	assert.ErrorIs(t, p.Probe(ctx, dir), ErrNotRegularFile)
	assert.ErrorIs(t, p.Probe(ctx, "ftp://host/song.mp3"), location.ErrUnsupportedScheme)
}

func TestSchemeProber_Dispatch(t *testing.T) {
	var httpCalls, fileCalls []string
	p := &SchemeProber{
		HTTP: ProberFunc(func(_ context.Context, l string) error { httpCalls = append(httpCalls, l); return nil }),
		File: ProberFunc(func(_ context.Context, l string) error { fileCalls = append(fileCalls, l); return nil }),
	}
	ctx := context.Background()

	_ = p.Probe(ctx, "https://example.com/a.mp3")
	_ = p.Probe(ctx, "HTTP://example.com/b.mp3")
	_ = p.Probe(ctx, "audio/c.mp3")
	_ = p.Probe(ctx, "file:///music/d.mp3")

	assert.Equal(t, []string{"https://example.com/a.mp3", "HTTP://example.com/b.mp3"}, httpCalls)
	assert.Equal(t, []string{"audio/c.mp3", "file:///music/d.mp3"}, fileCalls)
}

func TestResolve_MixedLocalAndRemote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/up.mp3" {
			w.WriteHeader(http.StatusOK)
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	dir := t.TempDir()
	local := filepath.Join(dir, "local.mp3")
	require.NoError(t, os.WriteFile(local, []byte("fake"), 0o600))

	candidates := []string{
		srv.URL + "/down.mp3",
		local,
		filepath.Join(dir, "gone.mp3"),
		srv.URL + "/up.mp3",
	}
	r := New(NewSchemeProber(time.Second), nil)

	got := r.Resolve(context.Background(), candidates)

	assert.Equal(t, []string{local, srv.URL + "/up.mp3"}, got)
}
