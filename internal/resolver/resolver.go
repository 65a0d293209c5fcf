// Package resolver narrows a candidate playlist down to the tracks that are
// actually reachable.
package resolver

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/llehouerou/backdrop/internal/logging"
)

// Prober reports whether a single location is available.
// A nil error means available.
type Prober interface {
	Probe(ctx context.Context, location string) error
}

// ProberFunc adapts a function to Prober.
type ProberFunc func(ctx context.Context, location string) error

func (f ProberFunc) Probe(ctx context.Context, location string) error { return f(ctx, location) }

// Resolver probes candidates concurrently and keeps the available ones.
type Resolver struct {
	prober Prober
	logger *log.Logger
}

// New creates a resolver. A nil logger discards output.
func New(p Prober, logger *log.Logger) *Resolver {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Resolver{prober: p, logger: logger}
}

// Resolve returns the available candidates in their original order. When no
// candidate is available the original list is returned unchanged, so a
// possibly-broken entry still gets a chance to play.
func (r *Resolver) Resolve(ctx context.Context, candidates []string) []string {
	if len(candidates) == 0 {
		return []string{}
	}

	ok := make([]bool, len(candidates))
	var wg sync.WaitGroup
	for i, loc := range candidates {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := r.prober.Probe(ctx, loc); err != nil {
				r.logger.Debug("track unavailable", "location", loc, "err", err)
				return
			}
			ok[i] = true
		}()
	}
	wg.Wait()

	retained := make([]string, 0, len(candidates))
	for i, loc := range candidates {
		if ok[i] {
			retained = append(retained, loc)
		}
	}

	if len(retained) == 0 {
		r.logger.Warn("no reachable tracks, keeping original playlist", "count", len(candidates))
		return append([]string(nil), candidates...)
	}
	return retained
}
