// Package coord loads every stream from a Source and keeps the dashboard fed.
package coord

import (
	"context"
	"errors"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/abelbrown/signalboard/internal/fetch"
	"github.com/abelbrown/signalboard/internal/logging"
	"github.com/abelbrown/signalboard/internal/signal"
	"github.com/abelbrown/signalboard/internal/ui"
)

// ErrThrottled is returned by Reload when called again within MinGap.
var ErrThrottled = errors.New("reload throttled")

// streamTimeout bounds the read of a single stream.
const streamTimeout = 30 * time.Second

// maxConcurrentLoads limits parallel stream reads.
const maxConcurrentLoads = 5

// Sender receives load results. *tea.Program satisfies it.
type Sender interface {
	Send(msg tea.Msg)
}

// Options configure a Coordinator.
type Options struct {
	Interval time.Duration // periodic reload; 0 disables
	MinGap   time.Duration // minimum time between manual reloads
}

// Coordinator runs load cycles against one Source.
// Uses context cancellation as the ONLY stop mechanism.
type Coordinator struct {
	src      fetch.Source
	interval time.Duration
	limiter  *rate.Limiter
	wg       sync.WaitGroup
}

// New creates a Coordinator for src.
func New(src fetch.Source, opts Options) *Coordinator {
	limit := rate.Inf
	if opts.MinGap > 0 {
		limit = rate.Every(opts.MinGap)
	}
	return &Coordinator{
		src:      src,
		interval: opts.Interval,
		limiter:  rate.NewLimiter(limit, 1),
	}
}

// Load reads all five streams in parallel. It never fails as a whole: a
// stream that cannot be read is recorded in Result.Offline and left empty.
func (c *Coordinator) Load(ctx context.Context) fetch.Result {
	start := time.Now()
	res := fetch.NewResult(c.src.Name())

	var mu sync.Mutex
	var g errgroup.Group
	g.SetLimit(maxConcurrentLoads)

	for _, t := range signal.StreamOrder {
		t := t // per-iteration copy (go 1.21 loop semantics)
		g.Go(func() error {
			b, err := c.loadStream(ctx, t)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				res.Fail(t, err)
				return nil // never fail the group - errors reported per-stream
			}
			res.Add(b)
			return nil
		})
	}

	_ = g.Wait()
	res.Took = time.Since(start)

	log := logging.WithPrefix("coord")
	for _, t := range signal.StreamOrder {
		if err, ok := res.Offline[t]; ok {
			log.Warn("stream offline", "stream", t, "err", err)
		}
		if n := res.Undecodable[t]; n > 0 {
			log.Warn("undecodable records", "stream", t, "count", n)
		}
	}
	log.Info("streams loaded", "source", res.Source, "records", res.Streams.Len(), "offline", len(res.Offline), "took", res.Took)

	return res
}

func (c *Coordinator) loadStream(ctx context.Context, t signal.Type) (fetch.Batch, error) {
	if ctx.Err() != nil {
		return fetch.Batch{Type: t}, ctx.Err()
	}
	streamCtx, cancel := context.WithTimeout(ctx, streamTimeout)
	defer cancel()
	return fetch.Fetch(streamCtx, c.src, t)
}

// Reload runs a load cycle unless one was requested within MinGap.
func (c *Coordinator) Reload(ctx context.Context) (fetch.Result, error) {
	if !c.limiter.Allow() {
		logging.WithPrefix("coord").Debug("reload throttled")
		return fetch.Result{}, ErrThrottled
	}
	return c.Load(ctx), nil
}

// Start begins periodic reloading. Call with a cancellable context.
// The initial load is the caller's; Start only ticks.
func (c *Coordinator) Start(ctx context.Context, program Sender) {
	if c.interval <= 0 {
		return
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()

		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				res := c.Load(ctx)
				if ctx.Err() != nil {
					return
				}
				if program != nil {
					program.Send(ui.StreamsLoaded{Result: res})
				}
			}
		}
	}()
}

// Wait blocks until the background goroutine exits.
// Call after canceling the context passed to Start.
func (c *Coordinator) Wait() {
	c.wg.Wait()
}

// LoadCmd wraps Load as a Bubble Tea command for the initial load.
func (c *Coordinator) LoadCmd(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		return ui.StreamsLoaded{Result: c.Load(ctx)}
	}
}

// ReloadCmd wraps Reload as a Bubble Tea command for manual reloads.
func (c *Coordinator) ReloadCmd(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		res, err := c.Reload(ctx)
		return ui.StreamsLoaded{Result: res, Err: err}
	}
}
