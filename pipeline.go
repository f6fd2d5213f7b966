package pixelfilter

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// ProgressFunc receives the completed percentage of a run, in the range 0-100.
// Within a single Apply call the reported values never decrease.
type ProgressFunc func(percent int)

// Pipeline drives a filter over every coordinate of a source buffer.
// The zero value is ready to use and processes rows on GOMAXPROCS workers.
type Pipeline struct {
	// Workers is the number of goroutines processing rows.
	// Values <= 0 select runtime.GOMAXPROCS(0).
	Workers int

	// Progress, when set, is notified as rows complete.
	Progress ProgressFunc
}

// Apply runs f over src and returns a new buffer of the same dimensions.
// The context is checked between rows; when it is cancelled Apply returns
// ctx.Err() and no buffer. src is never modified.
func (p *Pipeline) Apply(ctx context.Context, f Filter, src *Buffer) (*Buffer, error) {
	if src == nil || src.Empty() {
		return nil, ErrInvalidDimensions
	}
	log := Logger().WithFields(logrus.Fields{
		"filter": filterName(f),
		"width":  src.Width(),
		"height": src.Height(),
	})
	start := time.Now()

	stage, err := prepare(f, src)
	if err != nil {
		return nil, fmt.Errorf("measuring %s: %w", filterName(f), err)
	}

	workers := p.workers(src.Height())
	dst := newBuffer(src.Width(), src.Height())
	report := p.reporter(src.Height())
	report(0)

	var next atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			for {
				y := int(next.Add(1) - 1)
				if y >= src.Height() {
					return nil
				}
				if err := gctx.Err(); err != nil {
					return err
				}
				for x := 0; x < src.Width(); x++ {
					dst.set(x, y, stage.ColorAt(src, x, y))
				}
				report(1)
			}
		})
	}
	if err := g.Wait(); err != nil {
		log.WithError(err).Warn("filter run aborted")
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"workers": workers,
		"elapsed": time.Since(start),
	}).Debug("filter applied")
	return dst, nil
}

// Chain applies the filters in order, each one reading the result of the previous.
// With no filters the source is returned as is.
func (p *Pipeline) Chain(ctx context.Context, src *Buffer, filters ...Filter) (*Buffer, error) {
	out := src
	for i, f := range filters {
		res, err := p.Apply(ctx, f, out)
		if err != nil {
			return nil, fmt.Errorf("filter %d (%s): %w", i, filterName(f), err)
		}
		out = res
	}
	return out, nil
}

// Apply runs f over src on a default Pipeline.
func Apply(ctx context.Context, f Filter, src *Buffer) (*Buffer, error) {
	var p Pipeline
	return p.Apply(ctx, f, src)
}

func (p *Pipeline) workers(rows int) int {
	n := p.Workers
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	return minOf(n, rows)
}

// reporter returns a function which accumulates completed rows and forwards
// the resulting percentage to the progress callback.
func (p *Pipeline) reporter(rows int) func(done int) {
	if p.Progress == nil {
		return func(int) {}
	}
	var (
		mu        sync.Mutex
		completed int
		last      = -1
	)
	return func(done int) {
		mu.Lock()
		defer mu.Unlock()

		completed += done
		percent := completed * 100 / rows
		if percent > last {
			last = percent
			p.Progress(percent)
		}
	}
}
