package emit

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
)

// DefaultDelay is the pause between consecutive lines.
const DefaultDelay = 10 * time.Millisecond

// Emitter writes one formatted line per value, pacing writes with a fixed
// delay. An Emitter is not safe for concurrent use.
type Emitter struct {
	w      io.Writer
	delay  time.Duration
	format Format
	logger *zap.Logger
	line   []byte
}

// Option configures an Emitter.
type Option func(*Emitter)

// WithDelay sets the pause between lines. Negative values are treated as zero.
func WithDelay(d time.Duration) Option {
	return func(e *Emitter) {
		e.delay = max(d, 0)
	}
}

// WithFormat sets the line format. A nil format is ignored.
func WithFormat(f Format) Option {
	return func(e *Emitter) {
		if f != nil {
			e.format = f
		}
	}
}

// WithLogger attaches a logger for progress output.
func WithLogger(l *zap.Logger) Option {
	return func(e *Emitter) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates an Emitter writing to w with tuple formatting and DefaultDelay.
func New(w io.Writer, opts ...Option) *Emitter {
	e := &Emitter{
		w:      w,
		delay:  DefaultDelay,
		format: FormatTuple,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

// Delay returns the configured pause between lines.
func (e *Emitter) Delay() time.Duration { return e.delay }

// Emit writes values in index order, one line each, waiting the configured
// delay between consecutive lines. It returns the number of lines written.
// Emission stops at the first write error or when ctx is done.
func (e *Emitter) Emit(ctx context.Context, values []float64) (int, error) {
	start := time.Now()

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for i, v := range values {
		if i > 0 && e.delay > 0 {
			if timer == nil {
				timer = time.NewTimer(e.delay)
			} else {
				timer.Reset(e.delay)
			}
			select {
			case <-ctx.Done():
				return i, ctx.Err()
			case <-timer.C:
			}
		} else if err := ctx.Err(); err != nil {
			return i, err
		}

		e.line = append(append(e.line[:0], e.format(v)...), '\n')
		if _, err := e.w.Write(e.line); err != nil {
			return i, fmt.Errorf("emit: write line %d: %w", i, err)
		}
	}

	e.logger.Debug("emission complete",
		zap.Int("lines", len(values)),
		zap.Duration("delay", e.delay),
		zap.Duration("elapsed", time.Since(start)),
	)
	return len(values), nil
}
