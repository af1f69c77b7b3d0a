// Package wilson defines options and sentinel errors for the loop-erased
// random-walk carver.
package wilson

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/arvegal/mazecarve/anim"
)

// ErrMazeNil is returned when a nil *grid.Maze is passed to Carve.
var ErrMazeNil = errors.New("wilson: maze is nil")

// Option configures optional behavior of Carve.
type Option func(*Options)

// Options holds configurable parameters for Wilson's algorithm.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background(). A fired
	// context aborts the run at the next inter-step delay.
	Ctx context.Context

	// Rand is the randomness source for cell and direction selection.
	// Defaults to the deterministic seed==0 stream.
	Rand *rand.Rand

	// Renderer, if non-nil, receives one frame per walk step plus the
	// final settled frame. Nil skips rendering but keeps the delay
	// suspension points, so cancellation still works.
	Renderer anim.Renderer

	// StepDelay is the awaited pause after each walk step. Default 0.
	StepDelay time.Duration

	// FinalDelay is the single longer pause after the settled frame.
	// Default 0.
	FinalDelay time.Duration
}

// DefaultOptions returns Options with a background context, the default
// deterministic RNG, no renderer, and zero delays.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Rand:       nil,
		Renderer:   nil,
		StepDelay:  0,
		FinalDelay: 0,
	}
}

// WithContext returns an Option that sets the cancellation context.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithRand returns an Option that sets the randomness source.
// Passing nil has no effect (the default stream is retained).
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) {
		if rng != nil {
			o.Rand = rng
		}
	}
}

// WithRenderer returns an Option that installs r as the frame consumer.
func WithRenderer(r anim.Renderer) Option {
	return func(o *Options) {
		o.Renderer = r
	}
}

// WithStepDelay returns an Option that sets the per-step pause.
func WithStepDelay(d time.Duration) Option {
	return func(o *Options) {
		o.StepDelay = d
	}
}

// WithFinalDelay returns an Option that sets the terminal pause emitted
// after the settled frame.
func WithFinalDelay(d time.Duration) Option {
	return func(o *Options) {
		o.FinalDelay = d
	}
}
