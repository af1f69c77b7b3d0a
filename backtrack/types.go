// Package backtrack defines options and sentinel errors for the randomized
// depth-first carver.
package backtrack

import (
	"errors"
	"math/rand"

	"github.com/arvegal/mazecarve/grid"
)

var (
	// ErrMazeNil is returned when a nil *grid.Maze is passed to Carve.
	ErrMazeNil = errors.New("backtrack: maze is nil")

	// ErrStartNotFound indicates that the cell requested via WithStart
	// does not exist in the maze.
	ErrStartNotFound = errors.New("backtrack: start cell not found")
)

// Option configures optional behavior of Carve.
type Option func(*Options)

// Options holds configurable parameters for the depth-first carver.
type Options struct {
	// Rand is the randomness source for start selection and direction
	// shuffling. Defaults to the deterministic seed==0 stream.
	Rand *rand.Rand

	// Start, if not NoCell, fixes the carve's starting cell instead of
	// picking one uniformly at random.
	Start grid.CellID
}

// DefaultOptions returns Options with the deterministic default RNG and a
// random start cell.
func DefaultOptions() Options {
	return Options{
		Rand:  nil,
		Start: grid.NoCell,
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

// WithStart returns an Option that fixes the starting cell.
func WithStart(id grid.CellID) Option {
	return func(o *Options) {
		o.Start = id
	}
}
