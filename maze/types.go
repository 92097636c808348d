package maze

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/mazerun/grid"
)

// Sentinel errors for maze generation and verification.
var (
	// ErrInvalidDimension indicates non-positive maze dimensions.
	ErrInvalidDimension = fmt.Errorf("maze: %w", grid.ErrInvalidDimension)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("maze: invalid option supplied")

	// ErrNilMaze is returned by Verify for a nil maze or grid.
	ErrNilMaze = errors.New("maze: maze is nil")

	// ErrMalformed indicates the grid does not follow the doubled layout
	// (wrong shape, or an open pillar between four cells).
	ErrMalformed = errors.New("maze: grid does not match the logical layout")

	// ErrBorderBreach indicates a border cell other than Start/End is open.
	ErrBorderBreach = errors.New("maze: border opened outside endpoints")

	// ErrCycle indicates an open wall joins two already connected cells.
	ErrCycle = errors.New("maze: cycle detected")

	// ErrDisconnected indicates the carved cells do not form a single tree.
	ErrDisconnected = errors.New("maze: cells are not all connected")

	// ErrEndpoints indicates Start/End are not distinct openings on two different borders.
	ErrEndpoints = errors.New("maze: invalid endpoints")

	// ErrUnreachable indicates End cannot be reached from Start.
	ErrUnreachable = errors.New("maze: end unreachable from start")
)

// Maze is a generated grid together with its entry and exit.
type Maze struct {
	// Rows and Cols are the logical dimensions.
	Rows, Cols int
	// Grid has shape (2*Rows+1) × (2*Cols+1).
	Grid *grid.Grid
	// Start and End are border openings on two different sides.
	Start, End grid.Coord
	// Seed is the effective seed, or 0 when a caller-owned *rand.Rand was used.
	Seed int64
}

// Option configures generation via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by Generate/New.
type Option func(*Options)

// Options holds the generation parameters.
type Options struct {
	// Seed feeds a fresh generator when Rand is nil. Zero maps to defaultSeed.
	Seed int64

	// Rand, if non-nil, is used directly and Seed is ignored.
	Rand *rand.Rand

	// CorridorCap forces a jump to a new branch point after this many carved
	// steps in one corridor. Zero disables the cap.
	CorridorCap int

	err error
}

// DefaultOptions returns Options with the default seed and no corridor cap.
func DefaultOptions() Options {
	return Options{
		Seed:        defaultSeed,
		CorridorCap: 0,
	}
}

// WithSeed selects a deterministic generator seeded with seed.
// It clears any generator set by WithRand.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
		o.Rand = nil
	}
}

// WithRand uses r as the randomness source. A nil r is ignored.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithCorridorCap limits corridor length before a forced jump.
//
//	n > 0: jump after n carved steps
//	n == 0: no cap
//	n < 0: invalid option → ErrOptionViolation
func WithCorridorCap(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: CorridorCap cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.CorridorCap = n
	}
}

// build applies opts over the defaults.
func build(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}

// source returns the generator described by o and the seed it was built from.
func (o Options) source() (*rand.Rand, int64) {
	if o.Rand != nil {
		return o.Rand, 0
	}
	seed := o.Seed
	if seed == 0 {
		seed = defaultSeed
	}
	return rngFromSeed(seed), seed
}
