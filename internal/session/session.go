// Package session drives the generate → search → display cycle: it owns the
// current maze and its search, and advances the search a few steps per tick
// unless paused.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazerun/astar"
	"github.com/katalvlaran/mazerun/internal/config"
	"github.com/katalvlaran/mazerun/maze"
	"github.com/katalvlaran/mazerun/render"
)

// ErrInvalidSpeed indicates a non-positive steps-per-tick value.
var ErrInvalidSpeed = errors.New("session: speed must be at least 1")

// clearScreen homes the cursor and clears the terminal.
const clearScreen = "\x1b[H\x1b[2J"

// Session is not safe for concurrent use.
type Session struct {
	cfg   config.Config
	log   logrus.FieldLogger
	seeds *rand.Rand

	maze   *maze.Maze
	search *astar.Search
	state  astar.State

	speed    int
	paused   bool
	reported bool
	mazes    int
}

// New validates cfg and generates the first maze.
// A zero cfg.Seed draws the seed sequence from the clock.
func New(cfg config.Config, log logrus.FieldLogger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Session{
		cfg:   cfg,
		log:   log,
		seeds: rand.New(rand.NewSource(seed)),
		speed: cfg.Speed,
	}
	if err := s.generate(seed); err != nil {
		return nil, err
	}
	return s, nil
}

// Regenerate replaces the maze with a fresh one and restarts the search.
// The pause flag is kept.
func (s *Session) Regenerate() error {
	return s.generate(s.seeds.Int63())
}

func (s *Session) generate(seed int64) error {
	m, err := maze.New(s.cfg.Rows, s.cfg.Cols,
		maze.WithSeed(seed),
		maze.WithCorridorCap(s.cfg.CorridorCap))
	if err != nil {
		return fmt.Errorf("session: generate: %w", err)
	}
	if err := maze.Verify(m); err != nil {
		return fmt.Errorf("session: generate: %w", err)
	}
	search, err := astar.New(m.Grid, m.Start, m.End)
	if err != nil {
		return fmt.Errorf("session: search: %w", err)
	}

	s.maze, s.search = m, search
	s.state = search.State()
	s.reported = false
	s.mazes++
	s.log.WithFields(logrus.Fields{
		"maze":  s.mazes,
		"rows":  m.Rows,
		"cols":  m.Cols,
		"seed":  m.Seed,
		"start": m.Start.String(),
		"end":   m.End.String(),
	}).Info("maze generated")
	return nil
}

// Reset restarts the search on the current maze.
func (s *Session) Reset() {
	s.search.Reset()
	s.state = s.search.State()
	s.reported = false
	s.log.WithField("maze", s.mazes).Debug("search reset")
}

// TogglePause flips the pause flag and returns the new value.
func (s *Session) TogglePause() bool {
	s.paused = !s.paused
	s.log.WithField("paused", s.paused).Debug("pause toggled")
	return s.paused
}

// Paused reports whether ticks are currently ignored.
func (s *Session) Paused() bool { return s.paused }

// SetSpeed sets how many search steps one Tick performs.
func (s *Session) SetSpeed(stepsPerTick int) error {
	if stepsPerTick < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidSpeed, stepsPerTick)
	}
	s.speed = stepsPerTick
	s.log.WithField("speed", stepsPerTick).Debug("speed changed")
	return nil
}

// Speed returns the current steps per tick.
func (s *Session) Speed() int { return s.speed }

// Tick advances the search by up to Speed steps and returns the latest state.
// The bool is false when nothing moved because the session is paused or the
// search had already finished.
func (s *Session) Tick() (astar.State, bool) {
	if s.paused || s.search.Done() {
		return s.state, false
	}
	for i := 0; i < s.speed && !s.search.Done(); i++ {
		s.state = s.search.Step()
	}
	if s.state.Done && !s.reported {
		s.reported = true
		s.log.WithFields(logrus.Fields{
			"maze":   s.mazes,
			"found":  s.state.Found,
			"steps":  s.state.Step,
			"cost":   s.search.Cost(),
			"closed": s.state.Closed.Size(),
		}).Info("search finished")
	}
	return s.state, true
}

// Maze returns the current maze.
func (s *Session) Maze() *maze.Maze { return s.maze }

// State returns the latest search snapshot.
func (s *Session) State() astar.State { return s.state }

// Mazes returns how many mazes this session has generated.
func (s *Session) Mazes() int { return s.mazes }

// Run animates the session into w: one frame per tick, cfg.Interval apart.
// When a search finishes it regenerates if cfg.Loop is set, otherwise returns.
// A session paused on entry draws its frame once and waits for ctx.
// Cancelling ctx stops the loop and returns ctx.Err().
func (s *Session) Run(ctx context.Context, w io.Writer) error {
	var tick <-chan time.Time
	if s.cfg.Interval > 0 {
		t := time.NewTicker(s.cfg.Interval)
		defer t.Stop()
		tick = t.C
	}

	if err := s.draw(w); err != nil {
		return err
	}
	if s.paused {
		<-ctx.Done()
		return ctx.Err()
	}
	for {
		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		if _, moved := s.Tick(); moved {
			if err := s.draw(w); err != nil {
				return err
			}
		}
		if !s.state.Done {
			continue
		}
		if !s.cfg.Loop {
			return nil
		}
		if err := s.Regenerate(); err != nil {
			return err
		}
		if err := s.draw(w); err != nil {
			return err
		}
	}
}

// draw writes one full frame with a status line.
func (s *Session) draw(w io.Writer) error {
	if _, err := io.WriteString(w, clearScreen); err != nil {
		return err
	}
	st := s.state
	if err := render.Frame(w, s.maze.Grid, s.maze.Start, s.maze.End, &st); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "maze %d  seed %d  step %d  open %d  closed %d%s\n",
		s.mazes, s.maze.Seed, st.Step, st.Open.Size(), st.Closed.Size(), status(st))
	return err
}

func status(st astar.State) string {
	switch {
	case !st.Done:
		return ""
	case st.Found:
		return fmt.Sprintf("  solved in %d moves", len(st.Path)-1)
	default:
		return "  no path"
	}
}
