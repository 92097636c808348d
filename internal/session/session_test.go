package session_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/mazerun/internal/config"
	"github.com/katalvlaran/mazerun/internal/session"
	"github.com/katalvlaran/mazerun/maze"
)

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Rows, cfg.Cols = 5, 6
	cfg.Seed = 7
	cfg.Interval = 0
	return cfg
}

type SessionSuite struct {
	suite.Suite
	log  *logrus.Logger
	hook *test.Hook
	s    *session.Session
}

func (ss *SessionSuite) SetupTest() {
	ss.log, ss.hook = test.NewNullLogger()
	ss.log.SetLevel(logrus.DebugLevel)
	s, err := session.New(testConfig(), ss.log)
	ss.Require().NoError(err)
	ss.s = s
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionSuite))
}

// TestNew_GeneratesValidMaze checks the first maze and its log entry.
func (ss *SessionSuite) TestNew_GeneratesValidMaze() {
	m := ss.s.Maze()
	ss.Require().NotNil(m)
	ss.NoError(maze.Verify(m))
	ss.Equal(int64(7), m.Seed)
	ss.Equal(1, ss.s.Mazes())

	entry := ss.hook.LastEntry()
	ss.Require().NotNil(entry)
	ss.Equal("maze generated", entry.Message)
	ss.Equal(int64(7), entry.Data["seed"])

	st := ss.s.State()
	ss.Equal(0, st.Step)
	ss.True(st.Open.Has(m.Start))
}

// TestTick_RunsToCompletion ticks until done and checks the final report.
func (ss *SessionSuite) TestTick_RunsToCompletion() {
	var last int
	for i := 0; i < 1000; i++ {
		st, moved := ss.s.Tick()
		if !moved {
			break
		}
		ss.Equal(last+1, st.Step, "speed 1 advances one step per tick")
		last = st.Step
	}
	st := ss.s.State()
	ss.Require().True(st.Done)
	ss.True(st.Found, "generated mazes are always solvable")
	ss.Equal(ss.s.Maze().Start, st.Path[0])
	ss.Equal(ss.s.Maze().End, st.Path[len(st.Path)-1])

	_, moved := ss.s.Tick()
	ss.False(moved, "ticks after completion do nothing")

	entry := ss.hook.LastEntry()
	ss.Require().NotNil(entry)
	ss.Equal("search finished", entry.Message)
	ss.Equal(true, entry.Data["found"])
	ss.Equal(len(st.Path)-1, entry.Data["cost"])
}

// TestPause_FreezesTicks ensures paused ticks leave the state untouched.
func (ss *SessionSuite) TestPause_FreezesTicks() {
	ss.s.Tick()
	ss.True(ss.s.TogglePause())
	st, moved := ss.s.Tick()
	ss.False(moved)
	ss.Equal(1, st.Step)

	ss.False(ss.s.TogglePause())
	st, moved = ss.s.Tick()
	ss.True(moved)
	ss.Equal(2, st.Step)
}

// TestSetSpeed advances several steps per tick and rejects zero.
func (ss *SessionSuite) TestSetSpeed() {
	ss.ErrorIs(ss.s.SetSpeed(0), session.ErrInvalidSpeed)
	ss.Equal(1, ss.s.Speed())

	ss.Require().NoError(ss.s.SetSpeed(3))
	st, moved := ss.s.Tick()
	ss.True(moved)
	if !st.Done {
		ss.Equal(3, st.Step)
	}
}

// TestReset_RestartsSearch keeps the maze but drops progress.
func (ss *SessionSuite) TestReset_RestartsSearch() {
	m := ss.s.Maze()
	ss.s.Tick()
	ss.s.Tick()
	ss.s.Reset()
	ss.Same(m, ss.s.Maze())
	ss.Equal(0, ss.s.State().Step)
	ss.Equal(1, ss.s.State().Open.Size())
}

// TestRegenerate_NewMaze draws a new seed and restarts the search.
func (ss *SessionSuite) TestRegenerate_NewMaze() {
	first := ss.s.Maze()
	ss.s.Tick()
	ss.Require().NoError(ss.s.Regenerate())

	second := ss.s.Maze()
	ss.NotSame(first, second)
	ss.NotEqual(first.Seed, second.Seed)
	ss.NoError(maze.Verify(second))
	ss.Equal(0, ss.s.State().Step)
	ss.Equal(2, ss.s.Mazes())
}

// TestNew_InvalidConfig rejects bad settings before generating anything.
func TestNew_InvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Rows = 0
	_, err := session.New(cfg, nil)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

// TestNew_Deterministic yields the same maze sequence for the same seed.
func TestNew_Deterministic(t *testing.T) {
	a, err := session.New(testConfig(), nil)
	require.NoError(t, err)
	b, err := session.New(testConfig(), nil)
	require.NoError(t, err)

	assert.Equal(t, a.Maze().String(), b.Maze().String())
	require.NoError(t, a.Regenerate())
	require.NoError(t, b.Regenerate())
	assert.Equal(t, a.Maze().String(), b.Maze().String())
}

// TestRun_DrawsUntilSolved runs without delay and checks the final frame.
func TestRun_DrawsUntilSolved(t *testing.T) {
	s, err := session.New(testConfig(), nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, s.Run(context.Background(), &buf))
	assert.True(t, s.State().Done)

	frames := strings.Split(buf.String(), "\x1b[H\x1b[2J")
	// Leading empty chunk, the initial frame, then one per step.
	assert.Len(t, frames, s.State().Step+2)
	last := frames[len(frames)-1]
	assert.Contains(t, last, "solved in")
	assert.Contains(t, last, "*")
}

// TestRun_Cancelled stops a looping session when the context ends.
func TestRun_Cancelled(t *testing.T) {
	cfg := testConfig()
	cfg.Loop = true
	cfg.Interval = time.Millisecond
	s, err := session.New(cfg, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err = s.Run(ctx, &bytes.Buffer{})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

// TestRun_PausedWaitsForContext draws one frame and blocks until ctx ends.
func TestRun_PausedWaitsForContext(t *testing.T) {
	s, err := session.New(testConfig(), nil)
	require.NoError(t, err)
	s.TogglePause()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	var buf bytes.Buffer
	err = s.Run(ctx, &buf)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 1, strings.Count(buf.String(), "\x1b[H\x1b[2J"), "only the initial frame")
	assert.Equal(t, 0, s.State().Step)
}
