package pipes_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/FelipeeMaia/pipemania/internal/pipes"
)

// scripted replays fixed draws, wrapping each into [0, n).
type scripted struct {
	draws []int
	pos   int
}

func (s *scripted) Intn(n int) int {
	v := s.draws[s.pos%len(s.draws)]
	s.pos++
	return v % n
}

func TestSetupStarterNeighbours(t *testing.T) {
	params := pipes.SetupParams{MinBlocked: 4, MaxBlocked: 12}

	for seed := int64(0); seed < 200; seed++ {
		g := pipes.NewGrid(pipes.DefaultCols, pipes.DefaultRows)
		require.NoError(t, g.Setup(params, pipes.NewRand(seed)), "seed %d", seed)

		starter, ok := g.Starter()
		require.True(t, ok, "seed %d: no starter", seed)
		require.LessOrEqual(t, starter.X, pipes.DefaultCols-2, "seed %d", seed)
		require.LessOrEqual(t, starter.Y, pipes.DefaultRows-2, "seed %d", seed)

		for _, n := range []pipes.Coord{starter.Step(pipes.South), starter.Step(pipes.East)} {
			cell := g.Get(n)
			require.False(t, cell.Blocked(), "seed %d: neighbour %v blocked", seed, n)
			require.Equal(t, pipes.None, cell.Pipe, "seed %d: neighbour %v has a pipe", seed, n)
		}

		// Random blocks plus the starter itself.
		blocked := g.BlockedCount()
		require.GreaterOrEqual(t, blocked, params.MinBlocked+1, "seed %d", seed)
		require.LessOrEqual(t, blocked, params.MaxBlocked+1, "seed %d", seed)
	}
}

func TestSetupRepicksBlockedCells(t *testing.T) {
	// count draw 0 -> 2 blocked cells; (1,1) is drawn twice, then (2,2);
	// starter candidate (0,0).
	r := &scripted{draws: []int{0, 1, 1, 1, 1, 2, 2, 0, 0}}
	g := pipes.NewGrid(3, 3)

	require.NoError(t, g.Setup(pipes.SetupParams{MinBlocked: 2, MaxBlocked: 2}, r))
	require.True(t, g.Get(pipes.C(1, 1)).Blocked())
	require.True(t, g.Get(pipes.C(2, 2)).Blocked())
	require.Equal(t, 3, g.BlockedCount())

	starter, _ := g.Starter()
	require.Equal(t, pipes.C(0, 0), starter)
}

func TestSetupClearsPreviousBoard(t *testing.T) {
	g := pipes.NewGrid(4, 4)
	require.NoError(t, g.Setup(pipes.SetupParams{MinBlocked: 3, MaxBlocked: 3}, pipes.NewRand(1)))
	require.NoError(t, g.Setup(pipes.SetupParams{MinBlocked: 0, MaxBlocked: 0}, pipes.NewRand(2)))
	require.Equal(t, 1, g.BlockedCount())
}

func TestSetupUnsatisfiable(t *testing.T) {
	tests := []struct {
		name   string
		w, h   int
		params pipes.SetupParams
	}{
		{"min above max", 9, 7, pipes.SetupParams{MinBlocked: 5, MaxBlocked: 2}},
		{"negative", 9, 7, pipes.SetupParams{MinBlocked: -1, MaxBlocked: 2}},
		{"more than the grid", 3, 3, pipes.SetupParams{MinBlocked: 10, MaxBlocked: 10}},
		{"too narrow", 1, 5, pipes.SetupParams{}},
		{"too short", 5, 1, pipes.SetupParams{}},
		{"fully blocked", 2, 2, pipes.SetupParams{MinBlocked: 4, MaxBlocked: 4, MaxAttempts: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := pipes.NewGrid(tt.w, tt.h)
			err := g.Setup(tt.params, pipes.NewRand(1))
			if !errors.Is(err, pipes.ErrUnsatisfiable) {
				t.Errorf("Setup() error = %v, expected ErrUnsatisfiable", err)
			}
		})
	}
}
