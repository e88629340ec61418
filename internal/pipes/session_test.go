package pipes_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/FelipeeMaia/pipemania/internal/pipes"
)

func withSeed(o pipes.Options, seed int64) pipes.Options {
	o.Seed = seed
	return o
}

type recorded struct {
	cmd     pipes.Command
	outcome string
}

type memRecorder struct {
	entries []recorded
}

func (m *memRecorder) Record(cmd pipes.Command, err error) {
	m.entries = append(m.entries, recorded{cmd: cmd, outcome: pipes.Outcome(err)})
}

func TestSessionDeterminism(t *testing.T) {
	script := []pipes.Command{
		pipes.Move(1, 0), pipes.Place(), pipes.Move(0, 1), pipes.Place(),
		pipes.Toggle(pipes.C(4, 4)), pipes.Move(3, 2), pipes.Place(), pipes.Flow(),
		pipes.Restart(77), pipes.Move(2, 2), pipes.Place(),
	}

	run := func() pipes.Snapshot {
		s, err := pipes.NewSession(withSeed(pipes.DefaultOptions(), 12345))
		require.NoError(t, err)
		for _, cmd := range script {
			_ = s.Apply(cmd)
		}
		return s.Snapshot()
	}

	if diff := cmp.Diff(run(), run()); diff != "" {
		t.Errorf("same seed produced different sessions (-first +second):\n%s", diff)
	}
}

func TestSessionDifferentSeeds(t *testing.T) {
	a, err := pipes.NewSession(withSeed(pipes.DefaultOptions(), 1))
	require.NoError(t, err)
	b, err := pipes.NewSession(withSeed(pipes.DefaultOptions(), 2))
	require.NoError(t, err)

	if cmp.Equal(a.Snapshot(), b.Snapshot()) {
		t.Error("different seeds produced identical boards")
	}
}

func TestSessionCursorClamp(t *testing.T) {
	s, err := pipes.NewSession(withSeed(pipes.DefaultOptions(), 3))
	require.NoError(t, err)

	require.Equal(t, pipes.C(0, 0), s.Cursor())

	s.MoveSelection(-5, -5)
	require.Equal(t, pipes.C(0, 0), s.Cursor())

	s.MoveSelection(100, 100)
	require.Equal(t, pipes.C(pipes.DefaultCols-1, pipes.DefaultRows-1), s.Cursor())

	s.MoveSelection(-1, 0)
	require.Equal(t, pipes.C(pipes.DefaultCols-2, pipes.DefaultRows-1), s.Cursor())
}

func TestSessionPlaceRecomputesFlow(t *testing.T) {
	layout := &pipes.Layout{
		ID:      "tiny",
		Cols:    3,
		Rows:    2,
		Starter: pipes.C(0, 0),
	}
	opts := pipes.DefaultOptions()
	opts.Layout = layout
	opts.InventorySize = 1

	// Draw until the active piece opens west.
	var s *pipes.Session
	for seed := int64(0); ; seed++ {
		var err error
		s, err = pipes.NewSession(withSeed(opts, seed))
		require.NoError(t, err)
		if k := s.Inventory()[0]; k.Opens(pipes.West) {
			break
		}
	}

	require.Equal(t, 1, s.Flow().Count())
	s.MoveSelection(1, 0)
	require.NoError(t, s.PlaceActivePiece())
	require.Equal(t, 2, s.Flow().Count(), "flow not recomputed after placement")

	require.NoError(t, s.ToggleBlocked(pipes.C(1, 0)))
	require.Equal(t, 1, s.Flow().Count(), "flow not recomputed after toggle")
}

func TestSessionRejections(t *testing.T) {
	s, err := pipes.NewSession(withSeed(pipes.DefaultOptions(), 5))
	require.NoError(t, err)

	starter, ok := s.Grid().Starter()
	require.True(t, ok)

	before := s.Snapshot()
	err = s.Apply(pipes.Toggle(starter))
	require.ErrorIs(t, err, pipes.ErrImmutable)
	err = s.Apply(pipes.Toggle(pipes.C(-1, 0)))
	require.ErrorIs(t, err, pipes.ErrRejected)

	s.MoveSelection(starter.X, starter.Y)
	err = s.Apply(pipes.Place())
	require.ErrorIs(t, err, pipes.ErrRejected)

	if diff := cmp.Diff(before.Cells, s.Snapshot().Cells); diff != "" {
		t.Errorf("rejected commands changed the board (-before +after):\n%s", diff)
	}
	if diff := cmp.Diff(before.Inventory, s.Snapshot().Inventory); diff != "" {
		t.Errorf("rejected commands changed the inventory (-before +after):\n%s", diff)
	}
}

func TestSessionRecorder(t *testing.T) {
	s, err := pipes.NewSession(withSeed(pipes.DefaultOptions(), 8))
	require.NoError(t, err)

	rec := &memRecorder{}
	s.SetRecorder(rec)
	starter, _ := s.Grid().Starter()

	_ = s.Apply(pipes.Move(2, 1))
	_ = s.Apply(pipes.Toggle(starter))
	_ = s.Apply(pipes.Flow())
	_ = s.Apply(pipes.Command{Op: pipes.Op(99)})

	require.Len(t, rec.entries, 4)
	require.Equal(t, "ok", rec.entries[0].outcome)
	require.Equal(t, "immutable", rec.entries[1].outcome)
	require.Equal(t, pipes.OpFlow, rec.entries[2].cmd.Op)
	require.Equal(t, "rejected", rec.entries[3].outcome)
}

func TestSessionPlaceRecordsCursor(t *testing.T) {
	s, err := pipes.NewSession(withSeed(pipes.DefaultOptions(), 8))
	require.NoError(t, err)

	rec := &memRecorder{}
	s.SetRecorder(rec)
	s.MoveSelection(3, 2)
	_ = s.Apply(pipes.Place())

	require.Len(t, rec.entries, 1)
	require.Equal(t, pipes.C(3, 2), rec.entries[0].cmd.At)
}

func TestSessionRestart(t *testing.T) {
	s, err := pipes.NewSession(withSeed(pipes.DefaultOptions(), 10))
	require.NoError(t, err)
	s.MoveSelection(4, 4)

	require.NoError(t, s.Apply(pipes.Restart(11)))
	require.Equal(t, int64(11), s.Seed())
	require.Equal(t, pipes.C(0, 0), s.Cursor())

	fresh, err := pipes.NewSession(withSeed(pipes.DefaultOptions(), 11))
	require.NoError(t, err)
	if diff := cmp.Diff(fresh.Snapshot(), s.Snapshot()); diff != "" {
		t.Errorf("restart differs from a fresh session (-fresh +restarted):\n%s", diff)
	}
}

func TestSessionUnsatisfiable(t *testing.T) {
	opts := pipes.DefaultOptions()
	opts.Cols, opts.Rows = 2, 2
	opts.MinBlocked, opts.MaxBlocked = 4, 4
	opts.SetupAttempts = 20

	_, err := pipes.NewSession(opts)
	if !errors.Is(err, pipes.ErrUnsatisfiable) {
		t.Errorf("NewSession() error = %v, expected ErrUnsatisfiable", err)
	}
}

func TestSessionGridIsCopy(t *testing.T) {
	s, err := pipes.NewSession(withSeed(pipes.DefaultOptions(), 4))
	require.NoError(t, err)

	g := s.Grid()
	for _, c := range g.AllCoords() {
		_ = g.SetBlocked(c, true)
	}
	require.Less(t, s.Grid().BlockedCount(), s.Width()*s.Height())
}

func TestReplayReproducesSession(t *testing.T) {
	opts := withSeed(pipes.DefaultOptions(), 2024)
	s, err := pipes.NewSession(opts)
	require.NoError(t, err)

	var entries []pipes.Entry
	rec := &memRecorder{}
	s.SetRecorder(rec)

	starter, _ := s.Grid().Starter()
	script := []pipes.Command{
		pipes.Move(1, 1), pipes.Place(), pipes.Move(1, 0), pipes.Place(),
		pipes.Toggle(starter), pipes.Toggle(pipes.C(0, 6)), pipes.Flow(),
		pipes.Restart(5), pipes.Move(2, 0), pipes.Place(),
	}
	for _, cmd := range script {
		_ = s.Apply(cmd)
	}
	for i, r := range rec.entries {
		entries = append(entries, pipes.Entry{Seq: i + 1, Cmd: r.cmd, Outcome: r.outcome})
	}

	replayed, mismatches, err := pipes.Replay(opts, entries)
	require.NoError(t, err)
	require.Empty(t, mismatches)

	if diff := cmp.Diff(s.Snapshot(), replayed.Snapshot()); diff != "" {
		t.Errorf("replay differs from the original (-original +replayed):\n%s", diff)
	}
}

func TestReplayReportsMismatch(t *testing.T) {
	opts := withSeed(pipes.DefaultOptions(), 3)
	s, err := pipes.NewSession(opts)
	require.NoError(t, err)
	starter, _ := s.Grid().Starter()

	entries := []pipes.Entry{
		{Seq: 1, Cmd: pipes.Toggle(starter), Outcome: "ok"},
	}
	_, mismatches, err := pipes.Replay(opts, entries)
	require.NoError(t, err)
	require.Len(t, mismatches, 1)
	require.Equal(t, "immutable", mismatches[0].Got)
}
