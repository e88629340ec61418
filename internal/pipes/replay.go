package pipes

import "fmt"

// Entry is one journaled command and the outcome it had when played.
type Entry struct {
	Seq     int
	Cmd     Command
	Outcome string
}

// Mismatch is an entry whose outcome differed on replay.
type Mismatch struct {
	Entry Entry
	Got   string
}

// String describes the mismatch.
func (m Mismatch) String() string {
	return fmt.Sprintf("#%d %s: journaled %s, replayed %s", m.Entry.Seq, m.Entry.Cmd, m.Entry.Outcome, m.Got)
}

// Replay rebuilds a session from its options and applies entries in order.
// Place commands are replayed at their journaled position.
func Replay(opts Options, entries []Entry) (*Session, []Mismatch, error) {
	s, err := NewSession(opts)
	if err != nil {
		return nil, nil, err
	}

	var mismatches []Mismatch
	for _, e := range entries {
		if e.Cmd.Op == OpPlace {
			s.cursor = C(0, 0)
			s.MoveSelection(e.Cmd.At.X, e.Cmd.At.Y)
		}
		if got := Outcome(s.Apply(e.Cmd)); got != e.Outcome {
			mismatches = append(mismatches, Mismatch{Entry: e, Got: got})
		}
	}
	return s, mismatches, nil
}
