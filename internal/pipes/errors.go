package pipes

import "errors"

var (
	// ErrRejected means a placement or toggle was refused; state is unchanged.
	ErrRejected = errors.New("pipes: rejected")

	// ErrImmutable means the starter cell's blocked state cannot change.
	ErrImmutable = errors.New("pipes: starter cell is immutable")

	// ErrUnsatisfiable means no valid board could be set up with the given parameters.
	ErrUnsatisfiable = errors.New("pipes: board setup unsatisfiable")
)

// Outcome names the result of a command for logs and the journal.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrRejected):
		return "rejected"
	case errors.Is(err, ErrImmutable):
		return "immutable"
	case errors.Is(err, ErrUnsatisfiable):
		return "unsatisfiable"
	default:
		return "error"
	}
}
