package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for board setup and piece draws
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// GameState is what the platform needs to know about a running game.
type GameState struct {
	Paused bool   // Input other than pause/quit is ignored
	Failed bool   // The game could not start (e.g. board setup failed)
	Status string // Last outcome worth flashing in the status line
}

// StepResult is returned by Game.Step() after each input frame.
type StepResult struct {
	State GameState
}
