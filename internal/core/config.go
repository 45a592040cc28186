package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses it for screen-size checks and deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is a read-only view of the game returned by Game.State().
type GameState struct {
	Score     int  // Current round score
	HighScore int  // Best score this process, monotonic across round resets
	Lives     int  // Lives remaining in the current round
	Wave      int  // Current wave number, 1-based
	Playing   bool // False while on the attract/menu screen
	Paused    bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
// RoundOver fires on the tick a run ends; the game resets itself
// immediately, so the final score and wave are reported here for the
// platform to persist.
type StepResult struct {
	State       GameState
	RoundOver   bool
	RoundScore  int // Score at the moment the round ended
	RoundWave   int // Wave reached when the round ended
	WaveCleared bool
}

// Game is the contract between the game logic and the platform layer.
// The game contains pure logic; the platform handles input mapping,
// timing, and terminal output.
type Game interface {
	// ID returns a stable identifier used for score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	Reset(cfg RuntimeConfig)

	// Step advances the simulation by one tick. dt is the wall-clock
	// seconds elapsed since the previous tick, unclamped.
	Step(in InputFrame, dt float64) StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *Screen)

	// State returns the current game state.
	State() GameState
}
