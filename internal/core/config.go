package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The platform fills it from CLI flags and the terminal size.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the platform (default 60)
	Seed     int64 // RNG seed; 0 means use current time in platform layer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// Phase is the lifecycle state of a game session.
type Phase int

const (
	PhaseIdle     Phase = iota // Before the first start
	PhaseRunning               // Simulation advancing
	PhaseGameOver              // Collision happened, waiting for restart
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseRunning:
		return "Running"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// HUDState is the data contract handed to the presentation layer after every
// state-affecting update.
type HUDState struct {
	Score        int  // Floored score
	Level        int  // floor(score/100)+1
	HighScore    int  // Persisted record
	NewHighScore bool // Record broken during this run
	GameOver     bool
	Phase        Phase
}
