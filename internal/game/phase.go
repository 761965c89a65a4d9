// Package game implements the simulation core: the phase state machine,
// bird physics, pipe lifecycle, difficulty ramp, and particle effects.
// It is pure logic with no rendering or terminal dependencies; the platform
// layer feeds it input events and wall-clock timestamps and reads snapshots.
package game

// Phase represents the current game phase. Exactly one phase is active at
// a time and only the state machine mutates it.
type Phase int

const (
	PhaseStart Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "Start"
	case PhasePlaying:
		return "Playing"
	case PhasePaused:
		return "Paused"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}
