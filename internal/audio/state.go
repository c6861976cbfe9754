package audio

// SessionState is the lifecycle state of the manager's current resource.
//
// Transitions:
//
//	┌───────┐  Load  ┌─────────┐  ready  ┌───────┐  Play  ┌─────────┐
//	│ Empty │───────▶│ Loading │────────▶│ Ready │───────▶│ Playing │
//	└───────┘        └─────────┘         └───────┘        └─────────┘
//	                      │                                 │    ▲
//	                      │ error/timeout             Pause │    │ Play
//	                      ▼                                 ▼    │
//	                 ┌────────┐    element error       ┌─────────┐
//	                 │ Failed │◀───────────────────────│ Paused  │
//	                 └────────┘                        └─────────┘
//
// Other transitions:
//   - Stop from Ready, Playing or Paused moves to Stopped (position 0,
//     resource still loaded). Play from Stopped moves to Playing.
//   - A natural end of the resource also moves to Stopped.
//   - Failed is left only through a new Load.
//   - Load and Destroy return to Empty from any state.
type SessionState int

const (
	Empty SessionState = iota
	Loading
	Ready
	Playing
	Paused
	Stopped
	Failed
)

// String returns the state name for debugging.
func (s SessionState) String() string {
	switch s {
	case Empty:
		return "Empty"
	case Loading:
		return "Loading"
	case Ready:
		return "Ready"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	case Stopped:
		return "Stopped"
	case Failed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Loaded reports whether a resource is ready for transport controls.
func (s SessionState) Loaded() bool {
	switch s {
	case Ready, Playing, Paused, Stopped:
		return true
	default:
		return false
	}
}
