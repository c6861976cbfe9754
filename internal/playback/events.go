package playback

// StateChange is emitted whenever the snapshot changes.
type StateChange struct {
	Previous State
	Current  State
}

// Ended is emitted when a resource plays to its end. It is not emitted
// for Stop.
type Ended struct {
	ID string
}

// ErrorEvent is emitted when an operation or the playing resource fails.
type ErrorEvent struct {
	Operation string // "load", "play" or "playback"
	ID        string
	Err       error
}
