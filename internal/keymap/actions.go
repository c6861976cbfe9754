// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit      Action = "quit"
	ActionHelp      Action = "help"
	ActionNextView  Action = "next_view"
	ActionViewHome  Action = "view_home"
	ActionViewMedit Action = "view_meditations"
	ActionViewJrnl  Action = "view_journal"

	// Home actions
	ActionNewAffirmation  Action = "new_affirmation"
	ActionSaveAffirmation Action = "save_affirmation"
	ActionShowSaved       Action = "show_saved"

	// List navigation
	ActionMoveUp   Action = "move_up"
	ActionMoveDown Action = "move_down"
	ActionDelete   Action = "delete"

	// Playback actions
	ActionSelect      Action = "select" // enter - load and play
	ActionPlayPause   Action = "play_pause"
	ActionStop        Action = "stop"
	ActionSeekForward Action = "seek_forward"
	ActionSeekBack    Action = "seek_back"
	ActionVolumeUp    Action = "volume_up"
	ActionVolumeDown  Action = "volume_down"
	ActionReadScript  Action = "read_script"
	ActionRetry       Action = "retry"
	ActionSetupHelp   Action = "setup_help"

	// Journal actions
	ActionSubmit    Action = "submit"
	ActionNewEntry  Action = "new_entry"
	ActionQuestions Action = "toggle_questions"
	ActionHistory   Action = "history"
	ActionBlur      Action = "blur"
)
