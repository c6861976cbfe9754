package popupctl

// Type identifies which popup is currently active.
type Type int

const (
	None Type = iota
	Help
	Confirm
	Script
	SetupHelp
	Error
)

// Priority defines which popup takes precedence (highest priority first).
var Priority = []Type{
	Error,
	Confirm,
	Help,
	SetupHelp,
	Script,
}

// RenderOrder defines the order popups are rendered (bottom to top).
var RenderOrder = []Type{
	Script,
	SetupHelp,
	Help,
	Confirm,
	Error,
}

// ConfirmResultMsg reports the answer to a confirmation popup.
type ConfirmResultMsg struct {
	Confirmed bool
	Context   any
}
