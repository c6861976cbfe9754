// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

const (
	// Startup
	OpInitialize  Op = "initialize application"
	OpConfigLoad  Op = "load configuration"
	OpCatalogLoad Op = "load meditation catalog"
	OpStateOpen   Op = "open state database"

	// Player
	OpAudioLoad  Op = "load audio"
	OpAudioPlay  Op = "start playback"
	OpVolumeSave Op = "save volume"

	// Affirmations
	OpAffirmationSave   Op = "save affirmation"
	OpAffirmationLoad   Op = "load saved affirmations"
	OpAffirmationDelete Op = "delete affirmation"

	// Journal
	OpJournalSave    Op = "save journal entry"
	OpJournalLoad    Op = "load journal entries"
	OpJournalRespond Op = "get journal response"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message naming the item the operation was for.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
