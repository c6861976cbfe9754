package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "home", "meditations", "player", "journal", "editor"
}

// All contains all key bindings for dispatch and help generation.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit application", "global"},
	{ActionNextView, []string{"tab"}, "Next view", "global"},
	{ActionViewHome, []string{"1", "f1"}, "Home", "global"},
	{ActionViewMedit, []string{"2", "f2"}, "Meditations", "global"},
	{ActionViewJrnl, []string{"3", "f3"}, "Journal", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},

	// Home
	{ActionNewAffirmation, []string{"enter", "n"}, "New affirmation", "home"},
	{ActionSaveAffirmation, []string{"ctrl+s", "S"}, "Save affirmation", "home"},
	{ActionShowSaved, []string{"v"}, "Show saved affirmations", "home"},
	{ActionDelete, []string{"d"}, "Delete saved affirmation", "home"},
	{ActionMoveUp, []string{"k", "up"}, "Previous saved affirmation", "home"},
	{ActionMoveDown, []string{"j", "down"}, "Next saved affirmation", "home"},

	// Meditation list
	{ActionMoveUp, []string{"k", "up"}, "Move up", "meditations"},
	{ActionMoveDown, []string{"j", "down"}, "Move down", "meditations"},
	{ActionSelect, []string{"enter"}, "Load and play", "meditations"},
	{ActionReadScript, []string{"r"}, "Read script", "meditations"},
	{ActionSetupHelp, []string{"h"}, "Audio setup help", "meditations"},

	// Player
	{ActionPlayPause, []string{" "}, "Play/pause", "player"},
	{ActionStop, []string{"s"}, "Stop", "player"},
	{ActionSeekBack, []string{"left"}, "Seek -10s", "player"},
	{ActionSeekForward, []string{"right"}, "Seek +10s", "player"},
	{ActionVolumeUp, []string{"+", "="}, "Volume up", "player"},
	{ActionVolumeDown, []string{"-"}, "Volume down", "player"},
	{ActionRetry, []string{"R"}, "Retry after an error", "player"},

	// Journal
	{ActionNewEntry, []string{"n"}, "New entry", "journal"},
	{ActionQuestions, []string{"f"}, "Show/hide follow-up questions", "journal"},
	{ActionHistory, []string{"H"}, "Past entries", "journal"},
	{ActionMoveUp, []string{"k", "up"}, "Previous entry", "journal"},
	{ActionMoveDown, []string{"j", "down"}, "Next entry", "journal"},
	{ActionSelect, []string{"enter", "i"}, "Write", "journal"},

	// Journal editor (while typing)
	{ActionSubmit, []string{"ctrl+s"}, "Submit entry", "editor"},
	{ActionBlur, []string{"esc"}, "Stop writing", "editor"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// DisplayKey returns how a key is shown in help text.
func DisplayKey(key string) string {
	switch key {
	case " ":
		return "space"
	case "left":
		return "←"
	case "right":
		return "→"
	case "up":
		return "↑"
	case "down":
		return "↓"
	}
	return key
}
