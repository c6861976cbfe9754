//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpJournalSave,
			err:      nil,
			expected: "",
		},
		{
			name:     "journal save",
			op:       OpJournalSave,
			err:      errors.New("disk full"),
			expected: "Failed to save journal entry: disk full",
		},
		{
			name:     "catalog load",
			op:       OpCatalogLoad,
			err:      errors.New("toml: line 3: expected '='"),
			expected: "Failed to load meditation catalog: toml: line 3: expected '='",
		},
		{
			name:     "playback",
			op:       OpAudioPlay,
			err:      errors.New("no audio device"),
			expected: "Failed to start playback: no audio device",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpAudioLoad,
			context:  "Breathe.mp3",
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with context",
			op:       OpAudioLoad,
			context:  "Breathe.mp3",
			err:      errors.New("not found"),
			expected: "Failed to load audio 'Breathe.mp3': not found",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpAffirmationSave,
			context:  "",
			err:      errors.New("database is locked"),
			expected: "Failed to save affirmation: database is locked",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith(%q, %q, %v) = %q, want %q", tt.op, tt.context, tt.err, result, tt.expected)
			}
		})
	}
}

func TestOpConstants(t *testing.T) {
	ops := []Op{
		OpInitialize, OpConfigLoad, OpCatalogLoad, OpStateOpen,
		OpAudioLoad, OpAudioPlay, OpVolumeSave,
		OpAffirmationSave, OpAffirmationLoad, OpAffirmationDelete,
		OpJournalSave, OpJournalLoad, OpJournalRespond,
	}

	testErr := errors.New("test error")

	for _, op := range ops {
		t.Run(string(op), func(t *testing.T) {
			if op == "" {
				t.Error("Op constant should not be empty")
			}
			expected := "Failed to " + string(op) + ": test error"
			if result := Format(op, testErr); result != expected {
				t.Errorf("Format = %q, want %q", result, expected)
			}
		})
	}
}
