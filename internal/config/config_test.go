//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/audio",
			expected: filepath.Join(home, "audio"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/srv/audio",
			expected: "/srv/audio",
		},
		{
			name:     "relative path unchanged",
			input:    "audio/guided",
			expected: "audio/guided",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: home,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	require.Len(t, paths, 2)
	assert.Equal(t, filepath.Join(xdg.ConfigHome, "serein", "config.toml"), paths[0])
	assert.Equal(t, "config.toml", paths[1])
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_NoFiles(t *testing.T) {
	cfg, err := load([]string{filepath.Join(t.TempDir(), "missing.toml")})
	require.NoError(t, err)

	audio := cfg.GetAudioConfig()
	assert.InDelta(t, 0.7, audio.Volume, 1e-9)
	assert.Equal(t, filepath.Join(xdg.DataHome, "serein", "audio"), audio.Base)
	assert.Zero(t, audio.LoadTimeout)
	assert.Equal(t, "info", cfg.GetLogLevel())
	assert.False(t, cfg.HasGeminiConfig())
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
audio_base = "http://localhost:8080/audio/"
load_timeout = "20s"
ready_timeout = "3s"
volume = 1.5
catalog_file = "/etc/serein/catalog.toml"

[gemini]
api_key = "from-file"
model = "gemini-2.0-flash"
endpoint = "http://localhost:9999/v1beta/"

[log]
level = "DEBUG"
`)

	cfg, err := load([]string{path})
	require.NoError(t, err)

	audio := cfg.GetAudioConfig()
	assert.Equal(t, "http://localhost:8080/audio/", audio.Base)
	assert.Equal(t, 20*time.Second, audio.LoadTimeout)
	assert.Equal(t, 3*time.Second, audio.ReadyTimeout)
	assert.InDelta(t, 1.0, audio.Volume, 1e-9)
	assert.Equal(t, "/etc/serein/catalog.toml", cfg.CatalogFile)
	assert.Equal(t, "gemini-2.0-flash", cfg.Gemini.Model)
	assert.Equal(t, "http://localhost:9999/v1beta", cfg.Gemini.Endpoint)
	assert.True(t, cfg.HasGeminiConfig())
	assert.Equal(t, "debug", cfg.GetLogLevel())
}

func TestLoad_LaterFileWins(t *testing.T) {
	first := writeConfig(t, t.TempDir(), `volume = 0.2`)
	second := writeConfig(t, t.TempDir(), `volume = 0.4`)

	cfg, err := load([]string{first, second})
	require.NoError(t, err)
	assert.InDelta(t, 0.4, cfg.GetAudioConfig().Volume, 1e-9)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
audio_base = "/from/file"

[log]
level = "warn"
`)
	t.Setenv("GEMINI_API_KEY", "from-env")
	t.Setenv("SEREIN_AUDIO_BASE", "/from/env")
	t.Setenv("SEREIN_LOG__LEVEL", "trace")

	cfg, err := load([]string{path})
	require.NoError(t, err)

	assert.Equal(t, "/from/env", cfg.AudioBase)
	assert.Equal(t, "trace", cfg.GetLogLevel())
	assert.Equal(t, "from-env", cfg.Gemini.APIKey)
}

func TestLoad_PrefixedKeyBeatsGeminiVariable(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "generic")
	t.Setenv("SEREIN_GEMINI__API_KEY", "specific")

	cfg, err := load(nil)
	require.NoError(t, err)
	assert.Equal(t, "specific", cfg.Gemini.APIKey)
}

func TestLoad_InvalidFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `volume = `)
	_, err := load([]string{path})
	assert.Error(t, err)
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "audio_base", envKey("SEREIN_AUDIO_BASE"))
	assert.Equal(t, "gemini.api_key", envKey("SEREIN_GEMINI__API_KEY"))
	assert.Equal(t, "log.level", envKey("SEREIN_LOG__LEVEL"))
}
