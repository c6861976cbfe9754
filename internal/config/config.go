package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	appName   = "serein"
	envPrefix = "SEREIN_"

	defaultVolume   = 0.7
	defaultLogLevel = "info"
)

type Config struct {
	AudioBase   string `koanf:"audio_base"`   // directory or http(s) URL holding meditation audio
	CatalogFile string `koanf:"catalog_file"` // optional TOML overlay of the built-in catalog
	DBPath      string `koanf:"db_path"`      // empty means $XDG_DATA_HOME/serein/serein.db

	LoadTimeout  time.Duration `koanf:"load_timeout"`
	ReadyTimeout time.Duration `koanf:"ready_timeout"`
	ProbeTimeout time.Duration `koanf:"probe_timeout"`
	Volume       *float64      `koanf:"volume"` // initial level when none was saved (default: 0.7)

	// Gemini enables generated journal responses when an API key is set
	Gemini GeminiConfig `koanf:"gemini"`

	Log LogConfig `koanf:"log"`
}

// GeminiConfig holds Gemini API settings.
type GeminiConfig struct {
	APIKey   string `koanf:"api_key"`
	Model    string `koanf:"model"`
	Endpoint string `koanf:"endpoint"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `koanf:"level"` // trace, debug, info, warn, error (default: info)
	File  string `koanf:"file"`  // empty means $XDG_STATE_HOME/serein/serein.log
}

// AudioConfig is the playback configuration with defaults applied. Zero
// timeouts let the audio manager use its own defaults.
type AudioConfig struct {
	Base         string
	LoadTimeout  time.Duration
	ReadyTimeout time.Duration
	ProbeTimeout time.Duration
	Volume       float64
}

// Load reads the config files, then environment overrides.
func Load() (*Config, error) {
	return load(getConfigPaths())
}

func load(paths []string) (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	// GEMINI_API_KEY is the variable the Gemini tooling documents.
	if err := k.Load(env.Provider("GEMINI_API_KEY", ".", func(s string) string {
		if s != "GEMINI_API_KEY" {
			return ""
		}
		return "gemini.api_key"
	}), nil); err != nil {
		return nil, err
	}

	// SEREIN_AUDIO_BASE -> audio_base, SEREIN_LOG__LEVEL -> log.level
	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.AudioBase = expandPath(cfg.AudioBase)
	cfg.CatalogFile = expandPath(cfg.CatalogFile)
	cfg.DBPath = expandPath(cfg.DBPath)
	cfg.Log.File = expandPath(cfg.Log.File)
	cfg.Gemini.Endpoint = strings.TrimSuffix(cfg.Gemini.Endpoint, "/")

	return cfg, nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/serein/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// HasGeminiConfig returns true if generated journal responses are enabled.
func (c *Config) HasGeminiConfig() bool {
	return c.Gemini.APIKey != ""
}

// GetAudioConfig returns the playback configuration with defaults applied.
func (c *Config) GetAudioConfig() AudioConfig {
	cfg := AudioConfig{
		Base:         c.AudioBase,
		LoadTimeout:  max(c.LoadTimeout, 0),
		ReadyTimeout: max(c.ReadyTimeout, 0),
		ProbeTimeout: max(c.ProbeTimeout, 0),
		Volume:       defaultVolume,
	}
	if cfg.Base == "" {
		cfg.Base = filepath.Join(xdg.DataHome, appName, "audio")
	}
	if c.Volume != nil {
		cfg.Volume = min(max(*c.Volume, 0), 1)
	}
	return cfg
}

// GetLogLevel returns the log level, defaulting to info.
func (c *Config) GetLogLevel() string {
	if c.Log.Level == "" {
		return defaultLogLevel
	}
	return strings.ToLower(c.Log.Level)
}
