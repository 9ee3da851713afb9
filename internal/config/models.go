package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/listcraft/listcraft/internal/urls"
)

// CurrentVersion is the only settings file version this build understands.
const CurrentVersion = 1

// DefaultTimeoutSeconds bounds a single list fetch.
const DefaultTimeoutSeconds = 15

// Settings represents the entire user configuration file.
type Settings struct {
	Version        int       `yaml:"version"`
	Endpoint       string    `yaml:"endpoint,omitempty"`        // List API URL
	TimeoutSeconds int       `yaml:"timeout_seconds,omitempty"` // Per-fetch timeout
	Log            *LogPrefs `yaml:"log,omitempty"`
	UI             *UIPrefs  `yaml:"ui,omitempty"`
}

// LogPrefs mirrors the LISTCRAFT_LOG_LEVEL / LISTCRAFT_LOG_FILE environment.
type LogPrefs struct {
	Level string `yaml:"level,omitempty"` // debug, info, warn, error
	File  string `yaml:"file,omitempty"`  // rotated log file
}

// UIPrefs holds display preferences for the interactive program.
type UIPrefs struct {
	ShowScientificNames bool `yaml:"show_scientific_names"`
}

// NewSettings creates Settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version:        CurrentVersion,
		Endpoint:       urls.DefaultListsEndpoint,
		TimeoutSeconds: DefaultTimeoutSeconds,
		Log:            &LogPrefs{},
		UI: &UIPrefs{
			ShowScientificNames: true,
		},
	}
}

// applyDefaults fills in anything a hand-edited file left out.
func (s *Settings) applyDefaults() {
	if s.Endpoint == "" {
		s.Endpoint = urls.DefaultListsEndpoint
	}
	if s.TimeoutSeconds <= 0 {
		s.TimeoutSeconds = DefaultTimeoutSeconds
	}
	if s.Log == nil {
		s.Log = &LogPrefs{}
	}
	if s.UI == nil {
		s.UI = &UIPrefs{ShowScientificNames: true}
	}
}

// Timeout returns the fetch timeout as a duration.
func (s *Settings) Timeout() time.Duration {
	if s.TimeoutSeconds <= 0 {
		return DefaultTimeoutSeconds * time.Second
	}
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// Validate checks that the settings are usable.
func (s *Settings) Validate() error {
	if s.Version != CurrentVersion {
		return fmt.Errorf("unsupported config version: %d (expected %d)", s.Version, CurrentVersion)
	}
	u, err := url.Parse(s.Endpoint)
	if err != nil {
		return fmt.Errorf("invalid endpoint %q: %w", s.Endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid endpoint %q: scheme must be http or https", s.Endpoint)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid endpoint %q: missing host", s.Endpoint)
	}
	if s.TimeoutSeconds < 0 {
		return fmt.Errorf("timeout_seconds must not be negative, got %d", s.TimeoutSeconds)
	}
	return nil
}
