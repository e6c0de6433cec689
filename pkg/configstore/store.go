// Package configstore persists the device configuration aggregate as a
// field-tagged JSON document (startup-config.json by default).
package configstore

import (
	"encoding/json"
	"fmt"
	"os"
)

// DefaultHostname is used when no configuration file exists yet.
const DefaultHostname = "Router"

// Config is the persisted configuration aggregate: the hostname plus the
// running and startup key-value configurations. The JSON field names are
// the on-disk format and must not change.
type Config struct {
	RunningConfig map[string]string `json:"running_config"`
	StartupConfig map[string]string `json:"startup_config"`
	Hostname      string            `json:"hostname"`
}

// DefaultConfig returns the configuration used when the file is absent or
// malformed: hostname "Router" and empty maps.
func DefaultConfig() Config {
	return Config{
		RunningConfig: make(map[string]string),
		StartupConfig: make(map[string]string),
		Hostname:      DefaultHostname,
	}
}

// Store owns the configuration file path.
type Store struct {
	path string
}

// New creates a store backed by the given file path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads and deserializes the configuration file. An absent or
// malformed file yields DefaultConfig plus an error describing the
// fallback; the returned Config is always usable, so callers may ignore
// the error or log it.
func (s *Store) Load() (Config, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse config: %w", err)
	}
	if cfg.RunningConfig == nil {
		cfg.RunningConfig = make(map[string]string)
	}
	if cfg.StartupConfig == nil {
		cfg.StartupConfig = make(map[string]string)
	}
	if cfg.Hostname == "" {
		cfg.Hostname = DefaultHostname
	}
	return cfg, nil
}

// Save serializes cfg and fully overwrites the configuration file.
func (s *Store) Save(cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize config: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Raw returns the configuration file contents as written.
func (s *Store) Raw() ([]byte, error) {
	return os.ReadFile(s.path)
}
