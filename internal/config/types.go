// Package config loads and validates the .rmac.yaml host inventory.
package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .rmac.yaml configuration file.
type Config struct {
	Version int             `yaml:"version" mapstructure:"version"`
	Hosts   map[string]Host `yaml:"hosts" mapstructure:"hosts"`
	Default string          `yaml:"default" mapstructure:"default"`

	// Timeout bounds each remote command; zero means no bound.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	Output OutputConfig `yaml:"output" mapstructure:"output"`
}

// Host defines a remote machine and its connection settings.
type Host struct {
	// SSH connection strings, tried in order until one succeeds.
	// Can be: hostname, user@hostname, or SSH config alias.
	SSH []string `yaml:"ssh" mapstructure:"ssh"`

	// Key is an explicit private key path; empty means agent plus the
	// default key locations.
	Key string `yaml:"key" mapstructure:"key"`

	// Dir is the initial working directory for sessions on this host.
	// Empty means the login home directory.
	Dir string `yaml:"dir" mapstructure:"dir"`

	// Tags for filtering hosts with --tag flag.
	Tags []string `yaml:"tags" mapstructure:"tags"`

	// Env contains overlay variables applied to every session on this
	// host.
	Env map[string]string `yaml:"env" mapstructure:"env"`
}

// OutputConfig controls terminal output formatting.
type OutputConfig struct {
	// Color mode: "auto", "always", or "never".
	// "auto" disables color when output is piped.
	Color string `yaml:"color" mapstructure:"color"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Hosts:   make(map[string]Host),
		Timeout: 30 * time.Second,
		Output: OutputConfig{
			Color: "auto",
		},
	}
}
