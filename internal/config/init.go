package config

import (
	"os"
	"strings"

	"github.com/rileyhilliard/rmac/internal/errors"
	"gopkg.in/yaml.v3"
)

// starterConfig is the commented template 'rmac init' writes.
const starterConfig = `# rmac host inventory
version: 1

# Per-command timeout; 0 disables the bound.
timeout: 30s

hosts:
  example:
    # Tried in order until one connects. Plain hostnames, user@host,
    # and ~/.ssh/config aliases all work.
    ssh:
      - example.internal
      - admin@203.0.113.7
    # Sessions start here instead of the login home.
    dir: /srv/app
    env:
      LANG: C.UTF-8

default: example
`

// Init writes a starter config file. Refuses to overwrite an existing
// one.
func Init(path string) error {
	if path == "" {
		path = ConfigFileName
	}

	if _, err := os.Stat(path); err == nil {
		return errors.New(errors.ErrExists,
			"Config file already exists: "+path,
			"Edit it directly, or remove it and run init again")
	}

	if err := os.WriteFile(path, []byte(starterConfig), 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to write config file",
			"Check directory permissions for "+path)
	}
	return nil
}

// Write marshals a config back to disk, used after programmatic edits.
// Comments in hand-written files are not preserved; Init's template is
// the commented form.
func Write(cfg *Config, path string) error {
	if err := Validate(cfg); err != nil {
		return err
	}

	var buf strings.Builder
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(cfg); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to encode config",
			"")
	}
	encoder.Close()

	if err := os.WriteFile(path, []byte(buf.String()), 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to write config file",
			"Check directory permissions for "+path)
	}
	return nil
}
