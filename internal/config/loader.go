package config

import (
	"os"
	"path/filepath"

	"github.com/rileyhilliard/rmac/internal/errors"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	// ConfigFileName is the default config file name.
	ConfigFileName = ".rmac.yaml"
	// GlobalConfigDir is the directory for global config.
	GlobalConfigDir = ".config/rmac"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
)

// Load reads config from the specified path.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Config file not found",
				"Run 'rmac init' to create a config file, or specify one with --config")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file",
			"Check the file exists and is valid YAML")
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the YAML syntax in "+path)
	}

	// viper lowercases every map key, but host names and env variable
	// names are case-sensitive: a host "Web1" must stay addressable as
	// "Web1" and env "LANG" must export as LANG, not lang. Re-decode the
	// hosts map with yaml directly to keep the keys intact.
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file",
			"Check file permissions for "+path)
	}
	var caseSensitive struct {
		Hosts map[string]Host `yaml:"hosts"`
	}
	if err := yaml.Unmarshal(raw, &caseSensitive); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the YAML syntax in "+path)
	}
	if caseSensitive.Hosts != nil {
		cfg.Hosts = caseSensitive.Hosts
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Find locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. .rmac.yaml in current directory
// 3. .rmac.yaml in parent directories (stops at git root or home)
// 4. ~/.config/rmac/config.yaml (global defaults)
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine current directory",
			"Check directory permissions")
	}

	localConfig := filepath.Join(cwd, ConfigFileName)
	if _, err := os.Stat(localConfig); err == nil {
		return localConfig, nil
	}

	// Walk up to parent directories.
	home, _ := os.UserHomeDir()
	dir := cwd
	for {
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		if home != "" && parent == home {
			// Don't go above home directory
			break
		}
		dir = parent

		configPath := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		// Stop at git root
		gitPath := filepath.Join(dir, ".git")
		if _, err := os.Stat(gitPath); err == nil {
			break
		}
	}

	if home != "" {
		globalConfig := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
		if _, err := os.Stat(globalConfig); err == nil {
			return globalConfig, nil
		}
	}

	return "", nil
}

// LoadOrDefault loads config from the found path, or returns defaults
// if not found. Useful for commands like 'rmac init' that should work
// without existing config.
func LoadOrDefault() (*Config, error) {
	path, err := Find("")
	if err != nil {
		return nil, err
	}

	if path == "" {
		return DefaultConfig(), nil
	}

	return Load(path)
}

// Resolve picks the host entry to use: the named host, or the default
// when name is empty, or the sole entry when there is exactly one.
func (c *Config) Resolve(name string) (string, Host, error) {
	if name == "" {
		name = c.Default
	}
	if name == "" && len(c.Hosts) == 1 {
		for only := range c.Hosts {
			name = only
		}
	}
	if name == "" {
		return "", Host{}, errors.New(errors.ErrConfig,
			"No host specified and no default set",
			"Pass --host, or set 'default:' in "+ConfigFileName)
	}

	host, ok := c.Hosts[name]
	if !ok {
		return "", Host{}, errors.New(errors.ErrConfig,
			"Unknown host: "+name,
			"Add it under 'hosts:' in "+ConfigFileName)
	}
	return name, host, nil
}
