package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/titanous/json5"
	"github.com/xmit-co/xkey/slip21"
)

const (
	JSONFile = "xkey.json"
	TOMLFile = "xkey.toml"
)

type Key struct {
	Name string `toml:"name" json:"name"`
	Path string `toml:"path" json:"path"`
}

type XkeyConfig struct {
	Parallelism int   `toml:"parallelism" json:"parallelism"`
	Keys        []Key `toml:"keys" json:"keys"`
}

// Load reads xkey.json (JSON5) or, failing that, xkey.toml from directory.
// A directory with neither file yields an empty config.
func Load(directory string) (*XkeyConfig, error) {
	cfg := XkeyConfig{}
	jsonPath := filepath.Join(directory, JSONFile)
	tomlPath := filepath.Join(directory, TOMLFile)
	cfgBytes, err := os.ReadFile(jsonPath)
	if err == nil {
		if err = json5.Unmarshal(cfgBytes, &cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", jsonPath, err)
		}
	} else if os.IsNotExist(err) {
		cfgBytes, err = os.ReadFile(tomlPath)
		if err == nil {
			err = toml.Unmarshal(cfgBytes, &cfg)
		}
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", tomlPath, err)
		}
	} else {
		return nil, fmt.Errorf("%s: %w", jsonPath, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *XkeyConfig) validate() error {
	names := make(map[string]bool, len(c.Keys))
	for _, k := range c.Keys {
		if k.Name == "" {
			return fmt.Errorf("key with path %q has no name", k.Path)
		}
		if names[k.Name] {
			return fmt.Errorf("duplicate key name %q", k.Name)
		}
		names[k.Name] = true
		if _, err := slip21.ParsePath(k.Path); err != nil {
			return fmt.Errorf("key %q: %w", k.Name, err)
		}
	}
	return nil
}

// Resolve returns the path for a named key. Anything that is not a known name
// is parsed as a path.
func (c *XkeyConfig) Resolve(nameOrPath string) (slip21.Path, error) {
	for _, k := range c.Keys {
		if k.Name == nameOrPath {
			return slip21.ParsePath(k.Path)
		}
	}
	return slip21.ParsePath(nameOrPath)
}

// Paths returns the paths of every named key, in declaration order.
func (c *XkeyConfig) Paths() []string {
	paths := make([]string, len(c.Keys))
	for i, k := range c.Keys {
		paths[i] = k.Path
	}
	return paths
}
