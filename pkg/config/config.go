// Package config loads the cropframe configuration file.
//
// The file is TOML and lives at $XDG_CONFIG_HOME/cropframe/config.toml, or
// ~/.config/cropframe/config.toml when XDG_CONFIG_HOME is unset. A missing
// file is not an error: [Load] returns [Default] in that case. Keys left out
// of the file keep their default values.
//
//	cell_width = 8
//	cell_height = 16
//	handle_size = 10
//	format = "geometry"
//	log_file = "/tmp/cropframe.log"
//
//	[theme]
//	border = "212"
//	handle = "230"
//	toolbar = "63"
//	dim = "240"
//
//	[keys]
//	accept = ["enter", "y"]
//	cancel = ["esc", "q"]
//	retry = ["r"]
package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/cropframe/pkg/errors"
)

const (
	appName  = "cropframe"
	fileName = "config.toml"
)

// Config is the effective configuration.
type Config struct {
	// CellWidth and CellHeight give the size of one terminal cell in
	// surface units.
	CellWidth  float64 `toml:"cell_width"`
	CellHeight float64 `toml:"cell_height"`
	// HandleSize is the side length of a handle's hit square.
	HandleSize float64 `toml:"handle_size"`
	// Format is the default output format for accepted regions.
	Format  string `toml:"format"`
	LogFile string `toml:"log_file"`
	Theme   Theme  `toml:"theme"`
	Keys    Keys   `toml:"keys"`
}

// Theme holds ANSI 256 color codes used by the terminal host.
type Theme struct {
	Border  string `toml:"border"`
	Handle  string `toml:"handle"`
	Toolbar string `toml:"toolbar"`
	Dim     string `toml:"dim"`
}

// Keys maps key names to selection actions.
type Keys struct {
	Accept []string `toml:"accept"`
	Cancel []string `toml:"cancel"`
	Retry  []string `toml:"retry"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		CellWidth:  10,
		CellHeight: 20,
		HandleSize: 10,
		Format:     "geometry",
		Theme: Theme{
			Border:  "212",
			Handle:  "230",
			Toolbar: "63",
			Dim:     "240",
		},
		Keys: Keys{
			Accept: []string{"enter"},
			Cancel: []string{"esc", "q"},
			Retry:  []string{"r"},
		},
	}
}

// Path returns the default configuration file path.
func Path() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Load reads the configuration at path, or at [Path] when path is empty.
// An explicitly named file must exist; the default file may be absent.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := Path()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return Default(), nil
		}
		if os.IsNotExist(err) {
			return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	return Parse(data)
}

// Parse decodes TOML data on top of [Default] and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges and key bindings.
func (c Config) Validate() error {
	if c.CellWidth <= 0 || c.CellHeight <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "cell size must be positive, got %gx%g", c.CellWidth, c.CellHeight)
	}
	if c.HandleSize <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "handle_size must be positive, got %g", c.HandleSize)
	}
	switch c.Format {
	case "json", "geometry", "text":
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "format must be json, geometry or text, got %q", c.Format)
	}

	bound := make(map[string]string)
	for action, keys := range map[string][]string{"accept": c.Keys.Accept, "cancel": c.Keys.Cancel, "retry": c.Keys.Retry} {
		for _, k := range keys {
			if prev, ok := bound[k]; ok && prev != action {
				return errors.New(errors.ErrCodeInvalidConfig, "key %q bound to both %s and %s", k, prev, action)
			}
			bound[k] = action
		}
	}
	return nil
}

// Encode writes c as TOML.
func (c Config) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode config")
	}
	return buf.Bytes(), nil
}
