// Package cli implements the cropframe command-line interface.
//
// # Commands
//
//   - select: draw, move and resize a region in a full-screen terminal view
//   - place: show where the toolbar goes for a given selection
//   - replay: run a TOML event script headlessly
//   - states: render the selection state machine
//   - config: print the effective configuration
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context. Selection episodes and region exports are
// reported to the logger through the observability hooks. While select owns
// the terminal, log output goes to the configured log file or is dropped.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cropframe/pkg/buildinfo"
	"github.com/matzehuels/cropframe/pkg/cache"
	"github.com/matzehuels/cropframe/pkg/config"
	"github.com/matzehuels/cropframe/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "cropframe"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	logOut     io.Writer
	configPath string
	config     config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		logOut: w,
		config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "cropframe selects a screen region with the mouse",
		Long:         `cropframe draws a resizable, movable selection rectangle over a surface and reports the region you accept. It runs as a full-screen terminal app and can replay recorded input headlessly.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.setup(); err != nil {
				return err
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/cropframe/config.toml)")

	// Register all subcommands
	root.AddCommand(c.selectCommand())
	root.AddCommand(c.placeCommand())
	root.AddCommand(c.replayCommand())
	root.AddCommand(c.statesCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the configuration and routes engine events to the logger.
func (c *CLI) setup() error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.config = cfg
	c.Logger.Debug("loaded config", "version", buildinfo.Short(), "path", c.configPath)

	hooks := newLogHooks(c.Logger)
	observability.SetSelectionHooks(hooks)
	observability.SetExportHooks(hooks)
	return nil
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/cropframe/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// newCache opens the artifact cache, falling back to no caching when the
// cache directory is unavailable.
func newCache(noCache bool) cache.Cache {
	if noCache {
		return cache.NullCache{}
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NullCache{}
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return cache.NullCache{}
	}
	return fc
}
