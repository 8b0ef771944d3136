// Package cli implements the walkthrough command-line interface.
//
// The commands are:
//   - view: open a catalog in a 3D gallery window
//   - layout: print the room, wall allocation and waypoints for a gallery
//   - walk: drive the navigation engine from the terminal
//
// All commands accept --verbose (-v) for debug logging.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/smasonuk/walkthrough"
)

// appName names the cache and data directories.
const appName = "walkthrough"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Walk through an image catalog hung in a 3D gallery",
		Long: `Walkthrough hangs the images of a catalog on the walls of a room sized
to fit them, and moves a camera between fixed viewing positions, one per
image, easing smoothly from one to the next.`,
		SilenceUsage: true,
	}

	root.AddCommand(c.viewCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.walkCommand())
	return root
}

// loadConfig reads a TOML config, or returns the defaults when path is empty.
func loadConfig(path string) (walkthrough.Config, error) {
	if path == "" {
		return walkthrough.DefaultConfig(), nil
	}
	return walkthrough.LoadConfig(path)
}

// cacheDir returns the placeholder cache directory using the XDG layout
// (~/.cache/walkthrough/placeholders).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName, "placeholders"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName, "placeholders"), nil
}
