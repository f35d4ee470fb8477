// Package cli implements the creatives command-line interface.
//
// This package provides commands for rendering social ad creatives from
// campaign briefs, inspecting font resolution, and managing the generation
// cache. The CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - generate: Render creatives for every product and aspect ratio in a brief
//   - fonts: Show the font resolution chain and which candidate wins
//   - cache: Manage the generation cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Shadid12/creatives-automation/pkg/buildinfo"
	"github.com/Shadid12/creatives-automation/pkg/cache"
	"github.com/Shadid12/creatives-automation/pkg/creative"
	"github.com/Shadid12/creatives-automation/pkg/genai"
	"github.com/Shadid12/creatives-automation/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "creatives"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "creatives",
		Short:        "Creatives renders social ad campaigns from briefs",
		Long:         `Creatives is a CLI tool for turning campaign briefs into finished social ad creatives: one composited image per product and aspect ratio, with brand colors, messaging, and a call-to-action pill.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.fontsCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool, images genai.ImageGenerator, messaging *genai.MessagingGenerator) (*pipeline.Runner, error) {
	store, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(store, nil, images, messaging, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the cache directory using XDG standard (~/.cache/creatives/).
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

// parseRatios parses a comma-separated ratio list ("1:1,9:16").
// An empty string means the standard ratio set.
func parseRatios(s string) ([]creative.AspectRatio, error) {
	if strings.TrimSpace(s) == "" {
		return creative.DefaultRatios(), nil
	}
	var out []creative.AspectRatio
	for _, part := range strings.Split(s, ",") {
		r, err := creative.ParseRatio(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
