package cmd

import (
	"github.com/alecthomas/kong"

	"barra/internal/config"
	"barra/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"100"`
	Settings    string           `help:"Path to settings.json (defaults to the XDG config location)"`

	Render  RenderCmd  `cmd:"" help:"Render the statusline from a host payload on stdin (default)" default:"1"`
	Preview PreviewCmd `cmd:"preview" help:"Live statusline preview for a session transcript"`

	// Internal fields (not flags)
	settings *config.Settings `kong:"-"`
}

// AfterApply initializes logging and loads settings after CLI parsing
func (c *CLI) AfterApply() error {
	if err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles); err != nil {
		return err
	}

	var err error
	if c.Settings != "" {
		c.settings, err = config.LoadFrom(c.Settings)
	} else {
		c.settings, err = config.Load()
	}
	if err != nil {
		// Bad settings degrade to defaults; the statusline must still render
		logging.Logger.Warn("Failed to load settings, using defaults", "error", err)
		c.settings = &config.Settings{}
	}

	return nil
}
