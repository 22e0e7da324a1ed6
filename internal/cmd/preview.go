package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"barra/internal/domain"
	"barra/internal/ui"
)

// PreviewCmd runs a live statusline preview over a session transcript,
// re-rendering once per second the way a host redraw loop would.
type PreviewCmd struct {
	Transcript    string `arg:"" help:"Path to the session JSONL transcript"`
	Dir           string `help:"Working directory for git queries (defaults to the current directory)" default:"."`
	ModelName     string `help:"Model display name" default:"unknown"`
	ContextWindow int    `help:"Model context window size in tokens" default:"200000"`
}

// Run executes the preview command
func (p *PreviewCmd) Run(cli *CLI) error {
	model := domain.Model{
		DisplayName:   p.ModelName,
		ContextWindow: p.ContextWindow,
	}

	controller := newController(cli.settings, p.Transcript, model, p.Dir, nil, nil)
	controller.Start()
	defer controller.Dispose()

	program := tea.NewProgram(ui.NewPreviewModel(controller))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("preview failed: %w", err)
	}

	return nil
}
