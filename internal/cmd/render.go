package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"barra/internal/domain"
	"barra/internal/logging"
)

// RenderCmd renders the statusline once from a host payload on stdin and
// prints the lines to stdout. This is the statusline-program contract: the
// host pipes session context in and displays whatever comes back.
type RenderCmd struct {
	Width int `help:"Available display width in columns" default:"80"`
}

// hostPayload is the JSON the host writes to stdin.
type hostPayload struct {
	SessionID      string            `json:"session_id"`
	Model          payloadModel      `json:"model"`
	Workspace      payloadWorkspace  `json:"workspace"`
	TranscriptPath string            `json:"transcript_path"`
	Segments       map[string]string `json:"segments"`
}

type payloadModel struct {
	ID            string `json:"id"`
	DisplayName   string `json:"display_name"`
	Provider      string `json:"provider"`
	ContextWindow int    `json:"context_window"`
}

type payloadWorkspace struct {
	CurrentDir string `json:"current_dir"`
	ProjectDir string `json:"project_dir"`
}

// Run executes the render command
func (r *RenderCmd) Run(cli *CLI) error {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("failed to read host payload: %w", err)
	}

	var payload hostPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("failed to parse host payload: %w", err)
	}

	logging.Logger.Debug("Rendering statusline",
		"session_id", payload.SessionID,
		"transcript", payload.TranscriptPath,
		"width", r.Width)

	model := domain.Model{
		ID:            payload.Model.ID,
		DisplayName:   payload.Model.DisplayName,
		Provider:      payload.Model.Provider,
		ContextWindow: payload.Model.ContextWindow,
	}

	workingDir := payload.Workspace.CurrentDir
	if workingDir == "" {
		workingDir = payload.Workspace.ProjectDir
	}

	controller := newController(cli.settings, payload.TranscriptPath, model, workingDir, payload.Segments, nil)
	controller.Start()
	defer controller.Dispose()

	for _, line := range controller.Render(r.Width) {
		fmt.Println(line)
	}

	return nil
}
