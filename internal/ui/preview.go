package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"barra/internal/services"
	"barra/internal/theme"
)

// previewTickInterval drives the redraw loop of the preview TUI.
const previewTickInterval = time.Second

type previewTickMsg time.Time

// previewKeyMap defines the preview key bindings
type previewKeyMap struct {
	Quit       key.Binding
	Invalidate key.Binding
}

var previewKeys = previewKeyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Invalidate: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
}

// PreviewModel is a bubbletea model that drives a statusline controller on
// a ticker, standing in for the host's redraw loop during local inspection.
type PreviewModel struct {
	controller *services.Controller
	keys       previewKeyMap
	width      int
	lines      []string
}

// NewPreviewModel creates a preview over the given controller. The caller
// owns the controller lifecycle; Start before running, Dispose after.
func NewPreviewModel(controller *services.Controller) PreviewModel {
	return PreviewModel{
		controller: controller,
		keys:       previewKeys,
		width:      80,
	}
}

// Init implements tea.Model.
func (m PreviewModel) Init() tea.Cmd {
	return previewTick()
}

// Update implements tea.Model.
func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.lines = m.controller.Render(m.width)
		return m, nil

	case previewTickMsg:
		m.lines = m.controller.Render(m.width)
		return m, previewTick()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Invalidate):
			m.controller.Invalidate()
			m.lines = m.controller.Render(m.width)
			return m, nil
		}
	}

	return m, nil
}

// View implements tea.Model.
func (m PreviewModel) View() string {
	var sb strings.Builder
	for _, line := range m.lines {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	sb.WriteString(theme.SegmentKeyStyle.Render("\nr refresh · q quit\n"))
	return sb.String()
}

func previewTick() tea.Cmd {
	return tea.Tick(previewTickInterval, func(t time.Time) tea.Msg {
		return previewTickMsg(t)
	})
}
