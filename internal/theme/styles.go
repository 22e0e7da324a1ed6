package theme

import "github.com/charmbracelet/lipgloss"

// Statusline segment styles
var (
	BranchStyle = lipgloss.NewStyle().
			Foreground(ColorBranch)

	DirectoryStyle = lipgloss.NewStyle().
			Foreground(ColorDirectory)

	GitFlagsStyle = lipgloss.NewStyle().
			Foreground(ColorGitFlags)

	ModelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorModel)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	SegmentKeyStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)
)

// Context saturation styles, one per severity tier
var (
	ContextNormalStyle = lipgloss.NewStyle().
				Foreground(ColorContextNormal)

	ContextWarningStyle = lipgloss.NewStyle().
				Foreground(ColorContextWarning)

	ContextSevereStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorContextSevere)
)

// Accounting styles
var (
	CostStyle = lipgloss.NewStyle().
			Foreground(ColorCost)

	SycophancyStyle = lipgloss.NewStyle().
			Foreground(ColorSycophancy)

	TokensStyle = lipgloss.NewStyle().
			Foreground(ColorTokens)
)
