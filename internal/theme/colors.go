package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorModel    Color = "99"  // Purple - model name
	ColorProvider Color = "240" // Dark gray - provider suffix
)

// Context saturation tiers
const (
	ColorContextNormal  Color = "2" // Green - below 40%
	ColorContextWarning Color = "3" // Yellow - 40% and up
	ColorContextSevere  Color = "1" // Red - 65% and up
)

// UI semantic colors
const (
	ColorDirectory Color = "86"  // Cyan - working directory
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
)

// Git colors
const (
	ColorBranch   Color = "141" // Purple
	ColorGitFlags Color = "214" // Orange - working tree flags
)

// Accounting colors
const (
	ColorCost       Color = "178" // Gold
	ColorSycophancy Color = "205" // Pink
	ColorTokens     Color = "245" // Light gray
)
