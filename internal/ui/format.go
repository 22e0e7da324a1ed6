package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"barra/internal/domain"
	"barra/internal/theme"
)

// Context saturation tier thresholds, inclusive at the lower bound.
const (
	contextSevereThreshold  = 65.0
	contextWarningThreshold = 40.0
)

// flagSymbols maps each working-tree flag to its display symbol.
var flagSymbols = map[domain.StateFlag]string{
	domain.FlagConflicted: "=",
	domain.FlagStashed:    "$",
	domain.FlagDeleted:    "✘",
	domain.FlagRenamed:    "»",
	domain.FlagModified:   "!",
	domain.FlagStaged:     "+",
	domain.FlagUntracked:  "?",
}

// formatTokenCount abbreviates a token count: millions get one decimal and
// an "m" suffix, thousands a floor-divided "k", anything below stays
// literal.
func formatTokenCount(count int) string {
	if count >= 1_000_000 {
		return fmt.Sprintf("%.1fm", float64(count)/1_000_000)
	}
	if count >= 1_000 {
		return fmt.Sprintf("%dk", count/1_000)
	}
	return fmt.Sprintf("%d", count)
}

// contextStyle picks the severity style for a context saturation percent.
func contextStyle(percent float64) lipgloss.Style {
	switch {
	case percent >= contextSevereThreshold:
		return theme.ContextSevereStyle
	case percent >= contextWarningThreshold:
		return theme.ContextWarningStyle
	default:
		return theme.ContextNormalStyle
	}
}

// formatGitFlags renders the flag set in the fixed priority order, with the
// ahead/behind symbol last. Empty string when there is nothing to show.
func formatGitFlags(status *domain.GitStatus) string {
	var out string
	for _, flag := range domain.FlagPriority {
		if status.States[flag] {
			out += flagSymbols[flag]
		}
	}

	switch status.AheadBehind {
	case domain.SyncAhead:
		out += "⇡"
	case domain.SyncBehind:
		out += "⇣"
	case domain.SyncDiverged:
		out += "⇕"
	}

	return out
}
