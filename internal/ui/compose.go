package ui

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"barra/internal/domain"
	"barra/internal/theme"
)

// StatuslineComposer formats a status view into display lines: the
// model/context/directory/git line, the cost/token line, then extension
// segments sorted by key. Every line is truncated to the requested width.
type StatuslineComposer struct{}

// NewStatuslineComposer creates a StatuslineComposer.
func NewStatuslineComposer() *StatuslineComposer {
	return &StatuslineComposer{}
}

// Compose implements services.Composer.
func (sc *StatuslineComposer) Compose(view domain.StatusView, width int) []string {
	lines := []string{
		sc.sessionLine(view),
		sc.accountingLine(view),
	}
	lines = append(lines, sc.segmentLines(view.Segments)...)

	for i, line := range lines {
		lines[i] = truncate(line, width)
	}
	return lines
}

// sessionLine renders model identity, context saturation, working directory
// and the git summary.
func (sc *StatuslineComposer) sessionLine(view domain.StatusView) string {
	parts := []string{
		theme.ModelStyle.Render(modelLabel(view.Model)),
		contextStyle(view.Context.Percent).Render(fmt.Sprintf("%.0f%%", view.Context.Percent)),
	}

	if view.WorkingDir != "" {
		parts = append(parts, theme.DirectoryStyle.Render(filepath.Base(view.WorkingDir)))
	}

	// Git segment only when a branch name is present
	if view.Git != nil && view.Git.Branch != "" {
		segment := theme.BranchStyle.Render(view.Git.Branch)
		if flags := formatGitFlags(view.Git); flags != "" {
			segment += theme.GitFlagsStyle.Render(fmt.Sprintf(" [%s]", flags))
		}
		parts = append(parts, segment)
	}

	return strings.Join(parts, theme.NormalStyle.Render(" | "))
}

// accountingLine renders cumulative cost and token totals, plus the
// sycophancy counter when it is non-zero.
func (sc *StatuslineComposer) accountingLine(view domain.StatusView) string {
	parts := []string{
		theme.CostStyle.Render(fmt.Sprintf("$%.2f", view.Totals.CostUSD)),
		theme.TokensStyle.Render(fmt.Sprintf("↑%s ↓%s",
			formatTokenCount(view.Totals.InputTokens),
			formatTokenCount(view.Totals.OutputTokens))),
	}

	if view.Sycophancy > 0 {
		parts = append(parts, theme.SycophancyStyle.Render(fmt.Sprintf("✨%d", view.Sycophancy)))
	}

	return strings.Join(parts, theme.NormalStyle.Render(" | "))
}

// segmentLines renders extension fragments sorted by provider key.
func (sc *StatuslineComposer) segmentLines(segments map[string]string) []string {
	if len(segments) == 0 {
		return nil
	}

	keys := make([]string, 0, len(segments))
	for key := range segments {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, key := range keys {
		lines = append(lines, fmt.Sprintf("%s %s",
			theme.SegmentKeyStyle.Render(key+":"),
			theme.NormalStyle.Render(segments[key])))
	}
	return lines
}

func modelLabel(model domain.Model) string {
	if model.DisplayName != "" {
		return model.DisplayName
	}
	return model.ID
}

// truncate bounds a line to width display columns, appending an ellipsis
// when it would overflow. ANSI sequences do not count toward the width.
func truncate(line string, width int) string {
	if width <= 0 {
		return line
	}
	return ansi.Truncate(line, width, "…")
}
