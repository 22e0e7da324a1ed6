package services

import (
	"strings"

	"barra/internal/domain"
)

// sycophancyPhrases is the fixed list of filler/flattery phrases tracked as
// a lexical frequency metric over assistant output. Matching is plain
// substring search on lowercased text; a phrase inside a longer word still
// counts.
var sycophancyPhrases = []string{
	"you're absolutely right",
	"you are absolutely right",
	"you're right",
	"great question",
	"great idea",
	"excellent point",
	"good catch",
	"perfect!",
}

// ComputeContext derives context-window saturation from the most recent
// assistant turn whose stop reason is not "aborted", scanning backward.
// Aborted turns carry usage figures that do not describe the live context.
// Returns zero values when no such turn exists.
func ComputeContext(turns []domain.Turn, windowSize int) domain.ContextMetrics {
	for i := len(turns) - 1; i >= 0; i-- {
		turn := turns[i]
		if turn.Role != domain.RoleAssistant || turn.StopReason == domain.StopReasonAborted {
			continue
		}

		metrics := domain.ContextMetrics{
			Tokens:     turn.Usage.ContextTokens(),
			WindowSize: windowSize,
		}
		if windowSize > 0 {
			metrics.Percent = 100 * float64(metrics.Tokens) / float64(windowSize)
		}
		return metrics
	}

	return domain.ContextMetrics{WindowSize: windowSize}
}

// ComputeTotals sums input tokens, output tokens and cost across every
// assistant turn. Missing usage figures contribute zero; no turn is
// excluded, aborted or not.
func ComputeTotals(turns []domain.Turn) domain.TotalMetrics {
	var totals domain.TotalMetrics
	for _, turn := range turns {
		if turn.Role != domain.RoleAssistant {
			continue
		}
		totals.InputTokens += turn.Usage.InputTokens
		totals.OutputTokens += turn.Usage.OutputTokens
		totals.CostUSD += turn.Usage.CostUSD
	}
	return totals
}

// CountSycophancy counts non-overlapping occurrences of every tracked
// phrase across all text blocks of all assistant turns. Extra phrases (from
// settings) are counted alongside the fixed list.
func CountSycophancy(turns []domain.Turn, extraPhrases ...string) int {
	phrases := sycophancyPhrases
	if len(extraPhrases) > 0 {
		phrases = append(append([]string{}, sycophancyPhrases...), extraPhrases...)
	}

	count := 0
	for _, turn := range turns {
		if turn.Role != domain.RoleAssistant {
			continue
		}
		for _, block := range turn.Content {
			if block.Type != "text" {
				continue
			}
			text := strings.ToLower(block.Text)
			for _, phrase := range phrases {
				count += countOccurrences(text, phrase)
			}
		}
	}
	return count
}

// countOccurrences counts non-overlapping occurrences of needle in haystack
// by repeated indexed search, advancing past each match.
func countOccurrences(haystack, needle string) int {
	if needle == "" {
		return 0
	}
	count, pos := 0, 0
	for {
		idx := strings.Index(haystack[pos:], needle)
		if idx < 0 {
			return count
		}
		count++
		pos += idx + len(needle)
	}
}
