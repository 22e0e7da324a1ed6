package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"barra/internal/domain"
)

func assistantTurn(usage domain.Usage, stopReason string, text ...string) domain.Turn {
	turn := domain.Turn{
		Role:       domain.RoleAssistant,
		StopReason: stopReason,
		Usage:      usage,
	}
	for _, t := range text {
		turn.Content = append(turn.Content, domain.ContentBlock{Type: "text", Text: t})
	}
	return turn
}

func TestComputeContext_UsesLatestNonAbortedTurn(t *testing.T) {
	turns := []domain.Turn{
		assistantTurn(domain.Usage{InputTokens: 500}, domain.StopReasonAborted),
		assistantTurn(domain.Usage{InputTokens: 100, OutputTokens: 50, CacheRead: 10}, "end_turn"),
	}

	metrics := ComputeContext(turns, 1000)

	assert.Equal(t, 160, metrics.Tokens)
	assert.InDelta(t, 16.0, metrics.Percent, 0.001)
	assert.Equal(t, 1000, metrics.WindowSize)
}

func TestComputeContext_SkipsTrailingAbortedTurn(t *testing.T) {
	turns := []domain.Turn{
		assistantTurn(domain.Usage{InputTokens: 100}, "end_turn"),
		assistantTurn(domain.Usage{InputTokens: 900}, domain.StopReasonAborted),
	}

	metrics := ComputeContext(turns, 1000)

	assert.Equal(t, 100, metrics.Tokens)
}

func TestComputeContext_AllFourTokenCategories(t *testing.T) {
	turns := []domain.Turn{
		assistantTurn(domain.Usage{InputTokens: 1, OutputTokens: 2, CacheCreation: 4, CacheRead: 8}, "end_turn"),
	}

	metrics := ComputeContext(turns, 100)

	assert.Equal(t, 15, metrics.Tokens)
}

func TestComputeContext_NoEligibleTurn(t *testing.T) {
	turns := []domain.Turn{
		{Role: domain.RoleUser},
		assistantTurn(domain.Usage{InputTokens: 500}, domain.StopReasonAborted),
	}

	metrics := ComputeContext(turns, 1000)

	assert.Equal(t, 0, metrics.Tokens)
	assert.Equal(t, 0.0, metrics.Percent)
}

func TestComputeContext_ZeroWindowSize(t *testing.T) {
	turns := []domain.Turn{
		assistantTurn(domain.Usage{InputTokens: 100}, "end_turn"),
	}

	metrics := ComputeContext(turns, 0)

	assert.Equal(t, 100, metrics.Tokens)
	assert.Equal(t, 0.0, metrics.Percent)
}

func TestComputeTotals_SumsEveryAssistantTurn(t *testing.T) {
	turns := []domain.Turn{
		assistantTurn(domain.Usage{InputTokens: 500}, domain.StopReasonAborted),
		{Role: domain.RoleUser, Usage: domain.Usage{InputTokens: 9999}},
		assistantTurn(domain.Usage{InputTokens: 100, OutputTokens: 50, CostUSD: 0.25}, "end_turn"),
	}

	totals := ComputeTotals(turns)

	// Aborted turns still count toward totals; user turns never do
	assert.Equal(t, 600, totals.InputTokens)
	assert.Equal(t, 50, totals.OutputTokens)
	assert.InDelta(t, 0.25, totals.CostUSD, 0.001)
}

func TestComputeTotals_MissingUsageContributesZero(t *testing.T) {
	turns := []domain.Turn{
		assistantTurn(domain.Usage{}, "end_turn"),
		assistantTurn(domain.Usage{InputTokens: 10}, "end_turn"),
	}

	totals := ComputeTotals(turns)

	assert.Equal(t, 10, totals.InputTokens)
}

func TestCountSycophancy_CountsAcrossTurnsAndBlocks(t *testing.T) {
	turns := []domain.Turn{
		assistantTurn(domain.Usage{}, "end_turn", "You're absolutely right about that."),
		assistantTurn(domain.Usage{}, "end_turn", "Great question! And you're right.", "great question again"),
	}

	count := CountSycophancy(turns)

	assert.Equal(t, 4, count)
}

func TestCountSycophancy_Idempotent(t *testing.T) {
	turns := []domain.Turn{
		assistantTurn(domain.Usage{}, "end_turn", "great question"),
	}

	assert.Equal(t, CountSycophancy(turns), CountSycophancy(turns))
}

func TestCountSycophancy_AppendingTurnIncreasesByOne(t *testing.T) {
	turns := []domain.Turn{
		assistantTurn(domain.Usage{}, "end_turn", "good catch"),
	}
	before := CountSycophancy(turns)

	turns = append(turns, assistantTurn(domain.Usage{}, "end_turn", "that was a good catch"))

	assert.Equal(t, before+1, CountSycophancy(turns))
}

func TestCountSycophancy_SubstringNotWordBoundary(t *testing.T) {
	turns := []domain.Turn{
		// Phrase embedded inside a longer run of text still counts
		assistantTurn(domain.Usage{}, "end_turn", "xxgreat questionxx"),
	}

	assert.Equal(t, 1, CountSycophancy(turns))
}

func TestCountSycophancy_IgnoresNonTextBlocks(t *testing.T) {
	turns := []domain.Turn{
		{
			Role: domain.RoleAssistant,
			Content: []domain.ContentBlock{
				{Type: "thinking", Text: "great question"},
				{Type: "tool_use", Text: "great question"},
			},
		},
	}

	assert.Equal(t, 0, CountSycophancy(turns))
}

func TestCountSycophancy_ExtraPhrases(t *testing.T) {
	turns := []domain.Turn{
		assistantTurn(domain.Usage{}, "end_turn", "wonderful insight, truly"),
	}

	assert.Equal(t, 0, CountSycophancy(turns))
	assert.Equal(t, 1, CountSycophancy(turns, "wonderful insight"))
}
