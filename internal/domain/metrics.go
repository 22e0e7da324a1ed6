package domain

// ContextMetrics is the context-window saturation derived from the most
// recent non-aborted assistant turn. Zero-valued when no such turn exists.
type ContextMetrics struct {
	Tokens     int
	WindowSize int
	Percent    float64
}

// TotalMetrics accumulates across every assistant turn in the transcript.
type TotalMetrics struct {
	InputTokens  int
	OutputTokens int
	CostUSD      float64
}
