package domain

// Turn roles as recorded in the session transcript.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// StopReasonAborted marks a turn the user interrupted. Its usage figures do
// not describe the live context and are skipped for context metrics.
const StopReasonAborted = "aborted"

// Usage holds the token and cost figures attached to a single turn.
type Usage struct {
	InputTokens   int
	OutputTokens  int
	CacheCreation int
	CacheRead     int
	CostUSD       float64
}

// ContextTokens is the turn's total context footprint: all four token
// categories, not just input+output.
func (u Usage) ContextTokens() int {
	return u.InputTokens + u.OutputTokens + u.CacheCreation + u.CacheRead
}

// ContentBlock is one piece of a turn's content.
type ContentBlock struct {
	Type string // "text", "thinking", "tool_use", ...
	Text string
}

// Turn is a single transcript record.
type Turn struct {
	Role       string
	StopReason string
	Content    []ContentBlock
	Usage      Usage
}

// Model describes the model serving the session.
type Model struct {
	ID            string
	DisplayName   string
	Provider      string
	ContextWindow int
}
