package domain

// StatusView is everything the line composer needs for one render: the
// snapshot of session metrics and repository state at call time. Git state
// may be up to a cache-TTL stale relative to the transcript figures; that
// skew is accepted.
type StatusView struct {
	Model      Model
	Context    ContextMetrics
	Totals     TotalMetrics
	Sycophancy int
	WorkingDir string
	Git        *GitStatus        // nil when not inside a repository
	Segments   map[string]string // extension fragments, keyed by provider
}
