package ports

import "barra/internal/domain"

// TranscriptSource yields the current session snapshot. Turns is read fresh
// on every render; implementations should return the ordered transcript as
// it exists at call time.
type TranscriptSource interface {
	Turns() []domain.Turn
	Model() domain.Model
	WorkingDir() string
}

// SegmentProvider contributes extra status fragments, keyed by provider
// name. Fragments are rendered one per line, sorted by key, so output does
// not depend on registration order.
type SegmentProvider interface {
	Segments() map[string]string
}
