package domain

// AheadBehind describes how a local branch relates to its tracked upstream.
type AheadBehind int

const (
	SyncNone AheadBehind = iota
	SyncAhead
	SyncBehind
	SyncDiverged
)

// StateFlag marks one kind of working-tree activity. A tree can exhibit
// several at once (e.g. Staged and Modified on different files).
type StateFlag int

const (
	FlagConflicted StateFlag = iota
	FlagStashed
	FlagDeleted
	FlagRenamed
	FlagModified
	FlagStaged
	FlagUntracked
)

// FlagPriority is the fixed display order for state flags. Rendering must
// iterate this slice, never the set, so output is stable across runs.
var FlagPriority = []StateFlag{
	FlagConflicted,
	FlagStashed,
	FlagDeleted,
	FlagRenamed,
	FlagModified,
	FlagStaged,
	FlagUntracked,
}

// GitStatus is the repository state visible at render time.
// A nil *GitStatus means "not inside a repository" — callers must
// distinguish that from a repo with nothing interesting going on.
type GitStatus struct {
	Branch      string // "detached" when HEAD is detached; never empty inside a repo
	AheadBehind AheadBehind
	States      map[StateFlag]bool
}

// HasFlags reports whether any working-tree flag is set.
func (s *GitStatus) HasFlags() bool {
	return len(s.States) > 0
}
