package git

import (
	"strconv"
	"strings"
	"time"

	"barra/internal/domain"
	"barra/internal/logging"
	"barra/internal/ports"
)

// defaultQueryTimeout bounds each individual git subprocess.
const defaultQueryTimeout = 2 * time.Second

// Resolver turns a sequence of git queries into a normalized GitStatus.
// Every sub-query after the repository probe is independently degradable: a
// failure leaves the corresponding field at its default instead of aborting
// the resolution.
type Resolver struct {
	runner  ports.CommandRunner
	timeout time.Duration
}

// NewResolver creates a Resolver using the given command runner.
func NewResolver(runner ports.CommandRunner) *Resolver {
	return &Resolver{runner: runner, timeout: defaultQueryTimeout}
}

// NewResolverWithTimeout creates a Resolver with a custom per-query timeout.
func NewResolverWithTimeout(runner ports.CommandRunner, timeout time.Duration) *Resolver {
	return &Resolver{runner: runner, timeout: timeout}
}

// Resolve inspects the repository at dir. It returns nil when dir is not
// inside a git repository; only the probe short-circuits, everything else
// fails open.
func (r *Resolver) Resolve(dir string) *domain.GitStatus {
	if _, ok := r.git(dir, "rev-parse", "--is-inside-work-tree"); !ok {
		logging.Logger.Debug("Not a git repository", "dir", dir)
		return nil
	}

	status := &domain.GitStatus{
		Branch: r.resolveBranch(dir),
		States: make(map[domain.StateFlag]bool),
	}
	status.AheadBehind = r.resolveAheadBehind(dir)
	r.resolveWorktreeFlags(dir, status.States)
	if r.resolveStash(dir) {
		status.States[domain.FlagStashed] = true
	}

	return status
}

// resolveBranch returns the checked-out branch name, or "detached" when
// HEAD points at no branch. Never empty inside a repo.
func (r *Resolver) resolveBranch(dir string) string {
	branch, ok := r.git(dir, "branch", "--show-current")
	if !ok || branch == "" {
		return "detached"
	}
	return branch
}

// resolveAheadBehind compares HEAD against its upstream with a left-right
// commit count. Missing upstream or unparseable output yields SyncNone.
func (r *Resolver) resolveAheadBehind(dir string) domain.AheadBehind {
	output, ok := r.git(dir, "rev-list", "--left-right", "--count", "HEAD...@{upstream}")
	if !ok {
		return domain.SyncNone
	}

	fields := strings.Fields(output)
	if len(fields) != 2 {
		return domain.SyncNone
	}
	ahead, err := strconv.Atoi(fields[0])
	if err != nil {
		return domain.SyncNone
	}
	behind, err := strconv.Atoi(fields[1])
	if err != nil {
		return domain.SyncNone
	}

	switch {
	case ahead > 0 && behind > 0:
		return domain.SyncDiverged
	case ahead > 0:
		return domain.SyncAhead
	case behind > 0:
		return domain.SyncBehind
	default:
		return domain.SyncNone
	}
}

// resolveWorktreeFlags classifies porcelain status records into flags.
// Flags accumulate across records; a conflicted record contributes only
// FlagConflicted regardless of its column letters.
func (r *Resolver) resolveWorktreeFlags(dir string, states map[domain.StateFlag]bool) {
	output, ok := r.git(dir, "status", "--porcelain")
	if !ok || output == "" {
		return
	}

	for _, line := range strings.Split(output, "\n") {
		if len(line) < 2 {
			continue
		}
		index, worktree := line[0], line[1]

		// Unmerged paths take precedence over everything else
		if index == 'U' || worktree == 'U' || (index == 'A' && worktree == 'A') {
			states[domain.FlagConflicted] = true
			continue
		}

		switch index {
		case 'R':
			states[domain.FlagRenamed] = true
		case 'D':
			states[domain.FlagDeleted] = true
		case '?':
			states[domain.FlagUntracked] = true
		case 'M', 'A', 'C', 'T':
			states[domain.FlagStaged] = true
		}

		switch worktree {
		case 'M':
			states[domain.FlagModified] = true
		case 'D':
			states[domain.FlagDeleted] = true
		}
	}
}

// resolveStash reports whether the stash holds anything.
func (r *Resolver) resolveStash(dir string) bool {
	output, ok := r.git(dir, "stash", "list")
	return ok && output != ""
}

func (r *Resolver) git(dir string, args ...string) (string, bool) {
	return r.runner.Run(dir, r.timeout, "git", args...)
}
