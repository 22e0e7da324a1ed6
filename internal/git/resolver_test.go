package git

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barra/internal/domain"
)

// fakeRunner scripts command output by joined argument string and records
// every call so tests can assert on call counts.
type fakeRunner struct {
	responses map[string]string
	failures  map[string]bool
	calls     []string
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{
		responses: make(map[string]string),
		failures:  make(map[string]bool),
	}
}

func (f *fakeRunner) Run(dir string, timeout time.Duration, name string, args ...string) (string, bool) {
	key := strings.Join(args, " ")
	f.calls = append(f.calls, key)
	if f.failures[key] {
		return "", false
	}
	output, ok := f.responses[key]
	if !ok {
		return "", false
	}
	return output, true
}

func (f *fakeRunner) callCount() int {
	return len(f.calls)
}

// inRepo scripts the happy-path baseline: a repo on branch main with a
// clean tree, no upstream, no stash.
func (f *fakeRunner) inRepo() *fakeRunner {
	f.responses["rev-parse --is-inside-work-tree"] = "true"
	f.responses["branch --show-current"] = "main"
	f.failures["rev-list --left-right --count HEAD...@{upstream}"] = true
	f.responses["status --porcelain"] = ""
	f.responses["stash list"] = ""
	return f
}

func TestResolve_NotARepo(t *testing.T) {
	runner := newFakeRunner()
	runner.failures["rev-parse --is-inside-work-tree"] = true

	status := NewResolver(runner).Resolve("/tmp/nowhere")

	assert.Nil(t, status)
	// Probe failure must short-circuit: no further queries issued
	assert.Equal(t, 1, runner.callCount())
}

func TestResolve_CleanRepo(t *testing.T) {
	runner := newFakeRunner().inRepo()

	status := NewResolver(runner).Resolve("/tmp/repo")

	require.NotNil(t, status)
	assert.Equal(t, "main", status.Branch)
	assert.Equal(t, domain.SyncNone, status.AheadBehind)
	assert.Empty(t, status.States)
}

func TestResolve_DetachedHead(t *testing.T) {
	runner := newFakeRunner().inRepo()
	runner.responses["branch --show-current"] = ""

	status := NewResolver(runner).Resolve("/tmp/repo")

	require.NotNil(t, status)
	assert.Equal(t, "detached", status.Branch)
}

func TestResolve_BranchQueryFailure(t *testing.T) {
	runner := newFakeRunner().inRepo()
	runner.failures["branch --show-current"] = true

	status := NewResolver(runner).Resolve("/tmp/repo")

	require.NotNil(t, status)
	assert.Equal(t, "detached", status.Branch)
}

func TestResolve_AheadBehind(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		fail     bool
		expected domain.AheadBehind
	}{
		{name: "in sync", output: "0\t0", expected: domain.SyncNone},
		{name: "ahead", output: "3\t0", expected: domain.SyncAhead},
		{name: "behind", output: "0\t2", expected: domain.SyncBehind},
		{name: "diverged", output: "1\t4", expected: domain.SyncDiverged},
		{name: "no upstream", fail: true, expected: domain.SyncNone},
		{name: "malformed single field", output: "3", expected: domain.SyncNone},
		{name: "malformed non-numeric", output: "a\tb", expected: domain.SyncNone},
		{name: "too many fields", output: "1 2 3", expected: domain.SyncNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := newFakeRunner().inRepo()
			key := "rev-list --left-right --count HEAD...@{upstream}"
			if tt.fail {
				runner.failures[key] = true
			} else {
				delete(runner.failures, key)
				runner.responses[key] = tt.output
			}

			status := NewResolver(runner).Resolve("/tmp/repo")

			require.NotNil(t, status)
			assert.Equal(t, tt.expected, status.AheadBehind)
		})
	}
}

func TestResolve_PorcelainClassification(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		expected []domain.StateFlag
	}{
		{name: "empty", output: "", expected: nil},
		{name: "modified worktree", output: " M file.go", expected: []domain.StateFlag{domain.FlagModified}},
		{name: "staged", output: "M  file.go", expected: []domain.StateFlag{domain.FlagStaged}},
		{name: "staged and modified same file", output: "MM file.go", expected: []domain.StateFlag{domain.FlagStaged, domain.FlagModified}},
		{name: "added", output: "A  new.go", expected: []domain.StateFlag{domain.FlagStaged}},
		{name: "renamed", output: "R  old.go -> new.go", expected: []domain.StateFlag{domain.FlagRenamed}},
		{name: "deleted from index", output: "D  gone.go", expected: []domain.StateFlag{domain.FlagDeleted}},
		{name: "deleted from worktree", output: " D gone.go", expected: []domain.StateFlag{domain.FlagDeleted}},
		{name: "untracked", output: "?? scratch.txt", expected: []domain.StateFlag{domain.FlagUntracked}},
		{name: "unmerged both modified", output: "UU file.go", expected: []domain.StateFlag{domain.FlagConflicted}},
		{name: "unmerged worktree column", output: "DU file.go", expected: []domain.StateFlag{domain.FlagConflicted}},
		{name: "both added is a conflict", output: "AA file.go", expected: []domain.StateFlag{domain.FlagConflicted}},
		{
			name:     "flags accumulate across records",
			output:   "M  a.go\n M b.go\n?? c.txt",
			expected: []domain.StateFlag{domain.FlagStaged, domain.FlagModified, domain.FlagUntracked},
		},
		{
			name:     "conflict record contributes only conflicted",
			output:   "UU a.go\n?? b.txt",
			expected: []domain.StateFlag{domain.FlagConflicted, domain.FlagUntracked},
		},
		{name: "malformed short line", output: "M", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := newFakeRunner().inRepo()
			runner.responses["status --porcelain"] = tt.output

			status := NewResolver(runner).Resolve("/tmp/repo")

			require.NotNil(t, status)
			assert.Len(t, status.States, len(tt.expected))
			for _, flag := range tt.expected {
				assert.True(t, status.States[flag], "expected flag %v", flag)
			}
		})
	}
}

func TestResolve_PorcelainFailureYieldsEmptyStates(t *testing.T) {
	runner := newFakeRunner().inRepo()
	runner.failures["status --porcelain"] = true

	status := NewResolver(runner).Resolve("/tmp/repo")

	require.NotNil(t, status)
	assert.Empty(t, status.States)
}

func TestResolve_Stash(t *testing.T) {
	runner := newFakeRunner().inRepo()
	runner.responses["stash list"] = "stash@{0}: WIP on main"

	status := NewResolver(runner).Resolve("/tmp/repo")

	require.NotNil(t, status)
	assert.True(t, status.States[domain.FlagStashed])
}

func TestResolve_StashFailureDegrades(t *testing.T) {
	runner := newFakeRunner().inRepo()
	runner.failures["stash list"] = true

	status := NewResolver(runner).Resolve("/tmp/repo")

	require.NotNil(t, status)
	assert.False(t, status.States[domain.FlagStashed])
}
