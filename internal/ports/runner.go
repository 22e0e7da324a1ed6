package ports

import "time"

// CommandRunner executes an external command synchronously with a hard
// timeout. Run returns the trimmed stdout and ok=false on any failure:
// non-zero exit, timeout, or spawn error. Failures are ordinary values,
// not errors — callers degrade, they do not propagate.
type CommandRunner interface {
	Run(dir string, timeout time.Duration, name string, args ...string) (string, bool)
}
