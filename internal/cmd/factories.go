package cmd

import (
	"time"

	"barra/internal/adapters/claude"
	"barra/internal/adapters/run"
	"barra/internal/config"
	"barra/internal/domain"
	"barra/internal/git"
	"barra/internal/ports"
	"barra/internal/services"
	"barra/internal/ui"
)

const (
	defaultGitCacheTTL    = 2000 * time.Millisecond
	defaultCommandTimeout = 2 * time.Second
)

// staticSegments adapts a fixed fragment map (from the host payload) to the
// SegmentProvider port.
type staticSegments map[string]string

func (s staticSegments) Segments() map[string]string {
	return s
}

// newController wires a controller for one session: exec-backed git
// resolution behind a TTL cache, a JSONL transcript source, and the themed
// composer. host may be nil for one-shot rendering.
func newController(settings *config.Settings, transcriptPath string, model domain.Model, workingDir string, segments map[string]string, host ports.Host) *services.Controller {
	runner := run.NewExecRunner()
	resolver := git.NewResolverWithTimeout(runner, settings.CommandTimeout(defaultCommandTimeout))
	cache := git.NewStatusCacheWithTTL(resolver, workingDir, settings.GitCacheTTL(defaultGitCacheTTL))
	transcript := claude.NewTranscriptFile(transcriptPath, model, workingDir)

	controller := services.NewController(cache, transcript, ui.NewStatuslineComposer(), host)
	controller.SetExtraSycophancyPhrases(settings.SycophancyPhrases)
	if len(segments) > 0 {
		controller.AddSegmentProvider(staticSegments(segments))
	}

	return controller
}
