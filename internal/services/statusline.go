package services

import (
	"barra/internal/domain"
	"barra/internal/git"
	"barra/internal/logging"
	"barra/internal/ports"
)

// Composer formats a status view into width-bounded display lines.
// Implemented by the ui package; kept as an interface here so the
// controller stays free of rendering concerns.
type Composer interface {
	Compose(view domain.StatusView, width int) []string
}

// controllerState tracks the controller lifecycle.
type controllerState int

const (
	stateUninitialized controllerState = iota
	stateActive
	stateDisposed
)

// Controller is the object the host holds. Each Render call re-reads
// current state (cheaply, through the git cache) and returns composed
// lines. Invalidate and HandleTurnEnd clear the cache so the next render
// re-resolves; Dispose releases the branch-change subscription.
type Controller struct {
	cache      *git.StatusCache
	transcript ports.TranscriptSource
	composer   Composer
	host       ports.Host
	providers  []ports.SegmentProvider

	extraPhrases []string
	state        controllerState
	subscription ports.Subscription
}

// NewController wires a controller. The cache is owned by this instance;
// two controllers never share git state.
func NewController(cache *git.StatusCache, transcript ports.TranscriptSource, composer Composer, host ports.Host) *Controller {
	return &Controller{
		cache:      cache,
		transcript: transcript,
		composer:   composer,
		host:       host,
	}
}

// AddSegmentProvider registers an extension status provider. Fragments are
// sorted by key at compose time, so registration order does not matter.
func (c *Controller) AddSegmentProvider(provider ports.SegmentProvider) {
	c.providers = append(c.providers, provider)
}

// SetExtraSycophancyPhrases extends the tracked phrase list (from settings).
func (c *Controller) SetExtraSycophancyPhrases(phrases []string) {
	c.extraPhrases = phrases
}

// Start moves the controller to Active on the session-start signal. A
// branch change clears the git cache and asks the host for a redraw rather
// than waiting out the TTL.
func (c *Controller) Start() {
	if c.state != stateUninitialized {
		return
	}
	c.state = stateActive

	if c.host != nil {
		c.subscription = c.host.OnBranchChange(func() {
			logging.Logger.Debug("Branch change notification, clearing git cache")
			c.cache.Invalidate()
			c.host.RequestRedraw()
		})
	}
}

// Render produces the current line set for the given display width. It is
// called from the host's redraw loop; the worst case on any internal
// failure is a degraded line set, never an error.
func (c *Controller) Render(width int) []string {
	turns := c.transcript.Turns()
	model := c.transcript.Model()

	view := domain.StatusView{
		Model:      model,
		Context:    ComputeContext(turns, model.ContextWindow),
		Totals:     ComputeTotals(turns),
		Sycophancy: CountSycophancy(turns, c.extraPhrases...),
		WorkingDir: c.transcript.WorkingDir(),
		Git:        c.cache.Get(),
		Segments:   c.collectSegments(),
	}

	return c.composer.Compose(view, width)
}

// Invalidate is the host-driven manual refresh entry point.
func (c *Controller) Invalidate() {
	c.cache.Invalidate()
}

// HandleTurnEnd clears the cache unconditionally: files may have changed on
// disk during the turn, so the next render must re-probe.
func (c *Controller) HandleTurnEnd() {
	c.cache.Invalidate()
}

// Dispose releases the branch-change subscription. Rendering after Dispose
// is the host's responsibility to avoid.
func (c *Controller) Dispose() {
	if c.state == stateDisposed {
		return
	}
	c.state = stateDisposed

	if c.subscription != nil {
		c.subscription.Release()
		c.subscription = nil
	}
}

func (c *Controller) collectSegments() map[string]string {
	if len(c.providers) == 0 {
		return nil
	}
	segments := make(map[string]string)
	for _, provider := range c.providers {
		for key, value := range provider.Segments() {
			segments[key] = value
		}
	}
	return segments
}
