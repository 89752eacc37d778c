package listview

import (
	"context"
	"sync"
	"time"
)

// Phase describes what the controller is currently doing.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhasePending Phase = "pending"
)

// DefaultDebounce is how long the controller waits after the last keystroke
// before issuing a search.
const DefaultDebounce = 300 * time.Millisecond

// Config carries the knobs for a Controller.
type Config struct {
	// Debounce applies to SetTerm only. Zero means DefaultDebounce.
	Debounce time.Duration
	// Initial is the query state the controller starts from, typically
	// decoded from the current URL.
	Initial QueryState
}

// Controller is the listing's state machine. It owns the current query
// state, debounces keystrokes, keeps at most one request in flight, and
// drops stale responses so the rendered rows always reflect the newest
// applied state.
//
// All state lives on the struct; there are no package-level globals, so
// multiple listings can coexist.
type Controller struct {
	client   ListClient
	renderer RowRenderer
	urls     URLStore
	notifier Notifier

	debounce time.Duration

	mu         sync.Mutex
	state      QueryState
	phase      Phase
	timer      *time.Timer
	inFlight   bool
	pending    *QueryState
	nextSeq    uint64
	appliedSeq uint64
}

// NewController wires a controller to its ports.
func NewController(client ListClient, renderer RowRenderer, urls URLStore, notifier Notifier, cfg Config) *Controller {
	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	initial := cfg.Initial
	if initial.Page < 1 {
		initial.Page = 1
	}

	return &Controller{
		client:   client,
		renderer: renderer,
		urls:     urls,
		notifier: notifier,
		debounce: debounce,
		state:    initial,
		phase:    PhaseIdle,
	}
}

// SetTerm records a new search term and schedules a refresh after the
// debounce window. Every call resets the timer, so only quiescence fires a
// request. Term changes always jump back to the first page.
func (c *Controller) SetTerm(term string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Term = term
	c.state.Page = 1

	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.debounce, c.fireDebounced)
}

// SetStatus changes the status filter and refreshes immediately, resetting
// to the first page.
func (c *Controller) SetStatus(status string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Status = status
	c.state.Page = 1
	c.triggerLocked()
}

// GoToPage navigates to the given page, preserving term and status.
func (c *Controller) GoToPage(page int) {
	if page < 1 {
		page = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Page = page
	c.triggerLocked()
}

// ClearSearch empties the search term and refreshes immediately.
func (c *Controller) ClearSearch() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Term = ""
	c.state.Page = 1
	c.triggerLocked()
}

// Refresh re-issues the current query state, e.g. after a create or delete.
func (c *Controller) Refresh() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.triggerLocked()
}

// State returns the current query state.
func (c *Controller) State() QueryState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Phase reports whether a refresh is outstanding.
func (c *Controller) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// fireDebounced runs when the debounce timer elapses.
func (c *Controller) fireDebounced() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.triggerLocked()
}

// triggerLocked requests a refresh of the current state. While a request is
// in flight only the latest desired state is remembered; it is issued as
// exactly one follow-up when the outstanding request completes.
func (c *Controller) triggerLocked() {
	// An immediate trigger supersedes a scheduled debounce fire; the state
	// it would have sent is already part of the current state.
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}

	if c.inFlight {
		snapshot := c.state
		c.pending = &snapshot
		return
	}

	c.issueLocked(c.state)
}

// issueLocked starts one request for the given state. Requests are never
// cancelled; sequencing makes late arrivals harmless.
func (c *Controller) issueLocked(state QueryState) {
	c.inFlight = true
	c.phase = PhasePending
	c.nextSeq++
	seq := c.nextSeq

	go func() {
		page, err := c.client.Fetch(context.Background(), state)
		c.complete(seq, state, page, err)
	}()
}

// complete finishes one request: applies the result unless a newer one has
// already landed, then issues the coalesced follow-up if any triggers
// arrived in the meantime.
func (c *Controller) complete(seq uint64, state QueryState, page *Page, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.inFlight = false

	switch {
	case err != nil:
		// Previous rows stay on screen; the user decides whether to retry.
		if c.notifier != nil {
			c.notifier.Notify("error", "Não foi possível carregar os clientes. Tente novamente.")
		}
	case seq >= c.appliedSeq:
		c.appliedSeq = seq

		totalPages := page.TotalPages
		if totalPages < 1 {
			totalPages = 1
		}
		c.renderer.Render(page.Rows, page.Total, page.Page, totalPages)
		if c.urls != nil {
			c.urls.SetQuery(EncodeQuery(state))
		}
	}

	if c.pending != nil {
		next := *c.pending
		c.pending = nil
		c.issueLocked(next)
		return
	}

	c.phase = PhaseIdle
}
