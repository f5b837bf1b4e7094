// Package copyctl implements the copy-to-clipboard interaction for a
// contract address: an ordered chain of copy strategies, a transient
// "copied" acknowledgment, and activation surfaces bound to one
// controller.
package copyctl

import (
	"context"
	"sync"
	"time"

	"github.com/eringen/tokenpage/internal/clock"
)

// AckWindow is how long the acknowledgment stays visible after the most
// recent successful copy.
const AckWindow = 1200 * time.Millisecond

// Controller owns the copy state for one mounted widget. It is safe for
// concurrent use.
type Controller struct {
	source   string
	chain    Chain
	clock    clock.Clock
	onChange func(bool)

	mu           sync.Mutex
	acknowledged bool
	revert       *clock.Timer
	generation   uint64
	closed       bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock sets the clock used for the acknowledgment window.
func WithClock(c clock.Clock) Option {
	return func(ctl *Controller) {
		ctl.clock = c
	}
}

// WithOnChange registers a callback invoked after every acknowledgment
// transition. It runs without the controller lock held.
func WithOnChange(fn func(acknowledged bool)) Option {
	return func(ctl *Controller) {
		ctl.onChange = fn
	}
}

// New creates a Controller bound to source. The acknowledgment starts
// false.
func New(source string, chain Chain, opts ...Option) *Controller {
	ctl := &Controller{
		source:   source,
		chain:    chain,
		clock:    clock.Real(),
		onChange: func(bool) {},
	}
	for _, opt := range opts {
		opt(ctl)
	}
	return ctl
}

// Source returns the full value that gets copied.
func (c *Controller) Source() string {
	return c.source
}

// Acknowledged reports whether the "copied" confirmation is showing.
func (c *Controller) Acknowledged() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.acknowledged
}

// RequestCopy writes the source value through the strategy chain. On
// success the acknowledgment turns on and any pending revert is replaced
// by a fresh one AckWindow from now. When every strategy fails the state
// is left as it was. It reports whether the copy succeeded; callers on a
// UI surface ignore the result.
func (c *Controller) RequestCopy(ctx context.Context) bool {
	c.mu.Lock()
	closed := c.closed
	c.mu.Unlock()
	if closed {
		return false
	}

	if _, err := c.chain.Copy(ctx, c.source); err != nil {
		return false
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return false
	}
	if c.revert != nil {
		c.revert.Stop()
	}
	c.generation++
	gen := c.generation
	changed := !c.acknowledged
	c.acknowledged = true
	c.revert = c.clock.AfterFunc(AckWindow, func() { c.expire(gen) })
	c.mu.Unlock()

	if changed {
		c.onChange(true)
	}
	return true
}

// expire reverts the acknowledgment if gen is still the latest request.
// A superseded timer that fires anyway finds a newer generation and does
// nothing.
func (c *Controller) expire(gen uint64) {
	c.mu.Lock()
	if c.closed || gen != c.generation || !c.acknowledged {
		c.mu.Unlock()
		return
	}
	c.acknowledged = false
	c.revert = nil
	c.mu.Unlock()

	c.onChange(false)
}

// Close tears the controller down. The pending revert is cancelled and
// no later call or in-flight copy mutates state. Close is idempotent.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	if c.revert != nil {
		c.revert.Stop()
		c.revert = nil
	}
}

// Suspend cancels the pending revert and clears the acknowledgment while
// keeping the controller usable. It models a page that is hidden but kept
// alive, such as one parked in a back/forward cache.
func (c *Controller) Suspend() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	if c.revert != nil {
		c.revert.Stop()
		c.revert = nil
	}
	c.generation++
	changed := c.acknowledged
	c.acknowledged = false
	c.mu.Unlock()

	if changed {
		c.onChange(false)
	}
}
