// Package clipboard implements the install-command copy control.
package clipboard

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// InstallCommand is the literal placed on the clipboard.
const InstallCommand = "-fsSL https://zik.zarazaex.xyz/install | bash"

// ResetDelay is how long the copied indicator stays on.
const ResetDelay = 2000 * time.Millisecond

// Clipboard writes text to some clipboard.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// Timer is the subset of *time.Timer the control needs.
type Timer interface {
	Stop() bool
}

// AfterFunc schedules fn after d, like time.AfterFunc.
type AfterFunc func(d time.Duration, fn func()) Timer

// Option configures a CopyControl.
type Option func(*CopyControl)

// WithAfterFunc replaces the timer scheduler.
func WithAfterFunc(afterFunc AfterFunc) Option {
	return func(c *CopyControl) {
		if afterFunc != nil {
			c.afterFunc = afterFunc
		}
	}
}

// WithLogger sets the logger used for swallowed clipboard errors.
func WithLogger(logger *slog.Logger) Option {
	return func(c *CopyControl) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// CopyControl tracks the "copied" indicator of the install snippet.
type CopyControl struct {
	clipboard Clipboard
	afterFunc AfterFunc
	logger    *slog.Logger

	mu         sync.Mutex
	copied     bool
	closed     bool
	generation uint64
	pending    Timer
}

// NewCopyControl returns a control writing to cb.
func NewCopyControl(cb Clipboard, opts ...Option) *CopyControl {
	c := &CopyControl{
		clipboard: cb,
		afterFunc: func(d time.Duration, fn func()) Timer { return time.AfterFunc(d, fn) },
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Activate copies InstallCommand, turns the indicator on, and schedules it
// off after ResetDelay. A second activation replaces the pending reset.
// Clipboard failures are not surfaced.
func (c *CopyControl) Activate(ctx context.Context) {
	if c.clipboard != nil {
		if err := c.clipboard.WriteText(ctx, InstallCommand); err != nil {
			c.logger.DebugContext(ctx, "clipboard write failed", slog.Any("error", err))
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.copied = true
	if c.pending != nil {
		c.pending.Stop()
	}
	c.generation++
	generation := c.generation
	c.pending = c.afterFunc(ResetDelay, func() { c.reset(generation) })
}

func (c *CopyControl) reset(generation uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || generation != c.generation {
		return
	}
	c.copied = false
	c.pending = nil
}

// Copied reports the indicator state.
func (c *CopyControl) Copied() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.copied
}

// Close cancels any pending reset. A reset that already started becomes a
// no-op.
func (c *CopyControl) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
}
