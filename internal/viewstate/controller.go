// Package viewstate owns the transient UI flags of the landing page: whether
// the page has been scrolled past the navbar threshold and whether the mobile
// menu is open. Views read snapshots and never mutate the flags directly.
package viewstate

import (
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/gideora/website/internal/logger"
)

// ScrollThreshold is the vertical offset, in px, past which the page counts
// as scrolled. The boundary is exclusive.
const ScrollThreshold = 50

var (
	ErrNilSource         = errors.New("viewstate: nil scroll source")
	ErrAlreadySubscribed = errors.New("viewstate: controller already subscribed to a scroll source")
)

// Controller is the single owner of ScrollFlag and MenuOpenFlag.
type Controller struct {
	mu    sync.Mutex
	state State
	sub   *Subscription

	views    map[int]func(State)
	nextView int

	log *slog.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for transition tracing.
func WithLogger(log *slog.Logger) Option {
	return func(c *Controller) {
		if log != nil {
			c.log = log
		}
	}
}

// NewController returns a controller in its initial state: not scrolled,
// menu closed.
func NewController(opts ...Option) *Controller {
	c := &Controller{
		views: make(map[int]func(State)),
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With(logger.Scope("viewstate"))
	return c
}

// State returns the current snapshot.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// OnScrollSignal recomputes ScrollFlag from the current vertical offset.
// Signals are handled as delivered, without throttling.
func (c *Controller) OnScrollSignal(offset float64) {
	c.update(func(s *State) {
		s.Scrolled = offset > ScrollThreshold
	})
}

// ToggleMenu flips MenuOpenFlag.
func (c *Controller) ToggleMenu() {
	c.update(func(s *State) {
		s.MenuOpen = !s.MenuOpen
	})
}

// Watch registers a dependent view. fn receives every new snapshot after a
// flag changes. The returned stop func deregisters it.
func (c *Controller) Watch(fn func(State)) (stop func()) {
	c.mu.Lock()
	id := c.nextView
	c.nextView++
	c.views[id] = fn
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.views, id)
			c.mu.Unlock()
		})
	}
}

// Subscribe attaches the controller's scroll callback to src. The returned
// Subscription must be released with Unsubscribe when the view is torn down.
func (c *Controller) Subscribe(src ScrollSource) (*Subscription, error) {
	if src == nil {
		return nil, ErrNilSource
	}

	c.mu.Lock()
	if c.sub != nil {
		c.mu.Unlock()
		return nil, ErrAlreadySubscribed
	}
	sub := &Subscription{owner: c}
	sub.active.Store(true)
	c.sub = sub
	c.mu.Unlock()

	sub.remove = src.AddScrollListener(func(offset float64) {
		if !sub.active.Load() {
			return
		}
		c.OnScrollSignal(offset)
	})

	c.log.Debug("scroll listener attached")
	return sub, nil
}

func (c *Controller) update(mutate func(*State)) {
	c.mu.Lock()
	prev := c.state
	mutate(&c.state)
	next := c.state
	if next == prev {
		c.mu.Unlock()
		return
	}
	views := make([]func(State), 0, len(c.views))
	for _, fn := range c.views {
		views = append(views, fn)
	}
	c.mu.Unlock()

	c.log.Debug("view state changed",
		slog.Bool("scrolled", next.Scrolled),
		slog.Bool("menu_open", next.MenuOpen),
	)
	for _, fn := range views {
		fn(next)
	}
}

func (c *Controller) release(sub *Subscription) {
	c.mu.Lock()
	if c.sub == sub {
		c.sub = nil
	}
	c.mu.Unlock()
	c.log.Debug("scroll listener released")
}

// Subscription is the controller's hold on a scroll source.
type Subscription struct {
	owner  *Controller
	remove func()
	active atomic.Bool
	once   sync.Once
}

// Unsubscribe detaches the scroll callback. Safe to call more than once and
// from deferred teardown paths.
func (s *Subscription) Unsubscribe() {
	if s == nil {
		return
	}
	s.once.Do(func() {
		s.active.Store(false)
		if s.remove != nil {
			s.remove()
		}
		s.owner.release(s)
	})
}

// Active reports whether the callback is still attached.
func (s *Subscription) Active() bool {
	return s != nil && s.active.Load()
}
