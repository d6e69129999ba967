package viewstate

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewController_Defaults(t *testing.T) {
	c := NewController()

	assert.Equal(t, State{}, c.State())
	assert.Equal(t, NavbarTop, c.State().NavbarVariant())
	assert.False(t, c.State().FABVisible())
}

func TestOnScrollSignal_Threshold(t *testing.T) {
	tests := []struct {
		name   string
		offset float64
		want   bool
	}{
		{"top of page", 0, false},
		{"just below threshold", 49.9, false},
		{"at threshold", 50, false},
		{"just past threshold", 50.5, true},
		{"one past threshold", 51, true},
		{"far down", 4000, true},
		{"negative overscroll", -12, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController()
			c.OnScrollSignal(tt.offset)
			assert.Equal(t, tt.want, c.State().Scrolled)
		})
	}
}

func TestOnScrollSignal_Sequence(t *testing.T) {
	c := NewController()

	c.OnScrollSignal(0)
	assert.False(t, c.State().Scrolled)

	c.OnScrollSignal(51)
	assert.True(t, c.State().Scrolled)
	assert.Equal(t, NavbarScrolled, c.State().NavbarVariant())
	assert.True(t, c.State().FABVisible())

	c.OnScrollSignal(50)
	assert.False(t, c.State().Scrolled)
	assert.Equal(t, NavbarTop, c.State().NavbarVariant())
}

func TestOnScrollSignal_Idempotent(t *testing.T) {
	c := NewController()

	var notified int
	stop := c.Watch(func(State) { notified++ })
	defer stop()

	for i := 0; i < 5; i++ {
		c.OnScrollSignal(120)
		assert.True(t, c.State().Scrolled)
	}
	assert.Equal(t, 1, notified, "only the first signal changes state")
}

func TestToggleMenu_Involution(t *testing.T) {
	c := NewController()
	require.False(t, c.State().MenuOpen)

	c.ToggleMenu()
	assert.True(t, c.State().MenuOpen)
	assert.Equal(t, "x", c.State().MenuIcon())

	c.ToggleMenu()
	assert.False(t, c.State().MenuOpen)
	assert.Equal(t, "menu", c.State().MenuIcon())
}

func TestFlagsAreIndependent(t *testing.T) {
	c := NewController()

	c.ToggleMenu()
	c.OnScrollSignal(300)
	assert.Equal(t, State{Scrolled: true, MenuOpen: true}, c.State())

	c.OnScrollSignal(10)
	assert.True(t, c.State().MenuOpen, "scrolling back up does not close the menu")

	c.ToggleMenu()
	assert.Equal(t, State{}, c.State())
}

func TestWatch_ReceivesSnapshots(t *testing.T) {
	c := NewController()

	var got []State
	stop := c.Watch(func(s State) { got = append(got, s) })

	c.OnScrollSignal(80)
	c.ToggleMenu()
	c.OnScrollSignal(20)

	stop()
	stop()
	c.ToggleMenu()

	assert.Equal(t, []State{
		{Scrolled: true},
		{Scrolled: true, MenuOpen: true},
		{MenuOpen: true},
	}, got)
}

func TestSubscribe_DrivesScrollFlag(t *testing.T) {
	c := NewController()
	w := NewWindow()

	sub, err := c.Subscribe(w)
	require.NoError(t, err)
	defer sub.Unsubscribe()

	assert.True(t, sub.Active())
	assert.Equal(t, 1, w.Listeners())

	w.ScrollTo(75)
	assert.True(t, c.State().Scrolled)

	w.ScrollTo(50)
	assert.False(t, c.State().Scrolled)
}

func TestSubscribe_Errors(t *testing.T) {
	c := NewController()

	_, err := c.Subscribe(nil)
	assert.ErrorIs(t, err, ErrNilSource)

	sub, err := c.Subscribe(NewWindow())
	require.NoError(t, err)

	_, err = c.Subscribe(NewWindow())
	assert.ErrorIs(t, err, ErrAlreadySubscribed)

	sub.Unsubscribe()

	again, err := c.Subscribe(NewWindow())
	require.NoError(t, err, "a released controller can subscribe again")
	again.Unsubscribe()
}

func TestUnsubscribe_DetachesListener(t *testing.T) {
	c := NewController()
	w := NewWindow()

	sub, err := c.Subscribe(w)
	require.NoError(t, err)

	w.ScrollTo(10)
	sub.Unsubscribe()

	assert.False(t, sub.Active())
	assert.Equal(t, 0, w.Listeners())

	w.ScrollTo(900)
	assert.False(t, c.State().Scrolled, "signals after teardown must not mutate state")

	sub.Unsubscribe()
}

// staleSource keeps its callbacks after removal, the way a host that
// delivers an already-queued event would.
type staleSource struct {
	fns []func(float64)
}

func (s *staleSource) AddScrollListener(fn func(float64)) func() {
	s.fns = append(s.fns, fn)
	return func() {}
}

func (s *staleSource) fire(offset float64) {
	for _, fn := range s.fns {
		fn(offset)
	}
}

func TestUnsubscribe_IgnoresStaleCallbacks(t *testing.T) {
	c := NewController()
	src := &staleSource{}

	sub, err := c.Subscribe(src)
	require.NoError(t, err)

	src.fire(200)
	require.True(t, c.State().Scrolled)

	sub.Unsubscribe()
	src.fire(0)
	assert.True(t, c.State().Scrolled)
}

func TestNilSubscription(t *testing.T) {
	var sub *Subscription
	assert.NotPanics(t, sub.Unsubscribe)
	assert.False(t, sub.Active())
}

func TestController_ConcurrentSignals(t *testing.T) {
	c := NewController()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c.OnScrollSignal(float64(i * 10))
			c.ToggleMenu()
		}(i)
	}
	wg.Wait()

	c.OnScrollSignal(0)
	assert.False(t, c.State().Scrolled)
	assert.False(t, c.State().MenuOpen, "an even number of toggles leaves the menu closed")
}
