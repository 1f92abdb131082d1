// Package media holds the player state that layouts observe.
package media

import (
	"context"
	"errors"
	"time"

	"github.com/llehouerou/audiolayout/internal/host"
	"github.com/llehouerou/audiolayout/internal/reactive"
)

// ErrNoMediaContext is returned when a layout is set up outside a player.
var ErrNoMediaContext = errors.New("media context not found: layout must be inside a player")

// Context is the read side of a player: its host node and state signals.
// The player owns and mutates the signals; layouts only observe them.
type Context struct {
	Sched  *reactive.Scheduler
	Player *host.Node

	Load       *reactive.Signal[LoadMode]
	CanLoad    *reactive.Signal[bool]
	StreamType *reactive.Signal[StreamType]
	ViewType   *reactive.Signal[ViewType]

	Width  *reactive.Signal[int]
	Height *reactive.Signal[int]

	Title       *reactive.Signal[string]
	Artist      *reactive.Signal[string]
	Paused      *reactive.Signal[bool]
	CurrentTime *reactive.Signal[time.Duration]
	Duration    *reactive.Signal[time.Duration]
}

// Options configures the initial player state.
type Options struct {
	Load     LoadMode
	ViewType ViewType
}

// NewContext creates a player context rooted at player.
// CanLoad starts true unless the load mode defers loading to a play request
// or to the host.
func NewContext(player *host.Node, opts Options) *Context {
	if opts.Load == "" {
		opts.Load = LoadVisible
	}
	if opts.ViewType == "" {
		opts.ViewType = ViewUnknown
	}
	s := reactive.NewScheduler()
	return &Context{
		Sched:       s,
		Player:      player,
		Load:        reactive.NewSignal(s, opts.Load),
		CanLoad:     reactive.NewSignal(s, opts.Load != LoadPlay && opts.Load != LoadCustom),
		StreamType:  reactive.NewSignal(s, StreamUnknown),
		ViewType:    reactive.NewSignal(s, opts.ViewType),
		Width:       reactive.NewSignal(s, 0),
		Height:      reactive.NewSignal(s, 0),
		Title:       reactive.NewSignal(s, ""),
		Artist:      reactive.NewSignal(s, ""),
		Paused:      reactive.NewSignal(s, true),
		CurrentTime: reactive.NewSignal(s, time.Duration(0)),
		Duration:    reactive.NewSignal(s, time.Duration(0)),
	}
}

// StartLoading marks the player as allowed to load, as a play request does
// when the load mode is play.
func (c *Context) StartLoading() {
	c.CanLoad.Set(true)
}

// SetLoadMode switches the load mode. Switching to a deferred mode resets
// CanLoad so the player waits for the next play request.
func (c *Context) SetLoadMode(m LoadMode) {
	c.Sched.Batch(func() {
		c.Load.Set(m)
		if m == LoadPlay || m == LoadCustom {
			c.CanLoad.Set(false)
			c.StreamType.Set(StreamUnknown)
		} else {
			c.CanLoad.Set(true)
		}
	})
}

// Resize updates the view dimensions in one flush.
func (c *Context) Resize(width, height int) {
	c.Sched.Batch(func() {
		c.Width.Set(width)
		c.Height.Set(height)
	})
}

// Snapshot is a copy of the player state at one instant.
type Snapshot struct {
	Load        LoadMode
	CanLoad     bool
	StreamType  StreamType
	ViewType    ViewType
	Width       int
	Height      int
	Title       string
	Artist      string
	Paused      bool
	CurrentTime time.Duration
	Duration    time.Duration
}

// Snapshot copies the current state.
func (c *Context) Snapshot() Snapshot {
	return Snapshot{
		Load:        c.Load.Get(),
		CanLoad:     c.CanLoad.Get(),
		StreamType:  c.StreamType.Get(),
		ViewType:    c.ViewType.Get(),
		Width:       c.Width.Get(),
		Height:      c.Height.Get(),
		Title:       c.Title.Get(),
		Artist:      c.Artist.Get(),
		Paused:      c.Paused.Get(),
		CurrentTime: c.CurrentTime.Get(),
		Duration:    c.Duration.Get(),
	}
}

type contextKey struct{}

// WithContext returns a copy of ctx carrying m.
func WithContext(ctx context.Context, m *Context) context.Context {
	return context.WithValue(ctx, contextKey{}, m)
}

// FromContext returns the player context stored in ctx.
func FromContext(ctx context.Context) (*Context, error) {
	m, ok := ctx.Value(contextKey{}).(*Context)
	if !ok || m == nil {
		return nil, ErrNoMediaContext
	}
	return m, nil
}
