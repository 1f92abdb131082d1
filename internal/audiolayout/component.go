// Package audiolayout implements the audio layout component: it picks the
// layout variant for the current player state and owns the menu container,
// the icon strategy and the player's layout marker across setup, connect,
// disconnect and dispose.
package audiolayout

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/llehouerou/audiolayout/internal/host"
	"github.com/llehouerou/audiolayout/internal/icons"
	"github.com/llehouerou/audiolayout/internal/media"
	"github.com/llehouerou/audiolayout/internal/reactive"
	"github.com/llehouerou/audiolayout/internal/ui/audiobar"
	"github.com/llehouerou/audiolayout/internal/ui/layout"
	"github.com/llehouerou/audiolayout/internal/ui/menu"
)

const (
	// ClassToken namespaces the component root and its menu container.
	ClassToken = "audio-layout"

	// LayoutAttr is set on the player node while the component is connected.
	LayoutAttr  = "data-layout"
	LayoutAudio = "audio"

	// TagName is the element name of the component root.
	TagName = "media-audio-layout"
)

var (
	ErrAlreadySetUp = errors.New("audio layout already set up")
	ErrNotSetUp     = errors.New("audio layout not set up")
	ErrDisposed     = errors.New("audio layout disposed")
)

// Options configures a Component.
type Options struct {
	// Root is the component's host node. A new node is created when nil.
	Root *host.Node
	// Portal receives the menu container, usually the document body.
	Portal *host.Node

	IconStyle   icons.Style
	CustomIcons bool
	IconSlots   map[string]string
	// IconFactory overrides how icon strategies are built.
	IconFactory func(slots *icons.Slots) icons.Factory

	Breakpoints layout.Breakpoints
	Logger      *zap.Logger
}

// Component is the audio layout. It is driven from a single goroutine.
type Component struct {
	opts   Options
	root   *host.Node
	logger *zap.Logger
	phase  Phase

	forwardKeepAlive bool

	media    *media.Context
	menu     *menu.Container
	slots    *icons.Slots
	selector *icons.Selector

	customIcons *reactive.Signal[bool]
	isMatch     *reactive.Computed[bool]
	isSmall     *reactive.Computed[bool]
	iconErr     error

	// switched records the custom flag of the last switch attempt while
	// connected, so the effect does not repeat a switch already made.
	switched       bool
	switchedCustom bool

	setupScope   reactive.Scope
	connectScope reactive.Scope
}

// New creates an uninitialized component.
func New(opts Options) *Component {
	root := opts.Root
	if root == nil {
		root = host.NewNode(TagName)
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.IconStyle == "" {
		opts.IconStyle = icons.StyleNone
	}
	return &Component{
		opts:             opts,
		root:             root,
		logger:           logger.Named("audio-layout"),
		forwardKeepAlive: true,
	}
}

// Setup resolves the player context from ctx and acquires the menu
// container. It must be called exactly once, before Connect. On error
// nothing has been acquired.
func (c *Component) Setup(ctx context.Context) error {
	switch c.phase {
	case Uninitialized:
	case Disposed:
		return ErrDisposed
	default:
		return ErrAlreadySetUp
	}

	m, err := media.FromContext(ctx)
	if err != nil {
		c.logger.Error("setup failed", zap.Error(err))
		return fmt.Errorf("set up audio layout: %w", err)
	}
	container, err := menu.New(c.opts.Portal, ClassToken)
	if err != nil {
		c.logger.Error("setup failed", zap.Error(err))
		return fmt.Errorf("set up audio layout: %w", err)
	}

	// Re-rendering must always reflect current state, never a retained subtree.
	c.forwardKeepAlive = false

	c.media = m
	c.root.AddClass(ClassToken)
	c.menu = container

	bp := c.opts.Breakpoints
	c.customIcons = reactive.NewSignal(m.Sched, c.opts.CustomIcons)
	c.isMatch = reactive.NewComputed(func() bool { return bp.Matches(m.ViewType.Get()) }, m.ViewType)
	c.isSmall = reactive.NewComputed(func() bool { return bp.IsSmall(m.Width.Get()) }, m.Width)
	c.setupScope.Defer(c.isMatch.Close)
	c.setupScope.Defer(c.isSmall.Close)

	c.setupScope.Defer(reactive.Effect(m.Sched, func() {
		c.menu.SyncSize(c.isSmall.Get())
	}, c.isSmall))
	c.setupScope.Defer(c.menu.Remove)

	c.slots = icons.NewSlots()
	factory := icons.DefaultFactory(c.slots, c.opts.IconStyle, c.opts.IconSlots)
	if c.opts.IconFactory != nil {
		factory = c.opts.IconFactory(c.slots)
	}
	c.selector = icons.NewSelector(factory, c.logger)

	c.phase = SetUp
	c.logger.Debug("set up", zap.Strings("classes", c.root.Classes()))
	return nil
}

// Connect marks the player as using the audio layout and starts following
// the custom icons flag. Connecting while connected is a no-op. If the first
// icon strategy fails to connect, everything acquired by Connect is released
// and the error is returned.
func (c *Component) Connect() error {
	switch c.phase {
	case Uninitialized:
		return ErrNotSetUp
	case Disposed:
		return ErrDisposed
	case Connected:
		return nil
	case SetUp, Disconnected:
	}

	if p := c.media.Player; p != nil {
		p.SetAttribute(LayoutAttr, LayoutAudio)
		c.connectScope.Defer(func() { p.RemoveAttribute(LayoutAttr) })
	}

	c.iconErr = nil
	c.switched = false
	c.connectScope.Defer(reactive.Effect(c.media.Sched, func() {
		custom := c.customIcons.Get()
		if c.switched && c.switchedCustom == custom {
			return
		}
		c.iconErr = c.switchIcons(custom)
	}, c.customIcons))
	// Registered last so the active strategy disconnects before the
	// subscription and the marker go away.
	c.connectScope.Defer(c.selector.Release)

	if err := c.iconErr; err != nil {
		c.iconErr = nil
		c.logger.Warn("connect failed", zap.Error(err))
		return multierr.Append(fmt.Errorf("connect audio layout: %w", err), c.connectScope.Close())
	}

	c.phase = Connected
	c.logger.Debug("connected", zap.Bool("custom_icons", c.customIcons.Get()))
	return nil
}

// Disconnect releases everything acquired by Connect, in reverse order.
// Calling it while not connected is a no-op.
func (c *Component) Disconnect() error {
	switch c.phase {
	case Uninitialized:
		return ErrNotSetUp
	case Connected:
	case SetUp, Disconnected, Disposed:
		return nil
	}

	err := c.connectScope.Close()
	c.phase = Disconnected
	if err != nil {
		c.logger.Warn("disconnect teardown failed", zap.Error(err))
	}
	c.logger.Debug("disconnected")
	return err
}

// Dispose disconnects if needed and releases everything acquired by Setup.
// It is idempotent.
func (c *Component) Dispose() error {
	if c.phase == Disposed {
		return nil
	}

	err := multierr.Append(c.connectScope.Close(), c.setupScope.Close())
	c.phase = Disposed
	if err != nil {
		c.logger.Warn("dispose teardown failed", zap.Error(err))
	}
	c.logger.Debug("disposed")
	return err
}

// SetCustomIcons switches between user-supplied and generated icons. While
// connected the active strategy is swapped immediately and a connect failure
// is returned.
func (c *Component) SetCustomIcons(custom bool) error {
	if c.customIcons == nil {
		c.opts.CustomIcons = custom
		return nil
	}
	if c.phase != Connected || c.customIcons.Get() == custom {
		c.customIcons.Set(custom)
		return nil
	}
	err := c.switchIcons(custom)
	c.customIcons.Set(custom)
	return err
}

// switchIcons swaps the icon strategy synchronously, independent of when the
// scheduler flushes the custom-icons effect.
func (c *Component) switchIcons(custom bool) error {
	c.switched = true
	c.switchedCustom = custom
	return c.selector.Switch(custom)
}

// CustomIcons reports whether user-supplied icons are requested.
func (c *Component) CustomIcons() bool {
	if c.customIcons == nil {
		return c.opts.CustomIcons
	}
	return c.customIcons.Get()
}

// Snapshot returns the selector inputs for the current player state.
func (c *Component) Snapshot() layout.Snapshot {
	if c.media == nil || c.phase == Disposed {
		return layout.Snapshot{}
	}
	return layout.Snapshot{
		MatchesBreakpointSet: c.isMatch.Get(),
		LoadMode:             c.media.Load.Get(),
		CanLoad:              c.media.CanLoad.Get(),
		StreamType:           c.media.StreamType.Get(),
		IsSmallLayout:        c.isSmall.Get(),
	}
}

// Variant returns the layout variant for the current player state.
func (c *Component) Variant() layout.Variant {
	return layout.Select(c.Snapshot())
}

// Render returns the current variant's view. It renders nothing unless the
// component is connected.
func (c *Component) Render(width int) string {
	if c.phase != Connected {
		return ""
	}
	return audiobar.Render(c.Variant(), audiobar.NewState(c.media.Snapshot()), c.slots, width)
}

// Phase returns the lifecycle phase.
func (c *Component) Phase() Phase { return c.phase }

// Root returns the component's host node.
func (c *Component) Root() *host.Node { return c.root }

// Menu returns the menu container, or nil before setup.
func (c *Component) Menu() *menu.Container { return c.menu }

// Slots returns the icon slots, or nil before setup.
func (c *Component) Slots() *icons.Slots { return c.slots }

// Icons returns the icon selector, or nil before setup.
func (c *Component) Icons() *icons.Selector { return c.selector }

// ForwardsKeepAlive reports whether the component lets its subtree be
// retained across re-renders. It is turned off by Setup.
func (c *Component) ForwardsKeepAlive() bool { return c.forwardKeepAlive }
