// Package menu manages the floating container that layout menus render into.
package menu

import (
	"errors"

	"github.com/llehouerou/audiolayout/internal/host"
)

// Class is carried by every menu container.
const Class = "menu-container"

// SizeAttr is set to SizeSmall while the owning layout is small.
const (
	SizeAttr  = "data-size"
	SizeSmall = "sm"
)

// ErrNoPortal is returned when a container is created without a portal node.
var ErrNoPortal = errors.New("menu container needs a portal node")

// Container is a floating node appended to the document portal, namespaced
// by the owning layout's class token.
type Container struct {
	node    *host.Node
	removed bool
}

// New creates a container carrying Class and token and appends it to portal.
func New(portal *host.Node, token string) (*Container, error) {
	if portal == nil {
		return nil, ErrNoPortal
	}
	n := host.NewNode("div")
	n.AddClass(Class)
	if token != "" {
		n.AddClass(token)
	}
	portal.Append(n)
	return &Container{node: n}, nil
}

// Node returns the container's host node.
func (c *Container) Node() *host.Node {
	return c.node
}

// SyncSize sets data-size="sm" when small and removes it otherwise.
func (c *Container) SyncSize(small bool) {
	if c.removed {
		return
	}
	c.node.ToggleAttribute(SizeAttr, SizeSmall, small)
}

// Remove detaches the container. Removing twice is a no-op.
func (c *Container) Remove() {
	if c.removed {
		return
	}
	c.removed = true
	c.node.Remove()
}

// Removed reports whether Remove has been called.
func (c *Container) Removed() bool {
	return c.removed
}
