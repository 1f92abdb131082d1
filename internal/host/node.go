// Package host provides the element tree that layout components attach to.
//
// Nodes carry attributes and a class list the renderer and sibling components
// key off, e.g. the player node's data-layout attribute.
package host

import "slices"

// Node is an element in the host tree.
type Node struct {
	tag      string
	attrs    map[string]string
	classes  []string
	parent   *Node
	children []*Node
}

// NewNode creates a detached node.
func NewNode(tag string) *Node {
	return &Node{tag: tag, attrs: make(map[string]string)}
}

// Tag returns the element name.
func (n *Node) Tag() string {
	return n.tag
}

// SetAttribute sets name to value.
func (n *Node) SetAttribute(name, value string) {
	n.attrs[name] = value
}

// RemoveAttribute deletes name. Removing an absent attribute is a no-op.
func (n *Node) RemoveAttribute(name string) {
	delete(n.attrs, name)
}

// ToggleAttribute sets name to value when on is true and removes it otherwise.
func (n *Node) ToggleAttribute(name, value string, on bool) {
	if on {
		n.SetAttribute(name, value)
		return
	}
	n.RemoveAttribute(name)
}

// Attr returns the value of name and whether it is present.
func (n *Node) Attr(name string) (string, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

// HasAttr reports whether name is present.
func (n *Node) HasAttr(name string) bool {
	_, ok := n.attrs[name]
	return ok
}

// AddClass appends class to the class list unless already present.
func (n *Node) AddClass(class string) {
	if !n.HasClass(class) {
		n.classes = append(n.classes, class)
	}
}

// RemoveClass drops class from the class list.
func (n *Node) RemoveClass(class string) {
	n.classes = slices.DeleteFunc(n.classes, func(c string) bool { return c == class })
}

// HasClass reports whether class is in the class list.
func (n *Node) HasClass(class string) bool {
	return slices.Contains(n.classes, class)
}

// Classes returns a copy of the class list.
func (n *Node) Classes() []string {
	return slices.Clone(n.classes)
}

// Append attaches child as the last child of n, detaching it from any
// previous parent first.
func (n *Node) Append(child *Node) {
	child.Remove()
	child.parent = n
	n.children = append(n.children, child)
}

// Remove detaches n from its parent. Removing a detached node is a no-op.
func (n *Node) Remove() {
	if n.parent == nil {
		return
	}
	p := n.parent
	p.children = slices.DeleteFunc(p.children, func(c *Node) bool { return c == n })
	n.parent = nil
}

// Parent returns the parent node, or nil when detached.
func (n *Node) Parent() *Node {
	return n.parent
}

// Attached reports whether n has a parent.
func (n *Node) Attached() bool {
	return n.parent != nil
}

// Children returns a copy of the child list.
func (n *Node) Children() []*Node {
	return slices.Clone(n.children)
}

// FindByClass returns every descendant of n carrying class, in document order.
func (n *Node) FindByClass(class string) []*Node {
	var found []*Node
	for _, c := range n.children {
		if c.HasClass(class) {
			found = append(found, c)
		}
		found = append(found, c.FindByClass(class)...)
	}
	return found
}

// Document is the root of a host tree.
type Document struct {
	Root *Node
	Body *Node
}

// NewDocument creates a tree with an html root and a body child, the portal
// floating containers are appended to.
func NewDocument() *Document {
	root := NewNode("html")
	body := NewNode("body")
	root.Append(body)
	return &Document{Root: root, Body: body}
}
