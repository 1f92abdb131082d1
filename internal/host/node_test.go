package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNode_Attributes(t *testing.T) {
	n := NewNode("div")

	n.SetAttribute("data-layout", "audio")
	v, ok := n.Attr("data-layout")
	require.True(t, ok)
	assert.Equal(t, "audio", v)

	n.RemoveAttribute("data-layout")
	n.RemoveAttribute("data-layout")
	assert.False(t, n.HasAttr("data-layout"))
}

func TestNode_ToggleAttribute(t *testing.T) {
	n := NewNode("div")

	n.ToggleAttribute("data-size", "sm", true)
	v, _ := n.Attr("data-size")
	assert.Equal(t, "sm", v)

	n.ToggleAttribute("data-size", "sm", false)
	assert.False(t, n.HasAttr("data-size"))
}

func TestNode_Classes(t *testing.T) {
	n := NewNode("div")
	n.AddClass("a")
	n.AddClass("b")
	n.AddClass("a")

	assert.Equal(t, []string{"a", "b"}, n.Classes())

	n.RemoveClass("a")
	assert.False(t, n.HasClass("a"))
	assert.True(t, n.HasClass("b"))
}

func TestNode_AppendAndRemove(t *testing.T) {
	doc := NewDocument()
	child := NewNode("div")
	child.AddClass("menu")

	doc.Body.Append(child)
	require.True(t, child.Attached())
	assert.Equal(t, doc.Body, child.Parent())
	assert.Len(t, doc.Root.FindByClass("menu"), 1)

	child.Remove()
	child.Remove()
	assert.False(t, child.Attached())
	assert.Empty(t, doc.Body.Children())
	assert.Empty(t, doc.Root.FindByClass("menu"))
}

func TestNode_AppendReparents(t *testing.T) {
	a := NewNode("a")
	b := NewNode("b")
	c := NewNode("c")

	a.Append(c)
	b.Append(c)

	assert.Empty(t, a.Children())
	assert.Equal(t, []*Node{c}, b.Children())
}
