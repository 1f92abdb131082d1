package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/audiolayout/internal/host"
)

func TestNew(t *testing.T) {
	doc := host.NewDocument()

	c, err := New(doc.Body, "audio-layout")
	require.NoError(t, err)

	assert.Equal(t, []string{Class, "audio-layout"}, c.Node().Classes())
	assert.Equal(t, doc.Body, c.Node().Parent())
	assert.Len(t, doc.Root.FindByClass(Class), 1)
}

func TestNew_NoPortal(t *testing.T) {
	_, err := New(nil, "audio-layout")
	require.ErrorIs(t, err, ErrNoPortal)
}

func TestSyncSize(t *testing.T) {
	c, err := New(host.NewNode("body"), "")
	require.NoError(t, err)

	c.SyncSize(true)
	v, ok := c.Node().Attr(SizeAttr)
	require.True(t, ok)
	assert.Equal(t, SizeSmall, v)

	c.SyncSize(false)
	assert.False(t, c.Node().HasAttr(SizeAttr))
}

func TestRemove_Idempotent(t *testing.T) {
	doc := host.NewDocument()
	c, err := New(doc.Body, "audio-layout")
	require.NoError(t, err)

	c.Remove()
	c.Remove()

	assert.True(t, c.Removed())
	assert.Empty(t, doc.Body.Children())

	c.SyncSize(true)
	assert.False(t, c.Node().HasAttr(SizeAttr), "removed container is not synced")
}
