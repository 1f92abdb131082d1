package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/llehouerou/audiolayout/internal/audiolayout"
	"github.com/llehouerou/audiolayout/internal/config"
	"github.com/llehouerou/audiolayout/internal/host"
	"github.com/llehouerou/audiolayout/internal/icons"
	"github.com/llehouerou/audiolayout/internal/ui/menu"
)

func testConfig() *config.Config {
	return &config.Config{
		Icons:    "none",
		Load:     "eager",
		ViewType: "audio",
		Demo:     config.DemoConfig{Title: "Song", Artist: "Artist", DurationSeconds: 60},
	}
}

func TestStartLayout(t *testing.T) {
	cfg := testConfig()
	doc := host.NewDocument()
	m := newMedia(cfg, doc)
	comp := newComponent(cfg, doc, m, zaptest.NewLogger(t))

	require.NoError(t, startLayout(context.Background(), comp, m))
	t.Cleanup(func() { _ = comp.Dispose() })

	assert.Equal(t, audiolayout.Connected, comp.Phase())
	assert.Len(t, doc.Root.FindByClass(menu.Class), 1)
	assert.Equal(t, "Song", m.Title.Get())
}

func TestStartLayout_ConnectFailureDisposes(t *testing.T) {
	cfg := testConfig()
	cfg.CustomIcons = true
	cfg.IconSlots = map[string]string{"fullscreen": "F"}
	doc := host.NewDocument()
	m := newMedia(cfg, doc)
	comp := newComponent(cfg, doc, m, zaptest.NewLogger(t))

	err := startLayout(context.Background(), comp, m)

	require.ErrorIs(t, err, icons.ErrUnknownSlot)
	assert.Equal(t, audiolayout.Disposed, comp.Phase())
	assert.Empty(t, doc.Root.FindByClass(menu.Class), "menu container released")
	_, marked := m.Player.Attr(audiolayout.LayoutAttr)
	assert.False(t, marked)
}
