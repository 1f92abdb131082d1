package audiobar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/audiolayout/internal/icons"
	"github.com/llehouerou/audiolayout/internal/media"
	"github.com/llehouerou/audiolayout/internal/ui/layout"
	"github.com/llehouerou/audiolayout/internal/ui/testutil"
)

func noneGlyphs(t *testing.T) *icons.Slots {
	t.Helper()
	slots := icons.NewSlots()
	require.NoError(t, icons.NewLoaderStrategy(slots, icons.StyleNone).Connect())
	return slots
}

func sampleState() State {
	return State{
		Paused:   false,
		Title:    "Song",
		Artist:   "Band",
		Position: 83 * time.Second,
		Duration: 238 * time.Second,
	}
}

func TestRender_NoneIsEmpty(t *testing.T) {
	assert.Empty(t, Render(layout.None, sampleState(), noneGlyphs(t), 80))
}

func TestRender_HeightsMatchLayout(t *testing.T) {
	g := noneGlyphs(t)
	for _, v := range []layout.Variant{layout.LoadingPlaceholder, layout.SmallLayout, layout.LargeLayout} {
		t.Run(v.String(), func(t *testing.T) {
			out := Render(v, sampleState(), g, 80)
			assert.Len(t, testutil.SplitLines(out), layout.Height(v))
			assert.Equal(t, 80, testutil.MaxLineWidth(out))
		})
	}
}

func TestRenderLoading(t *testing.T) {
	out := RenderLoading(noneGlyphs(t), 40)
	assert.True(t, testutil.ContainsLine(out, "[>] Play to load"))
}

func TestRenderSmall(t *testing.T) {
	out := RenderSmall(sampleState(), noneGlyphs(t), 80)

	line := testutil.FindLine(out, "Song · Band")
	require.NotEmpty(t, line)
	assert.Contains(t, line, "[||]", "playing shows the pause control")
	assert.Contains(t, line, "1:23 / 3:58")
}

func TestRenderSmall_PausedShowsPlay(t *testing.T) {
	s := sampleState()
	s.Paused = true
	out := RenderSmall(s, noneGlyphs(t), 80)
	assert.True(t, testutil.ContainsLine(out, "[>]"))
}

func TestRenderSmall_NarrowTruncatesInfo(t *testing.T) {
	s := sampleState()
	s.Title = "A very long title that cannot possibly fit"
	out := RenderSmall(s, noneGlyphs(t), 40)

	assert.Equal(t, 40, testutil.MaxLineWidth(out))
	assert.Len(t, testutil.SplitLines(out), 3)
}

func TestRenderLarge(t *testing.T) {
	out := RenderLarge(sampleState(), noneGlyphs(t), 60)

	assert.True(t, testutil.ContainsLine(out, "Song"))
	assert.True(t, testutil.ContainsLine(out, "Band"))
	assert.True(t, testutil.ContainsLine(out, "<<  [||]  >>"))
	assert.True(t, testutil.ContainsLine(out, "1:23 / 3:58"))
}

func TestRenderLarge_UnknownMetadata(t *testing.T) {
	out := RenderLarge(State{Paused: true}, noneGlyphs(t), 60)
	assert.True(t, testutil.ContainsLine(out, "Unknown Track"))
	assert.True(t, testutil.ContainsLine(out, "Unknown Artist"))
}

func TestRenderLarge_Live(t *testing.T) {
	s := sampleState()
	s.Live = true
	out := RenderLarge(s, noneGlyphs(t), 60)
	assert.True(t, testutil.ContainsLine(out, "LIVE LIVE"))
	assert.False(t, testutil.ContainsLine(out, "3:58"))
}

func TestRender_CustomGlyphs(t *testing.T) {
	slots := icons.NewSlots()
	require.NoError(t, icons.NewSlotStrategy(slots, map[string]string{icons.SlotPause: "PAUSE"}).Connect())

	out := RenderSmall(sampleState(), slots, 80)
	assert.True(t, testutil.ContainsLine(out, "PAUSE"))
}

func TestNewState(t *testing.T) {
	s := NewState(media.Snapshot{
		Paused:      true,
		StreamType:  media.StreamLLLive,
		Title:       "T",
		Artist:      "A",
		CurrentTime: time.Second,
		Duration:    time.Minute,
	})
	assert.Equal(t, State{Paused: true, Live: true, Title: "T", Artist: "A", Position: time.Second, Duration: time.Minute}, s)
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{83 * time.Second, "1:23"},
		{time.Hour + 2*time.Minute + 3*time.Second, "1:02:03"},
		{-time.Second, "0:00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.d))
	}
}
