// Package audiobar renders the audio layout variants.
package audiobar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/audiolayout/internal/icons"
	"github.com/llehouerou/audiolayout/internal/media"
	"github.com/llehouerou/audiolayout/internal/ui/layout"
	"github.com/llehouerou/audiolayout/internal/ui/render"
	"github.com/llehouerou/audiolayout/internal/ui/styles"
)

// Glyphs resolves a control's glyph by slot name.
type Glyphs interface {
	Get(name string) string
}

// State holds everything needed to render a variant.
type State struct {
	Paused   bool
	Live     bool
	Title    string
	Artist   string
	Position time.Duration
	Duration time.Duration
}

// NewState builds a State from a player snapshot.
func NewState(s media.Snapshot) State {
	return State{
		Paused:   s.Paused,
		Live:     s.StreamType.IsLive(),
		Title:    s.Title,
		Artist:   s.Artist,
		Position: s.CurrentTime,
		Duration: s.Duration,
	}
}

// Render returns the variant's view for the given width.
// Returns an empty string for layout.None.
func Render(v layout.Variant, s State, g Glyphs, width int) string {
	switch v {
	case layout.LoadingPlaceholder:
		return RenderLoading(g, width)
	case layout.SmallLayout:
		return RenderSmall(s, g, width)
	case layout.LargeLayout:
		return RenderLarge(s, g, width)
	default:
		return ""
	}
}

// RenderLoading renders the placeholder shown until a play request starts
// loading: a single play button.
func RenderLoading(g Glyphs, width int) string {
	innerWidth := max(width-2, 0)
	t := styles.T()
	button := t.S().Control.Render(g.Get(icons.SlotPlay)) + " " + t.S().Warning.Render("Play to load")
	return styles.PanelStyle(false).Width(innerWidth).Render(render.Center(button, innerWidth))
}

// RenderSmall renders the single-line bar:
// ▶  Title · Artist  ━━━━───  1:23 / 3:58
func RenderSmall(s State, g Glyphs, width int) string {
	innerWidth := max(width-4, 0) // border + padding
	st := styles.T().S()

	status := st.Control.Render(playGlyph(s, g))
	right := timeLabel(s, g)
	fixed := lipgloss.Width(status) + 2 + lipgloss.Width(right) + 2

	info := trackInfo(s)
	available := innerWidth - fixed - minBarWidth - 2
	info = render.Truncate(info, max(available, 0))

	barWidth := max(innerWidth-fixed-lipgloss.Width(info)-2, 0)

	var b strings.Builder
	b.WriteString(status)
	b.WriteString("  ")
	if info != "" {
		b.WriteString(st.Title.Render(info))
		b.WriteString("  ")
	}
	b.WriteString(progress(s, barWidth))
	b.WriteString("  ")
	b.WriteString(right)

	line := render.TruncateStyled(b.String(), innerWidth)
	return styles.PanelStyle(!s.Paused).Padding(0, 1).Width(max(width-2, 0)).Render(line)
}

// RenderLarge renders the full panel: title, artist, transport controls and
// a progress row.
func RenderLarge(s State, g Glyphs, width int) string {
	innerWidth := max(width-4, 0)
	t := styles.T()
	st := t.S()

	title := s.Title
	if title == "" {
		title = "Unknown Track"
	}
	artist := s.Artist
	if artist == "" {
		artist = "Unknown Artist"
	}
	titleLine := styles.ApplyBoldGradient(render.Truncate(title, innerWidth), t.Primary, t.Secondary)
	artistLine := st.Muted.Render(render.Truncate(artist, innerWidth))

	controls := []string{
		g.Get(icons.SlotSeekBackward),
		playGlyph(s, g),
		g.Get(icons.SlotSeekForward),
	}
	left := st.Control.Render(strings.Join(controls, "  "))
	right := st.Subtle.Render(strings.Join([]string{
		g.Get(icons.SlotVolume),
		g.Get(icons.SlotChapters),
		g.Get(icons.SlotMenu),
	}, "  "))
	controlLine := render.TruncateStyled(render.Row(left, right, innerWidth), innerWidth)

	timeStr := timeLabel(s, g)
	barWidth := max(innerWidth-lipgloss.Width(timeStr)-2, 0)
	progressLine := progress(s, barWidth) + "  " + timeStr

	content := strings.Join([]string{titleLine, artistLine, controlLine, progressLine}, "\n")
	return styles.PanelStyle(!s.Paused).Padding(0, 1).Width(max(width-2, 0)).Render(content)
}

const minBarWidth = 5

func playGlyph(s State, g Glyphs) string {
	if s.Paused {
		return g.Get(icons.SlotPlay)
	}
	return g.Get(icons.SlotPause)
}

func trackInfo(s State) string {
	var parts []string
	if s.Title != "" {
		parts = append(parts, s.Title)
	}
	if s.Artist != "" {
		parts = append(parts, s.Artist)
	}
	return strings.Join(parts, " · ")
}

// timeLabel shows the live indicator for live streams, elapsed / total otherwise.
func timeLabel(s State, g Glyphs) string {
	if s.Live {
		return styles.T().S().Live.Render(g.Get(icons.SlotLive) + " LIVE")
	}
	return styles.T().S().Muted.Render(fmt.Sprintf("%s / %s", FormatDuration(s.Position), FormatDuration(s.Duration)))
}

func progress(s State, width int) string {
	if width < minBarWidth {
		return ""
	}
	if s.Live {
		return styles.GradientBar(width, 1, "━", "─")
	}
	var ratio float64
	if s.Duration > 0 {
		ratio = float64(s.Position) / float64(s.Duration)
	}
	return styles.GradientBar(width, ratio, "━", "─")
}

// FormatDuration formats d as m:ss, or h:mm:ss from one hour on.
func FormatDuration(d time.Duration) string {
	d = max(d, 0)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	sec := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, sec)
	}
	return fmt.Sprintf("%d:%02d", m, sec)
}
