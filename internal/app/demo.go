package app

import (
	"time"

	"github.com/llehouerou/audiolayout/internal/media"
)

// DemoPlayer drives the player state the way a real media provider would:
// loading resolves the stream type and playback advances the current time.
type DemoPlayer struct {
	media    *media.Context
	stream   media.StreamType
	resolved bool
}

// NewDemoPlayer creates a demo player whose source resolves to stream once
// loading is allowed.
func NewDemoPlayer(m *media.Context, stream media.StreamType) *DemoPlayer {
	if stream == "" || stream == media.StreamUnknown {
		stream = media.StreamOnDemand
	}
	return &DemoPlayer{media: m, stream: stream}
}

// Load resolves the stream type once loading is allowed. It does nothing
// after the source has been resolved.
func (p *DemoPlayer) Load() {
	m := p.media
	if p.resolved || !m.CanLoad.Get() {
		return
	}
	p.resolved = true
	m.StreamType.Set(p.stream)
}

// TogglePlay pauses or resumes. A play request starts loading when the load
// mode defers it.
func (p *DemoPlayer) TogglePlay() {
	m := p.media
	m.Sched.Batch(func() {
		if m.Paused.Get() && !m.CanLoad.Get() && m.Load.Get() == media.LoadPlay {
			m.StartLoading()
		}
		p.Load()
		m.Paused.Update(func(paused bool) bool { return !paused })
	})
}

// StartLoading allows loading regardless of the load mode.
func (p *DemoPlayer) StartLoading() {
	p.media.Sched.Batch(func() {
		p.media.StartLoading()
		p.Load()
	})
}

// CycleStreamType switches the source to the next stream type.
func (p *DemoPlayer) CycleStreamType() {
	next := p.media.StreamType.Get().Next()
	if next != media.StreamUnknown {
		p.stream = next
	}
	p.resolved = true
	p.media.StreamType.Set(next)
}

// ToggleLoadMode switches between eager loading and loading on play.
func (p *DemoPlayer) ToggleLoadMode() {
	m := p.media
	m.Sched.Batch(func() {
		if m.Load.Get() == media.LoadPlay {
			m.SetLoadMode(media.LoadEager)
			p.Load()
			return
		}
		m.SetLoadMode(media.LoadPlay)
		p.resolved = false
		m.Paused.Set(true)
		m.CurrentTime.Set(0)
	})
}

// ToggleViewType switches between the audio and video views.
func (p *DemoPlayer) ToggleViewType() {
	p.media.ViewType.Update(func(v media.ViewType) media.ViewType {
		if v == media.ViewAudio {
			return media.ViewVideo
		}
		return media.ViewAudio
	})
}

// Advance moves playback forward by d while playing, wrapping at the end of
// on-demand media.
func (p *DemoPlayer) Advance(d time.Duration) {
	m := p.media
	if m.Paused.Get() || m.StreamType.Get() == media.StreamUnknown {
		return
	}
	next := m.CurrentTime.Get() + d
	if total := m.Duration.Get(); !m.StreamType.Get().IsLive() && total > 0 && next > total {
		next = 0
	}
	m.CurrentTime.Set(next)
}
