// Package icons resolves the glyphs drawn by the audio layout controls.
//
// Glyphs come from one of two strategies: user-supplied slot glyphs, or a
// set generated from a built-in style. Exactly one strategy fills the
// component's Slots at a time.
package icons

import (
	"errors"
	"fmt"
)

// Style represents the built-in icon style to generate.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// ErrUnknownStyle is returned when generating icons for an unsupported style.
var ErrUnknownStyle = errors.New("unknown icon style")

// Set holds the glyph for every audio layout control.
type Set struct {
	Play         string
	Pause        string
	Replay       string
	Mute         string
	Volume       string
	SeekBackward string
	SeekForward  string
	Menu         string
	Chapters     string
	Speed        string
	Live         string
}

// Slot names, as used in the icon_slots config table.
const (
	SlotPlay         = "play"
	SlotPause        = "pause"
	SlotReplay       = "replay"
	SlotMute         = "mute"
	SlotVolume       = "volume"
	SlotSeekBackward = "seek-backward"
	SlotSeekForward  = "seek-forward"
	SlotMenu         = "menu"
	SlotChapters     = "chapters"
	SlotSpeed        = "speed"
	SlotLive         = "live"
)

// SlotNames lists every slot in display order.
var SlotNames = []string{
	SlotPlay, SlotPause, SlotReplay, SlotMute, SlotVolume,
	SlotSeekBackward, SlotSeekForward, SlotMenu, SlotChapters, SlotSpeed, SlotLive,
}

// field returns a pointer to the glyph for slot name, or nil if unknown.
func (s *Set) field(name string) *string {
	switch name {
	case SlotPlay:
		return &s.Play
	case SlotPause:
		return &s.Pause
	case SlotReplay:
		return &s.Replay
	case SlotMute:
		return &s.Mute
	case SlotVolume:
		return &s.Volume
	case SlotSeekBackward:
		return &s.SeekBackward
	case SlotSeekForward:
		return &s.SeekForward
	case SlotMenu:
		return &s.Menu
	case SlotChapters:
		return &s.Chapters
	case SlotSpeed:
		return &s.Speed
	case SlotLive:
		return &s.Live
	default:
		return nil
	}
}

// Glyph returns the glyph for slot name.
func (s Set) Glyph(name string) string {
	if f := s.field(name); f != nil {
		return *f
	}
	return ""
}

var (
	nerdIcons = Set{
		Play:         "\uf04b",     // nf-fa-play
		Pause:        "\uf04c",     // nf-fa-pause
		Replay:       "\U000f0459", // nf-md-replay
		Mute:         "\U000f0581", // nf-md-volume_off
		Volume:       "\U000f057e", // nf-md-volume_high
		SeekBackward: "\U000f045f", // nf-md-rewind
		SeekForward:  "\U000f0211", // nf-md-fast_forward
		Menu:         "\U000f035c", // nf-md-menu
		Chapters:     "\U000f0279", // nf-md-format_list_bulleted
		Speed:        "\U000f04c5", // nf-md-speedometer
		Live:         "\U000f0002", // nf-md-access_point
	}

	unicodeIcons = Set{
		Play:         "▶",
		Pause:        "⏸",
		Replay:       "↻",
		Mute:         "🔇",
		Volume:       "🔊",
		SeekBackward: "⏪",
		SeekForward:  "⏩",
		Menu:         "☰",
		Chapters:     "≡",
		Speed:        "⏱",
		Live:         "●",
	}

	noneIcons = Set{
		Play:         "[>]",
		Pause:        "[||]",
		Replay:       "[R]",
		Mute:         "[M]",
		Volume:       "[V]",
		SeekBackward: "<<",
		SeekForward:  ">>",
		Menu:         "[=]",
		Chapters:     "[C]",
		Speed:        "[x]",
		Live:         "LIVE",
	}
)

// Lookup returns the built-in set for style.
func Lookup(style Style) (Set, error) {
	switch style {
	case StyleNerd:
		return nerdIcons, nil
	case StyleUnicode:
		return unicodeIcons, nil
	case StyleNone:
		return noneIcons, nil
	default:
		return Set{}, fmt.Errorf("%w: %q", ErrUnknownStyle, style)
	}
}

// Fallback returns the plain-text glyph for slot name, used when no strategy
// supplied one.
func Fallback(name string) string {
	return noneIcons.Glyph(name)
}
