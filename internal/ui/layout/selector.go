package layout

import "github.com/llehouerou/audiolayout/internal/media"

// Variant is the audio layout rendered for a given player state.
type Variant int

const (
	None               Variant = iota // nothing rendered
	LoadingPlaceholder                // waiting for a play request to start loading
	SmallLayout                       // single-line bar
	LargeLayout                       // full panel
)

// String returns the variant name for debugging.
func (v Variant) String() string {
	switch v {
	case None:
		return "None"
	case LoadingPlaceholder:
		return "LoadingPlaceholder"
	case SmallLayout:
		return "SmallLayout"
	case LargeLayout:
		return "LargeLayout"
	default:
		return "Unknown"
	}
}

// Snapshot is the subset of player state the selector depends on.
type Snapshot struct {
	MatchesBreakpointSet bool
	LoadMode             media.LoadMode
	CanLoad              bool
	StreamType           media.StreamType
	IsSmallLayout        bool
}

// Select maps a snapshot to the variant to render.
//
// Precedence is fixed: the breakpoint gate first, then the loading
// placeholder, then the unknown stream type, then size. Loading must be
// checked before the stream type since the stream type stays unknown until
// loading starts.
func Select(s Snapshot) Variant {
	if !s.MatchesBreakpointSet {
		return None
	}
	if s.LoadMode == media.LoadPlay && !s.CanLoad {
		return LoadingPlaceholder
	}
	if s.StreamType == media.StreamUnknown {
		return None
	}
	if s.IsSmallLayout {
		return SmallLayout
	}
	return LargeLayout
}
