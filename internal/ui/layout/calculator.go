// Package layout provides the audio layout selection and pure functions for
// UI dimension calculations.
package layout

import "github.com/llehouerou/audiolayout/internal/media"

// DefaultSmallWidth is the terminal width below which the small layout is used.
const DefaultSmallWidth = 80

// NotificationBorderHeight is the height of borders around notifications.
const NotificationBorderHeight = 2

// Breakpoints holds the responsive queries of the audio layout family.
type Breakpoints struct {
	SmallWidth int // 0 means DefaultSmallWidth
}

// Matches reports whether the audio layout family applies to the view type.
// Outside the audio view the video layout renders instead.
func (b Breakpoints) Matches(view media.ViewType) bool {
	return view == media.ViewAudio
}

// IsSmall reports whether width selects the small layout.
func (b Breakpoints) IsSmall(width int) bool {
	limit := b.SmallWidth
	if limit <= 0 {
		limit = DefaultSmallWidth
	}
	return width < limit
}

// Height returns the number of rows the variant occupies.
func Height(v Variant) int {
	switch v {
	case LoadingPlaceholder:
		return 3 // top border + button + bottom border
	case SmallLayout:
		return 3
	case LargeLayout:
		return 6 // 4 content rows + 2 border rows
	default:
		return 0
	}
}

// ContentOpts contains the parameters needed to calculate content height.
type ContentOpts struct {
	HeaderHeight      int
	Variant           Variant
	HelpHeight        int
	NotificationCount int
}

// ContentHeight calculates the height left above the audio layout: the
// terminal height minus header, layout, help line and notifications.
func ContentHeight(windowHeight int, opts ContentOpts) int {
	height := windowHeight
	height -= opts.HeaderHeight
	height -= Height(opts.Variant)
	height -= opts.HelpHeight
	height -= NotificationHeight(opts.NotificationCount)
	return max(height, 0)
}

// NotificationHeight returns the height needed for the given number of notifications.
func NotificationHeight(count int) int {
	if count == 0 {
		return 0
	}
	return count + NotificationBorderHeight
}

// LayoutRow calculates the 1-based row number where the audio layout starts.
// Returns 0 if the variant renders nothing.
func LayoutRow(windowHeight int, v Variant, helpHeight, notificationCount int) int {
	h := Height(v)
	if h == 0 {
		return 0
	}

	row := windowHeight
	row -= NotificationHeight(notificationCount)
	row -= helpHeight
	row -= h

	// Convert to 1-based row number
	return row + 1
}
