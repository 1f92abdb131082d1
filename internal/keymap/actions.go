// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit Action = "quit"
	ActionHelp Action = "help"

	// Player state actions
	ActionPlayPause        Action = "play_pause"
	ActionToggleLoadMode   Action = "toggle_load_mode"
	ActionStartLoading     Action = "start_loading"
	ActionCycleStreamType  Action = "cycle_stream_type"
	ActionToggleViewType   Action = "toggle_view_type"
	ActionToggleCustomIcon Action = "toggle_custom_icons"

	// Lifecycle actions
	ActionToggleAttached Action = "toggle_attached"
)
