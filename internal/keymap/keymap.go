package keymap

import "github.com/charmbracelet/bubbles/key"

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "player", "layout"
}

// All contains all key bindings for help generation.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "quit", "global"},
	{ActionHelp, []string{"?"}, "help", "global"},

	// Player state
	{ActionPlayPause, []string{" "}, "play/pause", "player"},
	{ActionToggleLoadMode, []string{"l"}, "load mode", "player"},
	{ActionStartLoading, []string{"enter"}, "start loading", "player"},
	{ActionCycleStreamType, []string{"s"}, "stream type", "player"},
	{ActionToggleViewType, []string{"v"}, "view type", "player"},

	// Layout
	{ActionToggleCustomIcon, []string{"i"}, "custom icons", "layout"},
	{ActionToggleAttached, []string{"a"}, "attach/detach", "layout"},
}

// KeyBindings converts bindings to bubbles key bindings for the help view.
func KeyBindings(bindings []Binding) []key.Binding {
	out := make([]key.Binding, 0, len(bindings))
	for _, b := range bindings {
		help := b.Keys[0]
		if help == " " {
			help = "space"
		}
		out = append(out, key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(help, b.Description)))
	}
	return out
}
