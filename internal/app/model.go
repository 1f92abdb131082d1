package app

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/audiolayout/internal/audiolayout"
	"github.com/llehouerou/audiolayout/internal/keymap"
	"github.com/llehouerou/audiolayout/internal/media"
)

// maxNotifications is how many notifications are kept on screen.
const maxNotifications = 3

// helpKeys adapts the key bindings to the bubbles help view.
type helpKeys []key.Binding

func (h helpKeys) ShortHelp() []key.Binding { return h }

func (h helpKeys) FullHelp() [][]key.Binding {
	rows := make([][]key.Binding, 0, (len(h)+2)/3)
	for i := 0; i < len(h); i += 3 {
		rows = append(rows, h[i:min(i+3, len(h))])
	}
	return rows
}

// Model is the bubbletea model hosting one audio layout component.
type Model struct {
	comp   *audiolayout.Component
	media  *media.Context
	player *DemoPlayer
	keys   *keymap.Resolver
	help   help.Model
	hkeys  helpKeys
	logger *zap.Logger

	width, height int
	notifications []string
}

// New creates the model. The component must already be set up; the model
// disposes it when the user quits.
func New(comp *audiolayout.Component, m *media.Context, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	return Model{
		comp:   comp,
		media:  m,
		player: NewDemoPlayer(m, media.StreamOnDemand),
		keys:   keymap.NewResolver(keymap.All),
		help:   help.New(),
		hkeys:  keymap.KeyBindings(keymap.All),
		logger: logger.Named("app"),
	}
}

// Init starts the playback tick.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Notifications returns the messages currently shown, oldest first.
func (m Model) Notifications() []string {
	return m.notifications
}

// Component returns the hosted component.
func (m Model) Component() *audiolayout.Component {
	return m.comp
}

func (m *Model) notify(msg string) tea.Cmd {
	if msg == "" {
		return nil
	}
	m.notifications = append(m.notifications, msg)
	if len(m.notifications) > maxNotifications {
		m.notifications = m.notifications[len(m.notifications)-maxNotifications:]
	}
	return notificationTimeoutCmd()
}
