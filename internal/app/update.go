package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/audiolayout/internal/audiolayout"
	"github.com/llehouerou/audiolayout/internal/errmsg"
	"github.com/llehouerou/audiolayout/internal/keymap"
)

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.media.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		m.player.Load()
		m.player.Advance(TickInterval)
		return m, tickCmd()

	case NotificationTimeoutMsg:
		if len(m.notifications) > 0 {
			m.notifications = m.notifications[1:]
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Resolve(msg.String())
	if action == "" {
		return m, nil
	}
	m.logger.Debug("key action", zap.String("action", string(action)))

	switch action {
	case keymap.ActionQuit:
		return m, m.quit()
	case keymap.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	case keymap.ActionPlayPause:
		m.player.TogglePlay()
	case keymap.ActionToggleLoadMode:
		m.player.ToggleLoadMode()
	case keymap.ActionStartLoading:
		m.player.StartLoading()
	case keymap.ActionCycleStreamType:
		m.player.CycleStreamType()
	case keymap.ActionToggleViewType:
		m.player.ToggleViewType()
	case keymap.ActionToggleCustomIcon:
		if err := m.comp.SetCustomIcons(!m.comp.CustomIcons()); err != nil {
			return m, m.notify(errmsg.Format(errmsg.OpIconsSwitch, err))
		}
	case keymap.ActionToggleAttached:
		return m, m.toggleAttached()
	}
	return m, nil
}

func (m *Model) toggleAttached() tea.Cmd {
	if m.comp.Phase() == audiolayout.Connected {
		if err := m.comp.Disconnect(); err != nil {
			return m.notify(errmsg.Format(errmsg.OpLayoutDisconnect, err))
		}
		return nil
	}
	if err := m.comp.Connect(); err != nil {
		return m.notify(errmsg.Format(errmsg.OpLayoutConnect, err))
	}
	return nil
}

func (m *Model) quit() tea.Cmd {
	if err := m.comp.Dispose(); err != nil {
		m.logger.Warn("dispose on quit", zap.Error(err))
	}
	return tea.Quit
}
