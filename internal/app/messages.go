// Package app contains the bubbletea model that hosts the audio layout.
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent periodically to advance the demo player.
type TickMsg time.Time

// TickInterval is the period of TickMsg.
const TickInterval = time.Second

func tickCmd() tea.Cmd {
	return tea.Tick(TickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// NotificationTimeoutMsg clears the oldest notification.
type NotificationTimeoutMsg struct{}

// NotificationTimeout is how long a notification stays on screen.
const NotificationTimeout = 5 * time.Second

func notificationTimeoutCmd() tea.Cmd {
	return tea.Tick(NotificationTimeout, func(time.Time) tea.Msg {
		return NotificationTimeoutMsg{}
	})
}
