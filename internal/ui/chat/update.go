// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"eulogio/internal/session"
	"eulogio/internal/storage"
)

// =============================================================================
// UPDATE LOOP
// =============================================================================

// Update handles incoming Bubble Tea messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case StateChangedMsg:
		m.refreshSnapshot()
		return m, nil

	case OpDoneMsg:
		return m.handleOpDone(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.hasPendingPlaceholder() {
			// The pending placeholder renders the spinner frame, so the
			// viewport content must follow the tick.
			wasAtBottom := m.viewport.AtBottom()
			m.viewport.SetContent(m.renderTranscript())
			if wasAtBottom {
				m.viewport.GotoBottom()
			}
		}
		return m, cmd
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// =============================================================================
// RESIZE
// =============================================================================

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.ready = true
	m.applyLayout()
	m.refreshSnapshot()
	return m, nil
}

// applyLayout distributes the terminal area among the panes.
func (m *Model) applyLayout() {
	bannerHeight := 0
	if m.banner.Visible() {
		bannerHeight = 1
	}
	contentHeight := m.height - headerHeight - bannerHeight - inputHeight - statusHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	transcriptWidth := m.width
	if m.sidebarVisible {
		transcriptWidth -= sidebarWidth
		m.sidebar.SetSize(sidebarWidth, contentHeight)
	}
	if transcriptWidth < 20 {
		transcriptWidth = 20
	}

	m.viewport.Width = transcriptWidth
	m.viewport.Height = contentHeight
	m.welcome.SetSize(transcriptWidth, contentHeight)
	m.banner.SetWidth(m.width)
	m.input.Width = m.width - 4
}

// =============================================================================
// KEYS
// =============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.NewChat):
		m.statusMsg = ""
		m.sidebar.SetFocused(false)
		m.input.Focus()
		return m, newConversationCmd(m.controller)

	case key.Matches(msg, m.keyMap.ToggleSidebar):
		m.sidebarVisible = !m.sidebarVisible
		if !m.sidebarVisible {
			m.sidebar.SetFocused(false)
			m.input.Focus()
		}
		m.applyLayout()
		m.refreshSnapshot()
		return m, nil

	case key.Matches(msg, m.keyMap.FocusSidebar):
		if !m.sidebarVisible {
			return m, nil
		}
		focused := !m.sidebar.Focused()
		m.sidebar.SetFocused(focused)
		if focused {
			m.input.Blur()
		} else {
			m.input.Focus()
		}
		return m, nil
	}

	if m.sidebar.Focused() {
		return m.handleSidebarKey(msg)
	}
	return m.handleInputKey(msg)
}

func (m Model) handleSidebarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Up):
		m.sidebar.CursorUp()
		return m, nil

	case key.Matches(msg, m.keyMap.Down):
		m.sidebar.CursorDown()
		return m, nil

	case key.Matches(msg, m.keyMap.Submit):
		conv, ok := m.sidebar.Selected()
		if !ok {
			return m, nil
		}
		m.statusMsg = ""
		m.sidebar.SetFocused(false)
		m.input.Focus()
		return m, loadConversationCmd(m.controller, conv.ID)

	case key.Matches(msg, m.keyMap.Delete):
		conv, ok := m.sidebar.Selected()
		if !ok {
			return m, nil
		}
		return m, deleteConversationCmd(m.controller, conv.ID)

	case key.Matches(msg, m.keyMap.Cancel):
		m.sidebar.SetFocused(false)
		m.input.Focus()
		return m, nil
	}
	return m, nil
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Submit):
		if m.activeID == "" && !m.inFlight {
			// Still on the welcome view: Enter opens the first conversation.
			// Typed text stays in the input so it can be sent after the
			// greeting arrives.
			m.statusMsg = ""
			return m, newConversationCmd(m.controller)
		}
		text := strings.TrimSpace(m.input.Value())
		if text == "" {
			return m, nil
		}
		if m.inFlight {
			m.statusMsg = "Espera a que el asistente termine de responder."
			return m, nil
		}
		m.statusMsg = ""
		m.input.Reset()
		return m, sendMessageCmd(m.controller, text)

	case key.Matches(msg, m.keyMap.Up),
		key.Matches(msg, m.keyMap.Down),
		key.Matches(msg, m.keyMap.PageUp),
		key.Matches(msg, m.keyMap.PageDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// =============================================================================
// OPERATION RESULTS
// =============================================================================

func (m Model) handleOpDone(msg OpDoneMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Err == nil:
		// Transcript updates arrived via StateChangedMsg already.
	case errors.Is(msg.Err, session.ErrTurnInFlight):
		m.statusMsg = "Espera a que el asistente termine de responder."
	case errors.Is(msg.Err, storage.ErrNotFound):
		m.statusMsg = "Esa conversación ya no existe."
	default:
		m.statusMsg = msg.Err.Error()
	}
	m.refreshSnapshot()
	return m, nil
}

// hasPendingPlaceholder reports whether the transcript shows a bot message
// still waiting for its first fragment.
func (m Model) hasPendingPlaceholder() bool {
	for _, msg := range m.messages {
		if msg.IsStreaming && strings.TrimSpace(msg.Text) == "" {
			return true
		}
	}
	return false
}
