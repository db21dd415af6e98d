// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// MAIN RENDER
// =============================================================================

// View renders the complete chat layout:
// header, optional credentials banner, sidebar + transcript, input, status.
func (m Model) View() string {
	if !m.ready {
		return "Cargando..."
	}

	header := m.renderHeader()
	banner := m.banner.View()
	content := m.renderContent()
	input := m.renderInput()
	status := m.renderStatusBar()

	parts := make([]string, 0, 5)
	parts = append(parts, header)
	if banner != "" {
		parts = append(parts, banner)
	}
	parts = append(parts, content, input, status)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderHeader() string {
	title := m.theme.HeaderTitle.Render("Eulogio")
	subtitle := " · asistente de trámites y ayudas sociales"
	return m.theme.Header.Width(m.width).Render(title + subtitle)
}

// renderContent joins the sidebar and the transcript pane. The welcome
// pane substitutes for the transcript while it is empty.
func (m Model) renderContent() string {
	var transcript string
	if len(m.messages) == 0 {
		transcript = m.welcome.View()
	} else {
		transcript = m.viewport.View()
	}

	if !m.sidebarVisible {
		return transcript
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar.View(), transcript)
}

func (m Model) renderInput() string {
	prompt := m.input.View()
	hint := m.theme.ShortcutDesc.Render("Enter envía · C-n nueva conversación · Tab historial · C-c salir")
	return m.theme.InputContainer.Width(m.width).Render(prompt + "\n" + hint)
}

func (m Model) renderStatusBar() string {
	var b strings.Builder
	if m.statusMsg != "" {
		b.WriteString(m.theme.StatusError.Render(m.statusMsg))
	} else if m.inFlight {
		b.WriteString(m.spinner.View())
		b.WriteString(" Eulogio está escribiendo...")
	} else {
		b.WriteString("Listo")
	}
	return m.theme.StatusBar.Width(m.width).Render(b.String())
}
