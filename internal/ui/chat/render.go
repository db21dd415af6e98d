// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"eulogio/internal/model"
	"eulogio/internal/ui/htmltext"
)

// =============================================================================
// TRANSCRIPT RENDERING
// =============================================================================

// renderTranscript renders all visible messages for the viewport.
func (m Model) renderTranscript() string {
	width := m.viewport.Width
	if width < 20 {
		width = 20
	}

	blocks := make([]string, 0, len(m.messages))
	for _, msg := range m.messages {
		blocks = append(blocks, m.renderMessage(msg, width))
	}
	return strings.Join(blocks, "\n\n")
}

func (m Model) renderMessage(msg model.Message, width int) string {
	stamp := time.UnixMilli(msg.Timestamp).Format("15:04")

	var label, body string
	switch {
	case msg.Sender == model.SenderUser:
		label = m.theme.UserLabel.Render("Tú")
		body = m.theme.UserText.Render(msg.Text)

	case msg.IsStreaming && strings.TrimSpace(msg.Text) == "":
		label = m.theme.AssistantLabel.Render("Eulogio")
		body = m.spinner.View() + " escribiendo..."

	case msg.IsError():
		label = m.theme.AssistantLabel.Render("Eulogio")
		body = m.theme.ErrorNotice.Render(htmltext.Flatten(msg.Text))

	default:
		label = m.theme.AssistantLabel.Render("Eulogio")
		body = m.theme.AssistantText.Render(htmltext.Flatten(msg.Text))
	}

	head := label + " " + m.theme.Timestamp.Render(stamp)
	wrapped := lipgloss.NewStyle().Width(width).Render(body)
	return head + "\n" + wrapped
}
