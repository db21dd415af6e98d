// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"eulogio/internal/session"
)

// =============================================================================
// CONTROLLER COMMANDS
// =============================================================================

// Controller operations block until their streamed turn completes, so each
// one runs as a background command. Progress reaches the view through
// StateChangedMsg pushes, not through the command's return value.

func newConversationCmd(ctrl *session.Controller) tea.Cmd {
	return func() tea.Msg {
		return OpDoneMsg{Err: ctrl.NewConversation(context.Background())}
	}
}

func sendMessageCmd(ctrl *session.Controller, text string) tea.Cmd {
	return func() tea.Msg {
		return OpDoneMsg{Err: ctrl.SendMessage(context.Background(), text)}
	}
}

func loadConversationCmd(ctrl *session.Controller, id string) tea.Cmd {
	return func() tea.Msg {
		return OpDoneMsg{Err: ctrl.LoadConversation(context.Background(), id)}
	}
}

func deleteConversationCmd(ctrl *session.Controller, id string) tea.Cmd {
	return func() tea.Msg {
		return OpDoneMsg{Err: ctrl.DeleteConversation(context.Background(), id)}
	}
}
