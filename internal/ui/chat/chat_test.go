// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"eulogio/internal/config"
	"eulogio/internal/gemini"
	"eulogio/internal/model"
	"eulogio/internal/session"
	"eulogio/internal/storage"
	"eulogio/internal/ui/styles"
)

// newTestModel builds a chat model over a credential-less controller, which
// keeps everything offline.
func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := &config.Config{}
	cfg.Gemini.Model = "gemini-2.5-flash"
	cfg.UI.SidebarVisible = true

	client := gemini.New(context.Background(), config.GeminiConfig{}, zap.NewNop())
	store := storage.NewStore(filepath.Join(t.TempDir(), "conversations.json"), zap.NewNop())
	ctrl := session.NewController(store, session.WrapClient(client), zap.NewNop())

	m := New(ctrl, cfg, styles.NewTheme())
	resized, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return resized.(Model)
}

func TestBannerVisibleWithoutCredentials(t *testing.T) {
	m := newTestModel(t)
	assert.Contains(t, m.View(), "GEMINI_API_KEY")
}

func TestRenderMessageUser(t *testing.T) {
	m := newTestModel(t)
	out := m.renderMessage(model.NewUserMessage("Necesito ayuda"), 60)
	assert.Contains(t, out, "Tú")
	assert.Contains(t, out, "Necesito ayuda")
}

func TestRenderMessageFlattensHTML(t *testing.T) {
	m := newTestModel(t)
	msg := model.Message{
		ID:     "bot-1",
		Text:   "<p>Hola, <strong>soy Eulogio</strong>.</p>",
		Sender: model.SenderBot,
	}
	out := m.renderMessage(msg, 60)
	assert.Contains(t, out, "Hola, soy Eulogio.")
	assert.NotContains(t, out, "<p>")
}

func TestRenderMessagePendingShowsSpinner(t *testing.T) {
	m := newTestModel(t)
	out := m.renderMessage(model.NewBotPlaceholder(), 60)
	assert.Contains(t, out, "escribiendo")
}

func TestHandleOpDoneInFlight(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(OpDoneMsg{Err: session.ErrTurnInFlight})
	assert.Contains(t, updated.(Model).statusMsg, "Espera")
}

func TestHandleOpDoneUnknownConversation(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(OpDoneMsg{Err: storage.ErrNotFound})
	assert.Contains(t, updated.(Model).statusMsg, "no existe")
}

func TestToggleSidebar(t *testing.T) {
	m := newTestModel(t)
	require.True(t, m.sidebarVisible)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlB})
	m = updated.(Model)
	assert.False(t, m.sidebarVisible)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlB})
	assert.True(t, updated.(Model).sidebarVisible)
}

func TestInitLeavesWelcomeViewUp(t *testing.T) {
	m := newTestModel(t)
	m.Init()

	// No conversation is opened until the user acts.
	assert.Empty(t, m.controller.ActiveID())
	assert.Contains(t, m.View(), "Pulsa Enter")
}

func TestFirstSubmitStartsConversation(t *testing.T) {
	m := newTestModel(t)
	m.input.SetValue("Hola")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	require.NotNil(t, cmd)

	// The command opens the conversation; the draft stays in the input.
	assert.IsType(t, OpDoneMsg{}, cmd())
	assert.NotEmpty(t, m.controller.ActiveID())
	assert.Equal(t, "Hola", m.input.Value())
}

func TestSubmitEmptyInputIsNoop(t *testing.T) {
	m := newTestModel(t)
	require.NoError(t, m.controller.NewConversation(context.Background()))
	updated, _ := m.Update(StateChangedMsg{})
	m = updated.(Model)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
}

func TestStateChangedPullsSnapshot(t *testing.T) {
	m := newTestModel(t)
	require.NoError(t, m.controller.NewConversation(context.Background()))

	updated, _ := m.Update(StateChangedMsg{})
	m = updated.(Model)
	require.Len(t, m.messages, 1)
	assert.True(t, m.messages[0].IsStreaming)
}
