// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessageConstructors(t *testing.T) {
	user := NewUserMessage("hola eulogio")
	assert.Equal(t, SenderUser, user.Sender)
	assert.False(t, user.IsStreaming)
	assert.True(t, strings.HasPrefix(user.ID, "user-"))

	bot := NewBotPlaceholder()
	assert.Equal(t, SenderBot, bot.Sender)
	assert.True(t, bot.IsStreaming)
	assert.Empty(t, bot.Text)

	greeting := NewGreetingPlaceholder("123")
	assert.Equal(t, "bot-greeting-123", greeting.ID)
	assert.True(t, greeting.IsStreaming)

	errMsg := NewBotError("<p>Error</p>")
	assert.Equal(t, SenderBot, errMsg.Sender)
	assert.False(t, errMsg.IsStreaming)
}

func TestIsPlaceholder(t *testing.T) {
	assert.True(t, NewBotPlaceholder().IsPlaceholder())
	assert.True(t, Message{Text: StreamingPlaceholder, Sender: SenderBot}.IsPlaceholder())

	m := NewBotPlaceholder()
	m.Text = "<p>contenido real</p>"
	assert.False(t, m.IsPlaceholder())
	assert.False(t, NewUserMessage("hola a todos").IsPlaceholder())
}

func TestIsHandshake(t *testing.T) {
	assert.True(t, Message{Text: "Hola"}.IsHandshake())
	assert.True(t, Message{Text: " Hola \n"}.IsHandshake())
	assert.False(t, Message{Text: "Hola Eulogio"}.IsHandshake())
}

func TestDeriveName(t *testing.T) {
	t.Run("first real user message wins", func(t *testing.T) {
		msgs := []Message{
			{Sender: SenderBot, Text: "<p>Hola, soy Eulogio</p>"},
			{Sender: SenderUser, Text: "Hola"},
			{Sender: SenderUser, Text: "Necesito ayuda con un caso"},
		}
		assert.Equal(t, "Necesito ayuda con un caso", DeriveName(msgs))
	})

	t.Run("long names truncated", func(t *testing.T) {
		msgs := []Message{{Sender: SenderUser, Text: strings.Repeat("a", 60)}}
		name := DeriveName(msgs)
		assert.Len(t, []rune(name), NameMaxLen)
		assert.True(t, strings.HasSuffix(name, "..."))
	})

	t.Run("newlines collapsed", func(t *testing.T) {
		msgs := []Message{{Sender: SenderUser, Text: "línea una\nlínea dos"}}
		assert.Equal(t, "línea una línea dos", DeriveName(msgs))
	})

	t.Run("fallback label without user content", func(t *testing.T) {
		msgs := []Message{{Sender: SenderBot, Text: "<p>saludo</p>", Timestamp: 1700000000000}}
		assert.Contains(t, DeriveName(msgs), "Conversación ")
	})
}

func TestStripHandshake(t *testing.T) {
	t.Run("leading handshake user entry removed, greeting kept", func(t *testing.T) {
		history := []HistoryEntry{
			{Role: HistoryRoleUser, Text: "Hola"},
			{Role: HistoryRoleModel, Text: "<p>Hola, soy Eulogio</p>"},
			{Role: HistoryRoleUser, Text: "consulta real"},
		}
		got := StripHandshake(history)
		assert.Equal(t, []HistoryEntry{
			{Role: HistoryRoleModel, Text: "<p>Hola, soy Eulogio</p>"},
			{Role: HistoryRoleUser, Text: "consulta real"},
		}, got)
	})

	t.Run("stray sentinels filtered anywhere", func(t *testing.T) {
		history := []HistoryEntry{
			{Role: HistoryRoleUser, Text: "consulta"},
			{Role: HistoryRoleUser, Text: "Hola"},
			{Role: HistoryRoleModel, Text: StreamingPlaceholder},
			{Role: HistoryRoleModel, Text: "  "},
			{Role: HistoryRoleModel, Text: "<p>respuesta</p>"},
		}
		got := StripHandshake(history)
		assert.Equal(t, []HistoryEntry{
			{Role: HistoryRoleUser, Text: "consulta"},
			{Role: HistoryRoleModel, Text: "<p>respuesta</p>"},
		}, got)
	})

	t.Run("clean history untouched", func(t *testing.T) {
		history := []HistoryEntry{
			{Role: HistoryRoleUser, Text: "pregunta"},
			{Role: HistoryRoleModel, Text: "<p>respuesta</p>"},
		}
		assert.Equal(t, history, StripHandshake(history))
	})
}
