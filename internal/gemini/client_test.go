// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package gemini

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"eulogio/internal/config"
	"eulogio/internal/model"
)

func TestClientWithoutCredentials(t *testing.T) {
	c := New(context.Background(), config.GeminiConfig{
		Model:             config.DefaultModel,
		SystemInstruction: "persona",
	}, nil)

	assert.False(t, c.Available())

	// Unavailability is signaled by nil/nil, never by an error.
	sess, err := c.CreateSession(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestToContents(t *testing.T) {
	history := []model.HistoryEntry{
		{Role: model.HistoryRoleUser, Text: "consulta"},
		{Role: model.HistoryRoleModel, Text: "<p>respuesta</p>"},
	}

	contents := toContents(history)
	require.Len(t, contents, 2)

	assert.Equal(t, string(genai.RoleUser), contents[0].Role)
	assert.Equal(t, "consulta", contents[0].Parts[0].Text)
	assert.Equal(t, string(genai.RoleModel), contents[1].Role)
	assert.Equal(t, "<p>respuesta</p>", contents[1].Parts[0].Text)

	assert.Nil(t, toContents(nil))
}
