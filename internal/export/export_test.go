// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eulogio/internal/model"
)

func sampleConversation() model.Conversation {
	return model.Conversation{
		ID:        "1700000000000",
		Name:      "Ayuda con el IMV",
		Timestamp: 1700000000000,
		Messages: []model.Message{
			{ID: "user-1", Text: "¿Cómo pido el Ingreso Mínimo Vital?", Sender: model.SenderUser, Timestamp: 1700000000000},
			{ID: "bot-1", Text: "<p>Necesitas <strong>cita previa</strong> en la Seguridad Social.</p>", Sender: model.SenderBot, Timestamp: 1700000001000},
		},
		History: []model.HistoryEntry{
			{Role: model.HistoryRoleUser, Text: "¿Cómo pido el Ingreso Mínimo Vital?"},
			{Role: model.HistoryRoleModel, Text: "<p>Necesitas <strong>cita previa</strong> en la Seguridad Social.</p>"},
		},
	}
}

func TestMarkdownExportFlattensAssistantHTML(t *testing.T) {
	out, err := NewMarkdownExporter(nil).Export(sampleConversation())
	require.NoError(t, err)
	text := string(out)

	assert.Contains(t, text, "# Ayuda con el IMV")
	assert.Contains(t, text, "### Usuario")
	assert.Contains(t, text, "### Eulogio")
	assert.Contains(t, text, "Necesitas cita previa en la Seguridad Social.")
	assert.NotContains(t, text, "<strong>")
}

func TestMarkdownExportEmptyConversation(t *testing.T) {
	_, err := NewMarkdownExporter(nil).Export(model.Conversation{})
	assert.Error(t, err)
}

func TestJSONExportRoundTrips(t *testing.T) {
	conv := sampleConversation()
	out, err := NewJSONExporter(nil).Export(conv)
	require.NoError(t, err)

	var decoded model.Conversation
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, conv, decoded)
}

func TestHTMLExportEscapesUserText(t *testing.T) {
	conv := sampleConversation()
	conv.Messages[0].Text = "<script>alert(1)</script>"

	out, err := NewHTMLExporter(nil).Export(conv)
	require.NoError(t, err)
	text := string(out)

	assert.NotContains(t, text, "<script>alert")
	assert.Contains(t, text, "&lt;script&gt;")
	// Assistant display HTML stays intact.
	assert.Contains(t, text, "<strong>cita previa</strong>")
}

func TestExportToFileWritesUnderOutputDir(t *testing.T) {
	dir := t.TempDir()
	opts := DefaultOptions()
	opts.OutputDir = dir

	path, err := ExportToFile(sampleConversation(), NewMarkdownExporter(opts), opts)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, dir))
	assert.True(t, strings.HasSuffix(path, ".md"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Ayuda con el IMV")
}

func TestForFormat(t *testing.T) {
	for _, format := range []string{"", "md", "markdown", "html", "json"} {
		_, err := ForFormat(format, nil)
		assert.NoError(t, err, format)
	}
	_, err := ForFormat("docx", nil)
	assert.Error(t, err)
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "Ayuda_con_el_IMV", sanitizeFilename("Ayuda con el IMV"))
	assert.Equal(t, "a-b", sanitizeFilename("a/b"))
	assert.Equal(t, "conversacion", sanitizeFilename(""))
}
