// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"short string unchanged", "hola", 30, "hola"},
		{"exact length unchanged", "abcde", 5, "abcde"},
		{"long string gets ellipsis", "abcdefghij", 8, "abcde..."},
		{"unicode not split", "señoría qué tal está usted hoy", 10, "señoría..."},
		{"zero length", "abc", 0, ""},
		{"tiny budget no ellipsis", "abcdef", 2, "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TruncateString(tt.input, tt.maxLen))
		})
	}
}

func TestPadCell(t *testing.T) {
	assert.Equal(t, "ab  ", PadCell("ab", 4))
	assert.Equal(t, "abcd", PadCell("abcd", 4))
	assert.Equal(t, "abcdef", PadCell("abcdef", 4))
	// Wide runes count as two columns.
	assert.Equal(t, "日本  ", PadCell("日本", 6))
}

func TestCollapseWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", CollapseWhitespace("a\nb\r\nc"))
	assert.Equal(t, "plain", CollapseWhitespace("plain"))
}

func TestAtomicWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out.json")

	require.NoError(t, AtomicWriteFile(path, []byte(`{"ok":true}`), 0644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, string(data))

	// Overwrite replaces content wholesale.
	require.NoError(t, AtomicWriteFile(path, []byte("v2"), 0644))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "v2", string(data))

	// No temp files left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
