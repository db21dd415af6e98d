// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaultIsTUI(t *testing.T) {
	cmd, args, err := parseArgs(nil)
	require.NoError(t, err)
	assert.Equal(t, CmdTUI, cmd)
	assert.False(t, args.Debug)
}

func TestParseVersionAliases(t *testing.T) {
	for _, argv := range [][]string{{"version"}, {"--version"}, {"-v"}} {
		cmd, _, err := parseArgs(argv)
		require.NoError(t, err)
		assert.Equal(t, CmdVersion, cmd)
	}
}

func TestParseFlags(t *testing.T) {
	cmd, args, err := parseArgs([]string{"--debug", "--no-sidebar", "--config", "/tmp/e.toml"})
	require.NoError(t, err)
	assert.Equal(t, CmdTUI, cmd)
	assert.True(t, args.Debug)
	assert.True(t, args.NoSidebar)
	assert.Equal(t, "/tmp/e.toml", args.ConfigPath)
}

func TestParseConfigEquals(t *testing.T) {
	_, args, err := parseArgs([]string{"--config=/etc/eulogio.toml"})
	require.NoError(t, err)
	assert.Equal(t, "/etc/eulogio.toml", args.ConfigPath)
}

func TestParseConfigMissingPath(t *testing.T) {
	_, _, err := parseArgs([]string{"--config"})
	assert.Error(t, err)
}

func TestParseUnknownArgument(t *testing.T) {
	_, _, err := parseArgs([]string{"frobnicate"})
	assert.Error(t, err)
}

func TestParseExport(t *testing.T) {
	cmd, args, err := parseArgs([]string{"export", "1700000000000", "--format", "html", "--out", "/tmp"})
	require.NoError(t, err)
	assert.Equal(t, CmdExport, cmd)
	assert.Equal(t, "1700000000000", args.ConversationID)
	assert.Equal(t, "html", args.Format)
	assert.Equal(t, "/tmp", args.OutputDir)
}

func TestParseExportAll(t *testing.T) {
	cmd, args, err := parseArgs([]string{"export"})
	require.NoError(t, err)
	assert.Equal(t, CmdExport, cmd)
	assert.Empty(t, args.ConversationID)
}
