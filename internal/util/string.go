// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions shared across the application.
package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// TruncateString truncates a string to maxLen runes, adding "..." when
// content was cut. Rune-based so multi-byte text (the assistant speaks
// Spanish) is never split mid-character.
func TruncateString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// CollapseWhitespace flattens newlines and carriage returns into single
// spaces. Used when deriving one-line conversation names from message text.
func CollapseWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}

// PadCell pads a string with spaces to the given display width, accounting
// for wide characters.
func PadCell(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// FitCell truncates a string to the given display width, accounting for
// wide characters, and appends an ellipsis when content was cut.
func FitCell(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
