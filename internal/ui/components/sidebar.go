// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"time"

	"eulogio/internal/model"
	"eulogio/internal/ui/styles"
	"eulogio/internal/util"
)

// =============================================================================
// CONVERSATION SIDEBAR
// =============================================================================

// Sidebar lists stored conversations, newest activity first. It tracks a
// cursor for keyboard navigation; selection and deletion are resolved by
// the chat model.
type Sidebar struct {
	conversations []model.Conversation
	activeID      string
	cursor        int
	focused       bool
	width         int
	height        int
	theme         *styles.Theme
}

// NewSidebar creates the sidebar pane.
func NewSidebar(theme *styles.Theme) Sidebar {
	return Sidebar{theme: theme}
}

// SetConversations replaces the listed conversations, clamping the cursor.
func (s *Sidebar) SetConversations(convs []model.Conversation) {
	s.conversations = convs
	if s.cursor >= len(convs) {
		s.cursor = len(convs) - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

// SetActiveID marks the conversation highlighted as current.
func (s *Sidebar) SetActiveID(id string) {
	s.activeID = id
}

// SetSize updates the pane dimensions.
func (s *Sidebar) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// SetFocused toggles keyboard focus.
func (s *Sidebar) SetFocused(focused bool) {
	s.focused = focused
}

// Focused reports whether the sidebar has keyboard focus.
func (s Sidebar) Focused() bool {
	return s.focused
}

// CursorUp moves the cursor toward newer conversations.
func (s *Sidebar) CursorUp() {
	if s.cursor > 0 {
		s.cursor--
	}
}

// CursorDown moves the cursor toward older conversations.
func (s *Sidebar) CursorDown() {
	if s.cursor < len(s.conversations)-1 {
		s.cursor++
	}
}

// Selected returns the conversation under the cursor, if any.
func (s Sidebar) Selected() (model.Conversation, bool) {
	if s.cursor < 0 || s.cursor >= len(s.conversations) {
		return model.Conversation{}, false
	}
	return s.conversations[s.cursor], true
}

// View renders the sidebar pane.
func (s Sidebar) View() string {
	if s.width <= 0 {
		return ""
	}
	inner := s.width - 3 // border + padding
	if inner < 8 {
		inner = 8
	}

	// Each row is truncated then padded to the pane width so item styles
	// cover the full line.
	cell := func(text string) string {
		return util.PadCell(util.FitCell(text, inner), inner)
	}

	var b strings.Builder
	b.WriteString(s.theme.SidebarTitle.Render(cell("Conversaciones")))
	b.WriteString("\n")

	if len(s.conversations) == 0 {
		b.WriteString(s.theme.SidebarItem.Render(cell("(ninguna guardada)")))
	}

	// Two lines per entry: title, then activity timestamp.
	maxEntries := (s.height - 1) / 2
	for i, conv := range s.conversations {
		if maxEntries > 0 && i >= maxEntries {
			break
		}

		style := s.theme.SidebarItem
		prefix := "  "
		if conv.ID == s.activeID {
			style = s.theme.SidebarActiveItem
			prefix = "• "
		}
		if s.focused && i == s.cursor {
			prefix = "> "
		}

		b.WriteString(style.Render(cell(prefix + conv.Name)))
		b.WriteString("\n")
		stamp := time.UnixMilli(conv.Timestamp).Format("02 Jan 15:04")
		b.WriteString(s.theme.Timestamp.Render(cell("  " + stamp)))
		b.WriteString("\n")
	}

	return s.theme.Sidebar.
		Width(s.width - 1).
		Height(s.height).
		Render(strings.TrimRight(b.String(), "\n"))
}
