// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"eulogio/internal/ui/styles"
)

// =============================================================================
// WELCOME PANE
// =============================================================================

// Welcome is the empty-transcript greeting pane, shown before the first
// assistant message arrives.
type Welcome struct {
	modelName string
	width     int
	height    int
	theme     *styles.Theme
}

// NewWelcome creates the welcome pane.
func NewWelcome(theme *styles.Theme) Welcome {
	return Welcome{theme: theme}
}

// SetModelName sets the provider model shown in the footer line.
func (w *Welcome) SetModelName(name string) {
	w.modelName = name
}

// SetSize updates the pane dimensions.
func (w *Welcome) SetSize(width, height int) {
	w.width = width
	w.height = height
}

// View renders the centered welcome content.
func (w Welcome) View() string {
	width := w.width
	if width == 0 {
		width = 80
	}
	height := w.height
	if height == 0 {
		height = 20
	}

	var b strings.Builder
	b.WriteString(w.theme.WelcomeTitle.Render("Eulogio"))
	b.WriteString("\n\n")
	b.WriteString(w.theme.WelcomeText.Render("Tu asistente para trámites y ayudas sociales en España."))
	b.WriteString("\n")
	b.WriteString(w.theme.WelcomeText.Render("Pulsa Enter para empezar una conversación."))
	if w.modelName != "" {
		b.WriteString("\n\n")
		b.WriteString(w.theme.WelcomeText.Render("Modelo: " + w.modelName))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
