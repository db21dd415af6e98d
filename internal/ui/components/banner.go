// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/lipgloss"

	"eulogio/internal/ui/styles"
)

// =============================================================================
// CREDENTIALS BANNER
// =============================================================================

// CredentialsBanner is the persistent full-width warning shown while no
// API key is configured. It renders to the empty string once credentials
// exist.
type CredentialsBanner struct {
	visible bool
	width   int
	theme   *styles.Theme
}

// NewCredentialsBanner creates the banner.
func NewCredentialsBanner(theme *styles.Theme) CredentialsBanner {
	return CredentialsBanner{theme: theme}
}

// SetVisible toggles the banner.
func (b *CredentialsBanner) SetVisible(visible bool) {
	b.visible = visible
}

// SetWidth updates the banner width for full-width rendering.
func (b *CredentialsBanner) SetWidth(width int) {
	b.width = width
}

// Visible reports whether the banner currently renders.
func (b CredentialsBanner) Visible() bool {
	return b.visible
}

// View renders the banner line, or "" when credentials are configured.
func (b CredentialsBanner) View() string {
	if !b.visible {
		return ""
	}
	text := "⚠ Falta la clave de API: configura GEMINI_API_KEY para hablar con el asistente."
	return b.theme.Banner.Width(b.width).Align(lipgloss.Center).Render(text)
}
