// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds the styled components for the application. It detects the
// terminal's color capability once at startup.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	ColorProfile termenv.Profile

	// Header
	Header      lipgloss.Style
	HeaderTitle lipgloss.Style

	// Credentials banner
	Banner lipgloss.Style

	// Transcript
	UserLabel      lipgloss.Style
	UserText       lipgloss.Style
	AssistantLabel lipgloss.Style
	AssistantText  lipgloss.Style
	ErrorNotice    lipgloss.Style
	Timestamp      lipgloss.Style
	Spinner        lipgloss.Style

	// Sidebar
	Sidebar           lipgloss.Style
	SidebarTitle      lipgloss.Style
	SidebarItem       lipgloss.Style
	SidebarActiveItem lipgloss.Style

	// Welcome
	WelcomeTitle lipgloss.Style
	WelcomeText  lipgloss.Style

	// Input
	InputContainer lipgloss.Style
	InputPrompt    lipgloss.Style

	// Status bar
	StatusBar    lipgloss.Style
	StatusError  lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style
}

// NewTheme builds the default theme for the detected terminal.
func NewTheme() *Theme {
	output := termenv.DefaultOutput()

	t := &Theme{
		IsDark:       output.HasDarkBackground(),
		ColorProfile: output.Profile,
	}

	t.Header = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(Teal).
		Bold(true).
		Padding(0, 1)
	t.HeaderTitle = lipgloss.NewStyle().
		Foreground(Teal).
		Bold(true)

	t.Banner = lipgloss.NewStyle().
		Foreground(Amber).
		Bold(true).
		Padding(0, 1)

	t.UserLabel = lipgloss.NewStyle().
		Foreground(Sky).
		Bold(true)
	t.UserText = lipgloss.NewStyle().
		Foreground(Text)
	t.AssistantLabel = lipgloss.NewStyle().
		Foreground(Teal).
		Bold(true)
	t.AssistantText = lipgloss.NewStyle().
		Foreground(Text)
	t.ErrorNotice = lipgloss.NewStyle().
		Foreground(Rose)
	t.Timestamp = lipgloss.NewStyle().
		Foreground(TextMuted)
	t.Spinner = lipgloss.NewStyle().
		Foreground(Teal)

	t.Sidebar = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderRight(true).
		BorderForeground(Border).
		Padding(0, 1)
	t.SidebarTitle = lipgloss.NewStyle().
		Foreground(TextMuted).
		Bold(true)
	t.SidebarItem = lipgloss.NewStyle().
		Foreground(Text)
	t.SidebarActiveItem = lipgloss.NewStyle().
		Foreground(Teal).
		Bold(true)

	t.WelcomeTitle = lipgloss.NewStyle().
		Foreground(Teal).
		Bold(true)
	t.WelcomeText = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.InputContainer = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(Border)
	t.InputPrompt = lipgloss.NewStyle().
		Foreground(Teal).
		Bold(true)

	t.StatusBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextMuted).
		Padding(0, 1)
	t.StatusError = lipgloss.NewStyle().
		Foreground(Rose).
		Bold(true)
	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(Teal).
		Bold(true)
	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	return t
}
