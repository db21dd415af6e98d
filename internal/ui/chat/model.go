// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"eulogio/internal/config"
	"eulogio/internal/model"
	"eulogio/internal/session"
	"eulogio/internal/ui/components"
	"eulogio/internal/ui/styles"
)

// Layout constants, in terminal rows/columns.
const (
	sidebarWidth = 30
	inputHeight  = 3 // border + input line + hint
	headerHeight = 1
	statusHeight = 1
)

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea model for the chat view.
type Model struct {
	// Collaborators
	controller *session.Controller
	theme      *styles.Theme
	keyMap     KeyMap

	// UI components
	viewport viewport.Model
	input    textinput.Model
	spinner  spinner.Model
	sidebar  components.Sidebar
	welcome  components.Welcome
	banner   components.CredentialsBanner

	// Dimensions
	width  int
	height int
	ready  bool

	// View state
	sidebarVisible bool
	statusMsg      string

	// Controller snapshot, refreshed on every StateChangedMsg
	messages []model.Message
	activeID string
	inFlight bool
}

// New creates the chat model. The controller must already be wired to its
// store and provider; SetNotify is hooked up by the caller once the
// tea.Program exists.
func New(ctrl *session.Controller, cfg *config.Config, theme *styles.Theme) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Escribe tu mensaje..."
	ti.CharLimit = 4096
	ti.Focus()

	vp := viewport.New(80, 20)
	vp.SetContent("")

	sp := spinner.New()
	sp.Spinner = spinner.Spinner{
		Frames: []string{"|", "/", "-", "\\"},
		FPS:    time.Second / 10,
	}
	sp.Style = theme.Spinner

	welcome := components.NewWelcome(theme)
	welcome.SetModelName(cfg.Gemini.Model)

	banner := components.NewCredentialsBanner(theme)
	banner.SetVisible(ctrl.CredentialsMissing())

	return Model{
		controller:     ctrl,
		theme:          theme,
		keyMap:         DefaultKeyMap(),
		viewport:       vp,
		input:          ti,
		spinner:        sp,
		sidebar:        components.NewSidebar(theme),
		welcome:        welcome,
		banner:         banner,
		sidebarVisible: cfg.UI.SidebarVisible,
	}
}

// Init starts the spinner. The first conversation is not opened yet: the
// welcome view stays up until the user submits, starts a new chat, or picks
// a saved conversation from the sidebar.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// refreshSnapshot pulls the controller's visible state into the model and
// rebuilds the transcript viewport.
func (m *Model) refreshSnapshot() {
	m.messages = m.controller.Messages()
	m.activeID = m.controller.ActiveID()
	m.inFlight = m.controller.InFlight()
	m.sidebar.SetConversations(m.controller.Conversations())
	m.sidebar.SetActiveID(m.activeID)
	m.banner.SetVisible(m.controller.CredentialsMissing())

	wasAtBottom := m.viewport.AtBottom()
	m.viewport.SetContent(m.renderTranscript())
	if wasAtBottom {
		m.viewport.GotoBottom()
	}
}
