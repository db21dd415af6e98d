// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the reusable UI components for the eulogio
// TUI: the welcome pane, the conversation sidebar, and the credentials
// banner. Components are plain renderers; state lives in the chat model.
package components
