// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
//
// This file defines the Bubble Tea message types used by the chat view.
package chat

// StateChangedMsg signals that the session controller mutated visible
// state. The view responds by pulling a fresh snapshot. Sent from the
// controller's notify callback via Program.Send, so it can arrive from
// any goroutine.
type StateChangedMsg struct{}

// OpDoneMsg signals that a controller operation finished. Err carries
// rejections like an in-flight turn; in-band provider failures surface
// in the transcript instead.
type OpDoneMsg struct {
	Err error
}
