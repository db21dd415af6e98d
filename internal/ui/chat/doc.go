// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the Bubble Tea chat view: the transcript viewport,
// the conversation sidebar, the input line, and the status bar.
//
// The package is a thin presentation layer. All conversation state lives
// in the session controller; the view pulls read-only snapshots whenever
// the controller signals a change and issues controller operations as
// background commands.
package chat
