// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package gemini wraps the Google Gemini API as the generation provider.
//
// Unavailability is a first-class state, not an error: a Client built
// without credentials reports Available() == false and CreateSession
// returns a nil session, which callers must treat as a failure path of
// its own (distinct from a session-creation error with credentials).
//
// # Key Types
//
//   - Client: provider handle, created once at startup
//   - Session: opaque streaming chat session carrying its own history
//   - Fragment: one streamed chunk of generated text (or a terminal error)
package gemini
