// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session orchestrates the conversation lifecycle.
//
// The Controller owns the single active transcript and the live provider
// session, and synchronizes them into the storage layer at well-defined
// checkpoints: turn completion, conversation switch, and conversation
// creation. New conversations open with a synthetic "Hola" handshake that
// elicits the assistant's greeting without ever being shown.
//
// # Operations
//
//   - NewConversation: allocate an id, stream the opening greeting
//   - LoadConversation: activate a stored transcript, reseed the provider
//   - SendMessage: run one user turn through the streaming accumulator
//   - DeleteConversation: drop a record, re-initializing when it was active
//
// All provider failures are converted to in-band bot notices; nothing is
// retried automatically, and no failure crosses into the presentation
// layer as an exception.
package session
