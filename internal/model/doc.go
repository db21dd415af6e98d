// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and messages.
//
// This package defines the core domain types used throughout the application
// for representing chat transcripts, provider-facing history, and the
// sentinel tokens of the greeting handshake protocol.
//
// # Key Types
//
//   - Message: Single transcript entry with sender, HTML text, and streaming state
//   - Conversation: Persisted transcript with derived name and history snapshot
//   - HistoryEntry: Provider-format turn (user/model role plus text)
//   - Sender: Message sender enumeration (user, bot)
//
// # Sentinels
//
// HandshakeToken is the synthetic "Hola" first turn that elicits the opening
// greeting; StreamingPlaceholder marks an in-flight bot reply. Neither may
// ever reach provider history or persisted records.
package model
