// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"strconv"
	"strings"
	"time"

	"eulogio/internal/util"
)

// =============================================================================
// HISTORY ENTRY
// =============================================================================

// HistoryRole is the provider-facing role of a history entry.
type HistoryRole string

const (
	HistoryRoleUser  HistoryRole = "user"
	HistoryRoleModel HistoryRole = "model"
)

// HistoryEntry is one turn in the provider's expected history format.
type HistoryEntry struct {
	Role HistoryRole `json:"role"`
	Text string      `json:"text"`
}

// =============================================================================
// CONVERSATION TYPE
// =============================================================================

// NameMaxLen caps derived conversation names, matching the 30-character
// truncation of the first user message.
const NameMaxLen = 30

// Conversation is a persisted transcript plus the provider-format history
// snapshot used to reconstruct a session.
type Conversation struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Messages  []Message      `json:"messages"`
	Timestamp int64          `json:"timestamp"`
	History   []HistoryEntry `json:"chatHistoryForAPI"`
}

// NewConversationID allocates a time-based conversation id. Used both as
// the store key and the provider-session correlation key.
func NewConversationID() string {
	return strconv.FormatInt(NowMillis(), 10)
}

// DeriveName produces a human-readable title from the first real user
// message, truncated. When no such message exists it falls back to a
// time-stamped label from the first message in the transcript.
func DeriveName(msgs []Message) string {
	for _, m := range msgs {
		if m.Sender == SenderUser && !m.IsHandshake() && strings.TrimSpace(m.Text) != "" {
			name := util.CollapseWhitespace(strings.TrimSpace(m.Text))
			return util.TruncateString(name, NameMaxLen)
		}
	}

	at := NowMillis()
	if len(msgs) > 0 && msgs[0].Timestamp > 0 {
		at = msgs[0].Timestamp
	}
	return "Conversación " + time.UnixMilli(at).Format("15:04:05")
}

// StripHandshake removes a leading handshake user/model pair from a history
// snapshot, then drops any remaining handshake or placeholder entries. The
// result is safe to store and to seed a new provider session with.
func StripHandshake(history []HistoryEntry) []HistoryEntry {
	if len(history) >= 2 &&
		history[0].Role == HistoryRoleUser &&
		strings.TrimSpace(history[0].Text) == HandshakeToken &&
		history[1].Role == HistoryRoleModel {
		history = history[1:]
	}

	out := make([]HistoryEntry, 0, len(history))
	for _, e := range history {
		trimmed := strings.TrimSpace(e.Text)
		if trimmed == "" || trimmed == HandshakeToken || trimmed == StreamingPlaceholder {
			continue
		}
		out = append(out, e)
	}
	return out
}
