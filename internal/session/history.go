// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"strings"

	"eulogio/internal/model"
)

// ToHistory converts the visible transcript into the provider's history
// format: bot messages become the model role, user messages stay user.
// Entries that are blank, the synthetic handshake, the streaming
// placeholder, or still streaming (abandoned partials) are dropped;
// everything else passes through unchanged, in order.
func ToHistory(msgs []model.Message) []model.HistoryEntry {
	out := make([]model.HistoryEntry, 0, len(msgs))
	for _, m := range msgs {
		if m.IsStreaming {
			continue
		}
		trimmed := strings.TrimSpace(m.Text)
		if trimmed == "" || trimmed == model.HandshakeToken || trimmed == model.StreamingPlaceholder {
			continue
		}

		role := model.HistoryRoleUser
		if m.Sender == model.SenderBot {
			role = model.HistoryRoleModel
		}
		out = append(out, model.HistoryEntry{Role: role, Text: m.Text})
	}
	return out
}
