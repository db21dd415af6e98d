// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and messages.
package model

import (
	"strconv"
	"strings"
	"time"
)

// =============================================================================
// SENTINEL TOKENS
// =============================================================================

const (
	// HandshakeToken is the synthetic first user turn sent to elicit the
	// opening greeting. It is never rendered and never stored in history.
	HandshakeToken = "Hola"

	// StreamingPlaceholder marks a bot message whose reply is still in
	// flight. Filtered from provider history and from persistence.
	StreamingPlaceholder = "…"
)

// =============================================================================
// SENDER TYPE
// =============================================================================

// Sender identifies who produced a message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// String returns the string representation of the sender.
func (s Sender) String() string {
	return string(s)
}

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message is a single entry in the visible transcript.
//
// Text holds display-ready HTML. While IsStreaming is true the text is
// replaced wholesale on every fragment; once finalized it never changes.
// A streaming message always has Sender == SenderBot.
type Message struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	Sender      Sender `json:"sender"`
	Timestamp   int64  `json:"timestamp"`
	IsStreaming bool   `json:"isStreaming,omitempty"`
}

// NewUserMessage creates a finalized user message stamped with the current
// time. User messages are immutable after creation.
func NewUserMessage(text string) Message {
	now := NowMillis()
	return Message{
		ID:        "user-" + strconv.FormatInt(now, 10),
		Text:      text,
		Sender:    SenderUser,
		Timestamp: now,
	}
}

// NewBotPlaceholder creates an empty streaming bot message. The accumulator
// mutates its text in place until the stream finishes.
func NewBotPlaceholder() Message {
	now := NowMillis()
	return Message{
		ID:          "bot-stream-" + strconv.FormatInt(now, 10),
		Sender:      SenderBot,
		Timestamp:   now,
		IsStreaming: true,
	}
}

// NewGreetingPlaceholder creates the streaming placeholder that opens a new
// conversation, keyed to the conversation id.
func NewGreetingPlaceholder(conversationID string) Message {
	return Message{
		ID:          "bot-greeting-" + conversationID,
		Sender:      SenderBot,
		Timestamp:   NowMillis(),
		IsStreaming: true,
	}
}

// NewBotError creates a finalized bot message carrying an in-band error
// notice.
func NewBotError(text string) Message {
	now := NowMillis()
	return Message{
		ID:        "bot-error-" + strconv.FormatInt(now, 10),
		Text:      text,
		Sender:    SenderBot,
		Timestamp: now,
	}
}

// IsPlaceholder reports whether the message carries no real content: either
// still streaming with nothing accumulated yet, or holding the placeholder
// sentinel itself.
func (m Message) IsPlaceholder() bool {
	trimmed := strings.TrimSpace(m.Text)
	if m.IsStreaming && trimmed == "" {
		return true
	}
	return trimmed == StreamingPlaceholder
}

// IsHandshake reports whether the message text is the synthetic handshake.
func (m Message) IsHandshake() bool {
	return strings.TrimSpace(m.Text) == HandshakeToken
}

// IsError reports whether the message is an in-band error notice.
func (m Message) IsError() bool {
	return strings.HasPrefix(m.ID, "bot-error-")
}

// NowMillis returns the current time as epoch milliseconds, the timestamp
// unit used throughout the transcript.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}
