// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package gemini

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// =============================================================================
// FRAGMENT
// =============================================================================

// Fragment is one streamed chunk of generated text. A Fragment with a
// non-nil Err terminates the stream.
type Fragment struct {
	Text string
	Err  error
}

// =============================================================================
// SESSION
// =============================================================================

// Session is an opaque handle to one ongoing exchange. The underlying chat
// carries its own history; the session is swapped wholesale when the active
// conversation changes.
type Session struct {
	id   string
	chat *genai.Chat
	log  *zap.Logger
}

func newSession(chat *genai.Chat, log *zap.Logger) *Session {
	return &Session{
		id:   uuid.NewString(),
		chat: chat,
		log:  log,
	}
}

// ID returns the session correlation id, used in logs.
func (s *Session) ID() string {
	return s.id
}

// SendStream sends text to the model and returns the response as a channel
// of fragments. The channel is closed when the stream ends; a mid-stream
// failure arrives as a final Fragment with Err set.
func (s *Session) SendStream(ctx context.Context, text string) <-chan Fragment {
	ch := make(chan Fragment)

	go func() {
		defer close(ch)
		for resp, err := range s.chat.SendMessageStream(ctx, genai.Part{Text: text}) {
			if err != nil {
				s.log.Error("stream failed",
					zap.String("session", s.id),
					zap.Error(err))
				select {
				case ch <- Fragment{Err: err}:
				case <-ctx.Done():
				}
				return
			}
			select {
			case ch <- Fragment{Text: resp.Text()}:
			case <-ctx.Done():
				return
			}
		}
	}()

	return ch
}
