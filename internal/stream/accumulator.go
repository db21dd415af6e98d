// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package stream turns a fragment stream into progressively-updated message
// text.
//
// The accumulator owns exactly one in-flight bot message per run: fragments
// are appended to an internal buffer, the whole buffer is re-normalized
// after each arrival, and the consumer's update callback replaces (never
// appends to) the message's display text. Fragments are processed strictly
// one at a time.
package stream

import (
	"context"
	"strings"

	"eulogio/internal/gemini"
	"eulogio/internal/model"
	"eulogio/internal/normalize"
)

// =============================================================================
// OUTCOME
// =============================================================================

// Outcome classifies how a stream run ended. The session controller maps
// each outcome to the user-visible notice appropriate to its context
// (greeting vs. reply).
type Outcome int

const (
	// OutcomeCompleted: the stream finished with usable text.
	OutcomeCompleted Outcome = iota
	// OutcomeEmpty: the stream finished but produced no usable text.
	OutcomeEmpty
	// OutcomeFailed: a fragment carried an error; partial text is discarded.
	OutcomeFailed
	// OutcomeNoStream: no stream was supplied at all.
	OutcomeNoStream
	// OutcomeCanceled: the turn's cancellation token fired; the message
	// was abandoned and must not be mutated further.
	OutcomeCanceled
)

// Result is the terminal state of one accumulation run. Text is only set
// for OutcomeCompleted.
type Result struct {
	Text    string
	Outcome Outcome
	Err     error
}

// =============================================================================
// ACCUMULATION
// =============================================================================

// Consume drains frags into a buffer, invoking update with the normalized
// buffer after every appended fragment. It blocks until the stream is
// exhausted, fails, or ctx is canceled.
//
// Leading all-whitespace fragments (provider warm-up chunks) are discarded
// outright so the transcript never opens with blank artifacts; once real
// content has arrived every fragment is appended verbatim.
func Consume(ctx context.Context, frags <-chan gemini.Fragment, update func(text string)) Result {
	if frags == nil {
		return Result{Outcome: OutcomeNoStream}
	}

	var buf strings.Builder
	for {
		select {
		case <-ctx.Done():
			return Result{Outcome: OutcomeCanceled}

		case f, ok := <-frags:
			if !ok {
				return finish(buf.String())
			}
			if f.Err != nil {
				return Result{Outcome: OutcomeFailed, Err: f.Err}
			}
			if buf.Len() == 0 && strings.TrimSpace(f.Text) == "" {
				continue
			}
			buf.WriteString(f.Text)

			// The token is re-checked before every mutation so a
			// canceled turn never touches a detached message.
			select {
			case <-ctx.Done():
				return Result{Outcome: OutcomeCanceled}
			default:
			}
			update(normalize.Normalize(buf.String()))
		}
	}
}

func finish(raw string) Result {
	text := normalize.Normalize(raw)
	if text == "" || text == model.StreamingPlaceholder {
		return Result{Outcome: OutcomeEmpty}
	}
	return Result{Text: text, Outcome: OutcomeCompleted}
}
