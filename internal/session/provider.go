// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"context"

	"eulogio/internal/gemini"
	"eulogio/internal/model"
)

// =============================================================================
// PROVIDER CONTRACT
// =============================================================================

// Provider creates streaming chat sessions. The production implementation
// wraps the Gemini client; tests inject scripted fakes.
type Provider interface {
	// Available reports whether credentials are configured and usable.
	Available() bool

	// CreateSession opens a session seeded with history. nil/nil means
	// the provider is unavailable (a first-class state, not an error);
	// a non-nil error means creation failed despite credentials.
	CreateSession(ctx context.Context, history []model.HistoryEntry) (ProviderSession, error)
}

// ProviderSession is one opaque exchange with the generation service.
type ProviderSession interface {
	// ID is the session correlation id, used in logs.
	ID() string

	// SendStream sends text and returns the reply as a fragment stream.
	// A nil channel signals unavailability.
	SendStream(ctx context.Context, text string) <-chan gemini.Fragment
}

// =============================================================================
// GEMINI ADAPTER
// =============================================================================

// geminiProvider adapts *gemini.Client to the Provider interface while
// keeping a nil session a nil interface value.
type geminiProvider struct {
	client *gemini.Client
}

// WrapClient adapts the concrete Gemini client for injection into the
// Controller.
func WrapClient(c *gemini.Client) Provider {
	return geminiProvider{client: c}
}

func (p geminiProvider) Available() bool {
	return p.client.Available()
}

func (p geminiProvider) CreateSession(ctx context.Context, history []model.HistoryEntry) (ProviderSession, error) {
	s, err := p.client.CreateSession(ctx, history)
	if s == nil {
		// Do not let a typed nil pointer masquerade as a live session.
		return nil, err
	}
	return s, err
}
