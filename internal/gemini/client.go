// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package gemini

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"eulogio/internal/config"
	"eulogio/internal/model"
)

// =============================================================================
// CLIENT
// =============================================================================

// Client is the generation provider handle. Construct once at startup and
// inject; a Client without credentials is valid but unavailable.
type Client struct {
	client *genai.Client // nil when unavailable
	model  string
	system string
	log    *zap.Logger
}

// New builds a provider client from configuration. A missing API key is not
// an error: the returned client simply reports Available() == false.
func New(ctx context.Context, cfg config.GeminiConfig, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}

	c := &Client{
		model:  cfg.Model,
		system: cfg.SystemInstruction,
		log:    log,
	}

	if strings.TrimSpace(cfg.APIKey) == "" {
		log.Warn("no Gemini API key configured, provider unavailable")
		return c
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		// Credentials were present but the client could not be built.
		// Treated like unavailability; session creation will surface it.
		log.Error("failed to create Gemini client", zap.Error(err))
		return c
	}

	c.client = client
	return c
}

// Available reports whether the provider can create sessions.
func (c *Client) Available() bool {
	return c != nil && c.client != nil
}

// CreateSession opens a chat session seeded with the given history. The nil
// session / nil error combination means the provider is unavailable; a
// non-nil error means creation failed despite configured credentials.
func (c *Client) CreateSession(ctx context.Context, history []model.HistoryEntry) (*Session, error) {
	if !c.Available() {
		return nil, nil
	}

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(c.system, genai.RoleUser),
	}

	chat, err := c.client.Chats.Create(ctx, c.model, cfg, toContents(history))
	if err != nil {
		return nil, fmt.Errorf("failed to create chat session: %w", err)
	}

	return newSession(chat, c.log), nil
}

// toContents converts provider-format history entries to the SDK shape.
func toContents(history []model.HistoryEntry) []*genai.Content {
	if len(history) == 0 {
		return nil
	}
	contents := make([]*genai.Content, 0, len(history))
	for _, e := range history {
		// The SDK's role constants are untyped strings; pin the type so
		// the variable satisfies NewContentFromText's Role parameter.
		role := genai.Role(genai.RoleUser)
		if e.Role == model.HistoryRoleModel {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(e.Text, role))
	}
	return contents
}
