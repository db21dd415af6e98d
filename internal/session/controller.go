// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go.uber.org/zap"

	"eulogio/internal/model"
	"eulogio/internal/storage"
	"eulogio/internal/stream"
)

// ErrTurnInFlight is returned when a send is attempted while a previous
// bot reply is still streaming. The caller should keep input disabled and
// retry after the turn finalizes.
var ErrTurnInFlight = errors.New("a reply is already in flight")

// =============================================================================
// TURN TOKEN
// =============================================================================

// turn is the cancellation token of one streamed exchange. It pins the
// conversation and target message so a stream that outlives a conversation
// switch can never mutate the new transcript.
type turn struct {
	convID string
	msgID  string
	cancel context.CancelFunc
}

// =============================================================================
// CONTROLLER
// =============================================================================

// Controller owns the active transcript and the live provider session.
//
// All mutation flows through its operation methods; the presentation layer
// reads snapshots and is poked through the notify callback after every
// visible change. Operations block until their turn completes, so callers
// run them off the UI goroutine.
type Controller struct {
	mu       sync.Mutex
	store    *storage.Store
	provider Provider
	log      *zap.Logger
	notify   func()

	messages []model.Message
	activeID string // "" before the first conversation exists
	session  ProviderSession
	current  *turn
}

// NewController wires the controller to its collaborators. Construct once
// at process start.
func NewController(store *storage.Store, provider Provider, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{
		store:    store,
		provider: provider,
		log:      log,
	}
}

// SetNotify installs the presentation callback, invoked (never under the
// controller lock) after each visible state change.
func (c *Controller) SetNotify(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notify = fn
}

func (c *Controller) notifyChanged() {
	c.mu.Lock()
	fn := c.notify
	c.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// =============================================================================
// SNAPSHOTS
// =============================================================================

// Messages returns a copy of the active transcript.
func (c *Controller) Messages() []model.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// ActiveID returns the active conversation id, or "" before one exists.
func (c *Controller) ActiveID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.activeID
}

// InFlight reports whether a bot reply is currently streaming.
func (c *Controller) InFlight() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current != nil
}

// CredentialsMissing reports whether the provider lacks credentials; the
// UI surfaces this as a persistent banner.
func (c *Controller) CredentialsMissing() bool {
	return !c.provider.Available()
}

// Conversations lists stored conversations, newest activity first.
func (c *Controller) Conversations() []model.Conversation {
	return c.store.List()
}

// =============================================================================
// NEW CONVERSATION
// =============================================================================

// NewConversation persists the outgoing conversation, allocates a fresh id,
// and opens it with the synthetic handshake so the assistant introduces
// itself. Blocks until the greeting finalizes (or immediately when the
// provider is unavailable).
func (c *Controller) NewConversation(ctx context.Context) error {
	c.mu.Lock()
	c.cancelTurnLocked()
	c.persistActiveLocked()

	id := model.NewConversationID()
	greeting := model.NewGreetingPlaceholder(id)
	c.activeID = id
	c.messages = []model.Message{greeting}
	c.session = nil
	c.mu.Unlock()
	c.notifyChanged()

	sess, err := c.provider.CreateSession(ctx, nil)
	if err != nil {
		// Credentials were configured but the session could not be
		// built: fatal for this conversation, no greeting attempted.
		c.log.Error("session creation failed", zap.String("conversation", id), zap.Error(err))
		c.mu.Lock()
		if c.activeID != id {
			c.mu.Unlock()
			return nil
		}
		c.messages = []model.Message{model.NewBotError(NoticeSessionInitFailed)}
		c.persistActiveLocked()
		c.mu.Unlock()
		c.notifyChanged()
		return nil
	}
	if sess == nil {
		// No credentials. The greeting placeholder stays pending; the
		// first send replaces it and surfaces the config notice.
		return nil
	}

	c.mu.Lock()
	if c.activeID != id {
		c.mu.Unlock()
		return nil
	}
	c.session = sess
	my, turnCtx := c.beginTurnLocked(ctx, id, greeting.ID)
	c.mu.Unlock()

	c.log.Info("starting greeting handshake",
		zap.String("conversation", id),
		zap.String("session", sess.ID()))

	frags := sess.SendStream(turnCtx, model.HandshakeToken)
	res := stream.Consume(turnCtx, frags, func(text string) {
		c.updateStreaming(my, text)
	})
	c.completeTurn(my, res, NoticeGreetingNoStream, NoticeGreetingFailed)
	return nil
}

// =============================================================================
// LOAD CONVERSATION
// =============================================================================

// LoadConversation makes a stored conversation active, persisting the
// outgoing one first, and reconstructs a provider session seeded with the
// record's filtered history.
func (c *Controller) LoadConversation(ctx context.Context, id string) error {
	c.mu.Lock()
	rec, err := c.store.Get(id)
	if err != nil {
		c.mu.Unlock()
		return err
	}

	c.cancelTurnLocked()
	if c.activeID != "" && c.activeID != id {
		c.persistActiveLocked()
	}

	c.messages = append([]model.Message(nil), rec.Messages...)
	c.activeID = rec.ID
	c.session = nil
	c.mu.Unlock()
	c.notifyChanged()

	sess, err := c.provider.CreateSession(ctx, model.StripHandshake(rec.History))
	if err != nil {
		// Surfaced on the next send as a no-session notice.
		c.log.Error("failed to reconstruct session", zap.String("conversation", id), zap.Error(err))
		return nil
	}
	if sess == nil {
		return nil
	}

	c.mu.Lock()
	if c.activeID == rec.ID {
		c.session = sess
	}
	c.mu.Unlock()
	return nil
}

// =============================================================================
// SEND MESSAGE
// =============================================================================

// SendMessage appends the user's turn and streams the bot reply. Returns
// ErrTurnInFlight when a previous reply has not finalized yet. Blocks until
// the reply finalizes.
func (c *Controller) SendMessage(ctx context.Context, text string) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	c.mu.Lock()
	if c.current != nil {
		c.mu.Unlock()
		return ErrTurnInFlight
	}
	if c.activeID == "" {
		c.activeID = model.NewConversationID()
	}

	user := model.NewUserMessage(text)
	if c.pendingGreetingOnlyLocked() {
		// The greeting never completed (no provider session); the user
		// message takes the placeholder's slot instead of following it.
		c.messages = []model.Message{user}
	} else {
		c.messages = append(c.messages, user)
	}

	sess := c.session
	if sess == nil {
		notice := NoticeNoSession
		if !c.provider.Available() {
			notice = NoticeAPIKeyMissing
		}
		c.messages = append(c.messages, model.NewBotError(notice))
		c.persistActiveLocked()
		c.mu.Unlock()
		c.notifyChanged()
		return nil
	}

	bot := model.NewBotPlaceholder()
	c.messages = append(c.messages, bot)
	my, turnCtx := c.beginTurnLocked(ctx, c.activeID, bot.ID)
	c.mu.Unlock()
	c.notifyChanged()

	frags := sess.SendStream(turnCtx, text)
	res := stream.Consume(turnCtx, frags, func(t string) {
		c.updateStreaming(my, t)
	})
	c.completeTurn(my, res, NoticeReplyNoStream, NoticeReplyFailed)
	return nil
}

// pendingGreetingOnlyLocked reports whether the transcript holds nothing
// but a still-pending greeting placeholder.
func (c *Controller) pendingGreetingOnlyLocked() bool {
	return len(c.messages) == 1 &&
		c.messages[0].Sender == model.SenderBot &&
		c.messages[0].IsStreaming &&
		strings.TrimSpace(c.messages[0].Text) == ""
}

// =============================================================================
// DELETE CONVERSATION
// =============================================================================

// DeleteConversation removes a stored conversation. When it was the active
// one, active state is cleared and a fresh conversation is initialized.
func (c *Controller) DeleteConversation(ctx context.Context, id string) error {
	if err := c.store.Delete(id); err != nil && !errors.Is(err, storage.ErrNotFound) {
		return err
	}

	c.mu.Lock()
	if c.activeID != id {
		c.mu.Unlock()
		c.notifyChanged()
		return nil
	}
	c.cancelTurnLocked()
	c.activeID = ""
	c.messages = nil
	c.session = nil
	c.mu.Unlock()
	c.notifyChanged()

	return c.NewConversation(ctx)
}

// =============================================================================
// TURN PLUMBING
// =============================================================================

// beginTurnLocked registers a new in-flight turn. Caller holds c.mu.
func (c *Controller) beginTurnLocked(ctx context.Context, convID, msgID string) (*turn, context.Context) {
	turnCtx, cancel := context.WithCancel(ctx)
	t := &turn{convID: convID, msgID: msgID, cancel: cancel}
	c.current = t
	return t, turnCtx
}

// cancelTurnLocked abandons the in-flight turn, if any. Caller holds c.mu.
func (c *Controller) cancelTurnLocked() {
	if c.current != nil {
		c.log.Debug("abandoning in-flight turn",
			zap.String("conversation", c.current.convID),
			zap.String("message", c.current.msgID))
		c.current.cancel()
		c.current = nil
	}
}

// updateStreaming replaces the streaming message's text, provided the turn
// is still the current one.
func (c *Controller) updateStreaming(my *turn, text string) {
	c.mu.Lock()
	if c.current != my {
		c.mu.Unlock()
		return
	}
	for i := range c.messages {
		if c.messages[i].ID == my.msgID && c.messages[i].IsStreaming {
			c.messages[i].Text = text
			break
		}
	}
	c.mu.Unlock()
	c.notifyChanged()
}

// completeTurn finalizes the turn's message according to the stream result
// and persists the conversation. A superseded or canceled turn changes
// nothing.
func (c *Controller) completeTurn(my *turn, res stream.Result, noStreamNotice, failNotice string) {
	c.mu.Lock()
	if c.current != my {
		c.mu.Unlock()
		return
	}
	c.current = nil
	my.cancel()

	if res.Outcome == stream.OutcomeCanceled {
		c.mu.Unlock()
		return
	}

	text := res.Text
	switch res.Outcome {
	case stream.OutcomeEmpty:
		text = NoticeEmptyResponse
	case stream.OutcomeFailed:
		c.log.Error("stream failed mid-turn",
			zap.String("conversation", my.convID),
			zap.Error(res.Err))
		text = failNotice
	case stream.OutcomeNoStream:
		c.log.Warn("provider returned no stream", zap.String("conversation", my.convID))
		text = noStreamNotice
	}

	for i := range c.messages {
		if c.messages[i].ID == my.msgID {
			c.messages[i].Text = text
			c.messages[i].IsStreaming = false
			break
		}
	}
	c.persistActiveLocked()
	c.mu.Unlock()
	c.notifyChanged()
}

// =============================================================================
// PERSISTENCE CHECKPOINT
// =============================================================================

// persistActiveLocked snapshots the active transcript into the store.
// Caller holds c.mu. Empty transcripts and transcripts holding only an
// unfinished greeting placeholder are skipped so no ghost records appear.
func (c *Controller) persistActiveLocked() {
	if c.activeID == "" || len(c.messages) == 0 {
		return
	}
	if len(c.messages) == 1 && c.messages[0].Sender == model.SenderBot && c.messages[0].IsStreaming {
		return
	}

	msgs := make([]model.Message, len(c.messages))
	copy(msgs, c.messages)

	conv := model.Conversation{
		ID:        c.activeID,
		Messages:  msgs,
		Timestamp: model.NowMillis(),
		History:   ToHistory(msgs),
	}
	if err := c.store.Upsert(conv); err != nil {
		c.log.Error("failed to persist conversation",
			zap.String("conversation", c.activeID),
			zap.Error(err))
	}
}
