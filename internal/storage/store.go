// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides conversation persistence for eulogio.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"

	"go.uber.org/zap"

	"eulogio/internal/model"
	"eulogio/internal/util"
)

// =============================================================================
// ERRORS
// =============================================================================

// ErrNotFound is returned when a conversation id is not in the store.
var ErrNotFound = &StoreError{Message: "conversation not found"}

// StoreError represents a storage-related error.
type StoreError struct {
	Message string
}

func (e *StoreError) Error() string {
	return e.Message
}

// Is implements errors.Is support.
func (e *StoreError) Is(target error) bool {
	t, ok := target.(*StoreError)
	if !ok {
		return false
	}
	return e.Message == t.Message
}

// =============================================================================
// CONVERSATION STORE
// =============================================================================

// Store holds every persisted conversation, mirrored to a single JSON file.
//
// The in-memory collection is the source of truth; the file is rewritten
// wholesale (atomically) after each mutation. An empty collection never
// overwrites a non-empty file unless the emptiness came from an explicit
// delete — so a fresh process that saved nothing cannot erase history.
type Store struct {
	mu      sync.Mutex
	path    string
	records []model.Conversation
	log     *zap.Logger
}

// NewStore loads the store from path. Malformed durable data is discarded
// (and logged) rather than surfaced: the app continues with an empty store.
func NewStore(path string, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Store{path: path, log: log}
	s.load()
	return s
}

// load reads the persisted conversation array, tolerating absence and
// corruption.
func (s *Store) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("failed to read conversations file", zap.Error(err))
		}
		return
	}

	var records []model.Conversation
	if err := json.Unmarshal(data, &records); err != nil {
		s.log.Warn("discarding corrupt conversations file", zap.Error(err))
		s.records = nil
		return
	}
	s.records = records
}

// =============================================================================
// MUTATIONS
// =============================================================================

// Upsert stores a conversation under its id. An existing record is replaced
// in place — messages, history, and timestamp are taken fresh, and the name
// is recomputed from the messages so the title improves as real content
// arrives. A new id is prepended.
func (s *Store) Upsert(conv model.Conversation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv.Name = model.DeriveName(conv.Messages)
	if conv.Timestamp == 0 {
		conv.Timestamp = model.NowMillis()
	}

	replaced := false
	for i := range s.records {
		if s.records[i].ID == conv.ID {
			s.records[i] = conv
			replaced = true
			break
		}
	}
	if !replaced {
		s.records = append([]model.Conversation{conv}, s.records...)
	}

	return s.persistLocked()
}

// Delete removes a conversation by id. Deleting the last record rewrites the
// file with an empty array: an explicit delete is allowed to erase.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.records {
		if s.records[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrNotFound
	}

	s.records = append(s.records[:idx], s.records[idx+1:]...)
	return s.persistLocked()
}

// =============================================================================
// QUERIES
// =============================================================================

// Get returns the conversation with the given id.
func (s *Store) Get(id string) (model.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.records {
		if c.ID == id {
			return c, nil
		}
	}
	return model.Conversation{}, ErrNotFound
}

// List returns all conversations ordered by last activity, newest first.
func (s *Store) List() []model.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Conversation, len(s.records))
	copy(out, s.records)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp > out[j].Timestamp
	})
	return out
}

// Len returns the number of stored conversations.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// =============================================================================
// PERSISTENCE
// =============================================================================

// persistLocked writes the collection to disk. Caller holds s.mu.
//
// The non-erasure rule: skip the write when the collection is empty AND no
// file exists yet. When the file does exist, an empty write is deliberate
// (the user deleted everything).
func (s *Store) persistLocked() error {
	if len(s.records) == 0 {
		if _, err := os.Stat(s.path); os.IsNotExist(err) {
			return nil
		}
	}

	records := s.records
	if records == nil {
		records = []model.Conversation{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode conversations: %w", err)
	}
	if err := util.AtomicWriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to persist conversations: %w", err)
	}
	return nil
}
