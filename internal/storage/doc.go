// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides conversation persistence for eulogio.
//
// All conversations live in a single JSON file as one serialized array,
// read once at startup and rewritten atomically after every mutation.
//
// # Key Types
//
//   - Store: ordered id→conversation collection with Upsert/Get/Delete/List
//
// # Durability Rules
//
// A corrupt file is discarded on load (the app continues empty); an empty
// in-memory collection never overwrites a non-empty file except through an
// explicit delete.
package storage
