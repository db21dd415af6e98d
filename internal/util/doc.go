// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions shared across the application.
//
// # Key Functions
//
// String Utilities:
//   - TruncateString: UTF-8 safe truncation with ellipsis
//   - CollapseWhitespace: newline flattening for one-line labels
//   - PadCell, FitCell: display-width aware padding and truncation
//
// File Operations:
//   - AtomicWriteFile: Crash-safe file writing with fsync
package util
