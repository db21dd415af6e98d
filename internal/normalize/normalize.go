// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package normalize cleans model-generated text before it reaches the view.
//
// The assistant is instructed to answer in plain HTML, but models sometimes
// wrap their output in Markdown code fences anyway. Normalize strips those
// fence artifacts so raw ``` delimiters never show up in the transcript.
package normalize

import (
	"regexp"
	"strings"
)

var (
	// A complete fenced block: opening fence with optional language tag,
	// content, closing fence. (?s) so the body may span lines.
	fullFenceRe = regexp.MustCompile("(?s)^```(\\w*)[ \t]*\n?(.*?)\n?[ \t]*```$")

	// A dangling opening fence, optionally tagged as a markup/data
	// language, with no matching close yet. Seen mid-stream before the
	// closing fence has arrived.
	leadingFenceRe = regexp.MustCompile("(?i)^```(?:html|json)?[ \t]*\n")
)

// Normalize strips code-fence wrappers from raw generated text.
//
// If the whole trimmed input is a fenced block, the inner content is
// returned. If it merely starts with an opening fence, just that marker is
// stripped. Otherwise the trimmed input is returned unchanged. Pure and
// idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(raw string) string {
	text := strings.TrimSpace(raw)
	// Unwrapping can expose another fence (models occasionally nest
	// them); every pass strictly shrinks the text, so this terminates.
	for {
		next := stripFence(text)
		if next == text {
			return text
		}
		text = next
	}
}

func stripFence(text string) string {
	if m := fullFenceRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[2])
	}
	return strings.TrimSpace(leadingFenceRe.ReplaceAllString(text, ""))
}
