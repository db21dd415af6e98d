// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"html"
	"strings"
	"time"

	"eulogio/internal/model"
)

// =============================================================================
// HTML EXPORTER
// =============================================================================

// HTMLExporter exports conversations to a standalone HTML document meant
// for printing. Assistant messages already carry display HTML and are
// embedded as-is; user text is escaped.
type HTMLExporter struct {
	options *Options
}

// NewHTMLExporter creates a new HTML exporter.
func NewHTMLExporter(opts *Options) *HTMLExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &HTMLExporter{options: opts}
}

const htmlStyle = `
  body { font-family: Georgia, serif; max-width: 46rem; margin: 2rem auto; padding: 0 1rem; color: #1f2937; }
  header { border-bottom: 2px solid #0d9488; margin-bottom: 1.5rem; padding-bottom: 0.5rem; }
  h1 { color: #0d9488; margin-bottom: 0.25rem; }
  .meta { color: #6b7280; font-size: 0.875rem; }
  .message { margin-bottom: 1.25rem; }
  .label { font-weight: bold; }
  .label.user { color: #0284c7; }
  .label.bot { color: #0d9488; }
  .timestamp { color: #6b7280; font-size: 0.75rem; margin-left: 0.5rem; }
  .body { margin-top: 0.25rem; }
  @media print { body { margin: 0 auto; } }
`

// Export converts a conversation to a standalone HTML document.
func (e *HTMLExporter) Export(conv model.Conversation) ([]byte, error) {
	if len(conv.Messages) == 0 {
		return nil, fmt.Errorf("conversation has no messages")
	}

	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html lang=\"es\">\n<head>\n")
	sb.WriteString("<meta charset=\"utf-8\">\n")
	sb.WriteString(fmt.Sprintf("<title>%s</title>\n", html.EscapeString(conv.Name)))
	sb.WriteString("<style>" + htmlStyle + "</style>\n")
	sb.WriteString("</head>\n<body>\n")

	sb.WriteString("<header>\n")
	sb.WriteString(fmt.Sprintf("<h1>%s</h1>\n", html.EscapeString(conv.Name)))
	if e.options.IncludeMetadata {
		sb.WriteString(fmt.Sprintf("<div class=\"meta\">%s · %d mensajes · exportado con eulogio</div>\n",
			time.UnixMilli(conv.Timestamp).Format("2006-01-02 15:04"),
			len(conv.Messages)))
	}
	sb.WriteString("</header>\n")

	for _, msg := range conv.Messages {
		class := "bot"
		body := msg.Text // display HTML, embedded verbatim
		if msg.Sender == model.SenderUser {
			class = "user"
			body = "<p>" + html.EscapeString(msg.Text) + "</p>"
		}

		sb.WriteString("<div class=\"message\">\n")
		sb.WriteString(fmt.Sprintf("<span class=\"label %s\">%s</span>", class, senderLabel(msg.Sender)))
		if e.options.IncludeTimestamps {
			sb.WriteString(fmt.Sprintf("<span class=\"timestamp\">%s</span>", formatShortTimestamp(msg.Timestamp)))
		}
		sb.WriteString("\n<div class=\"body\">" + body + "</div>\n")
		sb.WriteString("</div>\n")
	}

	sb.WriteString("</body>\n</html>\n")
	return []byte(sb.String()), nil
}

// FileExtension returns the file extension for HTML.
func (e *HTMLExporter) FileExtension() string {
	return ".html"
}
