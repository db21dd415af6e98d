// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package htmltext flattens the assistant's HTML replies into plain text
// for terminal rendering. The assistant is instructed to answer with a
// small tag vocabulary (p, ul, ol, li, strong, em, br, a); everything
// else degrades to its text content.
package htmltext

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Flatten converts an HTML fragment to plain text. Paragraphs and list
// items become lines, list markers are prepended, and link targets are
// kept in parentheses when they differ from the anchor text. Input that
// is not parseable HTML is returned unchanged.
func Flatten(fragment string) string {
	if !strings.Contains(fragment, "<") {
		return fragment
	}

	nodes, err := html.ParseFragment(strings.NewReader(fragment), bodyContext())
	if err != nil {
		return fragment
	}

	var w writer
	for _, n := range nodes {
		w.walk(n, "")
	}
	return strings.TrimRight(w.b.String(), "\n")
}

func bodyContext() *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	}
}

// writer accumulates flattened output, coalescing block boundaries so
// consecutive paragraphs are separated by exactly one blank line.
type writer struct {
	b        strings.Builder
	lineOpen bool
}

func (w *writer) walk(n *html.Node, marker string) {
	switch n.Type {
	case html.TextNode:
		text := collapseSpaces(n.Data)
		if strings.TrimSpace(text) == "" {
			return
		}
		if !w.lineOpen {
			text = strings.TrimLeft(text, " ")
			if marker != "" {
				w.b.WriteString(marker)
			}
		}
		w.b.WriteString(text)
		w.lineOpen = true

	case html.ElementNode:
		switch n.Data {
		case "br":
			w.newline()
			return
		case "p", "div":
			w.blockBreak()
			w.walkChildren(n, marker)
			w.blockBreak()
			return
		case "ul", "ol":
			w.blockBreak()
			i := 1
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.ElementNode && c.Data == "li" {
					w.newline()
					w.walk(c, listMarker(n.Data, i))
					i++
					continue
				}
				w.walk(c, marker)
			}
			w.blockBreak()
			return
		case "li":
			if !w.lineOpen && marker != "" {
				w.b.WriteString(marker)
				w.lineOpen = true
			}
			w.walkChildren(n, "")
			return
		case "a":
			w.walkChildren(n, marker)
			if href := attr(n, "href"); href != "" && href != textContent(n) {
				w.b.WriteString(" (" + href + ")")
				w.lineOpen = true
			}
			return
		case "script", "style":
			return
		}
		w.walkChildren(n, marker)
	}
}

func (w *writer) walkChildren(n *html.Node, marker string) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.walk(c, marker)
	}
}

func (w *writer) newline() {
	if w.lineOpen {
		w.b.WriteString("\n")
		w.lineOpen = false
	}
}

func (w *writer) blockBreak() {
	if w.b.Len() == 0 {
		return
	}
	w.newline()
	if !strings.HasSuffix(w.b.String(), "\n\n") {
		w.b.WriteString("\n")
	}
}

func listMarker(listTag string, index int) string {
	if listTag == "ol" {
		return strconv.Itoa(index) + ". "
	}
	return "• "
}

// collapseSpaces squashes interior whitespace runs while preserving single
// boundary spaces, so inline siblings like "<strong>Nota:</strong> siguiente"
// keep their separator.
func collapseSpaces(s string) string {
	collapsed := strings.Join(strings.Fields(s), " ")
	if collapsed == "" {
		return ""
	}
	if isSpace(s[0]) {
		collapsed = " " + collapsed
	}
	if isSpace(s[len(s)-1]) {
		collapsed += " "
	}
	return collapsed
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\n' || b == '\t' || b == '\r'
}

// attr returns the value of the named attribute, or "" when absent.
func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var rec func(*html.Node)
	rec = func(c *html.Node) {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
		for g := c.FirstChild; g != nil; g = g.NextSibling {
			rec(g)
		}
	}
	rec(n)
	return strings.TrimSpace(b.String())
}
