// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package render converts raw conversation text into display output.
//
// [Markup] produces sanitised HTML-like markup and is a pure function of its
// input. [Terminal] renders markdown for an ANSI terminal.
package render

import (
	"fmt"
	"html"
	"regexp"
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	fencedCodePattern = regexp.MustCompile("(?s)```[\\w+-]*\\n?(.*?)```")
	inlineCodePattern = regexp.MustCompile("`([^`\\n]+)`")
	boldPattern       = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicPattern     = regexp.MustCompile(`\*([^*\n]+)\*`)
	bulletPattern     = regexp.MustCompile(`(?m)^- (.*)$`)
	placeholderRegexp = regexp.MustCompile("\x00(B|C)(\\d+)\x00")
)

// Markup renders assistant and user text into a restricted markup dialect:
// <p>, <br>, <strong>, <em>, <code> and <pre>. Every other tag in the input
// is shown literally.
type Markup struct {
	policy *bluemonday.Policy
}

// NewMarkup returns a Markup renderer with its sanitising policy compiled.
func NewMarkup() *Markup {
	policy := bluemonday.NewPolicy()
	policy.AllowElements("p", "br", "strong", "em", "code", "pre")

	return &Markup{policy: policy}
}

// Render escapes raw, protects code spans, applies the emphasis, list and
// line-break substitutions, restores the code spans and sanitises the result.
func (m *Markup) Render(raw string) string {
	text := html.EscapeString(strings.ReplaceAll(raw, "\x00", ""))

	var blocks, spans []string
	text = fencedCodePattern.ReplaceAllStringFunc(text, func(match string) string {
		blocks = append(blocks, fencedCodePattern.FindStringSubmatch(match)[1])
		return fmt.Sprintf("\x00B%d\x00", len(blocks)-1)
	})
	text = inlineCodePattern.ReplaceAllStringFunc(text, func(match string) string {
		spans = append(spans, inlineCodePattern.FindStringSubmatch(match)[1])
		return fmt.Sprintf("\x00C%d\x00", len(spans)-1)
	})

	text = boldPattern.ReplaceAllString(text, "<strong>$1</strong>")
	text = italicPattern.ReplaceAllString(text, "<em>$1</em>")
	text = bulletPattern.ReplaceAllString(text, "• $1")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\n\n", "</p><p>")
	text = strings.ReplaceAll(text, "\n", "<br>")

	text = placeholderRegexp.ReplaceAllStringFunc(text, func(match string) string {
		sub := placeholderRegexp.FindStringSubmatch(match)
		idx, _ := strconv.Atoi(sub[2])
		if sub[1] == "B" {
			return "<pre><code>" + blocks[idx] + "</code></pre>"
		}
		return "<code>" + spans[idx] + "</code>"
	})

	return m.policy.Sanitize("<p>" + text + "</p>")
}
