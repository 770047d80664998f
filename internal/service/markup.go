package service

import (
	"html"
	"regexp"
	"strings"
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// stripMarkup removes markup tags and entity noise from a rich-text blob,
// leaving the bare text. The body is otherwise opaque to the core.
func stripMarkup(blob string) string {
	text := tagPattern.ReplaceAllString(blob, "")
	text = html.UnescapeString(text)
	return strings.TrimSpace(text)
}

// hasContent reports whether the markup blob contains at least one
// non-whitespace character once tags are stripped. An editor full of empty
// paragraphs does not count as content.
func hasContent(blob string) bool {
	return stripMarkup(blob) != ""
}
