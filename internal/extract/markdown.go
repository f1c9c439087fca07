// Package extract mines learning items out of reconstructed transcript text.
//
// Subagents report learnings in free-form Markdown: headers in English or
// Spanish, numbered or bulleted lists, inline emphasis. The pipeline here is
// pattern-based on purpose; finding nothing is a normal outcome, not an error.
package extract

import (
	"regexp"
	"strings"
)

var (
	boldRe   = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	codeRe   = regexp.MustCompile("`([^`]+)`")
	italicRe = regexp.MustCompile(`\*([^*]+)\*`)
)

// CleanMarkdown unwraps bold, inline-code, and italic markers and collapses
// all whitespace runs (including newlines) to single spaces. Idempotent.
func CleanMarkdown(text string) string {
	text = boldRe.ReplaceAllString(text, "$1")
	text = codeRe.ReplaceAllString(text, "$1")
	text = italicRe.ReplaceAllString(text, "$1")
	return strings.Join(strings.Fields(text), " ")
}
