// Package privacy removes spans that must never be captured from transcript
// text: user-marked private content and context the hooks injected themselves.
package privacy

import (
	"regexp"
	"strings"
)

// redacted lists the tag spans dropped before any text is mined for learnings.
// Stripping <engram-context> keeps previously injected observations from
// being re-captured as new ones.
var redacted = []*regexp.Regexp{
	regexp.MustCompile(`(?s)<private>.*?</private>`),
	regexp.MustCompile(`(?s)<engram-context>.*?</engram-context>`),
}

// Clean removes all redacted spans from text and trims surrounding whitespace.
func Clean(text string) string {
	for _, re := range redacted {
		text = re.ReplaceAllString(text, "")
	}
	return strings.TrimSpace(text)
}
