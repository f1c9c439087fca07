package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
)

// headerRe recognizes the learnings section headers subagents actually write:
//
//	## Aprendizajes Clave:
//	## Key Learnings:
//	### Learnings
//
// Two or three header markers, optional trailing colon, alone on the line,
// any case.
var headerRe = regexp.MustCompile(
	`(?im)^#{2,3}[ \t]+(?:Aprendizajes(?:[ \t]+Clave)?|Key[ \t]+Learnings?|Learnings?):?[ \t]*$`,
)

// nextSectionRe marks the end of a section body: the next Markdown header.
var nextSectionRe = regexp.MustCompile(`\n#{1,3} `)

// Learnings returns the cleaned, validated learning items from the most
// recent learnings section in text. Candidate sections are scanned from the
// last header backward and the first one that yields at least one accepted
// item wins; a section full of placeholders falls through to the one before
// it. No section, or no valid items anywhere, returns nil.
func Learnings(text string, minLen int) []string {
	matches := headerRe.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return nil
	}

	for i := len(matches) - 1; i >= 0; i-- {
		section := text[matches[i][1]:]
		if cut := nextSectionRe.FindStringIndex(section); cut != nil {
			section = section[:cut[0]]
		}

		items := accepted(NumberedItems(section), minLen)
		if len(items) == 0 {
			items = accepted(BulletItems(section), minLen)
		}
		if len(items) > 0 {
			log.Info().Int("count", len(items)).Msg("Found learnings block")
			return items
		}
	}

	return nil
}

// accepted cleans raw list items and keeps the ones long enough to carry
// meaning. Items opening with a bracket are template placeholders like
// "[describe what you learned]" and are dropped.
func accepted(raw []string, minLen int) []string {
	var items []string
	for _, item := range raw {
		cleaned := CleanMarkdown(item)
		if utf8.RuneCountInString(cleaned) >= minLen && !strings.HasPrefix(cleaned, "[") {
			items = append(items, cleaned)
		}
	}
	return items
}
