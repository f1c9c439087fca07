package extract

import (
	"regexp"
	"strings"
)

var (
	numberedMarker = regexp.MustCompile(`(?m)^[ \t]*\d+[.)][ \t]+`)
	bulletMarker   = regexp.MustCompile(`(?m)^[ \t]*[-*][ \t]+`)
)

// NumberedItems returns the raw bodies of numbered list items ("1. text" or
// "1) text") in document order.
func NumberedItems(section string) []string {
	return markedItems(section, numberedMarker)
}

// BulletItems returns the raw bodies of bulleted list items ("- text" or
// "* text") in document order.
func BulletItems(section string) []string {
	return markedItems(section, bulletMarker)
}

// markedItems slices an item body out from behind each marker, running to the
// next marker of the same list, a blank line, or the end of the section.
// RE2 has no lookahead, so boundaries come from the marker positions instead.
func markedItems(section string, marker *regexp.Regexp) []string {
	locs := marker.FindAllStringIndex(section, -1)
	var items []string
	for i, loc := range locs {
		end := len(section)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		body := section[loc[1]:end]
		if cut := strings.Index(body, "\n\n"); cut >= 0 {
			body = body[:cut]
		}
		body = strings.TrimSpace(body)
		if body != "" {
			items = append(items, body)
		}
	}
	return items
}
