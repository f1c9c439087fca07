// Package transcript reads Claude Code JSONL transcripts: reconstructing the
// human-readable output of a session and detecting which subagent ran last.
package transcript

import (
	"bufio"
	"bytes"
	"os"
	"strings"

	json "github.com/goccy/go-json"
)

// Transcript lines holding tool output can be very large.
const maxLineSize = 10 * 1024 * 1024

// record is the loose shape shared by all transcript line variants. Fields a
// given line does not carry simply decode to their zero value.
type record struct {
	Type    string `json:"type"`
	Message struct {
		Content json.RawMessage `json:"content"`
	} `json:"message"`
	Content   json.RawMessage `json:"content"`
	ToolInput struct {
		SubagentType string `json:"subagent_type"`
	} `json:"tool_input"`
}

// contentItem is one entry of a message content array.
type contentItem struct {
	Type    string          `json:"type"`
	Text    string          `json:"text"`
	Name    string          `json:"name"`
	Content json.RawMessage `json:"content"`
	Input   struct {
		SubagentType string `json:"subagent_type"`
	} `json:"input"`
}

// Text reconstructs the readable output of a transcript in file order:
// assistant text blocks, Task subagent results, and legacy top-level
// tool_result strings, newline-joined. Lines that fail to parse are skipped.
// A read error mid-file returns the text collected so far along with the
// error; callers log it and work with what came back.
func Text(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var parts []string

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 256*1024), maxLineSize)
	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		var rec record
		if err := json.Unmarshal(line, &rec); err != nil {
			continue
		}

		switch rec.Type {
		case "assistant":
			for _, item := range contentItems(rec.Message.Content) {
				if item.Type == "text" && item.Text != "" {
					parts = append(parts, item.Text)
				}
			}

		case "user":
			// Task subagent output arrives as tool_result items whose content
			// is itself an array of blocks. Plain string content is ordinary
			// tool output (Bash, Read, ...) and is ignored. This shape
			// distinction is a heuristic of the transcript format; if it
			// changes upstream, subagent text silently stops flowing here.
			for _, item := range contentItems(rec.Message.Content) {
				if item.Type != "tool_result" {
					continue
				}
				for _, block := range contentItems(item.Content) {
					if block.Type == "text" && block.Text != "" {
						parts = append(parts, unescapeNewlines(block.Text))
					}
				}
			}

		case "tool_result":
			// Legacy shape: tool_result at the top level with string content.
			var s string
			if err := json.Unmarshal(rec.Content, &s); err == nil && s != "" {
				parts = append(parts, unescapeNewlines(s))
			}
		}
	}

	return strings.Join(parts, "\n"), sc.Err()
}

// contentItems decodes a content value when it is an array; any other shape
// (string, null, absent) yields nil.
func contentItems(raw json.RawMessage) []contentItem {
	if len(raw) == 0 {
		return nil
	}
	var items []contentItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	return items
}

// unescapeNewlines turns literal backslash-n sequences into real newlines.
// Subagent result blocks arrive with their newlines escaped.
func unescapeNewlines(s string) string {
	return strings.ReplaceAll(s, `\n`, "\n")
}
