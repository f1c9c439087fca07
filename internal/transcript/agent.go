package transcript

import (
	"bufio"
	"bytes"
	"os"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
)

// UnknownAgent is returned when no subagent dispatch can be found.
const UnknownAgent = "unknown"

// AgentName returns the subagent_type of the most recent Task dispatch found
// in the parent transcript, or UnknownAgent when the path is empty, the file
// is unreadable, or no dispatch appears. A subagent may itself dispatch
// further subagents, so the last match in file order is the one whose
// completion fired this hook.
//
// Two independent record shapes carry the field, and every line is checked
// against both: Task tool_use items inside a content array, and the
// pre-execution shape with a top-level tool_input.
func AgentName(path string) string {
	if path == "" {
		log.Warn().Msg("No parent transcript path provided")
		return UnknownAgent
	}

	f, err := os.Open(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Parent transcript not readable")
		return UnknownAgent
	}
	defer f.Close()

	var found []string

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

		// Task tool_use items, whether the content array sits under message
		// (standard lines) or at the top level.
		content := rec.Message.Content
		if len(content) == 0 {
			content = rec.Content
		}
		for _, item := range contentItems(content) {
			if item.Type == "tool_use" && item.Name == "Task" && item.Input.SubagentType != "" {
				found = append(found, item.Input.SubagentType)
			}
		}

		// Pre-execution shape (PreToolUse records).
		if rec.ToolInput.SubagentType != "" {
			found = append(found, rec.ToolInput.SubagentType)
		}
	}
	if err := sc.Err(); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Error reading parent transcript")
	}

	if len(found) == 0 {
		log.Warn().Str("path", path).Msg("Could not detect subagent_type from parent transcript")
		return UnknownAgent
	}

	agent := found[len(found)-1]
	log.Info().Str("agent", agent).Int("tasks", len(found)).Msg("Detected subagent")
	return agent
}
