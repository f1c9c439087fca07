// Package hooks provides the envelope and response plumbing shared by the
// engram Claude Code hooks.
package hooks

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
)

// Input is the envelope Claude Code writes to a hook's stdin. Fields absent
// from the payload stay empty.
type Input struct {
	SessionID           string `json:"session_id"`
	AgentTranscriptPath string `json:"agent_transcript_path"`
	TranscriptPath      string `json:"transcript_path"`
	CWD                 string `json:"cwd"`
	HookEventName       string `json:"hook_event_name"`
}

// ParseInput decodes a hook envelope. Empty or malformed payloads decode to
// the zero value: a bad envelope degrades the run, it never fails it.
func ParseInput(raw []byte) Input {
	var in Input
	if len(bytes.TrimSpace(raw)) == 0 {
		return in
	}
	if err := json.Unmarshal(raw, &in); err != nil {
		return Input{}
	}
	return in
}

// ProjectName derives the project identity from the hook's working
// directory: its final path segment, or "unknown" when there is none.
func ProjectName(cwd string) string {
	if strings.TrimSpace(cwd) == "" {
		return "unknown"
	}
	base := filepath.Base(cwd)
	if base == "/" || base == "." {
		return "unknown"
	}
	return base
}

// HookResponse is the response sent back to Claude Code.
type HookResponse struct {
	Continue bool `json:"continue"`
}

// WriteResponse writes a hook response to stdout.
func WriteResponse(hookName string, success bool) {
	data, _ := json.Marshal(HookResponse{Continue: success})
	fmt.Println(string(data))
}
