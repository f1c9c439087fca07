// Package main provides the subagent-stop hook entry point.
// It fires when a Task subagent completes and passively captures any
// self-reported learnings from its transcript into Engram.
package main

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/thebtf/engram-hooks/internal/capture"
	"github.com/thebtf/engram-hooks/internal/config"
	"github.com/thebtf/engram-hooks/internal/logging"
	"github.com/thebtf/engram-hooks/pkg/hooks"
)

const hookName = "SubagentStop"

func main() {
	logging.Setup("subagent-stop")

	// The hook must never block the agent workflow: whatever happens below,
	// Claude Code gets a continue response and exit code 0.
	defer func() {
		if r := recover(); r != nil {
			log.Warn().Interface("panic", r).Msg("Unexpected error in subagent-stop")
		}
		hooks.WriteResponse(hookName, true)
	}()

	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to read hook input")
		raw = nil
	}
	in := hooks.ParseInput(raw)

	cfg, err := config.Load()
	if err != nil {
		log.Warn().Err(err).Msg("Failed to load config, using defaults")
		cfg = config.Default()
	}

	capture.Run(context.Background(), cfg, in)
}
