// Package capture implements the SubagentStop passive-capture pipeline:
// health check, transcript availability, agent detection, learnings
// extraction, and per-item submission. Every outcome is logged and absorbed;
// nothing here may block the agent workflow.
package capture

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/thebtf/engram-hooks/internal/config"
	"github.com/thebtf/engram-hooks/internal/engram"
	"github.com/thebtf/engram-hooks/internal/extract"
	"github.com/thebtf/engram-hooks/internal/privacy"
	"github.com/thebtf/engram-hooks/internal/transcript"
	"github.com/thebtf/engram-hooks/pkg/hooks"
)

// Source tags every observation captured by this hook.
const Source = "subagent-stop-hook"

// Titles keep the first 60 characters of the learning.
const titleLimit = 60

// Run executes one capture pass. Each precondition short-circuits the run
// with a log line; submission failures are counted per item and never stop
// the remaining items.
func Run(ctx context.Context, cfg *config.Config, in hooks.Input) {
	project := hooks.ProjectName(in.CWD)
	log.Info().Str("session", in.SessionID).Str("project", project).Msg("SubagentStop fired")

	client := engram.New(cfg)
	if !client.Healthy(ctx) {
		log.Warn().Str("url", cfg.BaseURL()).Msg("Engram server not reachable, skipping passive capture")
		return
	}

	if in.AgentTranscriptPath == "" {
		log.Warn().Msg("No agent transcript available")
		return
	}
	if _, err := os.Stat(in.AgentTranscriptPath); err != nil {
		log.Warn().Str("path", in.AgentTranscriptPath).Msg("Agent transcript not found")
		return
	}

	agent := transcript.AgentName(in.TranscriptPath)

	learnings := extractLearnings(cfg, in.AgentTranscriptPath)
	if len(learnings) == 0 {
		log.Info().Str("agent", agent).Msg("No learning section found in transcript")
		return
	}

	saved := 0
	for _, learning := range learnings {
		obs := engram.Observation{
			Title:   fmt.Sprintf("[%s] %s...", agent, truncate(learning, titleLimit)),
			Content: learning,
			Type:    "learning",
			Project: project,
			Metadata: engram.Metadata{
				SessionID:  in.SessionID,
				AgentName:  agent,
				Source:     Source,
				CapturedAt: time.Now().UTC().Format(time.RFC3339),
			},
		}

		id, err := client.SaveObservation(ctx, obs)
		if err != nil {
			log.Warn().Err(err).Str("title", obs.Title).Msg("Failed to save learning")
			continue
		}
		saved++
		log.Info().Int64("observation", id).Str("agent", agent).Msg("Saved learning")
	}

	log.Info().
		Int("saved", saved).
		Int("failed", len(learnings)-saved).
		Str("agent", agent).
		Str("session", in.SessionID).
		Msg("Passive capture complete")
}

// extractLearnings reconstructs the transcript text, drops redacted spans,
// and mines the learnings section.
func extractLearnings(cfg *config.Config, path string) []string {
	text, err := transcript.Text(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Error extracting text from transcript")
	}

	text = privacy.Clean(text)
	if text == "" {
		log.Info().Msg("Agent transcript is empty, nothing to capture")
		return nil
	}

	return extract.Learnings(text, cfg.MinLearningLength)
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
