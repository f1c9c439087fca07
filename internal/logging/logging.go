// Package logging wires the global zerolog logger for the hook binaries.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/thebtf/engram-hooks/internal/config"
)

// Setup routes the global logger to the hook's append-only log file and,
// console-formatted, to stderr. Hooks must stay quiet on stdout (that is the
// response channel), so everything goes to the file and stderr. If the log
// file cannot be opened the logger degrades to stderr only.
//
// Every event carries the hook name and a per-invocation run id so concurrent
// firings can be told apart in the shared log file.
func Setup(hookName string) {
	zerolog.TimeFieldFormat = time.RFC3339

	writers := []io.Writer{zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}}

	if err := config.EnsureLogDir(); err == nil {
		name := strings.ReplaceAll(hookName, "-", "_") + ".log"
		f, err := os.OpenFile(filepath.Join(config.LogDir(), name), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o640)
		if err == nil {
			writers = append(writers, f)
		}
	}

	log.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		With().
		Timestamp().
		Str("hook", hookName).
		Str("run", uuid.NewString()).
		Logger()
}
