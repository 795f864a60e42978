package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/cropframe/pkg/geom"
	"github.com/matzehuels/cropframe/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Rendered diagram (1.234s)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// =============================================================================
// Observability Hooks
// =============================================================================

// logHooks reports selection episodes and exports to a logger.
// Transitions are debug-level; episode outcomes are info-level.
type logHooks struct {
	logger *log.Logger
}

func newLogHooks(l *log.Logger) *logHooks {
	return &logHooks{logger: l}
}

func (h *logHooks) OnEpisodeStart(id uuid.UUID) {
	h.logger.Debug("selection started", "episode", short(id))
}

func (h *logHooks) OnTransition(id uuid.UUID, from, to string) {
	h.logger.Debug("transition", "episode", short(id), "from", from, "to", to)
}

func (h *logHooks) OnEpisodeEnd(id uuid.UUID, outcome observability.Outcome, r geom.Rect, elapsed time.Duration) {
	h.logger.Info("selection ended",
		"episode", short(id),
		"outcome", string(outcome),
		"rect", r.String(),
		"elapsed", elapsed.Round(time.Millisecond))
}

func (h *logHooks) OnExport(format string, size int, err error) {
	if err != nil {
		h.logger.Warn("export failed", "format", format, "err", err)
		return
	}
	h.logger.Debug("exported region", "format", format, "bytes", size)
}

// short returns the first block of an episode ID, enough to tell episodes
// apart in a log.
func short(id uuid.UUID) string {
	return id.String()[:8]
}
