package providers

import (
	"context"
	"log/slog"
	"time"

	"roster-service/internal/logging"
	"roster-service/internal/metrics"
)

// LoggingCatalog decorates a PlayerCatalog with per-call logging and
// provider metrics.
type LoggingCatalog struct {
	next     PlayerCatalog
	name     string
	logger   *slog.Logger
	recorder *metrics.Recorder
}

// NewLoggingCatalog wraps the given catalog provider.
func NewLoggingCatalog(next PlayerCatalog, name string, logger *slog.Logger, recorder *metrics.Recorder) *LoggingCatalog {
	return &LoggingCatalog{next: next, name: name, logger: logger, recorder: recorder}
}

// FetchPlayers delegates to the wrapped provider, recording latency and
// outcome.
func (c *LoggingCatalog) FetchPlayers(ctx context.Context, cursor *int, perPage int) (Page, error) {
	start := time.Now()
	page, err := c.next.FetchPlayers(ctx, cursor, perPage)
	duration := time.Since(start)

	if c.recorder != nil {
		c.recorder.RecordProviderAttempt(c.name, duration, err)
	}

	if err != nil {
		logWithProvider(ctx, c.logger, slog.LevelWarn, c.name, "catalog fetch failed",
			"error", err,
			slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
		)
		return Page{}, err
	}

	logWithProvider(ctx, c.logger, slog.LevelInfo, c.name, "catalog page fetched",
		slog.Int(logging.FieldCount, len(page.Players)),
		slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
	)
	return page, nil
}

// logWithProvider emits a log entry if logger is non-nil and always includes provider name.
func logWithProvider(ctx context.Context, logger *slog.Logger, level slog.Level, provider string, msg string, args ...any) {
	if logger == nil {
		return
	}
	args = append(args, slog.String(logging.FieldProvider, provider))
	logger.Log(ctx, level, msg, args...)
}
