package notify

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Event is a row destined for the academy's tracking spreadsheet.
type Event struct {
	// Kind names the sheet tab the row belongs to, e.g. "reservation"
	Kind       string    `json:"kind"`
	OccurredAt time.Time `json:"occurred_at"`
	// Values are the row cells, in sheet column order
	Values []string `json:"values"`
}

// Sink appends events to an external destination. Appending is
// best-effort: callers never fail because a sink did.
type Sink interface {
	Append(ctx context.Context, event Event) error
}

// NopSink discards every event. Used when no webhook is configured.
type NopSink struct{}

func (NopSink) Append(ctx context.Context, event Event) error {
	return nil
}

// LogSink writes events to the log instead of an external destination.
// Useful in development where no spreadsheet is wired up.
type LogSink struct {
	logger *zap.Logger
}

func NewLogSink(logger *zap.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Append(ctx context.Context, event Event) error {
	s.logger.Info("notification event",
		zap.String("kind", event.Kind),
		zap.Time("occurred_at", event.OccurredAt),
		zap.Strings("values", event.Values),
	)
	return nil
}

var (
	_ Sink = (*NopSink)(nil)
	_ Sink = (*LogSink)(nil)
)
