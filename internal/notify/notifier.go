// Package notify delivers user-facing notifications about pipeline
// progress. Delivery is best effort: a failed notification never fails
// the operation that produced it.
package notify

import (
	"context"
	"log/slog"
)

type Kind string

const (
	KindInfo    Kind = "info"
	KindSuccess Kind = "success"
	KindWarning Kind = "warning"
	KindError   Kind = "error"
)

type Notifier interface {
	Notify(ctx context.Context, userID string, kind Kind, title, message string)
}

// LogNotifier records notifications to the structured log. It stands in
// wherever no external delivery channel is configured.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(_ context.Context, userID string, kind Kind, title, message string) {
	n.logger.Info("notification",
		"user_id", userID,
		"kind", string(kind),
		"title", title,
		"message", message,
	)
}
