package notifications

import (
	"context"

	"go.uber.org/zap"
)

// Email is an outbound message with an HTML body.
type Email struct {
	To       string `json:"to"`
	Subject  string `json:"subject"`
	HTMLBody string `json:"htmlBody"`
}

// EmailSender delivers certificate and onboarding mail. Implementations may
// fail; callers must treat a send error as a real failure path rather than
// assuming the logging stub's always-succeeds behavior.
type EmailSender interface {
	Send(ctx context.Context, msg Email) error
}

// LogSender is the simulated transport: it reports success and its only
// observable effect is emitting the message fields to the log.
type LogSender struct {
	logger *zap.Logger
}

func NewLogSender(logger *zap.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(_ context.Context, msg Email) error {
	s.logger.Info("simulating email delivery",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.Int("body_bytes", len(msg.HTMLBody)),
	)
	s.logger.Debug("email body", zap.String("html", msg.HTMLBody))
	return nil
}
