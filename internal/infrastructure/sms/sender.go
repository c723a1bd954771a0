package sms

import (
	"context"

	"go.uber.org/zap"
)

// Sender delivers a text message to a phone number. The verification
// service depends on this port; swapping in a real gateway (Aligo,
// NHN Cloud, etc.) only requires a new implementation.
type Sender interface {
	Send(ctx context.Context, phone, message string) error
}

// LogSender writes messages to the log instead of sending them.
// This is the default until an SMS gateway contract exists.
type LogSender struct {
	logger *zap.Logger
}

func NewLogSender(logger *zap.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(ctx context.Context, phone, message string) error {
	s.logger.Info("sms message (log only, not delivered)",
		zap.String("phone", phone),
		zap.String("message", message),
	)
	return nil
}

var _ Sender = (*LogSender)(nil)
