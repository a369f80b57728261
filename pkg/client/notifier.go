package client

import "github.com/rs/zerolog"

// Notifier receives user-facing outcome messages, typically rendered as toasts.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// LogNotifier writes notifications to a zerolog logger.
type LogNotifier struct {
	logger zerolog.Logger
}

// NewLogNotifier creates a notifier backed by the provided logger.
func NewLogNotifier(logger zerolog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.With().Str("component", "notifier").Logger()}
}

// Success logs a success notification.
func (n *LogNotifier) Success(message string) {
	n.logger.Info().Msg(message)
}

// Error logs a failure notification.
func (n *LogNotifier) Error(message string) {
	n.logger.Error().Msg(message)
}

type nopNotifier struct{}

func (nopNotifier) Success(string) {}
func (nopNotifier) Error(string)   {}
