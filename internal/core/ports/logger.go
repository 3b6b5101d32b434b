package ports

import "go.trai.ch/syringe/internal/core/domain"

// Logger defines the interface for logging.
//
//go:generate go run go.uber.org/mock/mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	// Debug logs a message with structured key/value pairs.
	Debug(msg string, args ...any)
	Info(msg string)
	Warn(msg string)
	Error(err error)
	// SetLevel changes the minimum level that is written.
	SetLevel(level domain.LogLevel)
}
