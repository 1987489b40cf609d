package ports

// Logger defines the interface for logging.
// It is the notification sink for informational and error messages.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Info(msg string)
	Warn(msg string)
	Error(err error)
}
