package webmate

// RequestLogger is the interface used by [Client] and the subsystem facades
// for logging HTTP requests, errors and skipped items. It matches the logger
// contract of resty, and both *logrus.Logger and *logrus.Entry satisfy it
// directly. Supply an implementation via [WithRequestLogger].
type RequestLogger interface {
	Errorf(format string, v ...any)
	Warnf(format string, v ...any)
	Debugf(format string, v ...any)
}

// NoopLogger is a [RequestLogger] that silently discards all log messages.
// It is the default logger used when no logger is provided to [New].
type NoopLogger struct{}

func (l *NoopLogger) Errorf(_ string, _ ...any) {}
func (l *NoopLogger) Warnf(_ string, _ ...any)  {}
func (l *NoopLogger) Debugf(_ string, _ ...any) {}
