package utils

import "go.uber.org/zap"

// ServiceLogger adapts a zap logger to the printf-style leveled logger the
// validation service expects.
type ServiceLogger struct {
	sugar *zap.SugaredLogger
}

// NewServiceLogger wraps l. A nil l falls back to the package Logger.
func NewServiceLogger(l *zap.Logger) *ServiceLogger {
	if l == nil {
		l = Logger
	}
	if l == nil {
		l = zap.NewNop()
	}
	return &ServiceLogger{sugar: l.WithOptions(zap.AddCallerSkip(1)).Sugar()}
}

func (s *ServiceLogger) Infof(format string, args ...any) {
	s.sugar.Infof(format, args...)
}

func (s *ServiceLogger) Warnf(format string, args ...any) {
	s.sugar.Warnf(format, args...)
}

// Errorf logs at error level and attaches err as the `error` field.
func (s *ServiceLogger) Errorf(err error, format string, args ...any) {
	s.sugar.With(zap.Error(err)).Errorf(format, args...)
}

func (s *ServiceLogger) Debugf(format string, args ...any) {
	s.sugar.Debugf(format, args...)
}
