package service

// Logger is the leveled, printf-style logger the validation pipeline writes to.
// utils.ServiceLogger adapts zap to it.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(err error, format string, args ...any)
	Debugf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Infof(string, ...any)         {}
func (nopLogger) Warnf(string, ...any)         {}
func (nopLogger) Errorf(error, string, ...any) {}
func (nopLogger) Debugf(string, ...any)        {}
