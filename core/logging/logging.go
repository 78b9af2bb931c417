package logging

import "go.uber.org/zap"

// Logger is the package-wide logger. It is a no-op by default so the
// SDK stays silent unless the host application opts in.
var Logger = zap.NewNop()

// SetLogger replaces the package-wide logger.
func SetLogger(l *zap.Logger) {
	if l != nil {
		Logger = l
	}
}
