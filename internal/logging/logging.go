// Package logging builds the zap loggers used by the command-line tools. Completion
// output goes to stdout, so logs are only ever written to stderr.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a development logger writing debug output to stderr when debug is set, and
// a no-op logger otherwise
func New(debug bool) (*zap.Logger, error) {
	if !debug {
		return zap.NewNop(), nil
	}

	loggerConfig := zap.NewDevelopmentConfig()
	loggerConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	loggerConfig.OutputPaths = []string{"stderr"}
	loggerConfig.ErrorOutputPaths = []string{"stderr"}
	loggerConfig.DisableStacktrace = true

	return loggerConfig.Build()
}
