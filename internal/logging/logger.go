// Package logging builds the console logger used by the jsxattr CLI.
package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

// Console log levels accepted by New.
const (
	LevelNone   = "none"
	LevelNormal = "normal"
	LevelDebug  = "debug"
)

// New returns a console logger writing info and debug entries to stdout and
// errors to stderr, with colored levels when the stream is a terminal.
func New(level string) (*zap.Logger, error) {
	return NewWithSinks(level,
		zapcore.Lock(os.Stdout), EnableColorOutput(os.Stdout),
		zapcore.Lock(os.Stderr), EnableColorOutput(os.Stderr))
}

// NewWithSinks is New with explicit destinations.
func NewWithSinks(level string, out zapcore.WriteSyncer, outColor bool, errOut zapcore.WriteSyncer, errColor bool) (*zap.Logger, error) {
	var minLevel zapcore.Level
	switch level {
	case LevelNone:
		return zap.NewNop(), nil
	case LevelNormal, "":
		minLevel = zapcore.InfoLevel
	case LevelDebug:
		minLevel = zapcore.DebugLevel
	default:
		return nil, fmt.Errorf("unknown log level %q (want %s, %s or %s)", level, LevelNone, LevelNormal, LevelDebug)
	}

	lowPriority := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return minLevel <= lvl && lvl < zapcore.ErrorLevel
	})
	highPriority := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= zapcore.ErrorLevel
	})

	core := zapcore.NewTee(
		zapcore.NewCore(consoleEncoder(outColor), out, lowPriority),
		zapcore.NewCore(consoleEncoder(errColor), errOut, highPriority),
	)
	return zap.New(core).Named("jsxattr"), nil
}

func consoleEncoder(color bool) zapcore.Encoder {
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	if color {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		ec.TimeKey = zapcore.OmitKey
	} else {
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	return zapcore.NewConsoleEncoder(ec)
}

// EnableColorOutput reports whether stream is attached to a terminal.
func EnableColorOutput(stream *os.File) bool {
	return term.IsTerminal(int(stream.Fd()))
}
