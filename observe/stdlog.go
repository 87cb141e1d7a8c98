package observe

import (
	"context"
	"io"
	"log"
	"strings"

	"go.uber.org/zap"
)

// NewStdLog returns a standard library logger that writes through l at
// level. It is meant for components that only accept *log.Logger, such as
// http.Server.ErrorLog.
func NewStdLog(l Logger, level LogLevel) *log.Logger {
	if sl, ok := l.(*structuredLogger); ok {
		if std, err := zap.NewStdLogAt(sl.zl, level.zapLevel()); err == nil {
			return std
		}
	}
	return log.New(NewLogWriter(l, level), "", 0)
}

// NewLogWriter adapts l to an io.Writer. Each Write becomes one entry at
// level with the trimmed payload as its message; empty writes are dropped.
func NewLogWriter(l Logger, level LogLevel) io.Writer {
	if l == nil {
		l = NopLogger()
	}
	return &logWriter{logger: l, level: level}
}

type logWriter struct {
	logger Logger
	level  LogLevel
}

func (w *logWriter) Write(p []byte) (int, error) {
	msg := strings.TrimSpace(string(p))
	if msg == "" {
		return len(p), nil
	}

	ctx := context.Background()
	switch w.level {
	case LevelDebug:
		w.logger.Debug(ctx, msg)
	case LevelWarn:
		w.logger.Warn(ctx, msg)
	case LevelError:
		w.logger.Error(ctx, msg)
	default:
		w.logger.Info(ctx, msg)
	}
	return len(p), nil
}
