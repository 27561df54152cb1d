// Package logger provides tooling for structured logging.
// With logger, you can use context to add logging details to your call stack.
package logger

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"

	"go.llib.dev/testcase/clock"
)

type Logger struct {
	Out io.Writer
	// Level is the minimum level that gets written out.
	// When empty, it defaults to LevelInfo.
	Level Level

	Separator string

	MessageKey   string
	LevelKey     string
	TimestampKey string

	// MarshalFunc is used to serialise the logging message event.
	// When nil it defaults to JSON format.
	MarshalFunc func(any) ([]byte, error)

	outLock sync.Mutex
}

// Default is the logger used by the verifier when no other logger is configured.
var Default Logger

const (
	levelDefaultKey   = "level"
	messageDefaultKey = "message"
	timestampKey      = "timestamp"
)

func (l *Logger) Debug(ctx context.Context, msg string, ds ...Detail) {
	l.log(ctx, LevelDebug, msg, ds)
}

func (l *Logger) Info(ctx context.Context, msg string, ds ...Detail) {
	l.log(ctx, LevelInfo, msg, ds)
}

func (l *Logger) Warn(ctx context.Context, msg string, ds ...Detail) {
	l.log(ctx, LevelWarn, msg, ds)
}

func (l *Logger) Error(ctx context.Context, msg string, ds ...Detail) {
	l.log(ctx, LevelError, msg, ds)
}

func (l *Logger) log(ctx context.Context, level Level, msg string, ds []Detail) {
	if !isLevelEnabled(l.Level, level) {
		return
	}
	entry := l.toLogEntry(ctx, level, msg, ds, clock.Now())
	bs, err := l.marshalFunc()(entry)
	if err != nil {
		return
	}
	l.outLock.Lock()
	defer l.outLock.Unlock()
	_, _ = l.writer().Write(append(bs, []byte(l.separator())...))
}

func (l *Logger) toLogEntry(ctx context.Context, level Level, msg string, ds []Detail, at time.Time) logEntry {
	le := make(logEntry)
	le.Merge(getLoggingDetailsFromContext(ctx))
	for _, d := range ds {
		d.addTo(le)
	}
	le[coalesce(l.LevelKey, levelDefaultKey)] = level
	le[coalesce(l.MessageKey, messageDefaultKey)] = msg
	le[coalesce(l.TimestampKey, timestampKey)] = at.Format(time.RFC3339)
	return le
}

func (l *Logger) writer() io.Writer {
	if l.Out != nil {
		return l.Out
	}
	return os.Stdout
}

func (l *Logger) marshalFunc() func(any) ([]byte, error) {
	if l.MarshalFunc != nil {
		return l.MarshalFunc
	}
	return json.Marshal
}

func (l *Logger) separator() string {
	if l.Separator != "" {
		return l.Separator
	}
	if os.PathSeparator == '\\' {
		return "\r\n"
	}
	return "\n"
}

func coalesce(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
