package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/brick777/DtoTester/pkg/logger"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/clock/timecop"
	"go.llib.dev/testcase/random"
)

var rnd = random.New(random.CryptoSeed{})

func decodeEntries(tb testing.TB, buf *bytes.Buffer) []map[string]any {
	tb.Helper()
	var out []map[string]any
	dec := json.NewDecoder(buf)
	for dec.More() {
		entry := map[string]any{}
		assert.NoError(tb, dec.Decode(&entry))
		out = append(out, entry)
	}
	return out
}

func TestLogger_smoke(t *testing.T) {
	ctx := context.Background()

	t.Run("output is a valid JSON by default", func(t *testing.T) {
		buf := &bytes.Buffer{}
		l := &logger.Logger{Out: buf}

		expected := rnd.Repeat(3, 7, func() {
			l.Info(ctx, rnd.String())
		})

		assert.Equal(t, expected, len(decodeEntries(t, buf)))
	})

	t.Run("marshaling can be configured through the MarshalFunc", func(t *testing.T) {
		buf := &bytes.Buffer{}
		l := &logger.Logger{Out: buf, MarshalFunc: func(a any) ([]byte, error) {
			assert.Contains(t, fmt.Sprintf("%#v", a), "msg")
			return []byte("Hello, world!"), nil
		}}
		l.Info(ctx, "msg")
		assert.Contains(t, buf.String(), "Hello, world!")
	})

	t.Run("log entries split by the separator", func(t *testing.T) {
		buf := &bytes.Buffer{}
		l := &logger.Logger{Out: buf, Separator: "|"}
		expected := rnd.Repeat(3, 7, func() {
			l.Info(ctx, rnd.String())
		})
		entries := strings.Split(strings.TrimSuffix(buf.String(), "|"), "|")
		assert.Equal(t, expected, len(entries))
	})

	t.Run("keys can be renamed", func(t *testing.T) {
		buf := &bytes.Buffer{}
		l := &logger.Logger{Out: buf, MessageKey: "msg", LevelKey: "lvl", TimestampKey: "ts"}
		l.Warn(ctx, "hello")
		entries := decodeEntries(t, buf)
		assert.Equal(t, 1, len(entries))
		assert.Equal[any](t, "hello", entries[0]["msg"])
		assert.Equal[any](t, "warn", entries[0]["lvl"])
		assert.NotNil(t, entries[0]["ts"])
	})
}

func TestLogger_levels(t *testing.T) {
	ctx := context.Background()
	buf := &bytes.Buffer{}
	l := &logger.Logger{Out: buf}

	l.Debug(ctx, "debug")
	assert.Empty(t, buf.String(), "debug should be filtered with the default info level")

	l.Info(ctx, "info")
	l.Error(ctx, "error")
	assert.Equal(t, 2, len(decodeEntries(t, buf)))

	l.Level = logger.LevelDebug
	l.Debug(ctx, "debug")
	entries := decodeEntries(t, buf)
	assert.Equal(t, 1, len(entries))
	assert.Equal[any](t, "debug", entries[0]["level"])

	l.Level = logger.LevelError
	l.Warn(ctx, "warn")
	assert.Empty(t, buf.String())
}

func TestLogger_timestamp(t *testing.T) {
	date := time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)
	timecop.Travel(t, date)

	buf := &bytes.Buffer{}
	l := &logger.Logger{Out: buf}
	l.Info(context.Background(), "msg")

	entries := decodeEntries(t, buf)
	assert.Equal(t, 1, len(entries))
	raw, ok := entries[0]["timestamp"].(string)
	assert.True(t, ok)
	ts, err := time.Parse(time.RFC3339, raw)
	assert.NoError(t, err)
	assert.True(t, ts.Sub(date) < time.Minute, "timestamp should come from the travelled clock")
}

func TestFields(t *testing.T) {
	ctx := context.Background()
	buf := &bytes.Buffer{}
	l := &logger.Logger{Out: buf}

	key, val := rnd.StringNC(5, random.CharsetAlpha()), rnd.String()
	l.Info(ctx, "msg",
		logger.Field(key, val),
		logger.Field("nested", logger.Fields{"a": "b"}),
		logger.ErrField(errors.New("boom")),
		logger.ErrField(nil),
	)

	entries := decodeEntries(t, buf)
	assert.Equal(t, 1, len(entries))
	assert.Equal[any](t, val, entries[0][key])
	assert.Equal[any](t, map[string]any{"a": "b"}, entries[0]["nested"])
	assert.Equal[any](t, map[string]any{"message": "boom"}, entries[0]["error"])
}

func TestContextWith(t *testing.T) {
	buf := &bytes.Buffer{}
	l := &logger.Logger{Out: buf}

	ctx := logger.ContextWith(context.Background(), logger.Field("outer", "1"), logger.Field("shared", "outer"))
	ctx = logger.ContextWith(ctx, logger.Field("inner", "2"), logger.Field("shared", "inner"))
	assert.Equal(t, ctx, logger.ContextWith(ctx))

	l.Info(ctx, "msg")
	entries := decodeEntries(t, buf)
	assert.Equal(t, 1, len(entries))
	assert.Equal[any](t, "1", entries[0]["outer"])
	assert.Equal[any](t, "2", entries[0]["inner"])
	assert.Equal[any](t, "inner", entries[0]["shared"])
}

func TestStub(t *testing.T) {
	ogOut := logger.Default.Out
	t.Run("", func(t *testing.T) {
		buf := logger.Stub(t)
		logger.Default.Info(context.Background(), "hello")
		assert.Contains(t, buf.String(), `"message":"hello"`)
	})
	assert.Equal(t, ogOut, logger.Default.Out)
}
