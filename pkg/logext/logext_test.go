package logext

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Philanthropists/foundation/pkg/logging"
	"github.com/Philanthropists/foundation/pkg/result"
)

func observedContext(t *testing.T) (context.Context, *observer.ObservedLogs) {
	t.Helper()

	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logging.FromZap(zap.New(core)).GetContext(context.Background())
	return ctx, logs
}

func Test_FailureLogsAndConstructs(t *testing.T) {
	ctx, logs := observedContext(t)

	r := Failure[int](ctx, "mailbox not found",
		logging.String("mailbox", "INBOX"))

	assert.True(t, r.IsFailure())
	assert.Equal(t, "mailbox not found", r.Message())

	entries := logs.All()
	assert.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Equal(t, "mailbox not found", entries[0].Message)
}

type plainMessage string

func (m plainMessage) Message() string {
	return string(m)
}

func Test_FailureFromStructuredMessage(t *testing.T) {
	ctx, logs := observedContext(t)

	r := FailureFrom[string](ctx, plainMessage("token expired"))

	assert.True(t, r.IsFailure())
	assert.Equal(t, "token expired", r.Message())
	assert.Equal(t, 1, logs.Len())
}

func Test_ObserveReturnsResultUntouched(t *testing.T) {
	ctx, logs := observedContext(t)

	ok := result.SuccessMsg(3, "cached")
	got := Observe(ctx, "lookup", ok)
	assert.True(t, result.Equal(ok, got))

	bad := result.Failure[int]("db down")
	got = Observe(ctx, "lookup", bad)
	assert.True(t, result.Equal(bad, got))

	entries := logs.All()
	assert.Len(t, entries, 2)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "db down",
		entries[1].ContextMap()["message"])
}
