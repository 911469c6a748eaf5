package e2e

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type exitErr int

func (e exitErr) Error() string { return "exit status" }
func (e exitErr) ExitCode() int { return int(e) }

func observed() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core), logs
}

func TestTeardown_NoMatchingProcessIsLogged(t *testing.T) {
	log, logs := observed()
	var got string
	kill := func(_ context.Context, pattern string) error {
		got = pattern
		return exitErr(1)
	}

	ok := TeardownWith(context.Background(), "social-im-server", log, kill)

	assert.False(t, ok)
	assert.Equal(t, "social-im-server", got)
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.WarnLevel, entry.Level)
	assert.Contains(t, entry.Message, "终止服务进程失败")
}

func TestTeardown_KillErrorIsSwallowed(t *testing.T) {
	log, logs := observed()
	kill := func(context.Context, string) error { return errors.New("permission denied") }

	assert.NotPanics(t, func() {
		assert.False(t, TeardownWith(context.Background(), "srv", log, kill))
	})
	require.Equal(t, 1, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
}

func TestTeardown_Success(t *testing.T) {
	log, logs := observed()
	ok := TeardownWith(context.Background(), "srv", log, func(context.Context, string) error { return nil })

	assert.True(t, ok)
	assert.Equal(t, 1, logs.FilterMessage("已终止服务进程").Len())
}

func TestTeardown_EmptyPatternSkipsKill(t *testing.T) {
	log, logs := observed()
	called := false
	ok := TeardownWith(context.Background(), "", log, func(context.Context, string) error {
		called = true
		return nil
	})

	assert.False(t, ok)
	assert.False(t, called)
	assert.Equal(t, 1, logs.Len())
}

func TestTeardown_RealPKillWithoutMatch(t *testing.T) {
	log, logs := observed()
	// 进程特征足够独特，不会匹配到任何进程；pkill 不存在时同样只记录日志
	ok := Teardown(context.Background(), "social-im-no-such-process-7f3c9", log)

	assert.False(t, ok)
	assert.Equal(t, 1, logs.Len())
}
