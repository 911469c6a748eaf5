package e2e

import (
	"context"
	"errors"
	"os/exec"

	"go.uber.org/zap"
)

// Killer 按命令行特征终止进程
type Killer func(ctx context.Context, pattern string) error

// PKill 使用 pkill -f 终止命令行包含 pattern 的进程
func PKill(ctx context.Context, pattern string) error {
	return exec.CommandContext(ctx, "pkill", "-f", pattern).Run()
}

// pkill 退出码 1 表示没有匹配的进程
const exitNoMatch = 1

// Teardown 测试结束后终止服务进程，失败只记录日志，返回是否成功终止
// 多个服务实例共用同一特征时会被一并终止，不要并发调用
func Teardown(ctx context.Context, pattern string, log *zap.Logger) bool {
	return TeardownWith(ctx, pattern, log, PKill)
}

func TeardownWith(ctx context.Context, pattern string, log *zap.Logger, kill Killer) bool {
	if log == nil {
		log = zap.NewNop()
	}
	if pattern == "" {
		log.Warn("未配置服务进程特征，跳过清理")
		return false
	}

	err := kill(ctx, pattern)
	if err == nil {
		log.Info("已终止服务进程", zap.String("pattern", pattern))
		return true
	}

	var coded interface{ ExitCode() int }
	if errors.As(err, &coded) && coded.ExitCode() == exitNoMatch {
		log.Warn("终止服务进程失败：未找到匹配的进程", zap.String("pattern", pattern))
		return false
	}
	log.Error("终止服务进程失败", zap.String("pattern", pattern), zap.Error(err))
	return false
}
