package task

import (
	"context"
	"time"

	"github.com/inkwellapp/journal-service/internal/app"

	"go.uber.org/zap"
)

// VersionSweepTask 周期性清理超出保留数量的版本快照
// 正常写入路径已经按条目裁剪，此任务兜底处理保留数量调小后的存量数据
type VersionSweepTask struct {
	app      *app.App
	interval time.Duration
}

// NewVersionSweepTask 创建版本清理任务
func NewVersionSweepTask(a *app.App) Task {
	return &VersionSweepTask{
		app:      a,
		interval: time.Hour,
	}
}

// Name 返回任务名称
func (t *VersionSweepTask) Name() string {
	return "VersionSweepTask"
}

// Run 执行清理任务
func (t *VersionSweepTask) Run(ctx context.Context) error {
	keep := t.app.Config().Journal.HistoryKeepVersions
	if keep <= 0 {
		return nil
	}

	deleted, err := t.app.VersionRepo.DeleteExcessAll(ctx, keep)
	if err != nil {
		t.app.Logger().Error(t.Name()+" failed", zap.Error(err))
		return err
	}

	if deleted > 0 {
		t.app.Logger().Info(t.Name()+" completed",
			zap.Int("keep", keep),
			zap.Int64("deleted", deleted))
	}

	return nil
}

// LoopInterval 返回执行间隔
func (t *VersionSweepTask) LoopInterval() time.Duration {
	return t.interval
}

// IsStartupRun 是否立即执行一次
func (t *VersionSweepTask) IsStartupRun() bool {
	return true
}
