package task

import (
	"context"
	"time"

	"github.com/inkwellapp/journal-service/internal/app"

	"go.uber.org/zap"
)

// UserPurgeTask 物理删除超过保留期的已注销用户
type UserPurgeTask struct {
	app      *app.App
	interval time.Duration
}

// NewUserPurgeTask 创建用户清理任务
// 保留时间未配置或为 0 时返回 nil，任务禁用
func NewUserPurgeTask(a *app.App) Task {
	if a.Config().GetUserPurgeRetention() <= 0 {
		return nil
	}

	return &UserPurgeTask{
		app:      a,
		interval: time.Hour,
	}
}

// Name 返回任务名称
func (t *UserPurgeTask) Name() string {
	return "UserPurgeTask"
}

// Run 执行清理任务
func (t *UserPurgeTask) Run(ctx context.Context) error {
	retention := t.app.Config().GetUserPurgeRetention()
	before := time.Now().Add(-retention)

	deleted, err := t.app.UserRepo.DeleteSoftDeletedBefore(ctx, before)
	if err != nil {
		t.app.Logger().Error(t.Name()+" purge failed", zap.Error(err))
		return err
	}

	if deleted > 0 {
		t.app.Logger().Info(t.Name()+" purged users",
			zap.Int64("deleted", deleted),
			zap.Duration("retention", retention))
	}

	return nil
}

// LoopInterval 返回执行间隔
func (t *UserPurgeTask) LoopInterval() time.Duration {
	return t.interval
}

// IsStartupRun 是否立即执行一次
func (t *UserPurgeTask) IsStartupRun() bool {
	return true
}
