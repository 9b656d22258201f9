package task

import (
	"context"
	"time"

	"github.com/inkwellapp/journal-service/internal/app"

	"go.uber.org/zap"
)

// InactiveCleanupTask 物理删除超过保留时间的停用笔记本和标签
// 笔记本连同其条目和版本一起级联删除，标签先从条目上摘除
type InactiveCleanupTask struct {
	app      *app.App
	interval time.Duration
	firstRun bool
}

// NewInactiveCleanupTask 创建停用数据清理任务
// 保留时间未配置或为 0 时返回 nil，任务禁用
func NewInactiveCleanupTask(a *app.App) Task {
	if a.Config().GetInactiveRetention() <= 0 {
		return nil
	}

	return &InactiveCleanupTask{
		app:      a,
		interval: 10 * time.Minute,
		firstRun: true,
	}
}

// Name 返回任务名称
func (t *InactiveCleanupTask) Name() string {
	return "InactiveCleanupTask"
}

// Run 执行清理任务
func (t *InactiveCleanupTask) Run(ctx context.Context) error {
	status := "scheduled"
	if t.firstRun {
		status = "first-run"
		t.firstRun = false
	}

	before := time.Now().Add(-t.app.Config().GetInactiveRetention())

	notebooks, err := t.app.NotebookRepo.ListInactiveBefore(ctx, before)
	if err != nil {
		t.app.Logger().Error(t.Name()+" list notebooks failed ["+status+"]", zap.Error(err))
		return err
	}

	for _, nb := range notebooks {
		// 先清掉条目及其版本，再删笔记本本身
		if err := t.app.EntryRepo.DeleteByNotebook(ctx, nb.ID, nb.UID); err != nil {
			t.app.Logger().Error(t.Name()+" cascade entries failed",
				zap.Int64("notebookId", nb.ID), zap.Int64("uid", nb.UID), zap.Error(err))
			continue
		}
		if err := t.app.NotebookRepo.Delete(ctx, nb.ID, nb.UID); err != nil {
			t.app.Logger().Error(t.Name()+" delete notebook failed",
				zap.Int64("notebookId", nb.ID), zap.Int64("uid", nb.UID), zap.Error(err))
			continue
		}
		t.app.Logger().Info(t.Name()+" notebook purged",
			zap.Int64("notebookId", nb.ID), zap.Int64("uid", nb.UID))
	}

	tags, err := t.app.TagRepo.ListInactiveBefore(ctx, before)
	if err != nil {
		t.app.Logger().Error(t.Name()+" list tags failed ["+status+"]", zap.Error(err))
		return err
	}

	for _, tag := range tags {
		if err := t.app.EntryRepo.DetachTag(ctx, tag.ID, tag.UID); err != nil {
			t.app.Logger().Error(t.Name()+" detach tag failed",
				zap.Int64("tagId", tag.ID), zap.Int64("uid", tag.UID), zap.Error(err))
			continue
		}
		if err := t.app.TagRepo.Delete(ctx, tag.ID, tag.UID); err != nil {
			t.app.Logger().Error(t.Name()+" delete tag failed",
				zap.Int64("tagId", tag.ID), zap.Int64("uid", tag.UID), zap.Error(err))
			continue
		}
		t.app.Logger().Info(t.Name()+" tag purged",
			zap.Int64("tagId", tag.ID), zap.Int64("uid", tag.UID))
	}

	return nil
}

// LoopInterval 返回执行间隔
func (t *InactiveCleanupTask) LoopInterval() time.Duration {
	return t.interval
}

// IsStartupRun 是否立即执行一次
func (t *InactiveCleanupTask) IsStartupRun() bool {
	return true
}
