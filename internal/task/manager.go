package task

import (
	"github.com/inkwellapp/journal-service/internal/app"
	"github.com/inkwellapp/journal-service/pkg/safe_close"

	"go.uber.org/zap"
)

// Manager 任务管理器,负责创建和管理所有任务
type Manager struct {
	scheduler *Scheduler
	logger    *zap.Logger
	app       *app.App
}

// NewManager 创建任务管理器
func NewManager(logger *zap.Logger, sc *safe_close.SafeClose, a *app.App) *Manager {
	return &Manager{
		scheduler: NewScheduler(logger, sc),
		logger:    logger,
		app:       a,
	}
}

// RegisterTasks 注册所有任务
func (m *Manager) RegisterTasks() error {
	// 版本历史保留数量清理
	m.scheduler.AddTask(NewVersionSweepTask(m.app))

	// 停用笔记本/标签清理，保留时间为 0 时禁用
	if cleanupTask := NewInactiveCleanupTask(m.app); cleanupTask != nil {
		m.scheduler.AddTask(cleanupTask)
	} else {
		m.logger.Info("inactive cleanup task is disabled (retention time not configured)")
	}

	// 软删除用户清理，保留时间为 0 时禁用
	if purgeTask := NewUserPurgeTask(m.app); purgeTask != nil {
		m.scheduler.AddTask(purgeTask)
	} else {
		m.logger.Info("user purge task is disabled (retention time not configured)")
	}

	return nil
}

// Start 启动所有已注册的任务
func (m *Manager) Start() {
	m.scheduler.Start()
}
