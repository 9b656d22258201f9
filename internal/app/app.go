// Package app 提供应用容器，封装所有依赖和服务
package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/inkwellapp/journal-service/internal/dao"
	"github.com/inkwellapp/journal-service/internal/domain"
	"github.com/inkwellapp/journal-service/internal/service"
	pkgapp "github.com/inkwellapp/journal-service/pkg/app"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App 应用容器，封装所有依赖和服务
type App struct {
	// 基础设施（注入的依赖）
	config *AppConfig
	logger *zap.Logger
	DB     *gorm.DB
	Dao    *dao.Dao

	// Repository 层
	EntryRepo    domain.EntryRepository
	VersionRepo  domain.EntryVersionRepository
	NotebookRepo domain.NotebookRepository
	TagRepo      domain.TagRepository
	UserRepo     domain.UserRepository

	// Service 层
	EntryService     service.EntryService
	VersionService   service.EntryVersionService
	NotebookService  service.NotebookService
	TagService       service.TagService
	AnalyticsService service.AnalyticsService
	ExportService    service.ExportService
	UserService      service.UserService

	// 基础设施组件
	TokenManager pkgapp.TokenManager

	// 关闭控制
	shutdownCh chan struct{}
	wg         sync.WaitGroup
}

// NewApp 创建应用容器实例
// 初始化所有依赖并进行依赖注入
// cfg: 应用配置（必须）
// logger: zap 日志器（必须）
// db: 数据库连接（必须）
func NewApp(cfg *AppConfig, logger *zap.Logger, db *gorm.DB) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if db == nil {
		return nil, fmt.Errorf("database is required")
	}

	a := &App{
		config:     cfg,
		logger:     logger,
		DB:         db,
		shutdownCh: make(chan struct{}),
	}

	// 初始化 DAO
	a.Dao = dao.New(db)

	// 初始化 TokenManager
	tokenConfig := pkgapp.TokenConfig{
		SecretKey: cfg.Security.AuthTokenKey,
		Issuer:    "journal-service",
		Expiry:    cfg.GetTokenExpiry(),
	}
	a.TokenManager = pkgapp.NewTokenManager(tokenConfig)

	// 初始化 Repository 层
	a.EntryRepo = dao.NewEntryRepository(a.Dao)
	a.VersionRepo = dao.NewEntryVersionRepository(a.Dao)
	a.NotebookRepo = dao.NewNotebookRepository(a.Dao)
	a.TagRepo = dao.NewTagRepository(a.Dao)
	a.UserRepo = dao.NewUserRepository(a.Dao)

	// 创建 ServiceConfig（从 AppConfig 提取 Service 层需要的配置）
	svcConfig := &service.ServiceConfig{
		User: service.UserServiceConfig{
			RegisterIsEnable: cfg.User.RegisterIsEnable,
		},
		App: service.AppServiceConfig{
			SoftDeleteRetentionTime: cfg.Journal.InactiveRetentionTime,
			VersionKeepCount:        cfg.Journal.HistoryKeepVersions,
			DefaultNotebookName:     cfg.Journal.DefaultNotebookName,
		},
	}

	// 分页配置
	pkgapp.DefaultPaginationConfig = pkgapp.PaginationConfig{
		DefaultPageSize: cfg.Journal.DefaultPageSize,
		MaxPageSize:     cfg.Journal.MaxPageSize,
	}

	// 初始化 Service 层（依赖注入）
	a.TagService = service.NewTagService(a.TagRepo, a.EntryRepo, logger)
	a.NotebookService = service.NewNotebookService(a.NotebookRepo, a.EntryRepo, logger)
	a.EntryService = service.NewEntryService(a.EntryRepo, a.VersionRepo, a.NotebookRepo, a.TagService, logger, &svcConfig.App)
	a.VersionService = service.NewEntryVersionService(a.VersionRepo, a.EntryRepo, logger)
	a.AnalyticsService = service.NewAnalyticsService(a.EntryRepo, a.NotebookRepo, logger)
	a.ExportService = service.NewExportService(a.EntryService, logger)
	a.UserService = service.NewUserService(a.UserRepo, a.TokenManager, logger, svcConfig)

	logger.Info("App container initialized successfully",
		zap.Int("historyKeepVersions", cfg.Journal.HistoryKeepVersions),
		zap.String("defaultNotebook", cfg.Journal.DefaultNotebookName))

	return a, nil
}

// Close 释放应用容器持有的资源
func (a *App) Close() error {
	if a.DB != nil {
		sqlDB, err := a.DB.DB()
		if err != nil {
			return fmt.Errorf("failed to get sql.DB: %w", err)
		}
		if err := sqlDB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
		a.logger.Info("Database connection closed")
	}
	return nil
}

// Config 获取应用配置
func (a *App) Config() *AppConfig {
	return a.config
}

// Logger 获取日志器
func (a *App) Logger() *zap.Logger {
	return a.logger
}

// Version 获取版本信息
func (a *App) Version() pkgapp.VersionInfo {
	return pkgapp.VersionInfo{
		Version:   Version,
		GitTag:    GitTag,
		BuildTime: BuildTime,
	}
}

// GetAuthTokenKey 获取 Token 密钥
func (a *App) GetAuthTokenKey() string {
	return a.config.Security.AuthTokenKey
}

// IsProductionMode 是否为生产模式
// 根据日志配置中的 Production 字段判断
func (a *App) IsProductionMode() bool {
	return a.config.Log.Production
}

// DefaultShutdownTimeout 默认关闭超时时间
const DefaultShutdownTimeout = 30 * time.Second

// Shutdown 优雅关闭应用容器
// ctx 用于控制关闭超时，如果为 nil 则使用默认 30 秒超时
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("App container shutting down...")

	if ctx == nil {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(context.Background(), DefaultShutdownTimeout)
		defer cancel()
	}

	// 标记关闭
	select {
	case <-a.shutdownCh:
		// 已经关闭
		return nil
	default:
		close(a.shutdownCh)
	}

	// 等待所有后台操作完成
	done := make(chan struct{})
	go func() {
		a.wg.Wait()
		close(done)
	}()

	var errs []error

	select {
	case <-done:
		a.logger.Info("All background operations completed")
	case <-ctx.Done():
		a.logger.Warn("Shutdown timeout waiting for background operations")
		errs = append(errs, fmt.Errorf("background operations timeout: %w", ctx.Err()))
	}

	// 关闭数据库连接
	if err := a.Close(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		a.logger.Warn("App container shutdown completed with errors",
			zap.Int("errorCount", len(errs)))
		return fmt.Errorf("shutdown completed with %d errors: %v", len(errs), errs)
	}

	a.logger.Info("App container shutdown completed successfully")
	return nil
}

// IsShuttingDown 检查应用是否正在关闭
func (a *App) IsShuttingDown() bool {
	select {
	case <-a.shutdownCh:
		return true
	default:
		return false
	}
}

// ShutdownCh 返回关闭信号通道（用于监听关闭事件）
func (a *App) ShutdownCh() <-chan struct{} {
	return a.shutdownCh
}

// TrackOperation 跟踪后台操作（用于优雅关闭时等待）
// 返回一个函数，在操作完成时调用
func (a *App) TrackOperation() func() {
	a.wg.Add(1)
	return func() {
		a.wg.Done()
	}
}
