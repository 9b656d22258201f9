// Package routers 组装 HTTP 路由与中间件
package routers

import (
	"time"

	"github.com/inkwellapp/journal-service/internal/app"
	"github.com/inkwellapp/journal-service/internal/middleware"
	"github.com/inkwellapp/journal-service/internal/routers/api_router"
	"github.com/inkwellapp/journal-service/pkg/limiter"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
)

// 认证接口限流，防止暴力尝试
var methodLimiters = limiter.NewMethodLimiter().AddBuckets(
	limiter.BucketRule{
		Key:          "/api/user/login",
		FillInterval: time.Second,
		Capacity:     10,
		Quantum:      10,
	},
	limiter.BucketRule{
		Key:          "/api/user/register",
		FillInterval: time.Second,
		Capacity:     10,
		Quantum:      10,
	},
)

func NewRouter(appContainer *app.App, uni *ut.UniversalTranslator) *gin.Engine {

	// 获取配置
	cfg := appContainer.Config()

	r := gin.New()

	api := r.Group("/api")
	{
		api.Use(middleware.AppInfoWithConfig(app.Name, appContainer.Version().Version))
		api.Use(middleware.TraceMiddlewareWithConfig(cfg.Tracer.Enabled, cfg.Tracer.Header)) // Trace ID 中间件
		api.Use(middleware.RateLimiter(methodLimiters))
		api.Use(middleware.ContextTimeout(time.Duration(cfg.Journal.DefaultContextTimeout) * time.Second))
		api.Use(middleware.Cors())
		api.Use(middleware.LangWithTranslator(uni))
		api.Use(middleware.AccessLogWithLogger(appContainer.Logger()))
		api.Use(middleware.RecoveryWithLogger(appContainer.Logger()))

		// 创建 Handlers（注入 App Container）
		userHandler := api_router.NewUserHandler(appContainer)
		entryHandler := api_router.NewEntryHandler(appContainer)
		versionHandler := api_router.NewEntryVersionHandler(appContainer)
		notebookHandler := api_router.NewNotebookHandler(appContainer)
		tagHandler := api_router.NewTagHandler(appContainer)
		analyticsHandler := api_router.NewAnalyticsHandler(appContainer)
		exportHandler := api_router.NewExportHandler(appContainer)
		serverVersionHandler := api_router.NewVersionHandler(appContainer)

		// 无需认证的接口
		api.POST("/user/register", userHandler.Register)
		api.POST("/user/login", userHandler.Login)
		api.GET("/version", serverVersionHandler.ServerVersion)

		// 以下接口全部需要用户认证
		auth := api.Group("", middleware.UserAuthTokenWithConfig(cfg.Security.AuthTokenKey))

		auth.POST("/user/change_password", userHandler.ChangePassword)
		auth.POST("/user/deactivate", userHandler.Deactivate)
		auth.GET("/user/info", userHandler.Info)

		auth.POST("/entry", entryHandler.Create)
		auth.PUT("/entry", entryHandler.Update)
		auth.GET("/entry", entryHandler.Get)
		auth.DELETE("/entry", entryHandler.Delete)
		auth.GET("/entries", entryHandler.List)

		// 生命周期操作
		auth.PUT("/entry/publish", entryHandler.Publish)
		auth.PUT("/entry/unpublish", entryHandler.Unpublish)
		auth.PUT("/entry/archive", entryHandler.Archive)
		auth.PUT("/entry/restore", entryHandler.Restore)
		auth.PUT("/entry/favorite", entryHandler.Favorite)
		auth.POST("/entry/duplicate", entryHandler.Duplicate)

		// 版本历史
		auth.GET("/entry/versions", versionHandler.List)
		auth.GET("/entry/version", versionHandler.Get)
		auth.GET("/entry/version/diff", versionHandler.Diff)

		// 笔记本
		auth.POST("/notebook", notebookHandler.Create)
		auth.PUT("/notebook", notebookHandler.Update)
		auth.GET("/notebook", notebookHandler.Get)
		auth.DELETE("/notebook", notebookHandler.Delete)
		auth.GET("/notebooks", notebookHandler.List)
		auth.PUT("/notebook/archive", notebookHandler.Archive)
		auth.PUT("/notebook/unarchive", notebookHandler.Unarchive)

		// 标签
		auth.POST("/tag", tagHandler.Create)
		auth.PUT("/tag", tagHandler.Update)
		auth.GET("/tag", tagHandler.Get)
		auth.DELETE("/tag", tagHandler.Delete)
		auth.GET("/tags", tagHandler.List)
		auth.PUT("/tag/archive", tagHandler.Archive)
		auth.PUT("/tag/unarchive", tagHandler.Unarchive)

		// 检索与统计
		auth.GET("/search", analyticsHandler.Search)
		auth.GET("/analytics/moods", analyticsHandler.MoodDistribution)
		auth.GET("/analytics/pivot", analyticsHandler.Pivot)
		auth.GET("/analytics/timeline", analyticsHandler.MoodTimeline)
		auth.GET("/analytics/calendar", analyticsHandler.MoodCalendar)

		// 导出
		auth.GET("/entry/export/markdown", exportHandler.Markdown)
		auth.GET("/entry/export/html", exportHandler.PrintHTML)
	}

	r.Use(middleware.Cors())
	r.NoRoute(middleware.NoFound())

	return r
}
