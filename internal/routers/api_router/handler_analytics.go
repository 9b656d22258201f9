package api_router

import (
	"github.com/inkwellapp/journal-service/internal/app"
	"github.com/inkwellapp/journal-service/internal/dto"
	pkgapp "github.com/inkwellapp/journal-service/pkg/app"
	"github.com/inkwellapp/journal-service/pkg/code"
	apperrors "github.com/inkwellapp/journal-service/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AnalyticsHandler 检索与统计 API 路由处理器
// 使用 App Container 注入依赖，支持统一错误处理
type AnalyticsHandler struct {
	*Handler
}

// NewAnalyticsHandler 创建 AnalyticsHandler 实例
func NewAnalyticsHandler(a *app.App) *AnalyticsHandler {
	return &AnalyticsHandler{
		Handler: NewHandler(a),
	}
}

// Search 组合条件检索条目
func (h *AnalyticsHandler) Search(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.SearchRequest{}

	// 参数绑定和验证
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("AnalyticsHandler.Search.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	// 获取用户 ID
	uid := pkgapp.GetUID(c)
	if uid == 0 {
		h.App.Logger().Error("AnalyticsHandler.Search err uid=0")
		response.ToResponse(code.ErrorInvalidUserAuthToken)
		return
	}

	ctx := c.Request.Context()

	pager := &pkgapp.Pager{Page: pkgapp.GetPage(c), PageSize: pkgapp.GetPageSize(c)}

	entries, count, err := h.App.AnalyticsService.Search(ctx, uid, params, pager)
	if err != nil {
		h.logError(ctx, "AnalyticsHandler.Search", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponseList(code.Success, entries, int(count))
}

// MoodDistribution 统计一段时间内的心情分布
func (h *AnalyticsHandler) MoodDistribution(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.MoodStatRequest{}

	// 参数绑定和验证
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("AnalyticsHandler.MoodDistribution.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	// 获取用户 ID
	uid := pkgapp.GetUID(c)
	if uid == 0 {
		h.App.Logger().Error("AnalyticsHandler.MoodDistribution err uid=0")
		response.ToResponse(code.ErrorInvalidUserAuthToken)
		return
	}

	ctx := c.Request.Context()

	stat, err := h.App.AnalyticsService.MoodDistribution(ctx, uid, params)
	if err != nil {
		h.logError(ctx, "AnalyticsHandler.MoodDistribution", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(stat))
}

// Pivot 以心情和/或笔记本为行、月份为列的透视统计
func (h *AnalyticsHandler) Pivot(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.PivotRequest{}

	// 参数绑定和验证
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("AnalyticsHandler.Pivot.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	// 获取用户 ID
	uid := pkgapp.GetUID(c)
	if uid == 0 {
		h.App.Logger().Error("AnalyticsHandler.Pivot err uid=0")
		response.ToResponse(code.ErrorInvalidUserAuthToken)
		return
	}

	ctx := c.Request.Context()

	pivot, err := h.App.AnalyticsService.Pivot(ctx, uid, params)
	if err != nil {
		h.logError(ctx, "AnalyticsHandler.Pivot", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(pivot))
}

// MoodTimeline 最近若干天的心情时间线
func (h *AnalyticsHandler) MoodTimeline(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.MoodTimelineRequest{}

	// 参数绑定和验证
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("AnalyticsHandler.MoodTimeline.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	// 获取用户 ID
	uid := pkgapp.GetUID(c)
	if uid == 0 {
		h.App.Logger().Error("AnalyticsHandler.MoodTimeline err uid=0")
		response.ToResponse(code.ErrorInvalidUserAuthToken)
		return
	}

	ctx := c.Request.Context()

	timeline, err := h.App.AnalyticsService.MoodTimeline(ctx, uid, params)
	if err != nil {
		h.logError(ctx, "AnalyticsHandler.MoodTimeline", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(timeline))
}

// MoodCalendar 指定月份的心情日历
func (h *AnalyticsHandler) MoodCalendar(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.MoodCalendarRequest{}

	// 参数绑定和验证
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("AnalyticsHandler.MoodCalendar.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	// 获取用户 ID
	uid := pkgapp.GetUID(c)
	if uid == 0 {
		h.App.Logger().Error("AnalyticsHandler.MoodCalendar err uid=0")
		response.ToResponse(code.ErrorInvalidUserAuthToken)
		return
	}

	ctx := c.Request.Context()

	days, err := h.App.AnalyticsService.MoodCalendar(ctx, uid, params)
	if err != nil {
		h.logError(ctx, "AnalyticsHandler.MoodCalendar", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(days))
}
