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

// EntryVersionHandler 版本历史 API 路由处理器
// 使用 App Container 注入依赖，支持统一错误处理
type EntryVersionHandler struct {
	*Handler
}

// NewEntryVersionHandler 创建 EntryVersionHandler 实例
func NewEntryVersionHandler(a *app.App) *EntryVersionHandler {
	return &EntryVersionHandler{
		Handler: NewHandler(a),
	}
}

// List 分页获取条目的版本列表，序号升序
func (h *EntryVersionHandler) List(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.EntryVersionListRequest{}

	// 参数绑定和验证
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("EntryVersionHandler.List.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	// 获取用户 ID
	uid := pkgapp.GetUID(c)
	if uid == 0 {
		h.App.Logger().Error("EntryVersionHandler.List err uid=0")
		response.ToResponse(code.ErrorInvalidUserAuthToken)
		return
	}

	ctx := c.Request.Context()

	pager := &pkgapp.Pager{Page: pkgapp.GetPage(c), PageSize: pkgapp.GetPageSize(c)}

	versions, count, err := h.App.VersionService.List(ctx, uid, params, pager)
	if err != nil {
		h.logError(ctx, "EntryVersionHandler.List", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponseList(code.Success, versions, int(count))
}

// Get 获取指定序号的版本全文
func (h *EntryVersionHandler) Get(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.EntryVersionGetRequest{}

	// 参数绑定和验证
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("EntryVersionHandler.Get.BindAndValid err", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	// 获取用户 ID
	uid := pkgapp.GetUID(c)
	if uid == 0 {
		h.App.Logger().Error("EntryVersionHandler.Get err uid=0")
		response.ToResponse(code.ErrorInvalidUserAuthToken)
		return
	}

	ctx := c.Request.Context()

	version, err := h.App.VersionService.Get(ctx, uid, params)
	if err != nil {
		h.logError(ctx, "EntryVersionHandler.Get", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(version))
}

// Diff 对比两个版本，toSequence 为 0 时与当前正文对比
func (h *EntryVersionHandler) Diff(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.EntryVersionDiffRequest{}

	// 参数绑定和验证
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("EntryVersionHandler.Diff.BindAndValid err", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	// 获取用户 ID
	uid := pkgapp.GetUID(c)
	if uid == 0 {
		h.App.Logger().Error("EntryVersionHandler.Diff err uid=0")
		response.ToResponse(code.ErrorInvalidUserAuthToken)
		return
	}

	ctx := c.Request.Context()

	diff, err := h.App.VersionService.Diff(ctx, uid, params)
	if err != nil {
		h.logError(ctx, "EntryVersionHandler.Diff", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(diff))
}
