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

// EntryHandler 日记条目 API 路由处理器
// 使用 App Container 注入依赖，支持统一错误处理
type EntryHandler struct {
	*Handler
}

// NewEntryHandler 创建 EntryHandler 实例
func NewEntryHandler(a *app.App) *EntryHandler {
	return &EntryHandler{
		Handler: NewHandler(a),
	}
}

// Create 创建条目
// 未指定笔记本时落入配置的默认笔记本
func (h *EntryHandler) Create(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.EntryCreateRequest{}

	// 参数绑定和验证
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("EntryHandler.Create.BindAndValid err", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	// 获取用户 ID
	uid := pkgapp.GetUID(c)
	if uid == 0 {
		h.App.Logger().Error("EntryHandler.Create err uid=0")
		response.ToResponse(code.ErrorInvalidUserAuthToken)
		return
	}

	ctx := c.Request.Context()

	// Apply default notebook if configured
	if params.NotebookID == 0 {
		if name := h.App.Config().Journal.DefaultNotebookName; name != "" {
			notebook, err := h.App.NotebookService.GetOrCreate(ctx, uid, name)
			if err != nil {
				h.logError(ctx, "EntryHandler.Create.GetOrCreate", err)
				apperrors.ErrorResponse(c, err)
				return
			}
			params.NotebookID = notebook.ID
		}
	}

	entry, err := h.App.EntryService.Create(ctx, uid, params)
	if err != nil {
		h.logError(ctx, "EntryHandler.Create", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(entry))
}

// Update 更新条目
func (h *EntryHandler) Update(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.EntryUpdateRequest{}

	// 参数绑定和验证
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("EntryHandler.Update.BindAndValid err", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	// 获取用户 ID
	uid := pkgapp.GetUID(c)
	if uid == 0 {
		h.App.Logger().Error("EntryHandler.Update err uid=0")
		response.ToResponse(code.ErrorInvalidUserAuthToken)
		return
	}

	ctx := c.Request.Context()

	entry, err := h.App.EntryService.Update(ctx, uid, params)
	if err != nil {
		h.logError(ctx, "EntryHandler.Update", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(entry))
}

// Get 获取单条条目详情
func (h *EntryHandler) Get(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.EntryGetRequest{}

	// 参数绑定和验证
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("EntryHandler.Get.BindAndValid err", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	// 获取用户 ID
	uid := pkgapp.GetUID(c)
	if uid == 0 {
		h.App.Logger().Error("EntryHandler.Get err uid=0")
		response.ToResponse(code.ErrorInvalidUserAuthToken)
		return
	}

	ctx := c.Request.Context()

	entry, err := h.App.EntryService.Get(ctx, uid, params.ID)
	if err != nil {
		h.logError(ctx, "EntryHandler.Get", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(entry))
}

// List 分页获取条目列表
func (h *EntryHandler) List(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.EntryListRequest{}

	// 参数绑定和验证
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("EntryHandler.List.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	// 获取用户 ID
	uid := pkgapp.GetUID(c)
	if uid == 0 {
		h.App.Logger().Error("EntryHandler.List err uid=0")
		response.ToResponse(code.ErrorInvalidUserAuthToken)
		return
	}

	ctx := c.Request.Context()

	pager := &pkgapp.Pager{Page: pkgapp.GetPage(c), PageSize: pkgapp.GetPageSize(c)}

	entries, count, err := h.App.EntryService.List(ctx, uid, params, pager)
	if err != nil {
		h.logError(ctx, "EntryHandler.List", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponseList(code.Success, entries, int(count))
}

// lifecycle 状态流转类操作的公共部分
func (h *EntryHandler) lifecycle(c *gin.Context, scope string, op func(uid, id int64) (*dto.EntryDTO, error)) {
	response := pkgapp.NewResponse(c)
	params := &dto.EntryGetRequest{}

	// 参数绑定和验证
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error(scope+".BindAndValid err", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	// 获取用户 ID
	uid := pkgapp.GetUID(c)
	if uid == 0 {
		h.App.Logger().Error(scope + " err uid=0")
		response.ToResponse(code.ErrorInvalidUserAuthToken)
		return
	}

	entry, err := op(uid, params.ID)
	if err != nil {
		h.logError(c.Request.Context(), scope, err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(entry))
}

// Publish 发布草稿条目
func (h *EntryHandler) Publish(c *gin.Context) {
	ctx := c.Request.Context()
	h.lifecycle(c, "EntryHandler.Publish", func(uid, id int64) (*dto.EntryDTO, error) {
		return h.App.EntryService.Publish(ctx, uid, id)
	})
}

// Unpublish 将已发布条目退回草稿
func (h *EntryHandler) Unpublish(c *gin.Context) {
	ctx := c.Request.Context()
	h.lifecycle(c, "EntryHandler.Unpublish", func(uid, id int64) (*dto.EntryDTO, error) {
		return h.App.EntryService.Unpublish(ctx, uid, id)
	})
}

// Archive 归档条目
func (h *EntryHandler) Archive(c *gin.Context) {
	ctx := c.Request.Context()
	h.lifecycle(c, "EntryHandler.Archive", func(uid, id int64) (*dto.EntryDTO, error) {
		return h.App.EntryService.Archive(ctx, uid, id)
	})
}

// Favorite 切换收藏标记
func (h *EntryHandler) Favorite(c *gin.Context) {
	ctx := c.Request.Context()
	h.lifecycle(c, "EntryHandler.Favorite", func(uid, id int64) (*dto.EntryDTO, error) {
		return h.App.EntryService.ToggleFavorite(ctx, uid, id)
	})
}

// Duplicate 复制条目
func (h *EntryHandler) Duplicate(c *gin.Context) {
	ctx := c.Request.Context()
	h.lifecycle(c, "EntryHandler.Duplicate", func(uid, id int64) (*dto.EntryDTO, error) {
		return h.App.EntryService.Duplicate(ctx, uid, id)
	})
}

// Restore 将已归档条目恢复到指定状态
func (h *EntryHandler) Restore(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.EntryRestoreRequest{}

	// 参数绑定和验证
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("EntryHandler.Restore.BindAndValid err", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	// 获取用户 ID
	uid := pkgapp.GetUID(c)
	if uid == 0 {
		h.App.Logger().Error("EntryHandler.Restore err uid=0")
		response.ToResponse(code.ErrorInvalidUserAuthToken)
		return
	}

	ctx := c.Request.Context()

	entry, err := h.App.EntryService.Restore(ctx, uid, params.ID, params.Target)
	if err != nil {
		h.logError(ctx, "EntryHandler.Restore", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(entry))
}

// Delete 删除条目及其全部版本
func (h *EntryHandler) Delete(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.EntryDeleteRequest{}

	// 参数绑定和验证
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("EntryHandler.Delete.BindAndValid err", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	// 获取用户 ID
	uid := pkgapp.GetUID(c)
	if uid == 0 {
		h.App.Logger().Error("EntryHandler.Delete err uid=0")
		response.ToResponse(code.ErrorInvalidUserAuthToken)
		return
	}

	ctx := c.Request.Context()

	if err := h.App.EntryService.Delete(ctx, uid, params.ID); err != nil {
		h.logError(ctx, "EntryHandler.Delete", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success)
}
