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

// NotebookHandler 笔记本 API 路由处理器
// 使用 App Container 注入依赖，支持统一错误处理
type NotebookHandler struct {
	*Handler
}

// NewNotebookHandler 创建 NotebookHandler 实例
func NewNotebookHandler(a *app.App) *NotebookHandler {
	return &NotebookHandler{
		Handler: NewHandler(a),
	}
}

// Create 创建笔记本
func (h *NotebookHandler) Create(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.NotebookCreateRequest{}

	// 参数绑定和验证
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("NotebookHandler.Create.BindAndValid err", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	// 获取用户 ID
	uid := pkgapp.GetUID(c)
	if uid == 0 {
		h.App.Logger().Error("NotebookHandler.Create err uid=0")
		response.ToResponse(code.ErrorInvalidUserAuthToken)
		return
	}

	ctx := c.Request.Context()

	notebook, err := h.App.NotebookService.Create(ctx, uid, params)
	if err != nil {
		h.logError(ctx, "NotebookHandler.Create", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(notebook))
}

// Update 更新笔记本
func (h *NotebookHandler) Update(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.NotebookUpdateRequest{}

	// 参数绑定和验证
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("NotebookHandler.Update.BindAndValid err", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	// 获取用户 ID
	uid := pkgapp.GetUID(c)
	if uid == 0 {
		h.App.Logger().Error("NotebookHandler.Update err uid=0")
		response.ToResponse(code.ErrorInvalidUserAuthToken)
		return
	}

	ctx := c.Request.Context()

	notebook, err := h.App.NotebookService.Update(ctx, uid, params)
	if err != nil {
		h.logError(ctx, "NotebookHandler.Update", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(notebook))
}

// Get 获取单个笔记本
func (h *NotebookHandler) Get(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.NotebookGetRequest{}

	// 参数绑定和验证
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("NotebookHandler.Get.BindAndValid err", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	// 获取用户 ID
	uid := pkgapp.GetUID(c)
	if uid == 0 {
		h.App.Logger().Error("NotebookHandler.Get err uid=0")
		response.ToResponse(code.ErrorInvalidUserAuthToken)
		return
	}

	ctx := c.Request.Context()

	notebook, err := h.App.NotebookService.Get(ctx, uid, params.ID)
	if err != nil {
		h.logError(ctx, "NotebookHandler.Get", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(notebook))
}

// List 获取笔记本列表
func (h *NotebookHandler) List(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.NotebookListRequest{}

	// 参数绑定和验证
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("NotebookHandler.List.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	// 获取用户 ID
	uid := pkgapp.GetUID(c)
	if uid == 0 {
		h.App.Logger().Error("NotebookHandler.List err uid=0")
		response.ToResponse(code.ErrorInvalidUserAuthToken)
		return
	}

	ctx := c.Request.Context()

	notebooks, err := h.App.NotebookService.List(ctx, uid, params.IncludeInactive)
	if err != nil {
		h.logError(ctx, "NotebookHandler.List", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(notebooks))
}

// Archive 停用笔记本
func (h *NotebookHandler) Archive(c *gin.Context) {
	h.setActive(c, "NotebookHandler.Archive", false)
}

// Unarchive 重新启用笔记本
func (h *NotebookHandler) Unarchive(c *gin.Context) {
	h.setActive(c, "NotebookHandler.Unarchive", true)
}

func (h *NotebookHandler) setActive(c *gin.Context, scope string, active bool) {
	response := pkgapp.NewResponse(c)
	params := &dto.NotebookArchiveRequest{}

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

	ctx := c.Request.Context()

	var err error
	if active {
		err = h.App.NotebookService.Unarchive(ctx, uid, params.ID)
	} else {
		err = h.App.NotebookService.Archive(ctx, uid, params.ID)
	}
	if err != nil {
		h.logError(ctx, scope, err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success)
}

// Delete 删除笔记本
// 包含条目时必须显式 confirm 级联删除
func (h *NotebookHandler) Delete(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.NotebookDeleteRequest{}

	// 参数绑定和验证
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("NotebookHandler.Delete.BindAndValid err", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	// 获取用户 ID
	uid := pkgapp.GetUID(c)
	if uid == 0 {
		h.App.Logger().Error("NotebookHandler.Delete err uid=0")
		response.ToResponse(code.ErrorInvalidUserAuthToken)
		return
	}

	ctx := c.Request.Context()

	if err := h.App.NotebookService.Delete(ctx, uid, params.ID, params.Confirm); err != nil {
		h.logError(ctx, "NotebookHandler.Delete", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success)
}
