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

// TagHandler 标签 API 路由处理器
// 使用 App Container 注入依赖，支持统一错误处理
type TagHandler struct {
	*Handler
}

// NewTagHandler 创建 TagHandler 实例
func NewTagHandler(a *app.App) *TagHandler {
	return &TagHandler{
		Handler: NewHandler(a),
	}
}

// Create 创建标签
func (h *TagHandler) Create(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.TagCreateRequest{}

	// 参数绑定和验证
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("TagHandler.Create.BindAndValid err", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	// 获取用户 ID
	uid := pkgapp.GetUID(c)
	if uid == 0 {
		h.App.Logger().Error("TagHandler.Create err uid=0")
		response.ToResponse(code.ErrorInvalidUserAuthToken)
		return
	}

	ctx := c.Request.Context()

	tag, err := h.App.TagService.Create(ctx, uid, params)
	if err != nil {
		h.logError(ctx, "TagHandler.Create", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(tag))
}

// Update 更新标签
func (h *TagHandler) Update(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.TagUpdateRequest{}

	// 参数绑定和验证
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("TagHandler.Update.BindAndValid err", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	// 获取用户 ID
	uid := pkgapp.GetUID(c)
	if uid == 0 {
		h.App.Logger().Error("TagHandler.Update err uid=0")
		response.ToResponse(code.ErrorInvalidUserAuthToken)
		return
	}

	ctx := c.Request.Context()

	tag, err := h.App.TagService.Update(ctx, uid, params)
	if err != nil {
		h.logError(ctx, "TagHandler.Update", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(tag))
}

// Get 获取单个标签
func (h *TagHandler) Get(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.TagGetRequest{}

	// 参数绑定和验证
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("TagHandler.Get.BindAndValid err", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	// 获取用户 ID
	uid := pkgapp.GetUID(c)
	if uid == 0 {
		h.App.Logger().Error("TagHandler.Get err uid=0")
		response.ToResponse(code.ErrorInvalidUserAuthToken)
		return
	}

	ctx := c.Request.Context()

	tag, err := h.App.TagService.Get(ctx, uid, params.ID)
	if err != nil {
		h.logError(ctx, "TagHandler.Get", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(tag))
}

// List 获取标签列表
func (h *TagHandler) List(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.TagListRequest{}

	// 参数绑定和验证
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("TagHandler.List.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	// 获取用户 ID
	uid := pkgapp.GetUID(c)
	if uid == 0 {
		h.App.Logger().Error("TagHandler.List err uid=0")
		response.ToResponse(code.ErrorInvalidUserAuthToken)
		return
	}

	ctx := c.Request.Context()

	tags, err := h.App.TagService.List(ctx, uid, params.IncludeInactive)
	if err != nil {
		h.logError(ctx, "TagHandler.List", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(tags))
}

// Archive 停用标签并将其从所有条目上摘除
func (h *TagHandler) Archive(c *gin.Context) {
	h.setActive(c, "TagHandler.Archive", false)
}

// Unarchive 重新启用标签
func (h *TagHandler) Unarchive(c *gin.Context) {
	h.setActive(c, "TagHandler.Unarchive", true)
}

func (h *TagHandler) setActive(c *gin.Context, scope string, active bool) {
	response := pkgapp.NewResponse(c)
	params := &dto.TagArchiveRequest{}

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
		err = h.App.TagService.Unarchive(ctx, uid, params.ID)
	} else {
		err = h.App.TagService.Archive(ctx, uid, params.ID)
	}
	if err != nil {
		h.logError(ctx, scope, err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success)
}

// Delete 删除标签并将其从所有条目上摘除
func (h *TagHandler) Delete(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.TagDeleteRequest{}

	// 参数绑定和验证
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("TagHandler.Delete.BindAndValid err", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	// 获取用户 ID
	uid := pkgapp.GetUID(c)
	if uid == 0 {
		h.App.Logger().Error("TagHandler.Delete err uid=0")
		response.ToResponse(code.ErrorInvalidUserAuthToken)
		return
	}

	ctx := c.Request.Context()

	if err := h.App.TagService.Delete(ctx, uid, params.ID); err != nil {
		h.logError(ctx, "TagHandler.Delete", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success)
}
