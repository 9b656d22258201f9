package api_router

import (
	"net/http"

	"github.com/inkwellapp/journal-service/internal/app"
	"github.com/inkwellapp/journal-service/internal/dto"
	pkgapp "github.com/inkwellapp/journal-service/pkg/app"
	"github.com/inkwellapp/journal-service/pkg/code"
	apperrors "github.com/inkwellapp/journal-service/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ExportHandler 导出 API 路由处理器
// 使用 App Container 注入依赖，支持统一错误处理
type ExportHandler struct {
	*Handler
}

// NewExportHandler 创建 ExportHandler 实例
func NewExportHandler(a *app.App) *ExportHandler {
	return &ExportHandler{
		Handler: NewHandler(a),
	}
}

// Markdown 将条目导出为 Markdown 文档
func (h *ExportHandler) Markdown(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.ExportRequest{}

	// 参数绑定和验证
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("ExportHandler.Markdown.BindAndValid err", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	// 获取用户 ID
	uid := pkgapp.GetUID(c)
	if uid == 0 {
		h.App.Logger().Error("ExportHandler.Markdown err uid=0")
		response.ToResponse(code.ErrorInvalidUserAuthToken)
		return
	}

	ctx := c.Request.Context()

	result, err := h.App.ExportService.Markdown(ctx, uid, params.ID)
	if err != nil {
		h.logError(ctx, "ExportHandler.Markdown", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	// download=1 时作为附件下载，否则返回 JSON
	if c.Query("download") == "1" {
		c.Header("Content-Disposition", "attachment; filename="+result.FileName)
		c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(result.Markdown))
		return
	}

	response.ToResponse(code.Success.WithData(result))
}

// PrintHTML 将条目导出为可打印的自包含 HTML 文档
func (h *ExportHandler) PrintHTML(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.ExportRequest{}

	// 参数绑定和验证
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("ExportHandler.PrintHTML.BindAndValid err", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	// 获取用户 ID
	uid := pkgapp.GetUID(c)
	if uid == 0 {
		h.App.Logger().Error("ExportHandler.PrintHTML err uid=0")
		response.ToResponse(code.ErrorInvalidUserAuthToken)
		return
	}

	ctx := c.Request.Context()

	result, err := h.App.ExportService.PrintHTML(ctx, uid, params.ID)
	if err != nil {
		h.logError(ctx, "ExportHandler.PrintHTML", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	// download=1 时直接输出 HTML，交给浏览器打印或 PDF 渲染器处理
	if c.Query("download") == "1" {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(result.HTML))
		return
	}

	response.ToResponse(code.Success.WithData(result))
}
