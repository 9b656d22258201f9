package middleware

import (
	"github.com/inkwellapp/journal-service/pkg/app"

	"github.com/gin-gonic/gin"
)

// AppInfoWithConfig 创建应用信息中间件（使用注入的应用名称与版本）
func AppInfoWithConfig(name, version string) gin.HandlerFunc {

	return func(c *gin.Context) {
		c.Set("app_name", name)
		c.Set("app_version", version)
		c.Set("access_host", app.GetAccessHost(c))

		c.Next()
	}
}
