package middleware

import (
	"net/http"
	"time"

	"terminal-terrace/blog/packages/response"

	"github.com/gin-gonic/gin"
	"github.com/labstack/gommon/log"
)

// RequestLogger 记录请求方法、路径、状态码与耗时
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		begin := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path += "?" + raw
		}

		c.Next()

		status := c.Writer.Status()
		latency := time.Since(begin)
		switch {
		case status >= 500:
			log.Errorf("%s %s -> %d in %v (%s) %s", c.Request.Method, path, status, latency, c.ClientIP(), c.Errors.String())
		case status >= 400:
			log.Warnf("%s %s -> %d in %v (%s)", c.Request.Method, path, status, latency, c.ClientIP())
		default:
			log.Infof("%s %s -> %d in %v (%s)", c.Request.Method, path, status, latency, c.ClientIP())
		}
	}
}

// Recovery 捕获 panic 并返回 500
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Errorf("panic recovered: %v", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.ErrorResponse(response.Fail, "服务器内部错误"))
	})
}
