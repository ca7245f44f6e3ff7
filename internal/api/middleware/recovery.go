package middleware

import (
	"errors"
	"fmt"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shelftalk/shelftalk/pkg/logger"
	"github.com/shelftalk/shelftalk/pkg/response"
)

// Recovery turns panics into 500s, logging them and forwarding to sentry
// when a DSN was configured at startup.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				sentry.CurrentHub().Recover(r)
				logger.Error("panic recovered",
					zap.Any("panic", r),
					zap.String("path", c.Request.URL.Path),
				)
				response.InternalError(c, errors.New(fmt.Sprint(r)))
				c.Abort()
			}
		}()
		c.Next()
	}
}
