package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// Recovery превращает панику хендлера в 500 и пишет стек вместе с request id.
func Recovery(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			c.Set(errorKey, fmt.Sprintf("panic: %v", rec))
			log.LogAttrs(c.Request.Context(), logger.ErrorLevel, "panic recovered",
				logger.Any("panic", rec),
				logger.String("method", c.Request.Method),
				logger.String("path", c.Request.URL.Path),
				logger.String("request_id", c.GetString(requestIDKey)),
				logger.String("stack", string(debug.Stack())),
			)
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				ginext.H{"error": "internal server error"},
			)
		}()

		c.Next()
	}
}
