package middleware

import (
	ierr "github.com/docsense/docsense/internal/errors"
	"github.com/docsense/docsense/internal/logger"
	"github.com/gin-gonic/gin"
)

// ErrorHandler converts errors attached via c.Error into the standard JSON
// error body. Handlers never write error responses themselves.
func ErrorHandler(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		// last error wins; earlier ones are in the request log
		err := c.Errors.Last().Err

		status := ierr.HTTPStatusFromErr(err)
		if status >= 500 {
			log.Errorw("request failed", "error", err, "path", c.Request.URL.Path)
		}

		c.JSON(status, ierr.NewErrorResponse(err))
	}
}
