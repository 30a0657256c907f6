package middleware

import (
	"context"

	"github.com/docsense/docsense/internal/types"
	"github.com/gin-gonic/gin"
)

// RequestIDMiddleware takes the caller's X-Request-ID or generates one, puts
// it on the request context and echoes it in the response.
func RequestIDMiddleware(c *gin.Context) {
	requestID := c.GetHeader(types.HeaderRequestID)
	if requestID == "" {
		requestID = types.GenerateUUIDWithPrefix(types.UUID_PREFIX_REQUEST)
	}

	ctx := context.WithValue(c.Request.Context(), types.CtxRequestID, requestID)
	c.Request = c.Request.WithContext(ctx)
	c.Writer.Header().Set(types.HeaderRequestID, requestID)

	c.Next()
}
