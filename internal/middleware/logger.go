package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// WithLogger attaches the service logger to the request context so
// handlers and use cases can pull it with zerolog.Ctx.
func WithLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context()))
		c.Next()
	}
}
