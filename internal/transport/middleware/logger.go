package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func Logger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		var evt *zerolog.Event
		if status >= 400 {
			evt = logger.Warn()
		} else {
			evt = logger.Info()
		}

		evt.Str("request_id", GetRequestID(c)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Str("user_agent", c.Request.UserAgent())

		if len(c.Errors) > 0 {
			evt.Str("error", c.Errors.String())
		}

		if status >= 400 {
			evt.Msg("Request failed")
		} else {
			evt.Msg("Request processed")
		}
	}
}
