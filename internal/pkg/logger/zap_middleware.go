package logger

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/labstack/echo/v4"
)

// ZapEchoMiddleware logs every request served by an echo router
func ZapEchoMiddleware(logger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				// let echo write the response so the status below is final
				c.Error(err)
			}

			userIDStr := "anonymous"
			if userID := c.Get("user_id"); userID != nil {
				userIDStr = fmt.Sprintf("%v", userID)
			}

			logger.LogHTTPRequest(
				c.Request().Method,
				c.Request().URL.Path,
				c.RealIP(),
				userIDStr,
				c.Response().Header().Get(echo.HeaderXRequestID),
				c.Response().Status,
				time.Since(start),
				err,
			)
			return nil
		}
	}
}

// ZapGinMiddleware logs every request served by a gin engine
func ZapGinMiddleware(logger *ZapLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		var err error
		if len(c.Errors) > 0 {
			err = c.Errors.Last()
		}

		userIDStr := "anonymous"
		if caller := c.GetString("api_client"); caller != "" {
			userIDStr = caller
		}

		logger.LogHTTPRequest(
			c.Request.Method,
			c.Request.URL.Path,
			c.ClientIP(),
			userIDStr,
			c.Writer.Header().Get("X-Request-ID"),
			c.Writer.Status(),
			time.Since(start),
			err,
		)
	}
}
