package utils

import (
	"net/http"

	"github.com/alshuail/authnotify/internal/pkg/apperror"
	"github.com/alshuail/authnotify/internal/pkg/logger"
	"github.com/gin-gonic/gin"
)

// GinSuccess writes the standard success envelope on a gin context
func GinSuccess(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// GinError writes the standard error envelope on a gin context
func GinError(c *gin.Context, statusCode int, errorMessage string) {
	c.AbortWithStatusJSON(statusCode, ErrorResponse{
		Success: false,
		Error:   errorMessage,
		Code:    statusCode,
	})
}

// GinHandleError maps a usecase error to its response on a gin context
func GinHandleError(c *gin.Context, err error) {
	appErr, ok := apperror.As(err)
	if !ok || appErr.Kind == apperror.KindInternal || appErr.Kind == apperror.KindConfiguration {
		logger.Error("Request failed",
			logger.String("path", c.FullPath()),
			logger.Err(err))
		GinError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	GinError(c, appErr.Kind.HTTPStatus(), appErr.Message)
}
