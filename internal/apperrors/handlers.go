package apperrors

import (
	"jobconnect/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the standard error body.
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// HandleError writes an AppError to the Gin response.
func HandleError(c *gin.Context, err *AppError) {
	if err.HTTPCode >= 500 {
		logger.CtxWithError(c.Request.Context(), "server error", err)
	}
	c.JSON(err.HTTPCode, ErrorResponse{Error: err})
}
