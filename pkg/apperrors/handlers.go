package apperrors

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the uniform error envelope returned to clients.
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// HandleError writes an AppError to the gin response.
func HandleError(c *gin.Context, err *AppError) {
	c.JSON(err.HTTPCode, ErrorResponse{Error: err})
}

// AbortWithError writes the error and stops the handler chain. Used by
// middleware so downstream handlers never run on failed authorization.
func AbortWithError(c *gin.Context, err *AppError) {
	c.AbortWithStatusJSON(err.HTTPCode, ErrorResponse{Error: err})
}
