package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"plansvc/internal/shared/errors"
)

// ErrorBody is the wire shape of every error response.
type ErrorBody struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// JSONResponse sends data as-is with the given status code.
func JSONResponse(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// CreatedResponse sends data with a 201 status.
func CreatedResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// ErrorResponse sends an error body with an explicit status code.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorBody{Error: message, Code: statusCode})
}

// ErrorResponseWithError translates any error into the error body. AppErrors
// keep their code and message; anything else becomes an opaque 500.
func ErrorResponseWithError(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		c.JSON(appErr.Code, ErrorBody{Error: appErr.Message, Code: appErr.Code})
		return
	}
	c.JSON(http.StatusInternalServerError, ErrorBody{
		Error: "internal server error",
		Code:  http.StatusInternalServerError,
	})
}
