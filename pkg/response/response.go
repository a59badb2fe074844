package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "task-assistant/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Created sends 201 JSON with data.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, NewOKResp(data))
}

// Error sends the error envelope. HTTPErrors keep their status and code;
// anything else is reported as a 500 without exposing its message.
func Error(c *gin.Context, err error) {
	he, ok := pkgErrors.AsHTTPError(err)
	if !ok {
		InternalError(c, err)
		return
	}
	c.AbortWithStatusJSON(he.StatusCode, Resp{
		ErrorCode: he.StatusCode,
		Code:      he.Code,
		Message:   he.Message,
	})
}

// BadRequest sends 400 with the binding or validation error message.
func BadRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, Resp{
		ErrorCode: http.StatusBadRequest,
		Code:      pkgErrors.ErrBadRequest.Code,
		Message:   err.Error(),
	})
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Code:      pkgErrors.ErrInternalServerError.Code,
		Message:   DefaultErrorMessage,
	})
}

// Unauthorized sends 401 response.
func Unauthorized(c *gin.Context) {
	Error(c, pkgErrors.ErrUnauthorized)
}

// Forbidden sends 403 response.
func Forbidden(c *gin.Context) {
	Error(c, pkgErrors.ErrForbidden)
}

// TooManyRequests sends 429 response.
func TooManyRequests(c *gin.Context) {
	Error(c, pkgErrors.ErrTooManyRequests)
}
