package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	MessageSuccess = "success"

	// DefaultErrorMessage hides internals from API consumers.
	DefaultErrorMessage = "une erreur interne est survenue"
)

// Resp is the standard JSON response body. Mutations and reads share it:
// Success=false implies Data is absent and Message is human-readable.
type Resp struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

// NewOKResp returns a new success response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		Success: true,
		Message: MessageSuccess,
		Data:    data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// OKMessage sends 200 JSON with a human message and optional data.
func OKMessage(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Resp{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Created sends 201 JSON with a human message and the created record.
func Created(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, Resp{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Error sends an error response with the given status and message.
// fieldErrors carries per-field validation detail when present.
func Error(c *gin.Context, status int, message string, fieldErrors any) {
	c.JSON(status, Resp{
		Success: false,
		Message: message,
		Errors:  fieldErrors,
	})
}

// InternalError sends 500 without leaking internals.
func InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Resp{
		Success: false,
		Message: DefaultErrorMessage,
	})
}

// Unauthorized sends 401 response.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		Success: false,
		Message: "non autorisé",
	})
}

// Forbidden sends 403 response.
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, Resp{
		Success: false,
		Message: "accès refusé",
	})
}

// TooManyRequests sends 429 response.
func TooManyRequests(c *gin.Context) {
	c.JSON(http.StatusTooManyRequests, Resp{
		Success: false,
		Message: "trop de requêtes, veuillez réessayer plus tard",
	})
}
