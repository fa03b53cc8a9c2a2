package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CodeOK is the envelope code of every successful response.
const CodeOK = 200

// Envelope wraps every API response.
type Envelope struct {
	Code    int    `json:"code" example:"200"`
	Message string `json:"message" example:"OK"`
	Data    any    `json:"data"`
}

// ErrorResponse documents the failure envelope in swagger.
type ErrorResponse struct {
	Code    int    `json:"code" example:"404"`
	Message string `json:"message" example:"Game not found"`
}

func respond(c *gin.Context, status int, data any) {
	c.JSON(status, Envelope{Code: CodeOK, Message: "OK", Data: data})
}

func respondError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, Envelope{Code: status, Message: message})
}

// NoRoute answers unknown paths with the standard envelope.
func NoRoute(c *gin.Context) {
	respondError(c, http.StatusNotFound, "Resource not found")
}
