package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// apiError carries the status and message a failed operation should answer with.
type apiError struct {
	status  int
	message string
}

func (e *apiError) Error() string { return e.message }

func badRequest(message string) error { return &apiError{status: http.StatusBadRequest, message: message} }
func notFound(message string) error   { return &apiError{status: http.StatusNotFound, message: message} }
func conflict(message string) error   { return &apiError{status: http.StatusConflict, message: message} }

// fail answers with the apiError in err, or a generic 500 for anything else.
func fail(c *gin.Context, err error) {
	var apiErr *apiError
	if errors.As(err, &apiErr) {
		respondError(c, apiErr.status, apiErr.message)
		return
	}
	log.Printf("%s %s: %v", c.Request.Method, c.FullPath(), err)
	respondError(c, http.StatusInternalServerError, "Internal server error")
}
