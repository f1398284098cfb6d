package utils

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SendError sends a plain error response and logs the internal error.
// For 5xx responses the publicMsg shown to the client stays generic while the
// actual internalError only reaches the log.
func SendError(c *gin.Context, statusCode int, publicMsg string, internalError error) {
	if internalError != nil {
		log.Printf("ERROR: Handler error: status_code=%d, public_message='%s', internal_error='%v', path='%s'",
			statusCode, publicMsg, internalError, c.Request.URL.Path)
	} else {
		log.Printf("INFO: Handler response: status_code=%d, public_message='%s', path='%s'",
			statusCode, publicMsg, c.Request.URL.Path)
	}

	if statusCode >= http.StatusInternalServerError && publicMsg == "" {
		publicMsg = "Ocurrió un error inesperado. Inténtelo de nuevo más tarde."
	}

	c.String(statusCode, publicMsg)
	c.Abort()
}
