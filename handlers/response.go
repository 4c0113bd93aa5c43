package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func respond(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

func failValidation(c *gin.Context, errs []string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": errs})
}

// serverError logs the underlying failure and returns only the public
// message to the client.
func serverError(c *gin.Context, l *zap.Logger, public string, err error) {
	l.Error(public, zap.Error(err))
	fail(c, http.StatusInternalServerError, public)
}
