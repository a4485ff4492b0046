package render

import (
	"github.com/gin-gonic/gin"
)

func ErrorPage(c *gin.Context, status int, msg string, requestID string) {
	c.HTML(status, "error.tmpl", gin.H{
		"Status":    status,
		"Message":   msg,
		"RequestID": requestID,
	})
}
