package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khauvukhanh/web-clot/internal/http/flash"
	"github.com/khauvukhanh/web-clot/pkg/view"
)

// RequireSession gates the protected area on token presence only.
// Whether the token is actually valid is the API's call; roles and
// expiry are not modelled here.
func RequireSession(flashCodec *flash.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := Credentials(c); ok {
			c.Next()
			return
		}

		if WantsJSON(c) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":      "session required",
				"request_id": GetRequestID(c),
			})
			return
		}

		SetFlashCookie(c, flashCodec, view.Flash{
			Kind:    view.FlashWarning,
			Message: "Sign in to continue.",
		})
		c.Redirect(http.StatusFound, "/session")
		c.Abort()
	}
}
