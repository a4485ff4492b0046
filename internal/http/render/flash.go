package render

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khauvukhanh/web-clot/internal/http/flash"
	"github.com/khauvukhanh/web-clot/internal/http/middleware"
	"github.com/khauvukhanh/web-clot/internal/notify"
	"github.com/khauvukhanh/web-clot/pkg/view"
)

func RedirectWithFlash(c *gin.Context, codec *flash.Codec, location string, kind view.FlashKind, msg string) {
	middleware.SetFlashCookie(c, codec, view.Flash{Kind: kind, Message: msg})
	c.Redirect(http.StatusFound, location)
}

// RedirectWithNotice carries a manager's current toast over the
// redirect. No visible notice means a plain redirect.
func RedirectWithNotice(c *gin.Context, codec *flash.Codec, location string, n *notify.Notifier) {
	notice, ok := n.Current()
	if !ok {
		c.Redirect(http.StatusFound, location)
		return
	}
	kind := view.FlashSuccess
	if notice.Kind == notify.Error {
		kind = view.FlashError
	}
	RedirectWithFlash(c, codec, location, kind, notice.Message)
}

// PageFlash prefers the redirect-carried flash, falling back to the
// screen's own notification slot (covers fetch failures on GET).
func PageFlash(c *gin.Context, n *notify.Notifier) *view.Flash {
	if f := middleware.GetFlash(c); f != nil {
		return f
	}
	notice, ok := n.Current()
	if !ok {
		return nil
	}
	kind := view.FlashSuccess
	if notice.Kind == notify.Error {
		kind = view.FlashError
	}
	return &view.Flash{Kind: kind, Message: notice.Message}
}
