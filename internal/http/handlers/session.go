package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/khauvukhanh/web-clot/internal/http/flash"
	"github.com/khauvukhanh/web-clot/internal/http/middleware"
	"github.com/khauvukhanh/web-clot/internal/http/render"
	"github.com/khauvukhanh/web-clot/pkg/view"
)

// SessionHandler accepts an already-issued API token and stores it in
// the signed session cookie. Actually obtaining the token (the login
// credential exchange) happens in the storefront, not here.
type SessionHandler struct {
	Cfg   middleware.SessionCfg
	Flash *flash.Codec
}

func NewSessionHandler(cfg middleware.SessionCfg, f *flash.Codec) *SessionHandler {
	return &SessionHandler{Cfg: cfg, Flash: f}
}

func (h *SessionHandler) Get(c *gin.Context) {
	if _, ok := middleware.Credentials(c); ok {
		c.Redirect(http.StatusFound, "/admin/categories")
		return
	}
	render.HTML(c, http.StatusOK, "session.tmpl", view.SessionPage{
		Flash:  middleware.GetFlash(c),
		Errors: map[string]string{},
	})
}

func (h *SessionHandler) Post(c *gin.Context) {
	token := strings.TrimSpace(c.PostForm("token"))
	if token == "" {
		render.HTML(c, http.StatusBadRequest, "session.tmpl", view.SessionPage{
			Flash:  middleware.GetFlash(c),
			Errors: map[string]string{"token": "This field is required."},
		})
		return
	}

	middleware.SetSessionCookie(c, h.Cfg, token)
	render.RedirectWithFlash(c, h.Flash, "/admin/categories", view.FlashSuccess, "Session started.")
}

// Logout clears the token cookie and leaves the protected area.
func (h *SessionHandler) Logout(c *gin.Context) {
	middleware.ClearSessionCookie(c, h.Cfg)
	c.Redirect(http.StatusFound, "/session")
}
