package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khauvukhanh/web-clot/internal/http/flash"
	"github.com/khauvukhanh/web-clot/internal/http/middleware"
	"github.com/khauvukhanh/web-clot/internal/http/render"
	"github.com/khauvukhanh/web-clot/internal/http/validation"
	"github.com/khauvukhanh/web-clot/internal/modules/categories"
	"github.com/khauvukhanh/web-clot/pkg/view"
)

type CategoriesHandler struct {
	Mgr   *categories.Manager
	Flash *flash.Codec
}

func NewCategoriesHandler(mgr *categories.Manager, f *flash.Codec) *CategoriesHandler {
	return &CategoriesHandler{Mgr: mgr, Flash: f}
}

// List refetches the collection on every visit and renders it. A fetch
// failure surfaces as a toast over whatever was held before.
func (h *CategoriesHandler) List(c *gin.Context) {
	creds, _ := middleware.Credentials(c)
	_ = h.Mgr.Refresh(c.Request.Context(), creds)

	page := view.CategoriesPage{
		Flash:  render.PageFlash(c, h.Mgr.Notifier()),
		Errors: map[string]string{},
	}
	for _, cat := range h.Mgr.Items() {
		page.Items = append(page.Items, view.CategoryRow{
			ID:          cat.ID,
			Name:        cat.Name,
			Description: cat.Description,
			Image:       cat.Image,
		})
	}

	if editID := c.Query("edit"); editID != "" {
		if cat, ok := h.Mgr.Find(editID); ok {
			page.Editing = true
			page.Form = view.CategoryForm{
				ID:          cat.ID,
				Name:        cat.Name,
				Description: cat.Description,
				Image:       cat.Image,
			}
		}
	}

	render.HTML(c, http.StatusOK, "categories.tmpl", page)
}

func (h *CategoriesHandler) Create(c *gin.Context) {
	creds, _ := middleware.Credentials(c)

	var in categories.Input
	if err := c.ShouldBind(&in); err != nil {
		h.renderFormErrors(c, in, "", validation.FromBindError(err, &in))
		return
	}

	_ = h.Mgr.Create(c.Request.Context(), creds, in)
	render.RedirectWithNotice(c, h.Flash, "/admin/categories", h.Mgr.Notifier())
}

func (h *CategoriesHandler) Update(c *gin.Context) {
	creds, _ := middleware.Credentials(c)
	id := c.Param("id")

	var in categories.Input
	if err := c.ShouldBind(&in); err != nil {
		h.renderFormErrors(c, in, id, validation.FromBindError(err, &in))
		return
	}

	_ = h.Mgr.Update(c.Request.Context(), creds, id, in)
	render.RedirectWithNotice(c, h.Flash, "/admin/categories", h.Mgr.Notifier())
}

// Delete only acts on an explicitly confirmed form post; without the
// confirm flag it bounces back untouched.
func (h *CategoriesHandler) Delete(c *gin.Context) {
	creds, _ := middleware.Credentials(c)
	id := c.Param("id")

	if c.PostForm("confirm") != "1" {
		c.Redirect(http.StatusFound, "/admin/categories")
		return
	}

	label := id
	if cat, ok := h.Mgr.Find(id); ok {
		label = cat.Name
	}
	_ = h.Mgr.Delete(c.Request.Context(), creds, id, label)
	render.RedirectWithNotice(c, h.Flash, "/admin/categories", h.Mgr.Notifier())
}

// renderFormErrors re-renders the page with the submitted values and
// field messages; nothing reached the network.
func (h *CategoriesHandler) renderFormErrors(c *gin.Context, in categories.Input, editID string, errs validation.FieldErrors) {
	page := view.CategoriesPage{
		Flash:   render.PageFlash(c, h.Mgr.Notifier()),
		Editing: editID != "",
		Form: view.CategoryForm{
			ID:          editID,
			Name:        in.Name,
			Description: in.Description,
			Image:       in.Image,
		},
		Errors: errs,
	}
	for _, cat := range h.Mgr.Items() {
		page.Items = append(page.Items, view.CategoryRow{
			ID:          cat.ID,
			Name:        cat.Name,
			Description: cat.Description,
			Image:       cat.Image,
		})
	}
	render.HTML(c, http.StatusBadRequest, "categories.tmpl", page)
}
