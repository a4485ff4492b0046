package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/khauvukhanh/web-clot/internal/http/flash"
	"github.com/khauvukhanh/web-clot/internal/http/middleware"
	"github.com/khauvukhanh/web-clot/internal/http/render"
	"github.com/khauvukhanh/web-clot/internal/http/validation"
	"github.com/khauvukhanh/web-clot/internal/modules/categories"
	"github.com/khauvukhanh/web-clot/internal/modules/products"
	"github.com/khauvukhanh/web-clot/pkg/view"
)

type ProductsHandler struct {
	Mgr   *products.Manager
	Cats  *categories.Manager
	Flash *flash.Codec
}

func NewProductsHandler(mgr *products.Manager, cats *categories.Manager, f *flash.Codec) *ProductsHandler {
	return &ProductsHandler{Mgr: mgr, Cats: cats, Flash: f}
}

// List refetches products and categories: the form's category select
// needs the current category set just like the product table does.
func (h *ProductsHandler) List(c *gin.Context) {
	creds, _ := middleware.Credentials(c)
	ctx := c.Request.Context()
	_ = h.Mgr.Refresh(ctx, creds)
	_ = h.Cats.Refresh(ctx, creds)

	page := h.buildPage(c)

	if editID := c.Query("edit"); editID != "" {
		if p, ok := h.Mgr.Find(editID); ok {
			page.Editing = true
			page.Form = view.ProductForm{
				ID:            p.ID,
				Name:          p.Name,
				Description:   p.Description,
				Price:         p.Price,
				DiscountPrice: p.DiscountPrice,
				Thumbnail:     p.Thumbnail,
				Images:        p.Images,
				CategoryID:    p.Category.ID,
				Stock:         p.Stock,
				IsActive:      p.IsActive,
			}
		}
	} else {
		page.Form.IsActive = true // new products default to active
	}

	render.HTML(c, http.StatusOK, "products.tmpl", page)
}

func (h *ProductsHandler) Create(c *gin.Context) {
	creds, _ := middleware.Credentials(c)

	in, errs := h.bindInput(c)
	if errs != nil {
		h.renderFormErrors(c, in, "", errs)
		return
	}

	_ = h.Mgr.Create(c.Request.Context(), creds, in)
	render.RedirectWithNotice(c, h.Flash, "/admin/products", h.Mgr.Notifier())
}

func (h *ProductsHandler) Update(c *gin.Context) {
	creds, _ := middleware.Credentials(c)
	id := c.Param("id")

	in, errs := h.bindInput(c)
	if errs != nil {
		h.renderFormErrors(c, in, id, errs)
		return
	}

	_ = h.Mgr.Update(c.Request.Context(), creds, id, in)
	render.RedirectWithNotice(c, h.Flash, "/admin/products", h.Mgr.Notifier())
}

func (h *ProductsHandler) Delete(c *gin.Context) {
	creds, _ := middleware.Credentials(c)
	id := c.Param("id")

	if c.PostForm("confirm") != "1" {
		c.Redirect(http.StatusFound, "/admin/products")
		return
	}

	label := id
	if p, ok := h.Mgr.Find(id); ok {
		label = p.Name
	}
	_ = h.Mgr.Delete(c.Request.Context(), creds, id, label)
	render.RedirectWithNotice(c, h.Flash, "/admin/products", h.Mgr.Notifier())
}

// bindInput binds the form and drops empty image rows (the form always
// carries one blank input for the next URL).
func (h *ProductsHandler) bindInput(c *gin.Context) (products.Input, validation.FieldErrors) {
	var in products.Input
	if err := c.ShouldBind(&in); err != nil {
		return in, validation.FromBindError(err, &in)
	}

	images := in.Images[:0]
	for _, img := range in.Images {
		if s := strings.TrimSpace(img); s != "" {
			images = append(images, s)
		}
	}
	in.Images = images
	return in, nil
}

func (h *ProductsHandler) buildPage(c *gin.Context) view.ProductsPage {
	page := view.ProductsPage{
		Flash:  render.PageFlash(c, h.Mgr.Notifier()),
		Errors: map[string]string{},
	}
	for _, cat := range h.Cats.Items() {
		page.Categories = append(page.Categories, view.CategoryOption{ID: cat.ID, Name: cat.Name})
	}
	for _, p := range h.Mgr.Items() {
		row := view.ProductRow{
			ID:           p.ID,
			Name:         p.Name,
			CategoryName: p.Category.Name,
			Thumbnail:    p.Thumbnail,
			Price:        view.Money(p.Price),
			Stock:        p.Stock,
			Active:       p.IsActive,
		}
		if p.DiscountPrice > 0 {
			row.Discount = view.Money(p.DiscountPrice)
		}
		page.Items = append(page.Items, row)
	}
	return page
}

func (h *ProductsHandler) renderFormErrors(c *gin.Context, in products.Input, editID string, errs validation.FieldErrors) {
	page := h.buildPage(c)
	page.Editing = editID != ""
	page.Form = view.ProductForm{
		ID:            editID,
		Name:          in.Name,
		Description:   in.Description,
		Price:         in.Price,
		DiscountPrice: in.DiscountPrice,
		Thumbnail:     in.Thumbnail,
		Images:        in.Images,
		CategoryID:    in.Category,
		Stock:         in.Stock,
		IsActive:      in.IsActive,
	}
	page.Errors = errs
	render.HTML(c, http.StatusBadRequest, "products.tmpl", page)
}
