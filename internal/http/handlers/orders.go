package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/khauvukhanh/web-clot/internal/http/flash"
	"github.com/khauvukhanh/web-clot/internal/http/middleware"
	"github.com/khauvukhanh/web-clot/internal/http/render"
	"github.com/khauvukhanh/web-clot/internal/modules/orders"
	"github.com/khauvukhanh/web-clot/pkg/view"
)

type OrdersHandler struct {
	Mgr   *orders.Manager
	Flash *flash.Codec
}

func NewOrdersHandler(mgr *orders.Manager, f *flash.Codec) *OrdersHandler {
	return &OrdersHandler{Mgr: mgr, Flash: f}
}

// List loads page 1 on a plain visit; a ?page=N link goes through the
// manager's range guard, so out-of-range targets fall back to whatever
// is currently held.
func (h *OrdersHandler) List(c *gin.Context) {
	creds, _ := middleware.Credentials(c)
	ctx := c.Request.Context()

	if raw := c.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			page = 0 // out of range, rejected by the guard
		}
		_ = h.Mgr.ChangePage(ctx, creds, page)
	} else {
		_ = h.Mgr.Fetch(ctx, creds, 1)
	}

	render.HTML(c, http.StatusOK, "orders.tmpl", h.buildPage(c))
}

func (h *OrdersHandler) UpdateStatus(c *gin.Context) {
	creds, _ := middleware.Credentials(c)
	id := c.Param("id")
	status := orders.Status(c.PostForm("status"))

	_ = h.Mgr.UpdateStatus(c.Request.Context(), creds, id, status)

	dest := "/admin/orders"
	if page := c.PostForm("page"); page != "" {
		dest += "?page=" + page
	}
	render.RedirectWithNotice(c, h.Flash, dest, h.Mgr.Notifier())
}

func (h *OrdersHandler) buildPage(c *gin.Context) view.OrdersPage {
	pg := h.Mgr.Pagination()

	page := view.OrdersPage{
		Flash: render.PageFlash(c, h.Mgr.Notifier()),
		Counts: view.OrderStatusCounts{
			Pending:    pg.StatusCounts.Pending,
			Processing: pg.StatusCounts.Processing,
			Shipped:    pg.StatusCounts.Shipped,
			Delivered:  pg.StatusCounts.Delivered,
			Cancelled:  pg.StatusCounts.Cancelled,
		},
		Page:     pg.Page,
		Pages:    pg.Pages,
		Total:    pg.Total,
		HasPrev:  pg.Page > 1,
		HasNext:  pg.Page < pg.Pages,
		PrevPage: pg.Page - 1,
		NextPage: pg.Page + 1,
	}
	for _, s := range orders.Statuses {
		page.Statuses = append(page.Statuses, string(s))
	}

	for _, o := range h.Mgr.Orders() {
		card := view.OrderCard{
			ID:          o.ID,
			ShortID:     view.ShortID(o.ID),
			Status:      string(o.Status),
			StatusClass: view.StatusClass(string(o.Status)),
			Address: view.OrderAddress{
				Street:  o.ShippingAddress.Street,
				City:    o.ShippingAddress.City,
				State:   o.ShippingAddress.State,
				ZipCode: o.ShippingAddress.ZipCode,
				Country: o.ShippingAddress.Country,
			},
			Total:         view.Money(o.TotalAmount),
			PaymentStatus: string(o.PaymentStatus),
			PaymentMethod: o.PaymentMethod,
			Note:          o.Note,
			CreatedAt:     view.FormatDate(o.CreatedAt),
		}
		for _, it := range o.Items {
			line := view.OrderLine{
				Thumbnail: it.Product.Thumbnail,
				Name:      it.Product.Name,
				Quantity:  it.Quantity,
				Price:     view.Money(it.Price),
			}
			if it.Product.DiscountPrice > 0 {
				line.Discount = view.Money(it.Product.DiscountPrice)
			}
			card.Items = append(card.Items, line)
		}
		page.Cards = append(page.Cards, card)
	}
	return page
}
