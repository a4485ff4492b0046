package products

import (
	"time"

	"github.com/khauvukhanh/web-clot/internal/api"
	"github.com/khauvukhanh/web-clot/internal/modules/resource"
	"github.com/khauvukhanh/web-clot/internal/notify"
)

// CategoryRef is the embedded id+name shape the API returns on listed
// products (the full category object lives on /api/categories).
type CategoryRef struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

type Product struct {
	ID            string      `json:"_id"`
	Name          string      `json:"name"`
	Description   string      `json:"description"`
	Price         float64     `json:"price"`
	DiscountPrice float64     `json:"discountPrice"`
	Thumbnail     string      `json:"thumbnail"`
	Images        []string    `json:"images"`
	Category      CategoryRef `json:"category"`
	Stock         int         `json:"stock"`
	IsActive      bool        `json:"isActive"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

// Input is the create/update payload; the category travels as a bare
// id. The discount/price relation is not validated here; whether the
// server enforces it is unconfirmed.
type Input struct {
	Name          string   `json:"name" form:"name" binding:"required"`
	Description   string   `json:"description" form:"description" binding:"required"`
	Price         float64  `json:"price" form:"price" binding:"gte=0"`
	DiscountPrice float64  `json:"discountPrice" form:"discountPrice" binding:"gte=0"`
	Thumbnail     string   `json:"thumbnail" form:"thumbnail" binding:"omitempty,url"`
	Images        []string `json:"images" form:"images"`
	Category      string   `json:"category" form:"category" binding:"required"`
	Stock         int      `json:"stock" form:"stock" binding:"gte=0"`
	IsActive      bool     `json:"isActive" form:"isActive"`
}

type Manager struct {
	*resource.Controller[Product]
}

func NewManager(client *api.Client) *Manager {
	res := api.NewResource[Product](client, "/api/products")
	msgs := resource.Messages{
		FetchFailed:  "Failed to fetch products",
		Created:      "Product created successfully!",
		CreateFailed: "Failed to create product",
		Updated:      "Product updated successfully!",
		UpdateFailed: "Failed to update product",
		DeletedFmt:   "Product %q deleted successfully!",
		DeleteFailed: "Failed to delete product",
	}
	return &Manager{resource.NewController(res, notify.New(notify.DefaultDuration), msgs)}
}

func (m *Manager) Find(id string) (Product, bool) {
	for _, p := range m.Items() {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
