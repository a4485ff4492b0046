package orders

import "time"

// Status values the admin can set. The client enforces no transition
// order; any of the five may be sent regardless of the current value
// and the server applies its own validation.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

// Statuses lists the settable values in display order.
var Statuses = []Status{StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled}

// PaymentStatus is read-only on this dashboard.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

// ProductSnapshot is the product as captured on the order line. Unlike
// the catalog listing, the category here is a bare id.
type ProductSnapshot struct {
	ID            string   `json:"_id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	DiscountPrice float64  `json:"discountPrice"`
	Thumbnail     string   `json:"thumbnail"`
	Images        []string `json:"images"`
	Category      string   `json:"category"`
	Stock         int      `json:"stock"`
	IsActive      bool     `json:"isActive"`
}

type OrderItem struct {
	Product  ProductSnapshot `json:"product"`
	Quantity int             `json:"quantity"`
	Price    float64         `json:"price"`
}

type ShippingAddress struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

type Order struct {
	ID              string          `json:"_id"`
	User            string          `json:"user"`
	Items           []OrderItem     `json:"items"`
	TotalAmount     float64         `json:"totalAmount"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	Note            string          `json:"note"`
	Status          Status          `json:"status"`
	PaymentStatus   PaymentStatus   `json:"paymentStatus"`
	PaymentMethod   string          `json:"paymentMethod"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

type StatusCounts struct {
	Pending    int `json:"pending"`
	Processing int `json:"processing"`
	Shipped    int `json:"shipped"`
	Delivered  int `json:"delivered"`
	Cancelled  int `json:"cancelled"`
}

// ListResponse is one page of orders plus the global tallies, taken
// from the server verbatim and never recomputed locally.
type ListResponse struct {
	Orders       []Order      `json:"orders"`
	Total        int          `json:"total"`
	Page         int          `json:"page"`
	Pages        int          `json:"pages"`
	StatusCounts StatusCounts `json:"statusCounts"`
}

// Pagination is the summary the footer renders.
type Pagination struct {
	Total        int
	Page         int
	Pages        int
	StatusCounts StatusCounts
}
