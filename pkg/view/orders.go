package view

type OrderLine struct {
	Thumbnail string
	Name      string
	Quantity  int
	Price     string
	Discount  string // discounted unit price, empty when none
}

type OrderAddress struct {
	Street  string
	City    string
	State   string
	ZipCode string
	Country string
}

type OrderCard struct {
	ID            string
	ShortID       string
	Status        string
	StatusClass   string
	Address       OrderAddress
	Items         []OrderLine
	Total         string
	PaymentStatus string
	PaymentMethod string
	Note          string
	CreatedAt     string
}

type OrderStatusCounts struct {
	Pending    int
	Processing int
	Shipped    int
	Delivered  int
	Cancelled  int
}

type OrdersPage struct {
	Flash  *Flash
	Counts OrderStatusCounts
	Cards  []OrderCard

	// Pagination footer, server-reported values verbatim.
	Page     int
	Pages    int
	Total    int
	HasPrev  bool
	HasNext  bool
	PrevPage int
	NextPage int

	// The five settable statuses for the per-card select.
	Statuses []string
}
