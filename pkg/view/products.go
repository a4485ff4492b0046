package view

type CategoryOption struct {
	ID   string
	Name string
}

type ProductRow struct {
	ID           string
	Name         string
	CategoryName string
	Thumbnail    string
	Price        string
	Discount     string // empty when no discount price is set
	Stock        int
	Active       bool
}

type ProductForm struct {
	ID            string
	Name          string
	Description   string
	Price         float64
	DiscountPrice float64
	Thumbnail     string
	Images        []string
	CategoryID    string
	Stock         int
	IsActive      bool
}

type ProductsPage struct {
	Flash      *Flash
	Items      []ProductRow
	Categories []CategoryOption
	Form       ProductForm
	Editing    bool
	Errors     map[string]string
}
