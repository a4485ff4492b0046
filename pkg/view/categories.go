package view

type CategoryRow struct {
	ID          string
	Name        string
	Description string
	Image       string
}

// CategoryForm backs both the "new" and "editing" states of the form.
// Editing is true when an item is selected for edit; submit then
// dispatches an update instead of a create.
type CategoryForm struct {
	ID          string
	Name        string
	Description string
	Image       string
}

type CategoriesPage struct {
	Flash   *Flash
	Items   []CategoryRow
	Form    CategoryForm
	Editing bool
	Errors  map[string]string
}
