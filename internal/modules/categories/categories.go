package categories

import (
	"github.com/khauvukhanh/web-clot/internal/api"
	"github.com/khauvukhanh/web-clot/internal/modules/resource"
	"github.com/khauvukhanh/web-clot/internal/notify"
)

type Category struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// Input is the create/update payload. Name and description are
// required; the image is a free-text URL, previewed but never verified.
type Input struct {
	Name        string `json:"name" form:"name" binding:"required"`
	Description string `json:"description" form:"description" binding:"required"`
	Image       string `json:"image" form:"image" binding:"omitempty,url"`
}

type Manager struct {
	*resource.Controller[Category]
}

func NewManager(client *api.Client) *Manager {
	res := api.NewResource[Category](client, "/api/categories")
	msgs := resource.Messages{
		FetchFailed:  "Failed to fetch categories",
		Created:      "Category created successfully!",
		CreateFailed: "Failed to create category",
		Updated:      "Category updated successfully!",
		UpdateFailed: "Failed to update category",
		DeletedFmt:   "Category %q deleted successfully!",
		DeleteFailed: "Failed to delete category",
	}
	return &Manager{resource.NewController(res, notify.New(notify.DefaultDuration), msgs)}
}

// Find looks an id up in the held list, for the edit form and the
// delete toast label.
func (m *Manager) Find(id string) (Category, bool) {
	for _, c := range m.Items() {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}
