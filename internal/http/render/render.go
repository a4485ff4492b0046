// Package render wires the embedded HTML templates into gin and keeps
// the redirect/flash helpers used by every screen handler.
package render

import (
	"html/template"

	"github.com/gin-gonic/gin"

	"github.com/khauvukhanh/web-clot/pkg/view"
	"github.com/khauvukhanh/web-clot/templates"
)

// Templates parses the embedded template set with the view helpers
// available to every page.
func Templates() *template.Template {
	t := template.New("").Funcs(template.FuncMap{
		"money":       view.Money,
		"statusClass": view.StatusClass,
	})
	return template.Must(t.ParseFS(templates.FS, "*.tmpl"))
}

// HTML renders one named page template.
func HTML(c *gin.Context, status int, name string, data any) {
	c.HTML(status, name, data)
}
