// Package cart provides the cart list page.
package cart

import "github.com/simp-lee/shopadmin/internal/router"

// ListTemplate is the cart list page template.
const ListTemplate = "cart/list.html"

// NewView returns the cart list page view.
func NewView() router.View {
	return router.Static(ListTemplate)
}
