// Package user provides the user list page.
package user

import "github.com/simp-lee/shopadmin/internal/router"

// ListTemplate is the user list page template.
const ListTemplate = "user/list.html"

// NewView returns the user list page view.
func NewView() router.View {
	return router.Static(ListTemplate)
}
