// Package dashboard provides the dashboard landing page.
package dashboard

import "github.com/simp-lee/shopadmin/internal/router"

// IndexTemplate is the dashboard landing page template.
const IndexTemplate = "dashboard/index.html"

// NewView returns the dashboard landing page view.
func NewView() router.View {
	return router.Static(IndexTemplate)
}
