package app

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/simp-lee/shopadmin/internal/domain"
	"github.com/simp-lee/shopadmin/internal/middleware"
	"github.com/simp-lee/shopadmin/internal/router"
)

const (
	// contentBlock is the page body block every page defines.
	contentBlock = "content"
	// fragmentBlock is defined by the base layout: the title, the content
	// block and an out-of-band nav swap, answered to htmx navigations.
	fragmentBlock = "fragment"
)

// NavItem is one entry of the navigation bar.
type NavItem struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

func navItems(table *router.Table) []NavItem {
	routes := table.Routes()
	items := make([]NavItem, 0, len(routes))
	for _, r := range routes {
		items = append(items, NavItem{Name: r.Name, Path: r.Path})
	}
	return items
}

// pageHandler renders route's view. Full loads get the whole page; htmx
// navigations get the fragment block and an HX-Push-Url header so the
// browser records one history entry without a full reload. History restores
// are answered like full loads.
func pageHandler(route router.Route, nav []NavItem) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		c.Writer.Header().Add("Vary", middleware.HeaderHXRequest)
		c.Writer.Header().Add("Vary", middleware.HeaderHXHistoryRestore)

		data, err := route.View.Load(ctx)
		if err != nil {
			slog.WarnContext(ctx, "load view failed",
				slog.String("route", route.Name),
				slog.Any("error", err),
			)
			renderError(c, domain.HTTPStatusCode(err), viewErrorMessage(err))
			return
		}
		if data == nil {
			data = gin.H{}
		}
		data["Route"] = route.Name
		data["Title"] = route.Name
		data["Nav"] = nav

		name := route.View.Template()
		if middleware.WantsFragment(c) {
			data["Fragment"] = true
			c.Header(middleware.HeaderHXPushURL, c.Request.URL.RequestURI())
			name += fragmentSep + fragmentBlock
		}
		c.HTML(http.StatusOK, name, data)
	}
}

func viewErrorMessage(err error) string {
	switch {
	case domain.IsUpstream(err):
		return "the shop backend is unavailable"
	case domain.IsNotFound(err):
		return domain.ErrNotFound.Message
	default:
		return domain.ErrInternal.Message
	}
}
