package app

import (
	"github.com/gin-gonic/gin"

	"github.com/simp-lee/shopadmin/internal/domain"
	"github.com/simp-lee/shopadmin/internal/pkg"
	"github.com/simp-lee/shopadmin/internal/router"
)

// resolveQuery is the query of GET /api/v1/routes/resolve. One of name or
// path is required; name wins when both are set.
type resolveQuery struct {
	Name string `form:"name" binding:"required_without=Path,max=64"`
	Path string `form:"path" binding:"required_without=Name,max=256"`
}

// listRoutesHandler returns the route table in navigation order.
// GET /api/v1/routes
func listRoutesHandler(nav []NavItem) gin.HandlerFunc {
	return func(c *gin.Context) {
		pkg.Success(c, nav)
	}
}

// resolveRouteHandler maps a route name to its path, or a path to its route.
// GET /api/v1/routes/resolve?name=Products
// GET /api/v1/routes/resolve?path=/products
func resolveRouteHandler(table *router.Table) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q resolveQuery
		if !pkg.BindAndValidate(c, &q) {
			return
		}

		if q.Name == "" {
			route, ok := table.Lookup(q.Path)
			if !ok {
				pkg.Error(c, domain.NewAppError(domain.CodeNotFound, "route not found", domain.ErrNotFound))
				return
			}
			pkg.Success(c, NavItem{Name: route.Name, Path: route.Path})
			return
		}

		path, err := table.URLFor(q.Name)
		if err != nil {
			pkg.Error(c, domain.NewAppError(domain.CodeNotFound, "route not found", err))
			return
		}
		pkg.Success(c, NavItem{Name: q.Name, Path: path})
	}
}
