package app

import (
	"github.com/simp-lee/shopadmin/internal/domain"
	"github.com/simp-lee/shopadmin/internal/module/auth"
	"github.com/simp-lee/shopadmin/internal/module/cart"
	"github.com/simp-lee/shopadmin/internal/module/dashboard"
	"github.com/simp-lee/shopadmin/internal/module/product"
	"github.com/simp-lee/shopadmin/internal/module/user"
	"github.com/simp-lee/shopadmin/internal/router"
)

// Route names used for programmatic navigation.
const (
	RouteLogin     = "Login"
	RouteDashboard = "Dashboard"
	RouteProducts  = "Products"
	RouteCarts     = "Carts"
	RouteUsers     = "Users"
)

// NewRouteTable builds the application's page routes in navigation order.
func NewRouteTable(products domain.ProductFetcher) (*router.Table, error) {
	return router.New(
		router.Route{Path: "/", Name: RouteLogin, View: auth.NewLoginView("/dashboard")},
		router.Route{Path: "/dashboard", Name: RouteDashboard, View: dashboard.NewView()},
		router.Route{Path: "/products", Name: RouteProducts, View: product.NewListView(products)},
		router.Route{Path: "/carts", Name: RouteCarts, View: cart.NewView()},
		router.Route{Path: "/users", Name: RouteUsers, View: user.NewView()},
	)
}
