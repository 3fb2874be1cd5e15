package product

import "github.com/gin-gonic/gin"

// Module implements the app.Module interface for the product API.
type Module struct {
	handler *Handler
}

// NewModule creates a new Module with the given handler.
// Panics if h is nil.
func NewModule(h *Handler) *Module {
	if h == nil {
		panic("product.NewModule: handler must not be nil")
	}
	return &Module{handler: h}
}

// RegisterRoutes registers product API routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/products", m.handler.List)
}
