package app

import "github.com/gin-gonic/gin"

// Module defines the contract for a self-registering API module.
// Page routes come from the route table, not from modules.
type Module interface {
	RegisterRoutes(api *gin.RouterGroup)
}
