package product

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/simp-lee/shopadmin/internal/domain"
	"github.com/simp-lee/shopadmin/internal/pkg"
)

// Handler serves the product API.
type Handler struct {
	fetcher domain.ProductFetcher
}

// NewHandler creates a new Handler backed by fetcher.
func NewHandler(fetcher domain.ProductFetcher) *Handler {
	return &Handler{fetcher: fetcher}
}

// List handles GET /api/v1/products by relaying the backend body untouched.
func (h *Handler) List(c *gin.Context) {
	body, err := h.fetcher.FetchAll(c.Request.Context())
	if err != nil {
		slog.WarnContext(c.Request.Context(), "list products failed", slog.Any("error", err))
		pkg.Error(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}
