package handler

import (
	"github.com/gin-gonic/gin"
	catalogapp "github.com/storefront/backend/internal/application/catalog"
)

// CatalogHandler handles catalog browsing endpoints
type CatalogHandler struct {
	BaseHandler
	browseService *catalogapp.BrowseService
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(browseService *catalogapp.BrowseService) *CatalogHandler {
	return &CatalogHandler{browseService: browseService}
}

// ListProducts returns the catalog, optionally filtered and sorted
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	var query catalogapp.ListProductsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BadRequest(c, "Invalid query parameters: "+err.Error())
		return
	}

	resp, err := h.browseService.ListProducts(c.Request.Context(), query)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// GroupedProducts returns the catalog partitioned by category
func (h *CatalogHandler) GroupedProducts(c *gin.Context) {
	resp, err := h.browseService.GroupedProducts(c.Request.Context(), c.Query("search"), c.Query("category"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Categories returns the selectable category filters
func (h *CatalogHandler) Categories(c *gin.Context) {
	resp, err := h.browseService.Categories(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Statistics returns price statistics for a category or the whole catalog
func (h *CatalogHandler) Statistics(c *gin.Context) {
	resp, err := h.browseService.Statistics(c.Request.Context(), c.Query("category"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// RegisterRoutes registers catalog routes
func (h *CatalogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	catalog := rg.Group("/catalog")
	{
		catalog.GET("/products", h.ListProducts)
		catalog.GET("/products/grouped", h.GroupedProducts)
		catalog.GET("/categories", h.Categories)
		catalog.GET("/statistics", h.Statistics)
	}
}
