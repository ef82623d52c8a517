package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	cartapp "github.com/storefront/backend/internal/application/cart"
)

// CartHandler handles cart session endpoints
type CartHandler struct {
	BaseHandler
	cartService *cartapp.CartService
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(cartService *cartapp.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

func (h *CartHandler) cartID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid cart ID")
		return uuid.Nil, false
	}
	return id, true
}

// CreateCart starts a new empty cart session
func (h *CartHandler) CreateCart(c *gin.Context) {
	resp, err := h.cartService.CreateCart(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// GetCart returns a cart with its lines and totals
func (h *CartHandler) GetCart(c *gin.Context) {
	id, ok := h.cartID(c)
	if !ok {
		return
	}

	resp, err := h.cartService.GetCart(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// AddItem adds one unit of a product to the cart
func (h *CartHandler) AddItem(c *gin.Context) {
	id, ok := h.cartID(c)
	if !ok {
		return
	}

	var req cartapp.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	resp, err := h.cartService.AddItem(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// UpdateQuantity sets the quantity of a cart line
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	id, ok := h.cartID(c)
	if !ok {
		return
	}

	var req cartapp.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	resp, err := h.cartService.UpdateQuantity(c.Request.Context(), id, c.Param("productId"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// RemoveItem removes a product line from the cart
func (h *CartHandler) RemoveItem(c *gin.Context) {
	id, ok := h.cartID(c)
	if !ok {
		return
	}

	resp, err := h.cartService.RemoveItem(c.Request.Context(), id, c.Param("productId"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// RegisterRoutes registers cart routes
func (h *CartHandler) RegisterRoutes(rg *gin.RouterGroup) {
	carts := rg.Group("/carts")
	{
		carts.POST("", h.CreateCart)
		carts.GET(":id", h.GetCart)
		carts.POST(":id/items", h.AddItem)
		carts.PUT(":id/items/:productId", h.UpdateQuantity)
		carts.DELETE(":id/items/:productId", h.RemoveItem)
	}
}
