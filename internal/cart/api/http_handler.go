package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ridloal/storefront-demo/internal/cart/service"
	"github.com/ridloal/storefront-demo/internal/platform/logger"
	sessionAPI "github.com/ridloal/storefront-demo/internal/session/api"
)

type CartHandler struct {
	cartService service.CartService
}

func NewCartHandler(cs service.CartService) *CartHandler {
	return &CartHandler{cartService: cs}
}

// RegisterRoutes memasang endpoint cart di balik middleware session.
func (h *CartHandler) RegisterRoutes(router *gin.RouterGroup, requireSession gin.HandlerFunc) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Use(requireSession)
	{
		cartRoutes.GET("", h.GetCart)
		cartRoutes.POST("/items", h.AddItem)
		cartRoutes.PATCH("/items/:productId", h.UpdateQuantity)
		cartRoutes.DELETE("/items/:productId", h.RemoveItem)
		cartRoutes.DELETE("", h.ClearCart)
	}
}

type addItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// GetCart mengembalikan isi cart dengan total yang di-price untuk role pemanggil.
func (h *CartHandler) GetCart(c *gin.Context) {
	session := sessionAPI.ActiveSession(c)
	summary := h.cartService.GetCart(session.ID, session.Role)
	c.JSON(http.StatusOK, summary)
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("AddItem: bad request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1 // Default seperti tombol "add to cart"
	}

	session := sessionAPI.ActiveSession(c)
	if err := h.cartService.AddItem(c.Request.Context(), session.ID, req.ProductID, req.Quantity); err != nil {
		logger.Error("AddItem: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
		return
	}

	c.JSON(http.StatusOK, h.cartService.GetCart(session.ID, session.Role))
}

func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("UpdateQuantity: bad request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	session := sessionAPI.ActiveSession(c)
	h.cartService.UpdateQuantity(session.ID, c.Param("productId"), req.Quantity)
	c.JSON(http.StatusOK, h.cartService.GetCart(session.ID, session.Role))
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	session := sessionAPI.ActiveSession(c)
	h.cartService.RemoveItem(session.ID, c.Param("productId"))
	c.JSON(http.StatusOK, h.cartService.GetCart(session.ID, session.Role))
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	session := sessionAPI.ActiveSession(c)
	h.cartService.ClearCart(session.ID)
	c.Status(http.StatusNoContent)
}
