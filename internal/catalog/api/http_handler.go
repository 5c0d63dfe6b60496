package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ridloal/storefront-demo/internal/catalog/repository"
	"github.com/ridloal/storefront-demo/internal/catalog/service"
	"github.com/ridloal/storefront-demo/internal/platform/logger"
)

type CatalogHandler struct {
	catalogService service.CatalogService
}

func NewCatalogHandler(cs service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: cs}
}

func (h *CatalogHandler) RegisterRoutes(router *gin.RouterGroup) {
	productRoutes := router.Group("/products")
	{
		productRoutes.GET("", h.ListProducts)
		productRoutes.GET("/", h.ListProducts)
		productRoutes.GET("/:id", h.GetProduct)
	}
	router.GET("/categories", h.ListCategories)
}

// ListProducts juga melayani filter ?category= dan pencarian ?q=.
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	ctx := c.Request.Context()

	var err error
	var products interface{}
	switch {
	case c.Query("q") != "":
		products, err = h.catalogService.SearchProducts(ctx, c.Query("q"))
	case c.Query("category") != "":
		products, err = h.catalogService.ListProductsByCategory(ctx, c.Query("category"))
	default:
		products, err = h.catalogService.ListProducts(ctx)
	}

	if err != nil {
		logger.Error("ListProducts: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *CatalogHandler) GetProduct(c *gin.Context) {
	productID := c.Param("id")
	product, err := h.catalogService.GetProductDetails(c.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("GetProduct: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalogService.ListCategories(c.Request.Context())
	if err != nil {
		logger.Error("ListCategories: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve categories"})
		return
	}
	c.JSON(http.StatusOK, categories)
}
