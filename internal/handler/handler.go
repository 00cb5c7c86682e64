package handler

import (
	"net/http"

	"catalog-service/internal/catalog"
	"catalog-service/internal/filter"

	"github.com/labstack/echo/v4"
)

// Handler serves the read-only catalog over HTTP
type Handler struct {
	store       *catalog.Store
	serviceName string
	defaultSort filter.SortMode
}

// New creates a handler over the given store. defaultSort is applied to
// product listings that do not ask for an order.
func New(store *catalog.Store, serviceName string, defaultSort filter.SortMode) *Handler {
	return &Handler{
		store:       store,
		serviceName: serviceName,
		defaultSort: filter.ParseSortMode(string(defaultSort)),
	}
}

// RegisterRoutes mounts every catalog route on e
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", h.HealthCheck)

	productAPI := e.Group("/api/products")
	productAPI.GET("", h.ListProducts)
	productAPI.GET("/countries", h.ListOriginCountries)
	productAPI.GET("/:sku", h.GetProduct)
	productAPI.GET("/:sku/batches", h.GetProductBatches)
	productAPI.GET("/:sku/provenance", h.GetProductProvenance)

	e.GET("/api/search", h.SearchProducts)

	categoryAPI := e.Group("/api/categories")
	categoryAPI.GET("/:category/products", h.ListCategoryProducts)
	categoryAPI.GET("/:category/co2", h.GetCategoryCO2)

	e.GET("/api/certifications/:flag/products", h.ListCertifiedProducts)

	batchAPI := e.Group("/api/batches")
	batchAPI.GET("/:id", h.GetBatch)
	batchAPI.GET("/:id/suppliers", h.GetBatchSuppliers)

	supplierAPI := e.Group("/api/suppliers")
	supplierAPI.GET("", h.ListSuppliers)
	supplierAPI.GET("/:id", h.GetSupplier)

	e.GET("/api/stats", h.GetStats)
}

// HealthCheck handles the health check endpoint
func (h *Handler) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status":  "healthy",
		"service": h.serviceName,
	})
}
