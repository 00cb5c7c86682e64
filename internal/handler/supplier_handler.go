package handler

import (
	"net/http"

	"catalog-service/pkg/logger"
	"catalog-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ListSuppliers returns every supplier, or those of one country when the
// country query parameter is set
func (h *Handler) ListSuppliers(c echo.Context) error {
	country := c.QueryParam("country")
	if country == "" {
		prometheus.RecordCatalogQuery("list_suppliers")
		return c.JSON(http.StatusOK, nonNil(h.store.Suppliers()))
	}

	prometheus.RecordCatalogQuery("country_suppliers")
	suppliers := h.store.FindSuppliersForCountry(country)
	logger.FromContext(c).Info("Filtering suppliers by country",
		zap.String("country", country),
		zap.Int("count", len(suppliers)))
	return c.JSON(http.StatusOK, nonNil(suppliers))
}

// GetSupplier handles retrieving a single supplier by id
func (h *Handler) GetSupplier(c echo.Context) error {
	id := c.Param("id")
	prometheus.RecordCatalogQuery("find_supplier")

	supplier, ok := h.store.FindSupplierByID(id)
	if !ok {
		logger.FromContext(c).Info("Supplier not found", zap.String("supplier_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Supplier not found",
		})
	}

	return c.JSON(http.StatusOK, supplier)
}
