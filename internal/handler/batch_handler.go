package handler

import (
	"net/http"

	"catalog-service/pkg/logger"
	"catalog-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// GetBatch handles retrieving a single batch by id
func (h *Handler) GetBatch(c echo.Context) error {
	id := c.Param("id")
	prometheus.RecordCatalogQuery("find_batch")

	batch, ok := h.store.FindBatchByID(id)
	if !ok {
		logger.FromContext(c).Info("Batch not found", zap.String("batch_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Batch not found",
		})
	}

	return c.JSON(http.StatusOK, batch)
}

// GetBatchSuppliers returns the distinct suppliers of a batch's stages
func (h *Handler) GetBatchSuppliers(c echo.Context) error {
	id := c.Param("id")
	prometheus.RecordCatalogQuery("batch_suppliers")

	suppliers := h.store.FindSuppliersForBatch(id)
	logger.FromContext(c).Debug("Batch suppliers resolved",
		zap.String("batch_id", id),
		zap.Int("count", len(suppliers)))
	return c.JSON(http.StatusOK, nonNil(suppliers))
}
