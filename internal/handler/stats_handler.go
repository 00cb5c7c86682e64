package handler

import (
	"net/http"

	"catalog-service/internal/catalog"
	"catalog-service/pkg/logger"
	"catalog-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// StatsResponse is the body of GET /api/stats
type StatsResponse struct {
	catalog.Stats
	CO2Discrepancies []catalog.CO2Discrepancy `json:"co2Discrepancies"`
}

// GetStats summarises the catalog and lists batches whose stored CO2 total
// disagrees with their stages
func (h *Handler) GetStats(c echo.Context) error {
	prometheus.RecordCatalogQuery("stats")

	resp := StatsResponse{
		Stats:            h.store.Stats(),
		CO2Discrepancies: nonNil(h.store.CO2Discrepancies()),
	}
	if len(resp.CO2Discrepancies) > 0 {
		logger.FromContext(c).Warn("Batch CO2 totals disagree with stage sums",
			zap.Int("batches", len(resp.CO2Discrepancies)))
	}
	return c.JSON(http.StatusOK, resp)
}
