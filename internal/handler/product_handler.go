package handler

import (
	"net/http"
	"strings"
	"time"

	"catalog-service/internal/filter"
	"catalog-service/internal/model"
	"catalog-service/pkg/logger"
	"catalog-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ListProducts derives the filtered and sorted product view.
//
// Query parameters: search, cert (repeatable or comma separated), country
// (repeatable) and sort. Each request gets its own filter session.
func (h *Handler) ListProducts(c echo.Context) error {
	log := logger.FromContext(c)
	done := prometheus.TrackDerivation(time.Now())

	session := filter.NewSession(h.store)
	session.SetSearch(c.QueryParam("search"))

	toggled := make(map[model.CertificationFlag]bool)
	for _, raw := range splitParams(c.QueryParams()["cert"]) {
		flag, ok := model.ParseCertificationFlag(raw)
		if ok && toggled[flag] {
			continue
		}
		if !ok || !session.ToggleCertification(flag) {
			log.Warn("Invalid certification filter", zap.String("cert", raw))
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": "unsupported certification filter: " + raw,
			})
		}
		toggled[flag] = true
	}

	for _, country := range distinct(c.QueryParams()["country"]) {
		session.ToggleCountry(country)
	}

	sortBy := h.defaultSort
	if raw := c.QueryParam("sort"); raw != "" {
		sortBy = filter.ParseSortMode(raw)
	}
	session.SetSort(sortBy)

	view := session.View(h.store.Products())
	done(len(view.Products), view.ActiveFilterCount)

	log.Info("Products derived",
		zap.Int("count", len(view.Products)),
		zap.Int("active_filters", view.ActiveFilterCount),
		zap.String("sort", string(view.Criteria.SortBy)))
	return c.JSON(http.StatusOK, view)
}

// ListOriginCountries returns the country facet over the whole catalog
func (h *Handler) ListOriginCountries(c echo.Context) error {
	prometheus.RecordCatalogQuery("origin_countries")
	countries := filter.DistinctOriginCountries(h.store, h.store.Products())
	return c.JSON(http.StatusOK, countries)
}

// GetProduct handles retrieving a single product by sku
func (h *Handler) GetProduct(c echo.Context) error {
	log := logger.FromContext(c)
	sku := c.Param("sku")
	prometheus.RecordCatalogQuery("find_product")

	product, ok := h.store.FindProductBySKU(sku)
	if !ok {
		log.Info("Product not found", zap.String("sku", sku))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Product not found",
		})
	}

	return c.JSON(http.StatusOK, product)
}

// GetProductBatches returns the batches a product was produced in
func (h *Handler) GetProductBatches(c echo.Context) error {
	sku := c.Param("sku")
	prometheus.RecordCatalogQuery("product_batches")

	batches := h.store.FindBatchesForProduct(sku)
	logger.FromContext(c).Debug("Product batches resolved",
		zap.String("sku", sku),
		zap.Int("count", len(batches)))
	return c.JSON(http.StatusOK, nonNil(batches))
}

// GetProductProvenance returns the product → batch → supplier chain
func (h *Handler) GetProductProvenance(c echo.Context) error {
	log := logger.FromContext(c)
	sku := c.Param("sku")
	prometheus.RecordCatalogQuery("product_provenance")

	prov, ok := h.store.ProvenanceFor(sku)
	if !ok {
		log.Info("Product not found for provenance", zap.String("sku", sku))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Product not found",
		})
	}

	return c.JSON(http.StatusOK, prov)
}

// SearchProducts runs a plain substring search over title, description and materials
func (h *Handler) SearchProducts(c echo.Context) error {
	query := c.QueryParam("q")
	prometheus.RecordCatalogQuery("search")

	products := h.store.SearchProducts(query)
	logger.FromContext(c).Info("Products searched",
		zap.String("query", query),
		zap.Int("count", len(products)))
	return c.JSON(http.StatusOK, nonNil(products))
}

// ListCategoryProducts returns the products of one category
func (h *Handler) ListCategoryProducts(c echo.Context) error {
	prometheus.RecordCatalogQuery("category_products")
	return c.JSON(http.StatusOK, nonNil(h.store.FindProductsByCategory(c.Param("category"))))
}

// GetCategoryCO2 returns the summed footprint of a category
func (h *Handler) GetCategoryCO2(c echo.Context) error {
	category := c.Param("category")
	prometheus.RecordCatalogQuery("category_co2")

	return c.JSON(http.StatusOK, echo.Map{
		"category":      category,
		"totalCo2Grams": h.store.TotalCO2ForCategory(category),
	})
}

// ListCertifiedProducts returns products holding a certification flag
func (h *Handler) ListCertifiedProducts(c echo.Context) error {
	raw := c.Param("flag")
	prometheus.RecordCatalogQuery("certified_products")

	flag, ok := model.ParseCertificationFlag(raw)
	if !ok {
		logger.FromContext(c).Warn("Unknown certification flag", zap.String("flag", raw))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "unknown certification: " + raw,
		})
	}

	return c.JSON(http.StatusOK, nonNil(h.store.FindProductsByCertification(flag)))
}

func splitParams(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// distinct drops repeated values so a repeated parameter cannot toggle twice
func distinct(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	var out []string
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
