package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"catalog-service/internal/catalog"
	"catalog-service/internal/filter"
	"catalog-service/internal/model"
	"catalog-service/internal/sampledata"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer() *echo.Echo {
	e := echo.New()
	New(sampledata.NewStore(zap.NewNop()), "catalog-service", filter.SortNewest).RegisterRoutes(e)
	return e
}

func get(t *testing.T, e *echo.Echo, target string, out any) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if out != nil && rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out), rec.Body.String())
	}
	return rec.Code
}

func skus(products []model.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.SKU)
	}
	return out
}

func TestHealthCheck(t *testing.T) {
	var body map[string]string
	require.Equal(t, http.StatusOK, get(t, newTestServer(), "/health", &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "catalog-service", body["service"])
}

func TestListProducts(t *testing.T) {
	e := newTestServer()

	tests := []struct {
		name   string
		target string
		want   []string
		active int
	}{
		{
			name:   "defaults to newest",
			target: "/api/products",
			want:   []string{"ECO-LIN-SHIRT-002", "ECO-MIX-PANTS-001", "ECO-REC-JACKET-001", "ECO-ORG-TSHIRT-001", "ECO-NTL-DRESS-001"},
		},
		{
			name:   "price low",
			target: "/api/products?sort=price-low",
			want:   []string{"ECO-ORG-TSHIRT-001", "ECO-MIX-PANTS-001", "ECO-REC-JACKET-001", "ECO-LIN-SHIRT-002", "ECO-NTL-DRESS-001"},
			active: 1,
		},
		{
			name:   "unknown sort falls back",
			target: "/api/products?sort=random",
			want:   []string{"ECO-LIN-SHIRT-002", "ECO-MIX-PANTS-001", "ECO-REC-JACKET-001", "ECO-ORG-TSHIRT-001", "ECO-NTL-DRESS-001"},
		},
		{
			name:   "certification",
			target: "/api/products?cert=gots",
			want:   []string{"ECO-MIX-PANTS-001", "ECO-ORG-TSHIRT-001", "ECO-NTL-DRESS-001"},
			active: 1,
		},
		{
			name:   "repeated certification counts once",
			target: "/api/products?cert=organic,ORGANIC&cert=organic",
			want:   []string{"ECO-LIN-SHIRT-002", "ECO-MIX-PANTS-001", "ECO-ORG-TSHIRT-001", "ECO-NTL-DRESS-001"},
			active: 1,
		},
		{
			name:   "country",
			target: "/api/products?country=Belgium",
			want:   []string{"ECO-LIN-SHIRT-002"},
			active: 1,
		},
		{
			name:   "repeated country is not toggled off",
			target: "/api/products?country=Belgium&country=Belgium",
			want:   []string{"ECO-LIN-SHIRT-002"},
			active: 1,
		},
		{
			name:   "combined",
			target: "/api/products?search=cotton&cert=organic&country=Netherlands&sort=price-high",
			want:   []string{"ECO-MIX-PANTS-001"},
			active: 4,
		},
		{
			name:   "search",
			target: "/api/products?search=LINEN",
			want:   []string{"ECO-LIN-SHIRT-002"},
			active: 1,
		},
		{
			name:   "no match",
			target: "/api/products?country=Germany",
			want:   []string{},
			active: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var view filter.View
			require.Equal(t, http.StatusOK, get(t, e, tt.target, &view))
			assert.Equal(t, tt.want, skus(view.Products))
			assert.Equal(t, tt.active, view.ActiveFilterCount)
			assert.Equal(t, []string{"Belgium", "India", "Japan", "Netherlands", "Portugal", "Vietnam"}, view.Countries)
		})
	}
}

func TestListProductsRejectsUnsupportedCertification(t *testing.T) {
	e := newTestServer()
	assert.Equal(t, http.StatusBadRequest, get(t, e, "/api/products?cert=leed", nil))
	assert.Equal(t, http.StatusBadRequest, get(t, e, "/api/products?cert=iso", nil))
}

func TestListProductsUsesConfiguredDefaultSort(t *testing.T) {
	e := echo.New()
	New(sampledata.NewStore(zap.NewNop()), "catalog-service", filter.SortPriceHigh).RegisterRoutes(e)

	var view filter.View
	require.Equal(t, http.StatusOK, get(t, e, "/api/products", &view))
	assert.Equal(t, "ECO-NTL-DRESS-001", view.Products[0].SKU)
	assert.Equal(t, filter.SortPriceHigh, view.Criteria.SortBy)
}

func TestListOriginCountries(t *testing.T) {
	var countries []string
	require.Equal(t, http.StatusOK, get(t, newTestServer(), "/api/products/countries", &countries))
	assert.Equal(t, []string{"Belgium", "India", "Japan", "Netherlands", "Portugal", "Vietnam"}, countries)
}

func TestGetProduct(t *testing.T) {
	e := newTestServer()

	var product model.Product
	require.Equal(t, http.StatusOK, get(t, e, "/api/products/ECO-REC-JACKET-001", &product))
	assert.Equal(t, int64(18900), product.Price)

	assert.Equal(t, http.StatusNotFound, get(t, e, "/api/products/missing-sku", nil))
}

func TestGetProductBatches(t *testing.T) {
	e := newTestServer()

	var batches []model.Batch
	require.Equal(t, http.StatusOK, get(t, e, "/api/products/ECO-MIX-PANTS-001/batches", &batches))
	require.Len(t, batches, 2)
	assert.Equal(t, "BATCH-2024-001", batches[0].BatchID)
	assert.Equal(t, "BATCH-2024-002", batches[1].BatchID)

	batches = nil
	require.Equal(t, http.StatusOK, get(t, e, "/api/products/missing-sku/batches", &batches))
	assert.Empty(t, batches)
	assert.NotNil(t, batches)
}

func TestGetProductProvenance(t *testing.T) {
	e := newTestServer()

	var prov catalog.Provenance
	require.Equal(t, http.StatusOK, get(t, e, "/api/products/ECO-LIN-SHIRT-002/provenance", &prov))
	require.Len(t, prov.Batches, 1)
	var ids []string
	for _, s := range prov.Batches[0].Suppliers {
		ids = append(ids, s.SupplierID)
	}
	assert.Equal(t, []string{"SUPP-002", "SUPP-004"}, ids)

	assert.Equal(t, http.StatusNotFound, get(t, e, "/api/products/missing-sku/provenance", nil))
}

func TestSearchProducts(t *testing.T) {
	e := newTestServer()

	var upper, lower []model.Product
	require.Equal(t, http.StatusOK, get(t, e, "/api/search?q=ORGANIC", &upper))
	require.Equal(t, http.StatusOK, get(t, e, "/api/search?q=organic", &lower))
	assert.Equal(t, skus(lower), skus(upper))
	assert.Equal(t, []string{"ECO-ORG-TSHIRT-001", "ECO-LIN-SHIRT-002", "ECO-MIX-PANTS-001", "ECO-NTL-DRESS-001"}, skus(upper))

	var all []model.Product
	require.Equal(t, http.StatusOK, get(t, e, "/api/search", &all))
	assert.Len(t, all, 5)
}

func TestCategoryRoutes(t *testing.T) {
	e := newTestServer()

	var products []model.Product
	require.Equal(t, http.StatusOK, get(t, e, "/api/categories/Basics/products", &products))
	assert.Equal(t, []string{"ECO-ORG-TSHIRT-001"}, skus(products))

	var co2 struct {
		Category      string `json:"category"`
		TotalCO2Grams int64  `json:"totalCo2Grams"`
	}
	require.Equal(t, http.StatusOK, get(t, e, "/api/categories/Basics/co2", &co2))
	assert.Equal(t, int64(1160), co2.TotalCO2Grams)

	require.Equal(t, http.StatusOK, get(t, e, "/api/categories/Shoes/co2", &co2))
	assert.Equal(t, int64(0), co2.TotalCO2Grams)
}

func TestListCertifiedProducts(t *testing.T) {
	e := newTestServer()

	var products []model.Product
	require.Equal(t, http.StatusOK, get(t, e, "/api/certifications/leed/products", &products))
	assert.Equal(t, []string{"ECO-REC-JACKET-001", "ECO-LIN-SHIRT-002"}, skus(products))

	assert.Equal(t, http.StatusBadRequest, get(t, e, "/api/certifications/iso9001/products", nil))
}

func TestBatchRoutes(t *testing.T) {
	e := newTestServer()

	var batch model.Batch
	require.Equal(t, http.StatusOK, get(t, e, "/api/batches/BATCH-2024-002", &batch))
	assert.Len(t, batch.ProvenanceStages, 4)
	assert.Equal(t, http.StatusNotFound, get(t, e, "/api/batches/BATCH-1999-001", nil))

	var suppliers []model.Supplier
	require.Equal(t, http.StatusOK, get(t, e, "/api/batches/BATCH-2024-002/suppliers", &suppliers))
	require.Len(t, suppliers, 2)
	assert.Equal(t, "SUPP-003", suppliers[0].SupplierID)
	assert.Equal(t, "SUPP-004", suppliers[1].SupplierID)
}

func TestSupplierRoutes(t *testing.T) {
	e := newTestServer()

	var suppliers []model.Supplier
	require.Equal(t, http.StatusOK, get(t, e, "/api/suppliers", &suppliers))
	assert.Len(t, suppliers, 5)

	suppliers = nil
	require.Equal(t, http.StatusOK, get(t, e, "/api/suppliers?country=Japan", &suppliers))
	require.Len(t, suppliers, 1)
	assert.Equal(t, "Natural Dye Works", suppliers[0].SupplierName)

	var supplier model.Supplier
	require.Equal(t, http.StatusOK, get(t, e, "/api/suppliers/SUPP-001", &supplier))
	assert.Equal(t, "India", supplier.Country)
	assert.Equal(t, http.StatusNotFound, get(t, e, "/api/suppliers/SUPP-006", nil))
}

func TestGetStats(t *testing.T) {
	var resp StatsResponse
	require.Equal(t, http.StatusOK, get(t, newTestServer(), "/api/stats", &resp))

	assert.Equal(t, 5, resp.Products)
	assert.Equal(t, 3, resp.Batches)
	assert.Equal(t, 5, resp.Suppliers)
	assert.Equal(t, 12, resp.Stages)
	assert.Equal(t, int64(5335), resp.TotalCO2Grams)
	assert.Equal(t, 4, resp.Certifications[model.FlagOrganic])
	assert.Empty(t, resp.CO2Discrepancies)
}
