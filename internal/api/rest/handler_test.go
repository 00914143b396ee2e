package rest_test

import (
	"encoding/json"
	"errors"
	"math/big"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wearmarket/marketplace-indexer/internal/api/middleware"
	"github.com/wearmarket/marketplace-indexer/internal/api/rest"
	"github.com/wearmarket/marketplace-indexer/internal/domain"
	"github.com/wearmarket/marketplace-indexer/internal/logger"
	"github.com/wearmarket/marketplace-indexer/internal/mocks"
	"github.com/wearmarket/marketplace-indexer/internal/store"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

const testAPIKey = "test-api-key"

// testAPIMocks contains all the mocks needed for testing the REST handlers
type testAPIMocks struct {
	ctrl   *gomock.Controller
	store  *mocks.MockStore
	router *gin.Engine
}

func newTestAPI(t *testing.T) *testAPIMocks {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStore(ctrl)

	router := gin.New()
	rest.SetupRoutes(router, rest.NewHandler(st), middleware.AuthConfig{APIKeys: []string{testAPIKey}})

	return &testAPIMocks{
		ctrl:   ctrl,
		store:  st,
		router: router,
	}
}

func (m *testAPIMocks) request(t *testing.T, path string) *httptest.ResponseRecorder {
	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+testAPIKey)

	rec := httptest.NewRecorder()
	m.router.ServeHTTP(rec, req)
	return rec
}

func TestHealthCheck(t *testing.T) {
	m := newTestAPI(t)

	// no auth required
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	m.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuth(t *testing.T) {
	m := newTestAPI(t)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"malformed header", "token", http.StatusUnauthorized},
		{"wrong key", "Bearer wrong", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, "/api/v1/counts/polygon", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			m.router.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestGetCount(t *testing.T) {
	m := newTestAPI(t)

	count := domain.NewCount(domain.NetworkPolygon)
	count.SalesTotal = 42
	count.SalesManaTotal = big.NewInt(1_000_000)
	m.store.EXPECT().GetCount(gomock.Any(), "polygon").Return(count, nil)

	rec := m.request(t, "/api/v1/counts/polygon")
	require.Equal(t, http.StatusOK, rec.Code)

	var dto rest.CountDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
	assert.Equal(t, domain.NetworkPolygon, dto.Network)
	assert.Equal(t, int64(42), dto.SalesTotal)
	assert.Equal(t, "1000000", dto.SalesManaTotal)
}

func TestGetCount_NoSalesYet(t *testing.T) {
	m := newTestAPI(t)

	m.store.EXPECT().GetCount(gomock.Any(), "ethereum").Return(nil, nil)

	rec := m.request(t, "/api/v1/counts/ethereum")
	require.Equal(t, http.StatusOK, rec.Code)

	// an untouched network reads as a zero row, not a 404
	var dto rest.CountDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
	assert.Equal(t, int64(0), dto.SalesTotal)
	assert.Equal(t, "0", dto.SalesManaTotal)
}

func TestGetCount_InvalidNetwork(t *testing.T) {
	m := newTestAPI(t)

	rec := m.request(t, "/api/v1/counts/solana")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetCount_StoreError(t *testing.T) {
	m := newTestAPI(t)

	m.store.EXPECT().GetCount(gomock.Any(), "polygon").Return(nil, errors.New("connection reset"))

	rec := m.request(t, "/api/v1/counts/polygon")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestListAnalyticsDayData(t *testing.T) {
	m := newTestAPI(t)

	buckets := []*domain.AnalyticsDayData{
		domain.NewAnalyticsDayData(1, domain.NetworkPolygon),
		domain.NewAnalyticsDayData(2, domain.NetworkPolygon),
	}
	m.store.EXPECT().
		ListAnalyticsDayData(gomock.Any(), domain.NetworkPolygon, int64(86_400), int64(172_800)).
		Return(buckets, nil)

	rec := m.request(t, "/api/v1/analytics/day?network=polygon&from=86400&to=172800")
	require.Equal(t, http.StatusOK, rec.Code)

	var result []rest.AnalyticsDayDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.Len(t, result, 2)
	assert.Equal(t, int64(86_400), result[0].Date)
}

func TestListAnalyticsDayData_Validation(t *testing.T) {
	m := newTestAPI(t)

	tests := []struct {
		name string
		path string
	}{
		{"missing network", "/api/v1/analytics/day"},
		{"invalid network", "/api/v1/analytics/day?network=solana"},
		{"malformed from", "/api/v1/analytics/day?network=polygon&from=abc"},
		{"inverted range", "/api/v1/analytics/day?network=polygon&from=200&to=100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := m.request(t, tt.path)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestListItemDayData(t *testing.T) {
	m := newTestAPI(t)

	itemID := "0x8888888888888888888888888888888888888888-0"
	m.store.EXPECT().
		ListItemDayData(gomock.Any(), itemID, int64(0), gomock.Any()).
		Return([]*domain.ItemDayData{domain.NewItemDayData(1, itemID)}, nil)

	rec := m.request(t, "/api/v1/items/"+itemID+"/day")
	require.Equal(t, http.StatusOK, rec.Code)

	var result []rest.ItemDayDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.Len(t, result, 1)
	assert.Equal(t, itemID, result[0].ItemID)
}

func TestListAccountDayData(t *testing.T) {
	m := newTestAPI(t)

	// with no network filter the address is listed across networks
	address := "0x1111111111111111111111111111111111111111"
	m.store.EXPECT().
		ListAccountDayData(gomock.Any(), address, domain.Network(""), int64(0), gomock.Any()).
		Return([]*domain.AccountDayData{domain.NewAccountDayData(1, address, domain.NetworkPolygon)}, nil)

	rec := m.request(t, "/api/v1/accounts/"+address+"/day")
	require.Equal(t, http.StatusOK, rec.Code)

	var result []rest.AccountDayDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.Len(t, result, 1)
	assert.Equal(t, address, result[0].Address)
}

func TestListAccountDayData_NetworkFilter(t *testing.T) {
	m := newTestAPI(t)

	address := "0x1111111111111111111111111111111111111111"
	m.store.EXPECT().
		ListAccountDayData(gomock.Any(), address, domain.NetworkEthereum, int64(0), gomock.Any()).
		Return([]*domain.AccountDayData{domain.NewAccountDayData(1, address, domain.NetworkEthereum)}, nil)

	rec := m.request(t, "/api/v1/accounts/"+address+"/day?network=ethereum")
	require.Equal(t, http.StatusOK, rec.Code)

	var result []rest.AccountDayDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.Len(t, result, 1)
	assert.Equal(t, domain.NetworkEthereum, result[0].Network)
}

func TestListAccountDayData_InvalidNetwork(t *testing.T) {
	m := newTestAPI(t)

	address := "0x1111111111111111111111111111111111111111"
	rec := m.request(t, "/api/v1/accounts/"+address+"/day?network=solana")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListSales(t *testing.T) {
	m := newTestAPI(t)

	sales := []*domain.Sale{{
		ID:        "2-polygon",
		Type:      domain.SaleTypeSecondary,
		Network:   domain.NetworkPolygon,
		Operation: domain.OperationNative,
		Price:     big.NewInt(1_000_000),
	}}
	m.store.EXPECT().
		ListSales(gomock.Any(), store.SaleFilter{
			Network: domain.NetworkPolygon,
			Limit:   10,
			Offset:  5,
		}).
		Return(sales, int64(25), nil)

	rec := m.request(t, "/api/v1/sales?network=polygon&limit=10&offset=5")
	require.Equal(t, http.StatusOK, rec.Code)

	var result rest.ListSalesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, int64(25), result.Total)
	assert.Equal(t, 10, result.Limit)
	assert.Equal(t, 5, result.Offset)
	require.Len(t, result.Sales, 1)
	assert.Equal(t, "2-polygon", result.Sales[0].ID)
	assert.Equal(t, "1000000", result.Sales[0].Price)
}

func TestListSales_DefaultLimit(t *testing.T) {
	m := newTestAPI(t)

	m.store.EXPECT().
		ListSales(gomock.Any(), store.SaleFilter{Limit: 100}).
		Return(nil, int64(0), nil)

	rec := m.request(t, "/api/v1/sales")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListSales_Validation(t *testing.T) {
	m := newTestAPI(t)

	tests := []struct {
		name string
		path string
	}{
		{"invalid network", "/api/v1/sales?network=solana"},
		{"limit above cap", "/api/v1/sales?limit=5000"},
		{"zero limit", "/api/v1/sales?limit=0"},
		{"negative offset", "/api/v1/sales?offset=-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := m.request(t, tt.path)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
