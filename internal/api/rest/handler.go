package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wearmarket/marketplace-indexer/internal/domain"
	"github.com/wearmarket/marketplace-indexer/internal/store"
)

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// GetCount retrieves the running totals for a network
	// GET /api/v1/counts/:network
	GetCount(c *gin.Context)

	// ListAnalyticsDayData retrieves global analytics day buckets for a network
	// GET /api/v1/analytics/day?network=<network>&from=<unix>&to=<unix>
	ListAnalyticsDayData(c *gin.Context)

	// ListItemDayData retrieves day buckets of one item
	// GET /api/v1/items/:id/day?from=<unix>&to=<unix>
	ListItemDayData(c *gin.Context)

	// ListAccountDayData retrieves day buckets of one account address,
	// optionally scoped to one network
	// GET /api/v1/accounts/:address/day?network=<network>&from=<unix>&to=<unix>
	ListAccountDayData(c *gin.Context)

	// ListSales retrieves sales with optional filters, newest first
	// GET /api/v1/sales?network=<network>&item_id=<id>&buyer=<address>&limit=<limit>&offset=<offset>
	ListSales(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

type handler struct {
	store store.Store
}

// NewHandler creates a new REST API handler over the store
func NewHandler(st store.Store) Handler {
	return &handler{store: st}
}

func (h *handler) GetCount(c *gin.Context) {
	network := domain.Network(c.Param("network"))
	if !domain.IsValidNetwork(network) {
		respondBadRequest(c, "Invalid network")
		return
	}

	count, err := h.store.GetCount(c.Request.Context(), string(network))
	if err != nil {
		respondInternalError(c, err, "Failed to get counts")
		return
	}
	if count == nil {
		// no sale aggregated yet for this network
		count = domain.NewCount(network)
	}

	c.JSON(http.StatusOK, countToDTO(count))
}

func (h *handler) ListAnalyticsDayData(c *gin.Context) {
	network := domain.Network(c.Query("network"))
	if !domain.IsValidNetwork(network) {
		respondBadRequest(c, "Invalid network")
		return
	}

	dateRange, err := ParseDateRangeQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	buckets, err := h.store.ListAnalyticsDayData(c.Request.Context(), network, dateRange.From, dateRange.To)
	if err != nil {
		respondInternalError(c, err, "Failed to list analytics day data")
		return
	}

	result := make([]AnalyticsDayDTO, 0, len(buckets))
	for _, bucket := range buckets {
		result = append(result, analyticsToDTO(bucket))
	}
	c.JSON(http.StatusOK, result)
}

func (h *handler) ListItemDayData(c *gin.Context) {
	itemID := c.Param("id")
	if itemID == "" {
		respondBadRequest(c, "Item id is required")
		return
	}

	dateRange, err := ParseDateRangeQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	buckets, err := h.store.ListItemDayData(c.Request.Context(), itemID, dateRange.From, dateRange.To)
	if err != nil {
		respondInternalError(c, err, "Failed to list item day data")
		return
	}

	result := make([]ItemDayDTO, 0, len(buckets))
	for _, bucket := range buckets {
		result = append(result, itemDayToDTO(bucket))
	}
	c.JSON(http.StatusOK, result)
}

func (h *handler) ListAccountDayData(c *gin.Context) {
	address := c.Param("address")
	if address == "" {
		respondBadRequest(c, "Account address is required")
		return
	}

	var network domain.Network
	if raw := c.Query("network"); raw != "" {
		network = domain.Network(raw)
		if !domain.IsValidNetwork(network) {
			respondBadRequest(c, "Invalid network")
			return
		}
	}

	dateRange, err := ParseDateRangeQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	buckets, err := h.store.ListAccountDayData(c.Request.Context(), address, network, dateRange.From, dateRange.To)
	if err != nil {
		respondInternalError(c, err, "Failed to list account day data")
		return
	}

	result := make([]AccountDayDTO, 0, len(buckets))
	for _, bucket := range buckets {
		result = append(result, accountDayToDTO(bucket))
	}
	c.JSON(http.StatusOK, result)
}

func (h *handler) ListSales(c *gin.Context) {
	filter, err := ParseListSalesQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	sales, total, err := h.store.ListSales(c.Request.Context(), *filter)
	if err != nil {
		respondInternalError(c, err, "Failed to list sales")
		return
	}

	response := ListSalesResponse{
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
		Sales:  make([]SaleDTO, 0, len(sales)),
	}
	for _, sale := range sales {
		response.Sales = append(response.Sales, saleToDTO(sale))
	}
	c.JSON(http.StatusOK, response)
}

func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
