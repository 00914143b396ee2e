package rest

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wearmarket/marketplace-indexer/internal/domain"
	"github.com/wearmarket/marketplace-indexer/internal/store"
)

const (
	defaultListLimit = 100
	maxListLimit     = 1000
)

// DateRangeQuery holds a from/to unix-second range for day-bucket listings
type DateRangeQuery struct {
	From int64
	To   int64
}

// ParseDateRangeQuery parses optional from/to query parameters. Defaults to
// everything up to now.
func ParseDateRangeQuery(c *gin.Context) (*DateRangeQuery, error) {
	q := &DateRangeQuery{
		From: 0,
		To:   time.Now().Unix(),
	}

	if raw := c.Query("from"); raw != "" {
		from, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || from < 0 {
			return nil, fmt.Errorf("invalid from parameter: %s", raw)
		}
		q.From = from
	}

	if raw := c.Query("to"); raw != "" {
		to, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || to < 0 {
			return nil, fmt.Errorf("invalid to parameter: %s", raw)
		}
		q.To = to
	}

	if q.From > q.To {
		return nil, fmt.Errorf("from (%d) must not exceed to (%d)", q.From, q.To)
	}

	return q, nil
}

// ParseListSalesQuery parses the filter and pagination parameters of the
// sales listing
func ParseListSalesQuery(c *gin.Context) (*store.SaleFilter, error) {
	filter := &store.SaleFilter{
		Limit: defaultListLimit,
	}

	if raw := c.Query("network"); raw != "" {
		network := domain.Network(raw)
		if !domain.IsValidNetwork(network) {
			return nil, fmt.Errorf("invalid network: %s", raw)
		}
		filter.Network = network
	}

	filter.ItemID = c.Query("item_id")
	filter.Buyer = c.Query("buyer")

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 || limit > maxListLimit {
			return nil, fmt.Errorf("invalid limit parameter: %s", raw)
		}
		filter.Limit = limit
	}

	if raw := c.Query("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return nil, fmt.Errorf("invalid offset parameter: %s", raw)
		}
		filter.Offset = offset
	}

	return filter, nil
}
