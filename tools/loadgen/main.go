// Command loadgen publishes synthetic marketplace events to the event stream
// for load and soak testing of the aggregation engine. Events are well formed
// and deterministic under a fixed seed, so a run can be replayed and the
// resulting totals checked against the expected arithmetic.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/big"
	"math/rand"
	"os"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/wearmarket/marketplace-indexer/internal/adapter"
	"github.com/wearmarket/marketplace-indexer/internal/domain"
)

type config struct {
	url      string
	stream   string
	subject  string
	network  string
	count    int
	rate     int
	seed     int64
	mintPart int
}

func main() {
	cfg := parseFlags()

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "loadgen: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() config {
	var cfg config
	flag.StringVar(&cfg.url, "url", nats.DefaultURL, "NATS server URL")
	flag.StringVar(&cfg.stream, "stream", "MARKETPLACE_EVENTS", "JetStream stream name")
	flag.StringVar(&cfg.subject, "subject", "marketplace.events", "subject prefix")
	flag.StringVar(&cfg.network, "network", string(domain.NetworkPolygon), "source network")
	flag.IntVar(&cfg.count, "count", 1000, "number of events to publish")
	flag.IntVar(&cfg.rate, "rate", 0, "events per second, 0 for unthrottled")
	flag.Int64Var(&cfg.seed, "seed", 1, "random seed")
	flag.IntVar(&cfg.mintPart, "mint-percent", 20, "share of mint sales, 0-100")
	flag.Parse()
	return cfg
}

func run(cfg config) error {
	network := domain.Network(cfg.network)
	if !domain.IsValidNetwork(network) {
		return fmt.Errorf("invalid network: %s", cfg.network)
	}

	nc, err := nats.Connect(cfg.url, nats.Name("marketplace-loadgen"))
	if err != nil {
		return fmt.Errorf("failed to connect to NATS: %w", err)
	}
	defer nc.Close()

	js, err := jetstream.New(nc)
	if err != nil {
		return fmt.Errorf("failed to create JetStream context: %w", err)
	}

	ctx := context.Background()
	if _, err := js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     cfg.stream,
		Subjects: []string{cfg.subject + ".>"},
	}); err != nil {
		return fmt.Errorf("failed to ensure stream: %w", err)
	}

	jsonCodec := adapter.NewJSON()
	rng := rand.New(rand.NewSource(cfg.seed))
	subject := fmt.Sprintf("%s.%s.sale", cfg.subject, network)

	var throttle <-chan time.Time
	if cfg.rate > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(cfg.rate))
		defer ticker.Stop()
		throttle = ticker.C
	}

	start := time.Now()
	for i := 0; i < cfg.count; i++ {
		if throttle != nil {
			<-throttle
		}

		event := syntheticSale(rng, network, cfg.mintPart, i)
		data, err := jsonCodec.Marshal(event)
		if err != nil {
			return fmt.Errorf("failed to marshal event: %w", err)
		}
		if _, err := js.Publish(ctx, subject, data); err != nil {
			return fmt.Errorf("failed to publish event %d: %w", i, err)
		}
	}

	elapsed := time.Since(start)
	fmt.Printf("published %d events in %s (%.0f/s)\n",
		cfg.count, elapsed.Round(time.Millisecond), float64(cfg.count)/elapsed.Seconds())
	return nil
}

// syntheticSale builds a valid sale event over a small pool of addresses and
// item ids. Item and NFT rows must be seeded beforehand; unseeded runs
// exercise the missing-entity skip path instead.
func syntheticSale(rng *rand.Rand, network domain.Network, mintPart, sequence int) *domain.MarketplaceEvent {
	saleType := domain.SaleTypeSecondary
	if rng.Intn(100) < mintPart {
		saleType = domain.SaleTypeMint
	}

	contract := fmt.Sprintf("0x%040d", rng.Intn(10))
	itemIndex := rng.Intn(50)
	tokenID := rng.Intn(500)

	// prices between 0.1 and 100 tokens at 18 decimals
	price := new(big.Int).Mul(
		big.NewInt(int64(rng.Intn(1000)+1)),
		new(big.Int).Exp(big.NewInt(10), big.NewInt(17), nil),
	)

	return &domain.MarketplaceEvent{
		Kind:      domain.EventKindSale,
		Network:   network,
		Timestamp: time.Now().Unix(),
		TxHash:    fmt.Sprintf("0x%064d", sequence),
		Sale: &domain.SaleEvent{
			Type:                   saleType,
			Buyer:                  fmt.Sprintf("0x%040d", rng.Intn(200)+1),
			Seller:                 fmt.Sprintf("0x%040d", rng.Intn(200)+1),
			ItemID:                 fmt.Sprintf("%s-%d", contract, itemIndex),
			NFTID:                  fmt.Sprintf("%s-%d-%d", contract, itemIndex, tokenID),
			Price:                  price,
			FeesCollector:          "0x0000000000000000000000000000000000000f00",
			FeesCutPerMillion:      25_000,
			RoyaltiesCutPerMillion: int64(rng.Intn(3)) * 25_000,
		},
	}
}
