package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/wearmarket/marketplace-indexer/internal/adapter"
	"github.com/wearmarket/marketplace-indexer/internal/aggregator"
	"github.com/wearmarket/marketplace-indexer/internal/chain"
	"github.com/wearmarket/marketplace-indexer/internal/config"
	"github.com/wearmarket/marketplace-indexer/internal/domain"
	"github.com/wearmarket/marketplace-indexer/internal/engine"
	"github.com/wearmarket/marketplace-indexer/internal/logger"
	"github.com/wearmarket/marketplace-indexer/internal/notifier"
	"github.com/wearmarket/marketplace-indexer/internal/policy"
	"github.com/wearmarket/marketplace-indexer/internal/providers/jetstream"
	"github.com/wearmarket/marketplace-indexer/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAggregatorConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Tags: map[string]string{
			"service": "aggregator",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.Info("Starting marketplace aggregator")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.Fatal("Failed to configure connection pool", zap.Error(err))
	}
	dataStore := store.NewPGStore(db)

	// Initialize adapters
	jsonAdapter := adapter.NewJSON()
	clock := adapter.NewClock()
	dialer := adapter.NewEthClientDialer()

	// Dial RPC clients for owner lookups
	clients := make(map[domain.Network]adapter.EthClient)
	for network, rpcURL := range map[domain.Network]string{
		domain.NetworkEthereum: cfg.Chain.EthereumRPCURL,
		domain.NetworkPolygon:  cfg.Chain.PolygonRPCURL,
	} {
		if rpcURL == "" {
			logger.Warn("No RPC URL configured, third-party sales on this network will fail",
				zap.String("network", string(network)))
			continue
		}
		client, err := dialer.Dial(ctx, rpcURL)
		if err != nil {
			logger.Fatal("Failed to dial RPC", zap.Error(err), zap.String("network", string(network)))
		}
		clients[network] = client
	}

	chainReader, err := chain.NewReader(clients, cfg.Chain.LookupTimeout)
	if err != nil {
		logger.Fatal("Failed to create chain reader", zap.Error(err))
	}
	defer chainReader.Close()

	// Subscribe to the marketplace event stream
	natsCfg := jetstream.Config{
		URL:            cfg.NATS.URL,
		StreamName:     cfg.NATS.StreamName,
		ConsumerName:   cfg.NATS.ConsumerName,
		SubjectPrefix:  cfg.NATS.SubjectPrefix,
		MaxReconnects:  cfg.NATS.MaxReconnects,
		ReconnectWait:  cfg.NATS.ReconnectWait,
		ConnectionName: "marketplace-aggregator",
	}
	subscriber, err := jetstream.NewSubscriber(ctx, natsCfg, adapter.NewNatsJetStream(), jsonAdapter)
	if err != nil {
		logger.Fatal("Failed to create subscriber", zap.Error(err))
	}
	defer subscriber.Close()

	// Publisher for out-of-band change notifications
	notifierNATS := cfg.Notifier.NATS
	if notifierNATS.URL == "" {
		notifierNATS.URL = cfg.NATS.URL
	}
	publisher, err := jetstream.NewPublisher(jetstream.Config{
		URL:            notifierNATS.URL,
		StreamName:     notifierNATS.StreamName,
		SubjectPrefix:  cfg.Notifier.SubjectPrefix,
		MaxReconnects:  notifierNATS.MaxReconnects,
		ReconnectWait:  notifierNATS.ReconnectWait,
		ConnectionName: "marketplace-aggregator-notifier",
	}, adapter.NewNatsJetStream(), jsonAdapter)
	if err != nil {
		logger.Fatal("Failed to create publisher", zap.Error(err))
	}
	defer publisher.Close()

	// Wire the engine
	salePolicy := policy.New(policy.Config{
		FiatRelays:       cfg.Policy.FiatRelays,
		CrossChainRelays: cfg.Policy.CrossChainRelays,
		CreditContracts:  cfg.Policy.CreditContracts,
	})
	tracker := aggregator.New(salePolicy, chainReader)
	changeNotifier := notifier.New(dataStore, publisher, cfg.Notifier.Stream)

	eng := engine.New(engine.Config{
		BatchSize:  cfg.Engine.BatchSize,
		RetryDelay: cfg.Engine.RetryDelay,
	}, subscriber, tracker, dataStore, changeNotifier, clock)

	// Run until signalled
	errCh := make(chan error, 1)
	go func() {
		errCh <- eng.Run(ctx)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.Info("Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
		<-errCh
	case err := <-errCh:
		if err != nil && ctx.Err() == nil {
			logger.Error(err, zap.String("component", "engine"))
		}
		cancel()
	}

	logger.Info("Aggregator stopped")
}
