package jetstream_test

import (
	"context"
	"encoding/json"
	"math/big"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	natsjs "github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wearmarket/marketplace-indexer/internal/adapter"
	"github.com/wearmarket/marketplace-indexer/internal/domain"
	"github.com/wearmarket/marketplace-indexer/internal/logger"
	"github.com/wearmarket/marketplace-indexer/internal/mocks"
	"github.com/wearmarket/marketplace-indexer/internal/providers/jetstream"
)

func TestMain(m *testing.M) {
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

func testConfig() jetstream.Config {
	return jetstream.Config{
		URL:            "nats://localhost:4222",
		StreamName:     "MARKETPLACE_EVENTS",
		ConsumerName:   "aggregator",
		SubjectPrefix:  "marketplace.events",
		ConnectionName: "test",
	}
}

// testJetStreamMocks contains all the mocks needed for testing the provider
type testJetStreamMocks struct {
	ctrl     *gomock.Controller
	natsJS   *mocks.MockNatsJetStream
	conn     *mocks.MockNatsConn
	js       *mocks.MockJetStream
	consumer *mocks.MockNatsConsumer
}

func newTestJetStream(t *testing.T) *testJetStreamMocks {
	ctrl := gomock.NewController(t)
	return &testJetStreamMocks{
		ctrl:     ctrl,
		natsJS:   mocks.NewMockNatsJetStream(ctrl),
		conn:     mocks.NewMockNatsConn(ctrl),
		js:       mocks.NewMockJetStream(ctrl),
		consumer: mocks.NewMockNatsConsumer(ctrl),
	}
}

func (m *testJetStreamMocks) expectConnect() {
	m.natsJS.EXPECT().
		Connect("nats://localhost:4222", gomock.Any()).
		Return(m.conn, m.js, nil)
}

func validEventJSON(t *testing.T) []byte {
	event := &domain.MarketplaceEvent{
		Kind:      domain.EventKindSale,
		Network:   domain.NetworkPolygon,
		Timestamp: 1_700_000_000,
		TxHash:    "0xabc",
		Sale: &domain.SaleEvent{
			Type:   domain.SaleTypeSecondary,
			Buyer:  "0x1111111111111111111111111111111111111111",
			Seller: "0x2222222222222222222222222222222222222222",
			NFTID:  "nft-1",
			Price:  big.NewInt(1_000_000),
		},
	}
	data, err := json.Marshal(event)
	require.NoError(t, err)
	return data
}

func TestSubscriber_Fetch(t *testing.T) {
	m := newTestJetStream(t)
	m.expectConnect()
	m.js.EXPECT().
		CreateOrUpdateConsumer(gomock.Any(), "MARKETPLACE_EVENTS", gomock.Any()).
		Return(m.consumer, nil)

	sub, err := jetstream.NewSubscriber(context.Background(), testConfig(), m.natsJS, adapter.NewJSON())
	require.NoError(t, err)

	msg := mocks.NewMockJetStreamMessage(m.ctrl)
	msg.EXPECT().Data().Return(validEventJSON(t)).AnyTimes()
	m.consumer.EXPECT().
		Fetch(10, gomock.Any()).
		Return([]adapter.Message{msg}, nil)

	events, err := sub.Fetch(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, domain.EventKindSale, events[0].Event().Kind)

	// delivery controls pass through to the underlying message
	msg.EXPECT().Ack().Return(nil)
	assert.NoError(t, events[0].Ack())
}

func TestSubscriber_FetchTerminatesUndecodable(t *testing.T) {
	m := newTestJetStream(t)
	m.expectConnect()
	m.js.EXPECT().
		CreateOrUpdateConsumer(gomock.Any(), "MARKETPLACE_EVENTS", gomock.Any()).
		Return(m.consumer, nil)

	sub, err := jetstream.NewSubscriber(context.Background(), testConfig(), m.natsJS, adapter.NewJSON())
	require.NoError(t, err)

	garbage := mocks.NewMockJetStreamMessage(m.ctrl)
	garbage.EXPECT().Data().Return([]byte("not json")).AnyTimes()
	garbage.EXPECT().Term().Return(nil)

	invalid := mocks.NewMockJetStreamMessage(m.ctrl)
	invalid.EXPECT().Data().Return([]byte(`{"kind":"sale","network":"solana"}`)).AnyTimes()
	invalid.EXPECT().Term().Return(nil)

	good := mocks.NewMockJetStreamMessage(m.ctrl)
	good.EXPECT().Data().Return(validEventJSON(t)).AnyTimes()

	m.consumer.EXPECT().
		Fetch(10, gomock.Any()).
		Return([]adapter.Message{garbage, invalid, good}, nil)

	events, err := sub.Fetch(context.Background(), 10)
	require.NoError(t, err)
	// only the decodable, valid event survives
	require.Len(t, events, 1)
}

func TestSubscriber_ConsumerConfig(t *testing.T) {
	m := newTestJetStream(t)
	m.expectConnect()
	m.js.EXPECT().
		CreateOrUpdateConsumer(gomock.Any(), "MARKETPLACE_EVENTS", gomock.Any()).
		DoAndReturn(func(ctx context.Context, stream string, cfg natsjs.ConsumerConfig) (adapter.Consumer, error) {
			assert.Equal(t, "aggregator", cfg.Durable)
			assert.Equal(t, "marketplace.events.>", cfg.FilterSubject)
			assert.Equal(t, natsjs.AckExplicitPolicy, cfg.AckPolicy)
			assert.Equal(t, natsjs.DeliverAllPolicy, cfg.DeliverPolicy)
			return m.consumer, nil
		})

	_, err := jetstream.NewSubscriber(context.Background(), testConfig(), m.natsJS, adapter.NewJSON())
	require.NoError(t, err)
}

func TestPublisher_PublishChange(t *testing.T) {
	m := newTestJetStream(t)
	m.expectConnect()

	pub, err := jetstream.NewPublisher(testConfig(), m.natsJS, adapter.NewJSON())
	require.NoError(t, err)

	change := &domain.ChangeEvent{
		Kind:      domain.ChangeKindSale,
		ID:        "1-polygon",
		Network:   domain.NetworkPolygon,
		UpdatedAt: 1_700_000_000,
	}

	m.js.EXPECT().
		Publish(gomock.Any(), "marketplace.events.polygon.sale", gomock.Any()).
		DoAndReturn(func(ctx context.Context, subject string, data []byte, opts ...natsjs.PublishOpt) (*natsjs.PubAck, error) {
			var got domain.ChangeEvent
			require.NoError(t, json.Unmarshal(data, &got))
			assert.Equal(t, *change, got)
			return &natsjs.PubAck{}, nil
		})

	require.NoError(t, pub.PublishChange(context.Background(), change))
}

func TestPublisher_Close(t *testing.T) {
	m := newTestJetStream(t)
	m.expectConnect()

	pub, err := jetstream.NewPublisher(testConfig(), m.natsJS, adapter.NewJSON())
	require.NoError(t, err)

	m.conn.EXPECT().Close()
	pub.Close()
}
