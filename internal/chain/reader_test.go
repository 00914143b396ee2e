package chain_test

import (
	"context"
	"errors"
	"math/big"
	"os"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wearmarket/marketplace-indexer/internal/adapter"
	"github.com/wearmarket/marketplace-indexer/internal/chain"
	"github.com/wearmarket/marketplace-indexer/internal/domain"
	"github.com/wearmarket/marketplace-indexer/internal/logger"
	"github.com/wearmarket/marketplace-indexer/internal/mocks"
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

const (
	testContract = "0x8888888888888888888888888888888888888888"
	testOwner    = "0x6666666666666666666666666666666666666666"
)

// ownerResult encodes an address the way the ownerOf call returns it, left
// padded to 32 bytes
func ownerResult(address string) []byte {
	return common.LeftPadBytes(common.HexToAddress(address).Bytes(), 32)
}

func newTestReader(t *testing.T, client adapter.EthClient) *chain.Reader {
	reader, err := chain.NewReader(map[domain.Network]adapter.EthClient{
		domain.NetworkPolygon: client,
	}, 50*time.Millisecond)
	require.NoError(t, err)
	return reader
}

func TestGetOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockEthClient(ctrl)
	reader := newTestReader(t, client)

	client.EXPECT().
		CallContract(gomock.Any(), gomock.Any(), gomock.Nil()).
		DoAndReturn(func(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
			assert.Equal(t, common.HexToAddress(testContract), *msg.To)
			assert.NotEmpty(t, msg.Data)
			return ownerResult(testOwner), nil
		})

	owner, err := reader.GetOwner(context.Background(), domain.NetworkPolygon, testContract, "42")
	require.NoError(t, err)
	assert.Equal(t, testOwner, owner)
}

func TestGetOwner_RetriesTransientFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockEthClient(ctrl)
	reader := newTestReader(t, client)

	gomock.InOrder(
		client.EXPECT().
			CallContract(gomock.Any(), gomock.Any(), gomock.Nil()).
			Return(nil, errors.New("connection reset")),
		client.EXPECT().
			CallContract(gomock.Any(), gomock.Any(), gomock.Nil()).
			Return(ownerResult(testOwner), nil),
	)

	owner, err := reader.GetOwner(context.Background(), domain.NetworkPolygon, testContract, "42")
	require.NoError(t, err)
	assert.Equal(t, testOwner, owner)
}

func TestGetOwner_GivesUpAfterBackoff(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockEthClient(ctrl)
	reader := newTestReader(t, client)

	client.EXPECT().
		CallContract(gomock.Any(), gomock.Any(), gomock.Nil()).
		Return(nil, errors.New("rpc timeout")).
		MinTimes(1)

	_, err := reader.GetOwner(context.Background(), domain.NetworkPolygon, testContract, "42")
	assert.Error(t, err)
}

func TestGetOwner_UnknownNetwork(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := newTestReader(t, mocks.NewMockEthClient(ctrl))

	_, err := reader.GetOwner(context.Background(), domain.NetworkEthereum, testContract, "42")
	assert.Error(t, err)
}

func TestGetOwner_InvalidTokenID(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := newTestReader(t, mocks.NewMockEthClient(ctrl))

	_, err := reader.GetOwner(context.Background(), domain.NetworkPolygon, testContract, "not-a-number")
	assert.Error(t, err)
}

func TestClose(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockEthClient(ctrl)
	reader := newTestReader(t, client)

	client.EXPECT().Close()
	reader.Close()
}
