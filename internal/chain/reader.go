// Package chain reads NFT ownership from the chain. The only question the
// aggregation engine ever asks on chain is "who owns this token right now",
// used to resolve the real buyer of third-party and credit sales.
package chain

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/wearmarket/marketplace-indexer/internal/adapter"
	"github.com/wearmarket/marketplace-indexer/internal/domain"
	"github.com/wearmarket/marketplace-indexer/internal/logger"
)

// ERC721 ownerOf function signature: ownerOf(uint256) returns (address)
const ownerOfABIJSON = `[{"constant":true,"inputs":[{"name":"tokenId","type":"uint256"}],"name":"ownerOf","outputs":[{"name":"","type":"address"}],"payable":false,"stateMutability":"view","type":"function"}]`

// Reader resolves current on-chain token ownership, one RPC client per
// network. Reads are idempotent, so transient RPC failures are retried with
// exponential backoff before the error is surfaced.
type Reader struct {
	clients    map[domain.Network]adapter.EthClient
	ownerOfABI abi.ABI
	maxElapsed time.Duration
}

// NewReader creates a chain reader on top of the given per-network RPC clients
func NewReader(clients map[domain.Network]adapter.EthClient, maxElapsed time.Duration) (*Reader, error) {
	ownerOfABI, err := abi.JSON(strings.NewReader(ownerOfABIJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ABI: %w", err)
	}

	if maxElapsed == 0 {
		maxElapsed = 30 * time.Second
	}

	return &Reader{
		clients:    clients,
		ownerOfABI: ownerOfABI,
		maxElapsed: maxElapsed,
	}, nil
}

// Close closes every RPC client
func (r *Reader) Close() {
	for _, client := range r.clients {
		client.Close()
	}
}

// GetOwner fetches the current owner of an ERC721 token, retrying transient
// RPC failures. The returned address is lowercase hex.
func (r *Reader) GetOwner(ctx context.Context, network domain.Network, contractAddress, tokenID string) (string, error) {
	client, ok := r.clients[network]
	if !ok {
		return "", fmt.Errorf("no rpc client configured for network %s", network)
	}

	tokenNumber, ok := new(big.Int).SetString(tokenID, 10)
	if !ok {
		return "", fmt.Errorf("invalid token id: %s", tokenID)
	}

	data, err := r.ownerOfABI.Pack("ownerOf", tokenNumber)
	if err != nil {
		return "", fmt.Errorf("failed to pack data: %w", err)
	}

	contractAddr := common.HexToAddress(contractAddress)
	msg := ethereum.CallMsg{
		To:   &contractAddr,
		Data: data,
	}

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = r.maxElapsed

	var result []byte
	err = backoff.Retry(func() error {
		result, err = client.CallContract(ctx, msg, nil)
		if err != nil {
			logger.Warn("owner lookup failed, retrying",
				zap.String("contractAddress", contractAddress),
				zap.String("tokenID", tokenID),
				zap.Error(err))
			return err
		}
		return nil
	}, backoff.WithContext(policy, ctx))
	if err != nil {
		return "", fmt.Errorf("failed to call contract: %w", err)
	}

	var owner common.Address
	if err := r.ownerOfABI.UnpackIntoInterface(&owner, "ownerOf", result); err != nil {
		return "", fmt.Errorf("failed to unpack result: %w", err)
	}

	return strings.ToLower(owner.Hex()), nil
}
