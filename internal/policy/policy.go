// Package policy classifies the economic origin of a sale from the paying
// address. Classification is a pure membership test against fixed allow-lists
// of known intermediary contracts; the first matching category wins.
package policy

import (
	"github.com/wearmarket/marketplace-indexer/internal/domain"
)

// Config holds the intermediary allow-lists. Addresses are normalized to
// lowercase hex on construction, so lookups accept any casing.
type Config struct {
	// FiatRelays are fiat on-ramp relay contracts (credit-card checkouts)
	FiatRelays []string
	// CrossChainRelays are cross-chain message relay contracts
	CrossChainRelays []string
	// CreditContracts are platform credit-manager contracts
	CreditContracts []string
}

// Policy answers operation-classification questions about buyer addresses
type Policy struct {
	fiat       domain.StringSet
	crossChain domain.StringSet
	credits    domain.StringSet
}

// New builds a policy from the configured allow-lists
func New(cfg Config) *Policy {
	return &Policy{
		fiat:       normalizedSet(cfg.FiatRelays),
		crossChain: normalizedSet(cfg.CrossChainRelays),
		credits:    normalizedSet(cfg.CreditContracts),
	}
}

func normalizedSet(addresses []string) domain.StringSet {
	set := domain.NewStringSet()
	for _, address := range addresses {
		set.Add(domain.NormalizeAddress(address))
	}
	return set
}

// ClassifyOperation returns the operation category for a buyer address.
// Priority order: fiat, cross_chain, credits; anything else is native.
func (p *Policy) ClassifyOperation(buyer string) domain.Operation {
	buyer = domain.NormalizeAddress(buyer)
	switch {
	case p.fiat.Has(buyer):
		return domain.OperationFiat
	case p.crossChain.Has(buyer):
		return domain.OperationCrossChain
	case p.credits.Has(buyer):
		return domain.OperationCredits
	default:
		return domain.OperationNative
	}
}

// IsThirdParty reports whether the buyer is a fiat or cross-chain intermediary
// paying on behalf of the real owner
func (p *Policy) IsThirdParty(buyer string) bool {
	op := p.ClassifyOperation(buyer)
	return op == domain.OperationFiat || op == domain.OperationCrossChain
}

// NeedsOwnerResolution reports whether the nominal buyer must be resolved to
// the current on-chain owner of the NFT (third-party and credit sales)
func (p *Policy) NeedsOwnerResolution(buyer string) bool {
	return p.IsThirdParty(buyer) || p.ClassifyOperation(buyer) == domain.OperationCredits
}
