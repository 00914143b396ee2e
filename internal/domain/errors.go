package domain

import "errors"

var (
	// ErrMissingEntity is returned when a sale references an item or NFT that
	// cannot be resolved. Recovered locally: the event is skipped and the
	// batch continues.
	ErrMissingEntity = errors.New("item or nft not found for sale")

	// ErrOwnerResolution is returned when the on-chain owner lookup for a
	// third-party or credit sale fails. Propagated to the caller, which
	// decides between retry and skip.
	ErrOwnerResolution = errors.New("failed to resolve nft owner")

	// ErrInvariantViolation signals corrupted arithmetic (e.g. fees exceeding
	// the sale price). Fatal for the batch: counters cannot be rolled back.
	ErrInvariantViolation = errors.New("aggregation invariant violated")

	// ErrInvalidEvent is returned when a consumed message does not decode
	// into a valid marketplace event
	ErrInvalidEvent = errors.New("invalid marketplace event")
)
