package domain

// ChangeKind tags the entity kind of an out-of-band change notification
type ChangeKind string

const (
	ChangeKindNFT  ChangeKind = "nft"
	ChangeKindSale ChangeKind = "sale"
)

// ChangeEvent notifies downstream consumers that an entity changed. Entities
// are selected by comparing their UpdatedAt against the persisted
// last-notified timestamp of the stream.
type ChangeEvent struct {
	Kind      ChangeKind `json:"kind"`
	ID        string     `json:"id"`
	Network   Network    `json:"network"`
	UpdatedAt int64      `json:"updated_at"`
}
