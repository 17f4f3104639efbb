package constant

type SyncStatus string

const (
	SyncStatusSynced  SyncStatus = "synced"
	SyncStatusPending SyncStatus = "pending"
	SyncStatusError   SyncStatus = "error"
)

// ProductStateActive is the listing lifecycle state Etsy reports for
// purchasable listings; everything else is hidden from the storefront.
const ProductStateActive = "active"

// Per-item outcome tags used in pull/push reports.
const (
	ItemStatusSuccess = "success"
	ItemStatusSynced  = "synced"
	ItemStatusSkipped = "skipped"
	ItemStatusError   = "error"
)

// Redis keys.
const (
	CacheKeyStorefront = "storefront:products"
	TokenPairKey       = "etsy:token_pair"
)
