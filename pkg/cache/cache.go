// Package cache stores the expensive byproducts of a pipeline run: generated
// base images keyed by their prompt and generated messaging keyed by
// campaign, product and locale. Rendering itself is cheap and deterministic
// and is never cached.
//
// Caching is a pure optimization: every backend may lose entries at any time
// and a miss simply re-runs generation. NullCache disables caching entirely.
package cache

import (
	"context"
	"time"
)

// Default TTLs per entry kind. Generated assets are content-addressed by
// their prompt, so long retention is safe; messaging is cheaper to redo and
// expires sooner.
const (
	TTLAsset     = 30 * 24 * time.Hour
	TTLMessaging = 7 * 24 * time.Hour
)

// Cache is a byte-level key-value store with per-entry expiration.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A non-positive ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Keyer derives cache keys for the cacheable pipeline stages. Keys embed a
// hash of their inputs, so any input change produces a distinct key.
type Keyer interface {
	// AssetKey keys a generated base image by its full generation prompt.
	AssetKey(prompt string) string

	// MessagingKey keys generated messaging for one product of a campaign.
	MessagingKey(campaignID, productKey, locale string) string
}

// DefaultKeyer is the standard Keyer implementation.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// AssetKey implements Keyer.
func (k *DefaultKeyer) AssetKey(prompt string) string {
	return hashKey("asset", prompt)
}

// MessagingKey implements Keyer.
func (k *DefaultKeyer) MessagingKey(campaignID, productKey, locale string) string {
	return hashKey("messaging", campaignID, productKey, locale)
}
