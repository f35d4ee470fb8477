package cache

// ScopedKeyer wraps a Keyer with a prefix so concurrent campaigns can share
// one cache directory without key collisions.
//
// Example usage:
//
//	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "campaign:summer-launch:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// AssetKey generates a prefixed key for a generated base image.
func (k *ScopedKeyer) AssetKey(prompt string) string {
	return k.prefix + k.inner.AssetKey(prompt)
}

// MessagingKey generates a prefixed key for generated messaging.
func (k *ScopedKeyer) MessagingKey(campaignID, productKey, locale string) string {
	return k.prefix + k.inner.MessagingKey(campaignID, productKey, locale)
}
