package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// hashKey builds a namespaced cache key by hashing the components, so
// asset keys (prompt) and messaging keys (campaign, product, locale) can
// never collide even when their inputs happen to serialize identically.
// The key format is: kind:hash(parts...)
func hashKey(kind string, parts ...interface{}) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	// Full SHA-256 (64 hex chars) to prevent collisions.
	return fmt.Sprintf("%s:%s", kind, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data, returned as a
// 64-character hex string. FileCache uses it to turn keys into
// filesystem-safe entry names.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
