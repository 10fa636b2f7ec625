package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching annotation results
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// ChunkKey generates a cache key for one annotated text chunk. The key
// covers the provider and model so that switching annotators never
// serves stale results.
func ChunkKey(provider, model, chunk string) string {
	hash := sha256.Sum256([]byte(provider + "\x00" + model + "\x00" + chunk))
	return "neolex:v1:" + hex.EncodeToString(hash[:])
}
