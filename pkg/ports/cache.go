package ports

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

// ErrCacheMiss is returned by TransformCache.Get when no entry exists for
// the key.
var ErrCacheMiss = errors.New("cache miss")

// TransformCache stores normalized output keyed by a digest of the input, so
// hot documents skip the parse/transform/serialize pipeline. Implementations
// decide eviction and TTL.
type TransformCache interface {
	// Get retrieves the cached output for key.
	// Returns ErrCacheMiss when the key is absent.
	Get(ctx context.Context, key string) (string, error)

	// Set stores the output for key.
	Set(ctx context.Context, key, output string) error
}

// CacheKey derives the cache key for a raw input document: a hex SHA-256
// digest, so equal inputs share an entry regardless of where they came from.
func CacheKey(input string) string {
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}
