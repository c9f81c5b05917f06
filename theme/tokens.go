package theme

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

// DefaultTokenCacheSize bounds the computed-token memo.
const DefaultTokenCacheSize = 256

// TokenCache memoizes computed derivative tokens. Deriving a full token set
// is the expensive step of the pipeline, so repeat computations for the same
// theme and seed hit the memo instead. Entries are bounded LRU.
type TokenCache struct {
	memo *lru.Cache[string, tokenEntry]
	// flight collapses concurrent computations of the same key into one
	// pipeline run.
	flight singleflight.Group
}

// tokenEntry keeps the theme alive alongside its derived tokens so the
// identity encoded in the memo key cannot be reused while the entry lives.
type tokenEntry struct {
	theme   *Theme
	derived Token
}

// NewTokenCache creates a TokenCache holding up to size computed token
// sets. Size zero or negative selects DefaultTokenCacheSize.
func NewTokenCache(size int) *TokenCache {
	if size <= 0 {
		size = DefaultTokenCacheSize
	}
	// lru.New only errors on non-positive size, which is excluded above.
	memo, _ := lru.New[string, tokenEntry](size)
	return &TokenCache{memo: memo}
}

// Compute returns th.Derive(seed), memoized by theme identity and seed
// content hash. Concurrent calls for the same key run the pipeline once
// and share the result.
func (tc *TokenCache) Compute(th *Theme, seed Token) Token {
	key := fmt.Sprintf("%p%s", th, HashToken("", seed))
	if entry, ok := tc.memo.Get(key); ok {
		return entry.derived
	}

	derived, _, _ := tc.flight.Do(key, func() (any, error) {
		if entry, ok := tc.memo.Get(key); ok {
			return entry.derived, nil
		}
		out := th.Derive(seed)
		tc.memo.Add(key, tokenEntry{theme: th, derived: out})
		return out, nil
	})
	return derived.(Token)
}

// Len returns the number of memoized token sets.
func (tc *TokenCache) Len() int {
	return tc.memo.Len()
}
