package quickadd

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// CachedParser memoizes Parse results. Quick-add callers re-parse on every
// debounced keystroke, so identical inputs within a short window are common.
// The reference date is folded into the key at minute granularity; entries
// also expire so a parse can never serve a stale "today".
type CachedParser struct {
	cache *expirable.LRU[string, ParsedInput]
}

// NewCachedParser builds a parser cache holding up to size entries for at
// most ttl each.
func NewCachedParser(size int, ttl time.Duration) *CachedParser {
	return &CachedParser{
		cache: expirable.NewLRU[string, ParsedInput](size, nil, ttl),
	}
}

// Parse behaves exactly like the package-level Parse.
func (c *CachedParser) Parse(input string, ref time.Time) ParsedInput {
	key := ref.Truncate(time.Minute).Format(time.RFC3339) + "|" + input
	if hit, ok := c.cache.Get(key); ok {
		return hit
	}
	parsed := Parse(input, ref)
	c.cache.Add(key, parsed)
	return parsed
}
