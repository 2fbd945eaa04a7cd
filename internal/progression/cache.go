package progression

import (
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/CrashSite_Go/internal/domain"
)

// MultiplierCache memoises multiplier lookups. Keys include the flag
// fingerprint so a stale entry can never be served for a different flag set;
// Purge drops everything when a flag changes.
type MultiplierCache struct {
	lru *expirable.LRU[string, Multiplier]
}

// NewMultiplierCache creates a cache holding up to size entries for ttl
func NewMultiplierCache(size int, ttl time.Duration) *MultiplierCache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &MultiplierCache{
		lru: expirable.NewLRU[string, Multiplier](size, nil, ttl),
	}
}

// Reward returns the cached reward multiplier, computing it on a miss
func (c *MultiplierCache) Reward(flags domain.GameFlags, effects []domain.UpgradeEffect, actionID domain.ActionID, resource string) Multiplier {
	key := cacheKey(flags, kindReward, string(actionID), resource)
	if m, ok := c.lru.Get(key); ok {
		return m
	}
	m := ComputeRewardMultiplier(flags, effects, actionID, resource)
	c.lru.Add(key, m)
	return m
}

// Rate returns the cached production multiplier, computing it on a miss
func (c *MultiplierCache) Rate(flags domain.GameFlags, effects []domain.UpgradeEffect, jobID domain.JobID, resource string) Multiplier {
	key := cacheKey(flags, kindRate, string(jobID), resource)
	if m, ok := c.lru.Get(key); ok {
		return m
	}
	m := ComputeRateMultiplier(flags, effects, jobID, resource)
	c.lru.Add(key, m)
	return m
}

// Purge removes every entry
func (c *MultiplierCache) Purge() {
	c.lru.Purge()
}

// Len returns the number of cached entries
func (c *MultiplierCache) Len() int {
	return c.lru.Len()
}

func cacheKey(flags domain.GameFlags, kind, target, resource string) string {
	return strings.Join([]string{flags.Fingerprint(), kind, target, resource}, "|")
}
