package progression

import "time"

// Multiplier cache sizing
const (
	DefaultCacheSize = 512
	DefaultCacheTTL  = 5 * time.Minute
)

// Multiplier kinds used in cache keys
const (
	kindReward = "reward"
	kindRate   = "rate"
)

// Player-facing log text
const (
	LogTextUnlockedAction   = "New action available: %s"
	LogTextUnlockedJob      = "New job available: %s"
	LogTextUnlockedBuilding = "New building available: %s"
	LogTextDiscovered       = "Discovered %s"
)

// Log messages
const (
	LogMsgStoryMissing = "Stage story not found in catalog"
)
