package job

// Error message format strings
const (
	ErrFmtJobLocked       = "%w: %s"
	ErrFmtNoIdleCrew      = "%w: need %d, have %d"
	ErrFmtNoFreeSlots     = "%w: %s has %d of %d slots filled"
	ErrFmtNotAssigned     = "%w: %s has %d assigned"
	ErrFmtBuildingMaxed   = "%w: %s (%d/%d)"
	ErrFmtBuildingLocked  = "%w: %s"
	ErrFmtInvalidQuantity = "%w: quantity must be positive, got %d"
	ErrFmtUpkeep          = "upkeep for %s: %w"
)

// Player-facing log text
const (
	LogTextAssigned    = "Assigned %d crew to %s"
	LogTextUnassigned  = "Recalled %d crew from %s"
	LogTextConstructed = "Built %s (%d)"
)

// Log messages
const (
	LogMsgAssignFailed    = "Job assignment failed"
	LogMsgConstructFailed = "Building construction failed"
	LogMsgProduction      = "Job production tick"
)

// UnlimitedSlots is reported for jobs without a slot limit
const UnlimitedSlots = -1
