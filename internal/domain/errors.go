package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Resource errors
	ErrMsgInsufficientResources = "insufficient resources"
	ErrMsgUnknownResource       = "unknown resource"

	// Action errors
	ErrMsgUnknownAction    = "unknown action"
	ErrMsgActionLocked     = "action is locked"
	ErrMsgActionBlocked    = "action is blocked"
	ErrMsgActionFinished   = "action already finished"
	ErrMsgActionInProgress = "another action is in progress"
	ErrMsgNoActiveAction   = "no action is running"
	ErrMsgNotCancelable    = "action cannot be cancelled"

	// Job and building errors
	ErrMsgUnknownJob      = "unknown job"
	ErrMsgJobLocked       = "job is locked"
	ErrMsgNoFreeSlots     = "no free job slots"
	ErrMsgNoIdleCrew      = "no idle crew"
	ErrMsgNotAssigned     = "not enough crew assigned"
	ErrMsgUnknownBuilding = "unknown building"
	ErrMsgBuildingMaxed   = "building limit reached"
	ErrMsgBuildingLocked  = "building is locked"

	// Catalog and storage errors
	ErrMsgInvalidCatalog = "invalid catalog"
	ErrMsgNoSavedState   = "no saved state"
	ErrMsgUnknownStory   = "unknown story"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrInsufficientResources = errors.New(ErrMsgInsufficientResources)
	ErrUnknownResource       = errors.New(ErrMsgUnknownResource)

	ErrUnknownAction    = errors.New(ErrMsgUnknownAction)
	ErrActionLocked     = errors.New(ErrMsgActionLocked)
	ErrActionBlocked    = errors.New(ErrMsgActionBlocked)
	ErrActionFinished   = errors.New(ErrMsgActionFinished)
	ErrActionInProgress = errors.New(ErrMsgActionInProgress)
	ErrNoActiveAction   = errors.New(ErrMsgNoActiveAction)
	ErrNotCancelable    = errors.New(ErrMsgNotCancelable)

	ErrUnknownJob      = errors.New(ErrMsgUnknownJob)
	ErrJobLocked       = errors.New(ErrMsgJobLocked)
	ErrNoFreeSlots     = errors.New(ErrMsgNoFreeSlots)
	ErrNoIdleCrew      = errors.New(ErrMsgNoIdleCrew)
	ErrNotAssigned     = errors.New(ErrMsgNotAssigned)
	ErrUnknownBuilding = errors.New(ErrMsgUnknownBuilding)
	ErrBuildingMaxed   = errors.New(ErrMsgBuildingMaxed)
	ErrBuildingLocked  = errors.New(ErrMsgBuildingLocked)

	ErrInvalidCatalog = errors.New(ErrMsgInvalidCatalog)
	ErrNoSavedState   = errors.New(ErrMsgNoSavedState)
	ErrUnknownStory   = errors.New(ErrMsgUnknownStory)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
