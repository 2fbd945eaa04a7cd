package progression

import (
	"fmt"

	"github.com/osse101/CrashSite_Go/internal/domain"
	"github.com/osse101/CrashSite_Go/internal/game"
)

// BlockedStatus evaluates the soft gates on an action. Gates are independent
// of stage data and of the action's own unlock state.
func BlockedStatus(s *game.State, id domain.ActionID) (bool, string) {
	for _, g := range s.Catalog.GatesFor(id) {
		if !gateOpen(s, g) {
			return true, g.Reason
		}
	}
	return false, ""
}

func gateOpen(s *game.State, g domain.Gate) bool {
	for _, req := range g.RequiresCompleted {
		if !s.Completed(req) {
			return false
		}
	}
	for _, f := range g.RequiresFlags {
		if !s.Flags.IsSet(f) {
			return false
		}
	}
	return true
}

// CheckAvailable returns why an action cannot start right now, ignoring
// resources and the single-run rule
func CheckAvailable(s *game.State, id domain.ActionID) (*domain.Action, error) {
	a, err := s.Action(id)
	if err != nil {
		return nil, err
	}
	if !a.Unlocked {
		return a, fmt.Errorf("%w: %s", domain.ErrActionLocked, a.Name)
	}
	if a.Finished() {
		return a, fmt.Errorf("%w: %s", domain.ErrActionFinished, a.Name)
	}
	if blocked, reason := BlockedStatus(s, id); blocked {
		return a, fmt.Errorf("%w: %s", domain.ErrActionBlocked, reason)
	}
	return a, nil
}
