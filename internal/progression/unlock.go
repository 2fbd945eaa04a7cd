package progression

import (
	"github.com/osse101/CrashSite_Go/internal/domain"
	"github.com/osse101/CrashSite_Go/internal/event"
	"github.com/osse101/CrashSite_Go/internal/game"
)

// ApplyUnlocks applies every unlock reference of a stage. References that
// are already applied are skipped without an event.
func ApplyUnlocks(s *game.State, source domain.ActionID, refs []string) ([]event.Event, error) {
	var events []event.Event
	for _, raw := range refs {
		ref, err := domain.ParseUnlock(raw)
		if err != nil {
			return events, err
		}
		applied, err := ApplyUnlock(s, ref)
		if err != nil {
			return events, err
		}
		if applied {
			events = append(events, event.NewUnlockAppliedEvent(ref, source), unlockLog(s, ref))
		}
	}
	return events, nil
}

// ApplyUnlock marks one target unlocked (or discovered, for resources) and
// reports whether anything changed
func ApplyUnlock(s *game.State, ref domain.UnlockRef) (bool, error) {
	switch ref.Kind {
	case domain.UnlockAction:
		a, err := s.Action(domain.ActionID(ref.ID))
		if err != nil {
			return false, err
		}
		if a.Unlocked {
			return false, nil
		}
		a.Unlocked = true
		return true, nil

	case domain.UnlockJob:
		j, err := s.Job(domain.JobID(ref.ID))
		if err != nil {
			return false, err
		}
		if j.Unlocked {
			return false, nil
		}
		j.Unlocked = true
		return true, nil

	case domain.UnlockBuilding:
		b, err := s.Building(domain.BuildingID(ref.ID))
		if err != nil {
			return false, err
		}
		if b.Unlocked {
			return false, nil
		}
		b.Unlocked = true
		return true, nil

	case domain.UnlockResource:
		if _, ok := s.Ledger.Get(ref.ID); !ok {
			return false, domain.ErrUnknownResource
		}
		return s.Ledger.Discover(ref.ID), nil
	}
	return false, nil
}

func unlockLog(s *game.State, ref domain.UnlockRef) event.Event {
	switch ref.Kind {
	case domain.UnlockJob:
		j, _ := s.Job(domain.JobID(ref.ID))
		return s.AddLog(domain.LogLevelInfo, LogTextUnlockedJob, j.Name)
	case domain.UnlockBuilding:
		b, _ := s.Building(domain.BuildingID(ref.ID))
		return s.AddLog(domain.LogLevelInfo, LogTextUnlockedBuilding, b.Name)
	case domain.UnlockResource:
		return s.AddLog(domain.LogLevelInfo, LogTextDiscovered, s.Ledger.DisplayName(ref.ID))
	default:
		a, _ := s.Action(domain.ActionID(ref.ID))
		return s.AddLog(domain.LogLevelInfo, LogTextUnlockedAction, a.Name)
	}
}
