package job

import (
	"fmt"
	"math"

	"github.com/osse101/CrashSite_Go/internal/domain"
	"github.com/osse101/CrashSite_Go/internal/event"
	"github.com/osse101/CrashSite_Go/internal/game"
	"github.com/osse101/CrashSite_Go/internal/ledger"
	"github.com/osse101/CrashSite_Go/internal/metrics"
	"github.com/osse101/CrashSite_Go/internal/progression"
)

// RateSource resolves production multipliers for a job
type RateSource interface {
	RateMultiplier(s *game.State, jobID domain.JobID, resource string) progression.Multiplier
}

// Output is what one job produced during a production tick
type Output struct {
	JobID    domain.JobID `json:"job_id"`
	Resource string       `json:"resource"`
	Amount   float64      `json:"amount"`
	Scale    float64      `json:"scale"`
}

// Slots returns the job's slot limit: its own slots plus those granted by
// every constructed building. Unlimited jobs report UnlimitedSlots.
func Slots(s *game.State, j *domain.Job) int {
	if j.Unlimited {
		return UnlimitedSlots
	}
	total := j.Slots
	for _, b := range s.Buildings() {
		total += b.JobSlots[j.ID] * b.Count
	}
	return total
}

// Assign moves n idle crew into a job
func Assign(s *game.State, id domain.JobID, n int) ([]event.Event, error) {
	if n <= 0 {
		return nil, fmt.Errorf(ErrFmtInvalidQuantity, domain.ErrInvalidInput, n)
	}
	j, err := s.Job(id)
	if err != nil {
		return nil, err
	}
	if !j.Unlocked {
		return nil, fmt.Errorf(ErrFmtJobLocked, domain.ErrJobLocked, j.Name)
	}
	if idle := s.IdleCrew(); idle < n {
		return nil, fmt.Errorf(ErrFmtNoIdleCrew, domain.ErrNoIdleCrew, n, idle)
	}
	if slots := Slots(s, j); slots != UnlimitedSlots && j.Assigned+n > slots {
		return nil, fmt.Errorf(ErrFmtNoFreeSlots, domain.ErrNoFreeSlots, j.Name, j.Assigned, slots)
	}

	if err := s.Ledger.Reserve(domain.ResourceCrew, float64(n)); err != nil {
		return nil, err
	}
	j.Assigned += n

	return []event.Event{
		event.NewJobAssignmentEvent(j, n),
		s.AddLog(domain.LogLevelInfo, LogTextAssigned, n, j.Name),
	}, nil
}

// Unassign returns n crew from a job to the idle pool. Assigned crew stay
// reserved against the crew capacity, so the move never loses crew.
func Unassign(s *game.State, id domain.JobID, n int) ([]event.Event, error) {
	if n <= 0 {
		return nil, fmt.Errorf(ErrFmtInvalidQuantity, domain.ErrInvalidInput, n)
	}
	j, err := s.Job(id)
	if err != nil {
		return nil, err
	}
	if j.Assigned < n {
		return nil, fmt.Errorf(ErrFmtNotAssigned, domain.ErrNotAssigned, j.Name, j.Assigned)
	}

	if err := s.Ledger.Release(domain.ResourceCrew, float64(n)); err != nil {
		return nil, err
	}
	j.Assigned -= n

	return []event.Event{
		event.NewJobAssignmentEvent(j, -n),
		s.AddLog(domain.LogLevelInfo, LogTextUnassigned, n, j.Name),
	}, nil
}

// Produce advances every staffed job by dt seconds. Upkeep is paid first;
// when an upkeep resource runs short the job's output is scaled down by the
// fraction that could be paid. Production is clamped by the ledger's
// capacities and reported to metrics only. An upkeep debit the ledger
// refuses stops the tick and is returned with the outputs so far.
func Produce(s *game.State, rates RateSource, dt float64) ([]Output, error) {
	if dt <= 0 {
		return nil, nil
	}

	var out []Output
	for _, j := range s.Jobs() {
		if j.Assigned == 0 {
			continue
		}

		scale := upkeepScale(s.Ledger, j, dt)
		for _, u := range j.Upkeep {
			need := u.Rate * float64(j.Assigned) * dt * scale
			if err := s.Ledger.Deduct(u.Resource, math.Min(need, s.Ledger.Amount(u.Resource))); err != nil {
				return out, fmt.Errorf(ErrFmtUpkeep, j.Name, err)
			}
		}
		if scale < 1 {
			metrics.UpkeepShortfalls.WithLabelValues(string(j.ID)).Inc()
		}

		m := progression.Identity
		if rates != nil {
			m = rates.RateMultiplier(s, j.ID, j.Produces)
		}
		amount := m.Apply(j.Rate * float64(j.Assigned) * dt * scale)
		added := s.Ledger.Add(j.Produces, amount)
		if added > 0 {
			metrics.ResourcesProduced.WithLabelValues(string(j.ID), j.Produces).Add(added)
		}

		out = append(out, Output{JobID: j.ID, Resource: j.Produces, Amount: added, Scale: scale})
	}
	return out, nil
}

func upkeepScale(l *ledger.Ledger, j *domain.Job, dt float64) float64 {
	scale := 1.0
	for _, u := range j.Upkeep {
		need := u.Rate * float64(j.Assigned) * dt
		if need <= 0 {
			continue
		}
		if have := l.Amount(u.Resource); have < need {
			scale = math.Min(scale, have/need)
		}
	}
	return scale
}

// Construct builds one more copy of a building. Capacity bonuses apply per
// copy; the building's flag is set on the first copy.
func Construct(s *game.State, id domain.BuildingID) ([]event.Event, error) {
	b, err := s.Building(id)
	if err != nil {
		return nil, err
	}
	if !b.Unlocked {
		return nil, fmt.Errorf(ErrFmtBuildingLocked, domain.ErrBuildingLocked, b.Name)
	}
	if b.AtMax() {
		return nil, fmt.Errorf(ErrFmtBuildingMaxed, domain.ErrBuildingMaxed, b.Name, b.Count, b.MaxCount)
	}

	for resource, bonus := range b.CapacityBonus {
		if err := s.Ledger.AddCapacity(resource, bonus); err != nil {
			return nil, err
		}
	}
	b.Count++

	events := []event.Event{
		event.NewBuildingConstructedEvent(b),
		s.AddLog(domain.LogLevelSuccess, LogTextConstructed, b.Name, b.Count),
	}
	if b.Flag != "" {
		events = append(events, s.SetFlag(b.Flag, string(b.ID))...)
	}
	return events, nil
}
