package game

import (
	"fmt"
	"time"

	"github.com/osse101/CrashSite_Go/internal/catalog"
	"github.com/osse101/CrashSite_Go/internal/domain"
	"github.com/osse101/CrashSite_Go/internal/event"
	"github.com/osse101/CrashSite_Go/internal/ledger"
)

// State is the whole mutable game. It is only touched inside Manager.Update
// or Manager.View.
type State struct {
	Catalog *catalog.Catalog
	Ledger  *ledger.Ledger
	Flags   domain.GameFlags
	Active  *domain.ActiveRun
	Log     []domain.LogEntry

	actions   map[domain.ActionID]*domain.Action
	jobs      map[domain.JobID]*domain.Job
	buildings map[domain.BuildingID]*domain.Building
	clock     Clock
}

// NewState seeds a fresh game from the catalog
func NewState(cat *catalog.Catalog, clock Clock) *State {
	s := &State{
		Catalog:   cat,
		Ledger:    ledger.New(cat.Resources),
		Flags:     domain.GameFlags{},
		actions:   make(map[domain.ActionID]*domain.Action, len(cat.Actions)),
		jobs:      make(map[domain.JobID]*domain.Job, len(cat.Jobs)),
		buildings: make(map[domain.BuildingID]*domain.Building, len(cat.Buildings)),
		clock:     clock,
	}
	for _, a := range cat.Actions {
		s.actions[a.ID] = a.Clone()
	}
	for _, j := range cat.Jobs {
		job := j
		job.Upkeep = append([]domain.ResourceRate(nil), j.Upkeep...)
		s.jobs[j.ID] = &job
	}
	for _, b := range cat.Buildings {
		building := b
		s.buildings[b.ID] = &building
	}
	return s
}

// Now returns the game clock's current time
func (s *State) Now() time.Time {
	return s.clock.Now()
}

// Clock returns the game clock
func (s *State) Clock() Clock {
	return s.clock
}

// Action returns the live action
func (s *State) Action(id domain.ActionID) (*domain.Action, error) {
	a, ok := s.actions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownAction, id)
	}
	return a, nil
}

// Job returns the live job
func (s *State) Job(id domain.JobID) (*domain.Job, error) {
	j, ok := s.jobs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownJob, id)
	}
	return j, nil
}

// Building returns the live building
func (s *State) Building(id domain.BuildingID) (*domain.Building, error) {
	b, ok := s.buildings[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownBuilding, id)
	}
	return b, nil
}

// Actions returns live actions in catalog order
func (s *State) Actions() []*domain.Action {
	out := make([]*domain.Action, 0, len(s.Catalog.Actions))
	for _, def := range s.Catalog.Actions {
		out = append(out, s.actions[def.ID])
	}
	return out
}

// Jobs returns live jobs in catalog order
func (s *State) Jobs() []*domain.Job {
	out := make([]*domain.Job, 0, len(s.Catalog.Jobs))
	for _, def := range s.Catalog.Jobs {
		out = append(out, s.jobs[def.ID])
	}
	return out
}

// Buildings returns live buildings in catalog order
func (s *State) Buildings() []*domain.Building {
	out := make([]*domain.Building, 0, len(s.Catalog.Buildings))
	for _, def := range s.Catalog.Buildings {
		out = append(out, s.buildings[def.ID])
	}
	return out
}

// Completed reports whether an action counts as done for gating: finished
// for one-shot actions, completed at least once for repeatable ones
func (s *State) Completed(id domain.ActionID) bool {
	a, ok := s.actions[id]
	if !ok {
		return false
	}
	if a.Repeatable {
		return a.Completions > 0
	}
	return a.Finished()
}

// IdleCrew is the crew not assigned to any job
func (s *State) IdleCrew() int {
	return int(s.Ledger.Amount(domain.ResourceCrew))
}

// AssignedCrew is the crew working in jobs
func (s *State) AssignedCrew() int {
	total := 0
	for _, j := range s.jobs {
		total += j.Assigned
	}
	return total
}

// TotalCrew is idle plus assigned crew. The crew capacity bounds this total.
func (s *State) TotalCrew() int {
	return s.IdleCrew() + s.AssignedCrew()
}

// SetFlag sets a flag and returns a flag.set event if it changed
func (s *State) SetFlag(flag domain.Flag, source string) []event.Event {
	if !s.Flags.Set(flag) {
		return nil
	}
	return []event.Event{event.NewFlagSetEvent(flag, source)}
}

// AddLog appends to the bounded message log and returns its event
func (s *State) AddLog(level domain.LogLevel, format string, args ...any) event.Event {
	entry := domain.LogEntry{
		Level:   level,
		Message: fmt.Sprintf(format, args...),
		At:      s.clock.Now(),
	}
	s.Log = append(s.Log, entry)
	if over := len(s.Log) - domain.MaxLogEntries; over > 0 {
		s.Log = append([]domain.LogEntry(nil), s.Log[over:]...)
	}
	return event.NewLogMessageEvent(entry)
}
