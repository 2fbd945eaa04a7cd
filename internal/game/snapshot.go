package game

import (
	"sort"
	"time"

	"github.com/osse101/CrashSite_Go/internal/domain"
)

// ActionProgress is the persisted part of an action
type ActionProgress struct {
	Unlocked    bool `json:"unlocked"`
	Stage       int  `json:"stage"`
	Completions int  `json:"completions"`
}

// JobProgress is the persisted part of a job
type JobProgress struct {
	Unlocked bool `json:"unlocked"`
	Assigned int  `json:"assigned"`
}

// BuildingProgress is the persisted part of a building
type BuildingProgress struct {
	Unlocked bool `json:"unlocked"`
	Count    int  `json:"count"`
}

// Snapshot is the saved game blob. The active run is not saved; a reload
// starts idle.
type Snapshot struct {
	Resources []domain.Resource                      `json:"resources"`
	Actions   map[domain.ActionID]ActionProgress     `json:"actions"`
	Jobs      map[domain.JobID]JobProgress           `json:"jobs"`
	Buildings map[domain.BuildingID]BuildingProgress `json:"buildings"`
	Flags     []domain.Flag                          `json:"flags"`
	Log       []domain.LogEntry                      `json:"log,omitempty"`
	SavedAt   time.Time                              `json:"saved_at"`
}

// Snapshot captures the persisted part of the state
func (s *State) Snapshot() *Snapshot {
	snap := &Snapshot{
		Resources: s.Ledger.All(),
		Actions:   make(map[domain.ActionID]ActionProgress, len(s.actions)),
		Jobs:      make(map[domain.JobID]JobProgress, len(s.jobs)),
		Buildings: make(map[domain.BuildingID]BuildingProgress, len(s.buildings)),
		Log:       append([]domain.LogEntry(nil), s.Log...),
		SavedAt:   s.clock.Now(),
	}
	for id, a := range s.actions {
		snap.Actions[id] = ActionProgress{Unlocked: a.Unlocked, Stage: a.Stage, Completions: a.Completions}
	}
	for id, j := range s.jobs {
		snap.Jobs[id] = JobProgress{Unlocked: j.Unlocked, Assigned: j.Assigned}
	}
	for id, b := range s.buildings {
		snap.Buildings[id] = BuildingProgress{Unlocked: b.Unlocked, Count: b.Count}
	}
	for flag, on := range s.Flags {
		if on {
			snap.Flags = append(snap.Flags, flag)
		}
	}
	sort.Slice(snap.Flags, func(i, j int) bool { return snap.Flags[i] < snap.Flags[j] })
	return snap
}

// Restore overwrites progress from a snapshot. Ids no longer in the catalog
// are ignored and stage indexes are clamped to the current stage list.
func (s *State) Restore(snap *Snapshot) {
	if snap == nil {
		return
	}

	for id, p := range snap.Actions {
		a, ok := s.actions[id]
		if !ok {
			continue
		}
		a.Unlocked = p.Unlocked
		a.Stage = clampInt(p.Stage, 0, len(a.Stages))
		a.Completions = max(p.Completions, 0)
	}
	for id, p := range snap.Jobs {
		if j, ok := s.jobs[id]; ok {
			j.Unlocked = p.Unlocked
			j.Assigned = max(p.Assigned, 0)
		}
	}
	s.Ledger.Restore(snap.Resources, map[string]float64{domain.ResourceCrew: float64(s.AssignedCrew())})
	for id, p := range snap.Buildings {
		if b, ok := s.buildings[id]; ok {
			b.Unlocked = p.Unlocked
			b.Count = clampInt(p.Count, 0, max(b.MaxCount, p.Count))
		}
	}

	s.Flags = domain.GameFlags{}
	for _, f := range snap.Flags {
		s.Flags.Set(f)
	}

	s.Log = append([]domain.LogEntry(nil), snap.Log...)
	if over := len(s.Log) - domain.MaxLogEntries; over > 0 {
		s.Log = s.Log[over:]
	}
	s.Active = nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
