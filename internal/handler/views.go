package handler

import (
	"sort"
	"time"

	"github.com/osse101/CrashSite_Go/internal/domain"
	"github.com/osse101/CrashSite_Go/internal/game"
	"github.com/osse101/CrashSite_Go/internal/progression"
)

// RewardSource supplies reward multipliers for the action list
type RewardSource interface {
	RewardMultiplier(s *game.State, actionID domain.ActionID, resource string) progression.Multiplier
}

// ResourceView is a discovered resource
type ResourceView struct {
	Key      string  `json:"key"`
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	Capacity float64 `json:"capacity,omitempty"`
}

// ActionView is an unlocked action as the player sees it, with the current
// stage's overrides already applied
type ActionView struct {
	ID            domain.ActionID         `json:"id"`
	Name          string                  `json:"name"`
	Description   string                  `json:"description"`
	Category      domain.ActionCategory   `json:"category"`
	Cost          []domain.ResourceAmount `json:"cost,omitempty"`
	Drain         []domain.ResourceAmount `json:"drain,omitempty"`
	Reward        []domain.ResourceAmount `json:"reward,omitempty"`
	DurationMs    int64                   `json:"duration_ms"`
	Cancelable    bool                    `json:"cancelable"`
	Repeatable    bool                    `json:"repeatable"`
	Stage         int                     `json:"stage"`
	Stages        int                     `json:"stages"`
	Completions   int                     `json:"completions"`
	Finished      bool                    `json:"finished"`
	Blocked       bool                    `json:"blocked"`
	BlockedReason string                  `json:"blocked_reason,omitempty"`
	Affordable    bool                    `json:"affordable"`
	Running       bool                    `json:"running"`
	Bonuses       []string                `json:"bonuses,omitempty"`
}

// ActiveView is the running action
type ActiveView struct {
	RunID         string          `json:"run_id"`
	ActionID      domain.ActionID `json:"action_id"`
	Name          string          `json:"name"`
	Progress      float64         `json:"progress"`
	RemainingMs   int64           `json:"remaining_ms"`
	CancelPending bool            `json:"cancel_pending"`
}

// BuildingView is an unlocked building
type BuildingView struct {
	ID       domain.BuildingID `json:"id"`
	Name     string            `json:"name"`
	Count    int               `json:"count"`
	MaxCount int               `json:"max_count,omitempty"`
}

// StateResponse is the whole player-visible game state
type StateResponse struct {
	Resources []ResourceView    `json:"resources"`
	Actions   []ActionView      `json:"actions"`
	Buildings []BuildingView    `json:"buildings"`
	Flags     []domain.Flag     `json:"flags"`
	Active    *ActiveView       `json:"active,omitempty"`
	Log       []domain.LogEntry `json:"log"`
}

func resourceViews(s *game.State) []ResourceView {
	var out []ResourceView
	for _, r := range s.Ledger.All() {
		if !r.Discovered {
			continue
		}
		out = append(out, ResourceView{Key: r.Key, Name: r.Name, Amount: r.Amount, Capacity: r.Capacity})
	}
	return out
}

func actionViews(s *game.State, rewards RewardSource) []ActionView {
	var out []ActionView
	for _, a := range s.Actions() {
		if !a.Unlocked {
			continue
		}
		out = append(out, actionView(s, a, rewards))
	}
	return out
}

func actionView(s *game.State, a *domain.Action, rewards RewardSource) ActionView {
	plan := progression.EffectiveRun(a)
	blocked, reason := progression.BlockedStatus(s, a.ID)

	v := ActionView{
		ID:            a.ID,
		Name:          a.Name,
		Description:   a.Description,
		Category:      a.Category,
		Cost:          plan.Cost,
		Drain:         plan.Drain,
		Reward:        plan.Reward,
		DurationMs:    plan.Duration.Milliseconds(),
		Cancelable:    a.Cancelable,
		Repeatable:    a.Repeatable,
		Stage:         a.Stage,
		Stages:        len(a.Stages),
		Completions:   a.Completions,
		Finished:      a.Finished(),
		Blocked:       blocked,
		BlockedReason: reason,
		Affordable:    len(s.Ledger.Shortfalls(plan.Cost, plan.Drain)) == 0,
		Running:       s.Active != nil && s.Active.ActionID == a.ID,
	}

	if rewards != nil {
		seen := map[string]bool{}
		for _, r := range plan.Reward {
			for _, label := range rewards.RewardMultiplier(s, a.ID, r.Resource).Labels {
				if !seen[label] {
					seen[label] = true
					v.Bonuses = append(v.Bonuses, label)
				}
			}
		}
	}
	return v
}

func activeView(s *game.State) *ActiveView {
	run := s.Active
	if run == nil {
		return nil
	}
	name := string(run.ActionID)
	if a, err := s.Action(run.ActionID); err == nil {
		name = a.Name
	}
	remaining := run.Plan.Duration - s.Now().Sub(run.StartedAt)
	if remaining < 0 {
		remaining = 0
	}
	return &ActiveView{
		RunID:         run.ID.String(),
		ActionID:      run.ActionID,
		Name:          name,
		Progress:      run.Progress,
		RemainingMs:   remaining.Round(time.Millisecond).Milliseconds(),
		CancelPending: run.CancelPendingAt != nil,
	}
}

func buildingViews(s *game.State) []BuildingView {
	var out []BuildingView
	for _, b := range s.Buildings() {
		if !b.Unlocked {
			continue
		}
		out = append(out, BuildingView{ID: b.ID, Name: b.Name, Count: b.Count, MaxCount: b.MaxCount})
	}
	return out
}

func flagList(flags domain.GameFlags) []domain.Flag {
	out := make([]domain.Flag, 0, len(flags))
	for f, on := range flags {
		if on {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
