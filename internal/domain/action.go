package domain

import (
	"time"

	"github.com/google/uuid"
)

// ActionID identifies an action in the catalog
type ActionID string

// ActionCategory groups actions for display and metrics
type ActionCategory string

const (
	CategoryExplore  ActionCategory = "explore"
	CategoryGather   ActionCategory = "gather"
	CategoryCraft    ActionCategory = "craft"
	CategoryBuild    ActionCategory = "build"
	CategoryResearch ActionCategory = "research"
)

// Stage is one step of an action's narrative/unlock sequence.
// Non-nil Cost/Reward and a non-zero DurationMs override the action's
// top-level fields for the run that completes this stage.
type Stage struct {
	Cost       []ResourceAmount `json:"cost,omitempty" validate:"omitempty,dive"`
	Reward     []ResourceAmount `json:"reward,omitempty" validate:"omitempty,dive"`
	DurationMs int64            `json:"duration_ms,omitempty" validate:"gte=0"`
	Unlocks    []string         `json:"unlocks,omitempty"`
	Story      StoryKey         `json:"story,omitempty"`
	LogText    string           `json:"log_text,omitempty"`
}

// Action is a timed, player-triggered operation
type Action struct {
	ID          ActionID         `json:"id" validate:"required"`
	Name        string           `json:"name" validate:"required"`
	Description string           `json:"description"`
	Category    ActionCategory   `json:"category" validate:"required,oneof=explore gather craft build research"`
	Cost        []ResourceAmount `json:"cost,omitempty" validate:"dive"`
	Drain       []ResourceAmount `json:"drain,omitempty" validate:"dive"`
	Reward      []ResourceAmount `json:"reward,omitempty" validate:"dive"`
	DurationMs  int64            `json:"duration_ms" validate:"gt=0"`
	Cancelable  bool             `json:"cancelable"`
	Repeatable  bool             `json:"repeatable"`
	Stages      []Stage          `json:"stages,omitempty" validate:"dive"`

	// Runtime state
	Unlocked    bool `json:"unlocked"`
	Stage       int  `json:"stage"`
	Completions int  `json:"completions"`
}

// Duration returns the action's top-level duration
func (a *Action) Duration() time.Duration {
	return time.Duration(a.DurationMs) * time.Millisecond
}

// CurrentStage returns the stage the next completion will finish, or nil
// once every stage is done.
func (a *Action) CurrentStage() *Stage {
	if a.Stage < 0 || a.Stage >= len(a.Stages) {
		return nil
	}
	return &a.Stages[a.Stage]
}

// StagesExhausted reports whether every stage has been completed
func (a *Action) StagesExhausted() bool {
	return a.Stage >= len(a.Stages)
}

// Finished reports whether a non-repeatable action can no longer run
func (a *Action) Finished() bool {
	if a.Repeatable {
		return false
	}
	if len(a.Stages) == 0 {
		return a.Completions > 0
	}
	return a.StagesExhausted()
}

// Clone returns a deep copy so catalog definitions are never mutated
func (a Action) Clone() *Action {
	c := a
	c.Cost = cloneAmounts(a.Cost)
	c.Drain = cloneAmounts(a.Drain)
	c.Reward = cloneAmounts(a.Reward)
	if a.Stages != nil {
		c.Stages = make([]Stage, len(a.Stages))
		for i, s := range a.Stages {
			s.Cost = cloneAmounts(s.Cost)
			s.Reward = cloneAmounts(s.Reward)
			s.Unlocks = append([]string(nil), s.Unlocks...)
			c.Stages[i] = s
		}
	}
	return &c
}

func cloneAmounts(in []ResourceAmount) []ResourceAmount {
	if in == nil {
		return nil
	}
	return append([]ResourceAmount(nil), in...)
}

// RunPlan is an action's cost/drain/reward/duration with stage overrides applied
type RunPlan struct {
	Stage    int              `json:"stage"`
	Cost     []ResourceAmount `json:"cost"`
	Drain    []ResourceAmount `json:"drain"`
	Reward   []ResourceAmount `json:"reward"`
	Duration time.Duration    `json:"duration"`
}

// ActiveRun is the single running action
type ActiveRun struct {
	ID              uuid.UUID          `json:"id"`
	ActionID        ActionID           `json:"action_id"`
	Plan            RunPlan            `json:"plan"`
	StartedAt       time.Time          `json:"started_at"`
	Drained         map[string]float64 `json:"drained"`
	Progress        float64            `json:"progress"`
	CancelPendingAt *time.Time         `json:"cancel_pending_at,omitempty"`
}

// Gate blocks an action until other actions are completed or flags are set,
// independent of unlock state
type Gate struct {
	Action            ActionID   `json:"action" validate:"required"`
	RequiresCompleted []ActionID `json:"requires_completed,omitempty"`
	RequiresFlags     []Flag     `json:"requires_flags,omitempty"`
	Reason            string     `json:"reason" validate:"required"`
}
