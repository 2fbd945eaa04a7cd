package progression

import (
	"time"

	"github.com/osse101/CrashSite_Go/internal/domain"
)

// EffectiveRun returns what the next run of an action costs, drains, pays
// and takes, with the current stage's overrides applied. Overrides only
// affect this run; the action's own fields are untouched.
func EffectiveRun(a *domain.Action) domain.RunPlan {
	plan := domain.RunPlan{
		Stage:    a.Stage,
		Cost:     a.Cost,
		Drain:    a.Drain,
		Reward:   a.Reward,
		Duration: a.Duration(),
	}

	stage := a.CurrentStage()
	if stage == nil {
		return plan
	}
	if stage.Cost != nil {
		plan.Cost = stage.Cost
	}
	if stage.Reward != nil {
		plan.Reward = stage.Reward
	}
	if stage.DurationMs > 0 {
		plan.Duration = time.Duration(stage.DurationMs) * time.Millisecond
	}
	return plan
}
