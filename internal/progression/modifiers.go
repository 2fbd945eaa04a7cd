package progression

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/osse101/CrashSite_Go/internal/domain"
)

// Multiplier is the combined effect of every active upgrade on one
// action/job and resource
type Multiplier struct {
	Value  float64  `json:"value"`
	Labels []string `json:"labels,omitempty"`
}

// Identity is the multiplier when no upgrade applies
var Identity = Multiplier{Value: 1}

// Apply scales an amount by the multiplier
func (m Multiplier) Apply(amount float64) float64 {
	return amount * m.Value
}

// ComputeRewardMultiplier combines the effects that boost an action's
// reward of the given resource
func ComputeRewardMultiplier(flags domain.GameFlags, effects []domain.UpgradeEffect, actionID domain.ActionID, resource string) Multiplier {
	return compute(flags, effects, string(actionID), resource)
}

// ComputeRateMultiplier combines the effects that boost a job's production
// of the given resource
func ComputeRateMultiplier(flags domain.GameFlags, effects []domain.UpgradeEffect, jobID domain.JobID, resource string) Multiplier {
	return compute(flags, effects, string(jobID), resource)
}

// compute multiplies matching effects. Multiplication commutes and labels
// are sorted, so the result does not depend on effect order.
func compute(flags domain.GameFlags, effects []domain.UpgradeEffect, target, resource string) Multiplier {
	m := Multiplier{Value: 1}
	for _, e := range effects {
		if !flags.IsSet(e.Flag) || !e.Matches(target, resource) {
			continue
		}
		m.Value *= e.Multiplier
		m.Labels = append(m.Labels, formatLabel(e))
	}
	sort.Strings(m.Labels)
	return m
}

func formatLabel(e domain.UpgradeEffect) string {
	return fmt.Sprintf("%s ×%s", e.Label, strconv.FormatFloat(e.Multiplier, 'f', -1, 64))
}
