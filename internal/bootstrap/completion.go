package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/CrashSite_Go/internal/catalog"
	"github.com/osse101/CrashSite_Go/internal/domain"
	"github.com/osse101/CrashSite_Go/internal/event"
	"github.com/osse101/CrashSite_Go/internal/game"
	"github.com/osse101/CrashSite_Go/internal/job"
	"github.com/osse101/CrashSite_Go/internal/logger"
	"github.com/osse101/CrashSite_Go/internal/progression"
)

// construction is the building an action raises and the crew that move in
// once it stands
type construction struct {
	building domain.BuildingID
	crew     int
}

var buildActions = map[domain.ActionID]construction{
	domain.ActionBuildLeanTo:   {building: domain.BuildingLeanTo, crew: CrewPerLeanTo},
	domain.ActionBuildStorage:  {building: domain.BuildingStorageCrate},
	domain.ActionRigSolarPanel: {building: domain.BuildingSolarPanel},
}

// RegisterCompletionHandlers wires the side effects of completing actions:
// research flags, construction, crew arrivals and tool flags.
func RegisterCompletionHandlers(reg *progression.HandlerRegistry, cat *catalog.Catalog) {
	for _, tech := range cat.Technologies {
		reg.Register(tech.Action, progression.SetFlagOnCompletion(tech.Flag))
	}

	for actionID, c := range buildActions {
		reg.Register(actionID, constructBuilding(c))
	}

	reg.Register(domain.ActionPryHull, progression.OnFinalStage(progression.SetFlagOnCompletion(domain.FlagSalvageTools)))

	slog.Default().Info(LogMsgCompletionHandlers,
		"technologies", len(cat.Technologies),
		"buildings", len(buildActions))
}

// constructBuilding raises one copy of a building and then houses its crew.
// A locked or maxed building is logged and skipped, and nobody moves in, so
// the completion itself still counts.
func constructBuilding(c construction) progression.CompletionHandler {
	return func(ctx context.Context, s *game.State, a *domain.Action) []event.Event {
		events, err := job.Construct(s, c.building)
		if err != nil {
			logger.FromContext(ctx).Warn(LogMsgConstructSkipped, "action", a.ID, "building", c.building, "error", err)
			return []event.Event{s.AddLog(domain.LogLevelWarning, "%s", err.Error())}
		}
		if c.crew > 0 {
			events = append(events, houseCrew(s, c.crew)...)
		}
		return events
	}
}

// houseCrew adds idle crew. The crew capacity bounds idle plus assigned crew.
func houseCrew(s *game.State, n int) []event.Event {
	added := s.Ledger.Add(domain.ResourceCrew, float64(n))
	if added <= 0 {
		return nil
	}
	return []event.Event{s.AddLog(domain.LogLevelSuccess, LogTextCrewJoined, int(added))}
}
