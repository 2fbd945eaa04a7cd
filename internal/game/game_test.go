package game

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CrashSite_Go/internal/catalog"
	"github.com/osse101/CrashSite_Go/internal/domain"
	"github.com/osse101/CrashSite_Go/internal/event"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestState(t *testing.T) *State {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)
	return NewState(cat, NewSimulatedClock(epoch))
}

func TestNewState_ClonesCatalog(t *testing.T) {
	s := newTestState(t)

	forage, err := s.Action(domain.ActionForageFood)
	require.NoError(t, err)
	forage.Unlocked = true
	forage.Drain[0].Amount = domain.Fixed(99)

	def, ok := s.Catalog.Action(domain.ActionForageFood)
	require.True(t, ok)
	assert.False(t, def.Unlocked, "catalog definitions are never mutated")
	assert.Equal(t, domain.Fixed(5), def.Drain[0].Amount)

	_, err = s.Action("warp_drive")
	assert.ErrorIs(t, err, domain.ErrUnknownAction)
	_, err = s.Job("pilot")
	assert.ErrorIs(t, err, domain.ErrUnknownJob)
	_, err = s.Building("hangar")
	assert.ErrorIs(t, err, domain.ErrUnknownBuilding)

	assert.Equal(t, domain.ActionSurveyWreckage, s.Actions()[0].ID, "catalog order is preserved")
}

func TestCompleted(t *testing.T) {
	s := newTestState(t)

	pry, _ := s.Action(domain.ActionPryHull)
	pry.Completions = 1
	pry.Stage = 1
	assert.False(t, s.Completed(domain.ActionPryHull), "one-shot actions count once every stage is done")
	pry.Stage = len(pry.Stages)
	assert.True(t, s.Completed(domain.ActionPryHull))

	tend, _ := s.Action(domain.ActionTendWounded)
	assert.False(t, s.Completed(domain.ActionTendWounded))
	tend.Completions = 1
	assert.True(t, s.Completed(domain.ActionTendWounded), "repeatable actions count after one completion")
}

func TestAddLog_Bounded(t *testing.T) {
	s := newTestState(t)
	for i := 0; i < domain.MaxLogEntries+10; i++ {
		s.AddLog(domain.LogLevelInfo, "entry %d", i)
	}

	require.Len(t, s.Log, domain.MaxLogEntries)
	assert.Equal(t, "entry 10", s.Log[0].Message)
	assert.Equal(t, epoch, s.Log[0].At)

	e := s.AddLog(domain.LogLevelError, "boom")
	assert.Equal(t, event.LogMessage, e.Type)
}

func TestSetFlag(t *testing.T) {
	s := newTestState(t)
	assert.Len(t, s.SetFlag(domain.FlagShelter, "test"), 1)
	assert.Empty(t, s.SetFlag(domain.FlagShelter, "test"), "no event when already set")
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := newTestState(t)
	require.NoError(t, s.Ledger.Set(domain.ResourceFoodRations, 42))
	forage, _ := s.Action(domain.ActionForageFood)
	forage.Unlocked = true
	forage.Stage = 1
	forage.Completions = 7
	job, _ := s.Job(domain.JobForager)
	job.Unlocked = true
	job.Assigned = 2
	s.Flags.Set(domain.FlagSurvivalManual)
	s.AddLog(domain.LogLevelSuccess, "saved")

	snap := s.Snapshot()

	restored := newTestState(t)
	restored.Restore(snap)

	assert.Equal(t, 42.0, restored.Ledger.Amount(domain.ResourceFoodRations))
	a, _ := restored.Action(domain.ActionForageFood)
	assert.True(t, a.Unlocked)
	assert.Equal(t, 1, a.Stage)
	assert.Equal(t, 7, a.Completions)
	j, _ := restored.Job(domain.JobForager)
	assert.Equal(t, 2, j.Assigned)
	assert.True(t, restored.Flags.IsSet(domain.FlagSurvivalManual))
	require.Len(t, restored.Log, 1)
	assert.Equal(t, snap, restored.Snapshot())
}

func TestRestore_ReservesAssignedCrew(t *testing.T) {
	s := newTestState(t)
	require.NoError(t, s.Ledger.AddCapacity(domain.ResourceCrew, 4))
	require.NoError(t, s.Ledger.Set(domain.ResourceCrew, 4))
	require.NoError(t, s.Ledger.Reserve(domain.ResourceCrew, 2))
	forager, _ := s.Job(domain.JobForager)
	forager.Unlocked = true
	forager.Assigned = 2

	restored := newTestState(t)
	restored.Restore(s.Snapshot())

	assert.Equal(t, 2, restored.IdleCrew())
	assert.Equal(t, 2, restored.AssignedCrew())
	assert.Equal(t, 4, restored.TotalCrew())
	assert.Equal(t, 2.0, restored.Ledger.Reserved(domain.ResourceCrew))
	assert.Equal(t, 2.0, restored.Ledger.Headroom(domain.ResourceCrew))
}

func TestRestore_ClampsStage(t *testing.T) {
	s := newTestState(t)
	s.Restore(&Snapshot{
		Actions: map[domain.ActionID]ActionProgress{
			domain.ActionSurveyWreckage: {Unlocked: true, Stage: 99},
			"removed_action":            {Unlocked: true},
		},
	})

	survey, _ := s.Action(domain.ActionSurveyWreckage)
	assert.Equal(t, len(survey.Stages), survey.Stage)
}

func TestManager_PublishesAfterUnlock(t *testing.T) {
	bus := event.NewMemoryBus()
	m := NewManager(newTestState(t), bus)

	var seen []domain.Flag
	bus.Subscribe(event.FlagSet, func(ctx context.Context, e event.Event) error {
		// Re-entering the manager would deadlock if events were published under the lock
		m.View(func(s *State) {
			seen = append(seen, e.Payload.(event.FlagSetPayloadV1).Flag)
		})
		return nil
	})

	err := m.Update(context.Background(), func(s *State) ([]event.Event, error) {
		return s.SetFlag(domain.FlagShelter, "test"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, []domain.Flag{domain.FlagShelter}, seen)
}

func TestManager_PublishesOnError(t *testing.T) {
	bus := event.NewMemoryBus()
	m := NewManager(newTestState(t), bus)

	logged := 0
	bus.Subscribe(event.LogMessage, func(ctx context.Context, e event.Event) error {
		logged++
		return nil
	})

	failure := errors.New("nope")
	err := m.Update(context.Background(), func(s *State) ([]event.Event, error) {
		return []event.Event{s.AddLog(domain.LogLevelError, "rejected")}, failure
	})
	assert.ErrorIs(t, err, failure)
	assert.Equal(t, 1, logged)
}

func TestSimulatedClock_AfterFunc(t *testing.T) {
	c := NewSimulatedClock(epoch)
	var fired []string

	c.AfterFunc(2*time.Second, func() { fired = append(fired, "late") })
	c.AfterFunc(time.Second, func() { fired = append(fired, "early") })
	stopped := c.AfterFunc(time.Second, func() { fired = append(fired, "stopped") })
	assert.True(t, stopped.Stop())
	assert.False(t, stopped.Stop())

	c.Advance(500 * time.Millisecond)
	assert.Empty(t, fired)
	assert.Equal(t, 2, c.Pending())

	c.Advance(2 * time.Second)
	assert.Equal(t, []string{"early", "late"}, fired)
	assert.Equal(t, 0, c.Pending())
	assert.Equal(t, 2500*time.Millisecond, c.Since(epoch))
}
