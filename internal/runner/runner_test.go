package runner

import (
	"context"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CrashSite_Go/internal/catalog"
	"github.com/osse101/CrashSite_Go/internal/domain"
	"github.com/osse101/CrashSite_Go/internal/event"
	"github.com/osse101/CrashSite_Go/internal/game"
	"github.com/osse101/CrashSite_Go/internal/progression"
)

const tick = 100 * time.Millisecond

type recorder struct {
	mu     sync.Mutex
	events []event.Event
}

func (r *recorder) handle(ctx context.Context, e event.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

func (r *recorder) ofType(t event.Type) []event.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []event.Event
	for _, e := range r.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

type fixture struct {
	state  *game.State
	clock  *game.SimulatedClock
	runner *Runner
	events *recorder
}

func newFixture(t *testing.T, seed int64) *fixture {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)

	clock := game.NewSimulatedClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	state := game.NewState(cat, clock)
	bus := event.NewMemoryBus()
	rec := &recorder{}
	event.SubscribeAll(bus, rec.handle)

	engine := progression.NewEngine(nil, progression.NewMultiplierCache(0, 0))
	r := NewRunner(game.NewManager(state, bus), engine, Options{Seed: seed})
	return &fixture{state: state, clock: clock, runner: r, events: rec}
}

func (f *fixture) action(t *testing.T, id domain.ActionID) *domain.Action {
	t.Helper()
	a, err := f.state.Action(id)
	require.NoError(t, err)
	a.Unlocked = true
	return a
}

func (f *fixture) set(t *testing.T, resource string, amount float64) {
	t.Helper()
	require.NoError(t, f.state.Ledger.Set(resource, amount))
}

// advance moves the clock forward in runner-sized ticks
func (f *fixture) advance(t *testing.T, d time.Duration) {
	t.Helper()
	ctx := context.Background()
	for elapsed := time.Duration(0); elapsed < d; elapsed += tick {
		f.clock.Advance(tick)
		require.NoError(t, f.runner.Tick(ctx))
	}
}

func TestForageForFood(t *testing.T) {
	f := newFixture(t, 42)
	f.action(t, domain.ActionForageFood)
	f.set(t, domain.ResourceEnergy, 5)
	foodBefore := f.state.Ledger.Amount(domain.ResourceFoodRations)

	require.NoError(t, f.runner.Start(context.Background(), domain.ActionForageFood))
	require.NotNil(t, f.runner.Active())

	f.advance(t, 1900*time.Millisecond)
	require.NotNil(t, f.runner.Active(), "still running before two seconds")
	assert.Equal(t, foodBefore, f.state.Ledger.Amount(domain.ResourceFoodRations))

	f.advance(t, tick)
	assert.Nil(t, f.runner.Active())

	gained := f.state.Ledger.Amount(domain.ResourceFoodRations) - foodBefore
	assert.GreaterOrEqual(t, gained, 20.0)
	assert.LessOrEqual(t, gained, 25.0)
	assert.Equal(t, 0.0, f.state.Ledger.Amount(domain.ResourceEnergy))

	completed := f.events.ofType(event.ActionCompleted)
	require.Len(t, completed, 1)
	payload := completed[0].Payload.(event.ActionCompletedPayloadV1)
	require.Len(t, payload.Rewards, 1)
	assert.Equal(t, gained, payload.Rewards[0].Amount)
}

func TestPryHullWithoutPrybar(t *testing.T) {
	f := newFixture(t, 1)
	f.action(t, domain.ActionPryHull)
	before := f.state.Ledger.All()
	logsBefore := len(f.state.Log)

	err := f.runner.Start(context.Background(), domain.ActionPryHull)
	assert.ErrorIs(t, err, domain.ErrInsufficientResources)
	assert.Contains(t, err.Error(), "Crude Prybar")

	assert.Equal(t, before, f.state.Ledger.All(), "rejection mutates nothing")
	assert.Nil(t, f.runner.Active())
	require.Len(t, f.state.Log, logsBefore+1)
	assert.Equal(t, domain.LogLevelError, f.state.Log[len(f.state.Log)-1].Level)
	assert.Len(t, f.events.ofType(event.ActionRejected), 1)
}

func TestStart_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("locked", func(t *testing.T) {
		f := newFixture(t, 1)
		assert.ErrorIs(t, f.runner.Start(ctx, domain.ActionForageFood), domain.ErrActionLocked)
	})

	t.Run("unknown", func(t *testing.T) {
		f := newFixture(t, 1)
		assert.ErrorIs(t, f.runner.Start(ctx, "warp_drive"), domain.ErrUnknownAction)
	})

	t.Run("one action at a time", func(t *testing.T) {
		f := newFixture(t, 1)
		f.action(t, domain.ActionForageFood)
		require.NoError(t, f.runner.Start(ctx, domain.ActionSurveyWreckage))
		assert.ErrorIs(t, f.runner.Start(ctx, domain.ActionForageFood), domain.ErrActionInProgress)
	})

	t.Run("cost and drain are summed", func(t *testing.T) {
		f := newFixture(t, 1)
		forage := f.action(t, domain.ActionForageFood)
		forage.Cost = []domain.ResourceAmount{{Resource: domain.ResourceEnergy, Amount: domain.Fixed(3)}}
		f.set(t, domain.ResourceEnergy, 7)
		assert.ErrorIs(t, f.runner.Start(ctx, domain.ActionForageFood), domain.ErrInsufficientResources)
		assert.Equal(t, 7.0, f.state.Ledger.Amount(domain.ResourceEnergy))
	})

	t.Run("finished one-shot action", func(t *testing.T) {
		f := newFixture(t, 1)
		survey := f.action(t, domain.ActionSurveyWreckage)
		survey.Stage = len(survey.Stages)
		assert.ErrorIs(t, f.runner.Start(ctx, domain.ActionSurveyWreckage), domain.ErrActionFinished)
	})
}

func TestStart_DeductsCost(t *testing.T) {
	f := newFixture(t, 1)
	f.action(t, domain.ActionRest)
	food := f.state.Ledger.Amount(domain.ResourceFoodRations)

	require.NoError(t, f.runner.Start(context.Background(), domain.ActionRest))
	assert.Equal(t, food-5, f.state.Ledger.Amount(domain.ResourceFoodRations))
	assert.Len(t, f.events.ofType(event.ActionStarted), 1)
}

func TestCompletion_AdvancesStages(t *testing.T) {
	f := newFixture(t, 7)
	survey := f.action(t, domain.ActionSurveyWreckage)

	require.NoError(t, f.runner.Start(context.Background(), domain.ActionSurveyWreckage))
	f.advance(t, 3*time.Second)

	assert.Nil(t, f.runner.Active())
	assert.Equal(t, 1, survey.Stage)
	forage, _ := f.state.Action(domain.ActionForageFood)
	assert.True(t, forage.Unlocked)

	stories := f.events.ofType(event.StoryTriggered)
	require.Len(t, stories, 1)
	assert.Equal(t, domain.StoryKey("crash_awakening"), stories[0].Payload.(event.StoryTriggeredPayloadV1).Key)
	assert.Len(t, f.events.ofType(event.StageAdvanced), 1)
}

func TestCancel_ConfirmAndRefund(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 1)
	forage := f.action(t, domain.ActionForageFood)
	forage.Cost = []domain.ResourceAmount{{Resource: domain.ResourceFoodRations, Amount: domain.Fixed(4)}}
	f.set(t, domain.ResourceEnergy, 40)
	f.set(t, domain.ResourceFoodRations, 10)

	require.NoError(t, f.runner.Start(ctx, domain.ActionForageFood))
	f.advance(t, time.Second)

	first, err := f.runner.RequestCancel(ctx)
	require.NoError(t, err)
	assert.False(t, first.Confirmed)
	require.NotNil(t, first.ConfirmBy)
	assert.Equal(t, f.clock.Now().Add(DefaultConfirmWindow), *first.ConfirmBy)
	assert.NotNil(t, f.runner.Active(), "first request only arms the window")

	second, err := f.runner.RequestCancel(ctx)
	require.NoError(t, err)
	assert.True(t, second.Confirmed)
	assert.Nil(t, f.runner.Active())

	// half of 4 food, half of 2.5 energy drained, floored
	assert.InDelta(t, 8.0, f.state.Ledger.Amount(domain.ResourceFoodRations), 1e-9)
	assert.InDelta(t, 38.5, f.state.Ledger.Amount(domain.ResourceEnergy), 1e-6)
	assert.ElementsMatch(t, []domain.Refund{
		{Resource: domain.ResourceFoodRations, Amount: 2},
		{Resource: domain.ResourceEnergy, Amount: 1},
	}, second.Refunds)

	cancelled := f.events.ofType(event.ActionCancelled)
	require.Len(t, cancelled, 1)
	assert.Equal(t, event.CancelReasonPlayer, cancelled[0].Payload.(event.ActionCancelledPayloadV1).Reason)
	assert.Equal(t, 0, forage.Completions)
}

func TestCancel_WindowReverts(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 1)
	f.action(t, domain.ActionForageFood)
	f.action(t, domain.ActionRest)
	f.set(t, domain.ResourceEnergy, 40)
	require.NoError(t, f.runner.Start(ctx, domain.ActionRest))

	_, err := f.runner.RequestCancel(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, f.clock.Pending())

	f.clock.Advance(DefaultConfirmWindow + time.Millisecond)
	active := f.runner.Active()
	require.NotNil(t, active)
	assert.Nil(t, active.CancelPendingAt)
	assert.Len(t, f.events.ofType(event.ActionCancelRevert), 1)

	again, err := f.runner.RequestCancel(ctx)
	require.NoError(t, err)
	assert.False(t, again.Confirmed, "an expired window has to be armed again")
}

func TestCancel_StaleTimerIgnored(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 1)
	f.action(t, domain.ActionRest)
	require.NoError(t, f.runner.Start(ctx, domain.ActionRest))

	_, err := f.runner.RequestCancel(ctx)
	require.NoError(t, err)
	_, err = f.runner.RequestCancel(ctx)
	require.NoError(t, err)
	require.NoError(t, f.runner.Start(ctx, domain.ActionRest))

	f.clock.Advance(DefaultConfirmWindow + time.Millisecond)
	assert.Empty(t, f.events.ofType(event.ActionCancelRevert), "timer from a finished run does nothing")
	assert.NotNil(t, f.runner.Active())
}

func TestCancel_Errors(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 1)

	_, err := f.runner.RequestCancel(ctx)
	assert.ErrorIs(t, err, domain.ErrNoActiveAction)

	forage := f.action(t, domain.ActionForageFood)
	forage.Cancelable = false
	require.NoError(t, f.runner.Start(ctx, domain.ActionForageFood))
	_, err = f.runner.RequestCancel(ctx)
	assert.ErrorIs(t, err, domain.ErrNotCancelable)
}

func TestDepletionCancels(t *testing.T) {
	f := newFixture(t, 1)
	forage := f.action(t, domain.ActionForageFood)
	f.set(t, domain.ResourceEnergy, 5)
	food := f.state.Ledger.Amount(domain.ResourceFoodRations)

	require.NoError(t, f.runner.Start(context.Background(), domain.ActionForageFood))
	f.advance(t, time.Second)
	require.NotNil(t, f.runner.Active())
	assert.InDelta(t, 2.5, f.state.Ledger.Amount(domain.ResourceEnergy), 1e-6, "half the drain charged after half the run")

	// something else spends energy mid-run
	f.set(t, domain.ResourceEnergy, 0.5)
	f.advance(t, time.Second)

	assert.Nil(t, f.runner.Active())
	assert.Equal(t, 0, forage.Completions)
	assert.Equal(t, food, f.state.Ledger.Amount(domain.ResourceFoodRations), "no reward")
	assert.InDelta(t, 1.0, f.state.Ledger.Amount(domain.ResourceEnergy), 1e-6, "floor of half the 3 energy drained")

	cancelled := f.events.ofType(event.ActionCancelled)
	require.Len(t, cancelled, 1)
	payload := cancelled[0].Payload.(event.ActionCancelledPayloadV1)
	assert.Equal(t, event.CancelReasonDepleted, payload.Reason)
	assert.InDelta(t, 0.65, payload.Progress, 1e-6)
	assert.Equal(t, []domain.Refund{{Resource: domain.ResourceEnergy, Amount: 1}}, payload.Refunds)
	assert.Equal(t, domain.LogLevelWarning, f.state.Log[len(f.state.Log)-1].Level)
}

func TestRewardWithinRange(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		f := newFixture(t, seed)
		f.action(t, domain.ActionForageFood)
		f.set(t, domain.ResourceEnergy, 5)
		f.set(t, domain.ResourceFoodRations, 0)

		require.NoError(t, f.runner.Start(context.Background(), domain.ActionForageFood))
		f.advance(t, 2*time.Second)

		got := f.state.Ledger.Amount(domain.ResourceFoodRations)
		assert.Equal(t, math.Trunc(got), got, "rewards are whole numbers")
		assert.GreaterOrEqual(t, got, 20.0)
		assert.LessOrEqual(t, got, 25.0)
	}
}

func TestRewardMultiplier(t *testing.T) {
	f := newFixture(t, 3)
	f.action(t, domain.ActionForageFood)
	f.set(t, domain.ResourceEnergy, 5)
	f.set(t, domain.ResourceFoodRations, 0)
	f.state.Flags.Set(domain.FlagSurvivalManual)

	require.NoError(t, f.runner.Start(context.Background(), domain.ActionForageFood))
	f.advance(t, 2*time.Second)

	completed := f.events.ofType(event.ActionCompleted)
	require.Len(t, completed, 1)
	grant := completed[0].Payload.(event.ActionCompletedPayloadV1).Rewards[0]
	assert.Equal(t, 1.25, grant.Multiplier)
	assert.Equal(t, math.Floor(grant.Rolled*1.25), grant.Amount)
	assert.NotEmpty(t, grant.Labels)
}

func TestRun_StopsOnCancel(t *testing.T) {
	f := newFixture(t, 1)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		f.runner.Run(ctx)
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("runner did not stop")
	}
}
