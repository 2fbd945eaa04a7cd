package runner

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/CrashSite_Go/internal/domain"
	"github.com/osse101/CrashSite_Go/internal/event"
	"github.com/osse101/CrashSite_Go/internal/game"
	"github.com/osse101/CrashSite_Go/internal/ledger"
	"github.com/osse101/CrashSite_Go/internal/logger"
	"github.com/osse101/CrashSite_Go/internal/progression"
)

// Service defines the action runner operations
type Service interface {
	Start(ctx context.Context, id domain.ActionID) error
	Tick(ctx context.Context) error
	RequestCancel(ctx context.Context) (CancelResult, error)
	Active() *domain.ActiveRun
	Run(ctx context.Context)
}

// CancelResult tells the caller whether a cancel request armed the
// confirmation window or actually cancelled the run
type CancelResult struct {
	Confirmed bool            `json:"confirmed"`
	ConfirmBy *time.Time      `json:"confirm_by,omitempty"`
	Refunds   []domain.Refund `json:"refunds,omitempty"`
}

// Options tunes the runner
type Options struct {
	TickInterval  time.Duration
	ConfirmWindow time.Duration
	Seed          int64
}

// Runner drives the single active action: Idle, Running, then Completed or
// Cancelled, then Idle again
type Runner struct {
	manager       *game.Manager
	engine        *progression.Engine
	tickInterval  time.Duration
	confirmWindow time.Duration
	printer       *message.Printer

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewRunner creates an action runner
func NewRunner(manager *game.Manager, engine *progression.Engine, opts Options) *Runner {
	if opts.TickInterval <= 0 {
		opts.TickInterval = DefaultTickInterval
	}
	if opts.ConfirmWindow <= 0 {
		opts.ConfirmWindow = DefaultConfirmWindow
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	return &Runner{
		manager:       manager,
		engine:        engine,
		tickInterval:  opts.TickInterval,
		confirmWindow: opts.ConfirmWindow,
		printer:       message.NewPrinter(language.English),
		//nolint:gosec // G404: math/rand is acceptable for game mechanics, not for cryptographic purposes
		rng: rand.New(rand.NewSource(opts.Seed)),
	}
}

// Start begins an action. Nothing is mutated when the action is
// unavailable or unaffordable.
func (r *Runner) Start(ctx context.Context, id domain.ActionID) error {
	err := r.manager.Update(ctx, func(s *game.State) ([]event.Event, error) {
		return r.start(s, id)
	})
	if err != nil {
		logger.FromContext(ctx).Debug(LogMsgActionRejected, "action", id, "error", err)
	}
	return err
}

func (r *Runner) start(s *game.State, id domain.ActionID) ([]event.Event, error) {
	if s.Active != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrActionInProgress, s.Active.ActionID)
	}
	a, err := progression.CheckAvailable(s, id)
	if err != nil {
		return nil, err
	}

	plan := progression.EffectiveRun(a)
	if short := s.Ledger.Shortfalls(plan.Cost, plan.Drain); len(short) > 0 {
		names := make([]string, 0, len(short))
		for _, sf := range short {
			names = append(names, s.Ledger.DisplayName(sf.Resource))
		}
		reason := strings.Join(names, ", ")
		events := []event.Event{
			s.AddLog(domain.LogLevelError, LogTextRejected, a.Name, reason),
			event.NewActionRejectedEvent(a.ID, a.Name, reason),
		}
		return events, fmt.Errorf("%w: %s", domain.ErrInsufficientResources, reason)
	}

	if err := s.Ledger.DeductAll(plan.Cost); err != nil {
		return nil, err
	}
	run := &domain.ActiveRun{
		ID:        uuid.New(),
		ActionID:  a.ID,
		Plan:      plan,
		StartedAt: s.Now(),
		Drained:   make(map[string]float64, len(plan.Drain)),
	}
	s.Active = run

	return []event.Event{
		event.NewActionStartedEvent(a, run),
		s.AddLog(domain.LogLevelInfo, LogTextStarted, a.Name),
	}, nil
}

// Tick advances the active run to the current clock time
func (r *Runner) Tick(ctx context.Context) error {
	return r.manager.Update(ctx, func(s *game.State) ([]event.Event, error) {
		return r.tick(ctx, s)
	})
}

func (r *Runner) tick(ctx context.Context, s *game.State) ([]event.Event, error) {
	run := s.Active
	if run == nil {
		return nil, nil
	}

	fraction := 1.0
	if run.Plan.Duration > 0 {
		fraction = math.Min(1, float64(s.Clock().Since(run.StartedAt))/float64(run.Plan.Duration))
	}

	// First pass checks every drain so a depleted run is cancelled before
	// any of this tick's charges land.
	charges := make(map[string]float64, len(run.Plan.Drain))
	for _, d := range run.Plan.Drain {
		charge := d.Amount.Value()*fraction - run.Drained[d.Resource]
		if charge <= 0 {
			continue
		}
		charges[d.Resource] += charge
	}
	for _, d := range run.Plan.Drain {
		charge, ok := charges[d.Resource]
		if !ok {
			continue
		}
		if s.Ledger.Amount(d.Resource)+ledger.Epsilon < charge {
			run.Progress = fraction
			return r.cancel(s, run, event.CancelReasonDepleted, d.Resource), nil
		}
	}
	for resource, charge := range charges {
		if err := s.Ledger.Deduct(resource, charge); err != nil {
			return nil, err
		}
		run.Drained[resource] += charge
	}
	run.Progress = fraction

	if fraction < 1 {
		return nil, nil
	}
	return r.complete(ctx, s, run)
}

func (r *Runner) complete(ctx context.Context, s *game.State, run *domain.ActiveRun) ([]event.Event, error) {
	a, err := s.Action(run.ActionID)
	if err != nil {
		s.Active = nil
		return nil, err
	}

	grants := make([]domain.Grant, 0, len(run.Plan.Reward))
	for _, reward := range run.Plan.Reward {
		rolled := r.roll(reward.Amount)
		m := r.engine.RewardMultiplier(s, a.ID, reward.Resource)
		amount := math.Floor(m.Apply(rolled))
		added := s.Ledger.Add(reward.Resource, amount)
		grants = append(grants, domain.Grant{
			Resource:   reward.Resource,
			Rolled:     rolled,
			Amount:     added,
			Multiplier: m.Value,
			Labels:     m.Labels,
		})
	}

	s.Active = nil
	events, err := r.engine.Complete(ctx, s, a)
	events = append(events, event.NewActionCompletedEvent(a, run, grants))
	if len(grants) > 0 {
		events = append(events, s.AddLog(domain.LogLevelSuccess, LogTextCompletedWith, a.Name, r.describeGrants(s, grants)))
	} else {
		events = append(events, s.AddLog(domain.LogLevelSuccess, LogTextCompleted, a.Name))
	}
	return events, err
}

// roll returns a fixed amount or a uniform integer in [min, max]
func (r *Runner) roll(q domain.Quantity) float64 {
	if !q.IsRange() {
		return q.Value()
	}
	r.rngMu.Lock()
	defer r.rngMu.Unlock()
	lo, hi := int(q.Min), int(q.Max)
	return float64(lo + r.rng.Intn(hi-lo+1))
}

// RequestCancel arms the confirmation window on the first call and cancels
// the run on a second call inside it. The window reverts on its own.
func (r *Runner) RequestCancel(ctx context.Context) (CancelResult, error) {
	var result CancelResult
	err := r.manager.Update(ctx, func(s *game.State) ([]event.Event, error) {
		run := s.Active
		if run == nil {
			return nil, domain.ErrNoActiveAction
		}
		a, err := s.Action(run.ActionID)
		if err != nil {
			return nil, err
		}
		if !a.Cancelable {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotCancelable, a.Name)
		}

		now := s.Now()
		if run.CancelPendingAt != nil && now.Sub(*run.CancelPendingAt) <= r.confirmWindow {
			result.Confirmed = true
			events := r.cancel(s, run, event.CancelReasonPlayer, "")
			result.Refunds = refundsFrom(events)
			return events, nil
		}

		pendingAt := now
		confirmBy := now.Add(r.confirmWindow)
		run.CancelPendingAt = &pendingAt
		result.ConfirmBy = &confirmBy

		runID := run.ID
		revertCtx := context.WithoutCancel(ctx)
		s.Clock().AfterFunc(r.confirmWindow, func() {
			r.revertCancel(revertCtx, runID, pendingAt)
		})

		return []event.Event{
			event.NewCancelPendingEvent(run, confirmBy),
			s.AddLog(domain.LogLevelWarning, LogTextCancelPending, a.Name),
		}, nil
	})
	return result, err
}

// revertCancel clears a pending cancel if the same run is still waiting on
// the same request
func (r *Runner) revertCancel(ctx context.Context, runID uuid.UUID, pendingAt time.Time) {
	err := r.manager.Update(ctx, func(s *game.State) ([]event.Event, error) {
		run := s.Active
		if run == nil || run.ID != runID || run.CancelPendingAt == nil || !run.CancelPendingAt.Equal(pendingAt) {
			return nil, nil
		}
		run.CancelPendingAt = nil
		return []event.Event{event.NewCancelRevertedEvent(run)}, nil
	})
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgRevertFailed, "run_id", runID, "error", err)
	}
}

// cancel ends the run and refunds half of the cost and half of the drain
// consumed so far, both floored
func (r *Runner) cancel(s *game.State, run *domain.ActiveRun, reason, depleted string) []event.Event {
	s.Active = nil

	var refunds []domain.Refund
	credit := func(resource string, amount float64) {
		amount = math.Floor(amount * RefundRate)
		if amount <= 0 {
			return
		}
		if added := s.Ledger.Add(resource, amount); added > 0 {
			refunds = append(refunds, domain.Refund{Resource: resource, Amount: added})
		}
	}
	for _, c := range run.Plan.Cost {
		credit(c.Resource, c.Amount.Value())
	}
	for _, d := range run.Plan.Drain {
		credit(d.Resource, run.Drained[d.Resource])
	}

	a, err := s.Action(run.ActionID)
	if err != nil {
		a = &domain.Action{ID: run.ActionID, Name: string(run.ActionID)}
	}
	name := a.Name

	var text string
	if reason == event.CancelReasonDepleted {
		text = fmt.Sprintf(LogTextDepleted, s.Ledger.DisplayName(depleted), name)
	} else {
		text = fmt.Sprintf(LogTextCancelled, name)
	}
	if len(refunds) > 0 {
		text = fmt.Sprintf(LogTextRefunded, text+".", r.describeRefunds(s, refunds))
	}

	return []event.Event{
		event.NewActionCancelledEvent(a, run, reason, refunds),
		s.AddLog(domain.LogLevelWarning, "%s", text),
	}
}

// Active returns a copy of the running action, or nil when idle
func (r *Runner) Active() *domain.ActiveRun {
	var out *domain.ActiveRun
	r.manager.View(func(s *game.State) {
		if s.Active == nil {
			return
		}
		run := *s.Active
		run.Drained = make(map[string]float64, len(s.Active.Drained))
		for k, v := range s.Active.Drained {
			run.Drained[k] = v
		}
		out = &run
	})
	return out
}

// Run ticks the active action until ctx is cancelled
func (r *Runner) Run(ctx context.Context) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgRunnerStarted, "interval", r.tickInterval)

	ticker := time.NewTicker(r.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info(LogMsgRunnerStopped)
			return
		case <-ticker.C:
			if err := r.Tick(ctx); err != nil {
				log.Error(LogMsgTickFailed, "error", err)
			}
		}
	}
}

func (r *Runner) describeGrants(s *game.State, grants []domain.Grant) string {
	parts := make([]string, 0, len(grants))
	for _, g := range grants {
		parts = append(parts, r.printer.Sprintf("+%d %s", int64(g.Amount), s.Ledger.DisplayName(g.Resource)))
	}
	return strings.Join(parts, ", ")
}

func (r *Runner) describeRefunds(s *game.State, refunds []domain.Refund) string {
	parts := make([]string, 0, len(refunds))
	for _, rf := range refunds {
		parts = append(parts, r.printer.Sprintf("%d %s", int64(rf.Amount), s.Ledger.DisplayName(rf.Resource)))
	}
	return strings.Join(parts, ", ")
}

func refundsFrom(events []event.Event) []domain.Refund {
	for _, e := range events {
		if p, ok := e.Payload.(event.ActionCancelledPayloadV1); ok {
			return p.Refunds
		}
	}
	return nil
}
