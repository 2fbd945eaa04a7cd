package ledger

import (
	"fmt"
	"math"

	"github.com/osse101/CrashSite_Go/internal/domain"
)

// Shortfall describes a requirement the ledger cannot cover
type Shortfall struct {
	Resource  string
	Required  float64
	Available float64
}

// Ledger holds named resource quantities with capacities. Reserved amounts
// are held outside the spendable amount but still count against capacity,
// so Amount+Reserved never exceeds Capacity.
type Ledger struct {
	resources map[string]*domain.Resource
	reserved  map[string]float64
	order     []string
}

// New creates a ledger seeded with copies of the given resources
func New(defs []domain.Resource) *Ledger {
	l := &Ledger{
		resources: make(map[string]*domain.Resource, len(defs)),
		reserved:  make(map[string]float64),
		order:     make([]string, 0, len(defs)),
	}
	for _, def := range defs {
		r := def
		if r.Amount > 0 {
			r.Discovered = true
		}
		l.resources[r.Key] = &r
		l.order = append(l.order, r.Key)
	}
	return l
}

// Get returns the live resource entry
func (l *Ledger) Get(key string) (*domain.Resource, bool) {
	r, ok := l.resources[key]
	return r, ok
}

// Amount returns the current amount of a resource, 0 if unknown
func (l *Ledger) Amount(key string) float64 {
	if r, ok := l.resources[key]; ok {
		return r.Amount
	}
	return 0
}

// Set overwrites the amount, clamped to [0, capacity]
func (l *Ledger) Set(key string, amount float64) error {
	r, ok := l.resources[key]
	if !ok {
		return fmt.Errorf(ErrMsgUnknownResourceFmt, domain.ErrUnknownResource, key)
	}
	r.Amount = l.clamp(r, amount)
	if r.Amount > 0 {
		r.Discovered = true
	}
	return nil
}

// Add credits a resource and returns the amount actually added after the
// capacity clamp. Unknown resources are ignored.
func (l *Ledger) Add(key string, amount float64) float64 {
	r, ok := l.resources[key]
	if !ok || amount <= 0 {
		return 0
	}
	before := r.Amount
	r.Amount = l.clamp(r, r.Amount+amount)
	if r.Amount > 0 {
		r.Discovered = true
	}
	return r.Amount - before
}

// Deduct debits a resource, failing without mutation if the amount is not available
func (l *Ledger) Deduct(key string, amount float64) error {
	r, ok := l.resources[key]
	if !ok {
		return fmt.Errorf(ErrMsgUnknownResourceFmt, domain.ErrUnknownResource, key)
	}
	if amount <= 0 {
		return nil
	}
	if r.Amount+Epsilon < amount {
		return fmt.Errorf(ErrMsgShortfallFmt, domain.ErrInsufficientResources, amount, r.Name, r.Amount)
	}
	r.Amount -= amount
	if r.Amount < Epsilon {
		r.Amount = 0
	}
	return nil
}

// Shortfalls returns every requirement the ledger cannot cover. Requirements
// naming the same resource are summed first.
func (l *Ledger) Shortfalls(reqs ...[]domain.ResourceAmount) []Shortfall {
	totals, order := sumRequirements(reqs...)

	var out []Shortfall
	for _, key := range order {
		need := totals[key]
		have := l.Amount(key)
		if have+Epsilon < need {
			out = append(out, Shortfall{Resource: key, Required: need, Available: have})
		}
	}
	return out
}

// CanAfford checks the union of all requirement lists. It returns an error
// wrapping domain.ErrInsufficientResources for the first shortfall.
func (l *Ledger) CanAfford(reqs ...[]domain.ResourceAmount) error {
	short := l.Shortfalls(reqs...)
	if len(short) == 0 {
		return nil
	}
	s := short[0]
	return fmt.Errorf(ErrMsgShortfallFmt, domain.ErrInsufficientResources, s.Required, l.DisplayName(s.Resource), s.Available)
}

// DeductAll debits every requirement or nothing at all
func (l *Ledger) DeductAll(reqs []domain.ResourceAmount) error {
	if err := l.CanAfford(reqs); err != nil {
		return err
	}
	for _, req := range reqs {
		if err := l.Deduct(req.Resource, req.Amount.Value()); err != nil {
			return err
		}
	}
	return nil
}

// AddCapacity raises (or lowers, with a negative delta) a resource's capacity
func (l *Ledger) AddCapacity(key string, delta float64) error {
	r, ok := l.resources[key]
	if !ok {
		return fmt.Errorf(ErrMsgUnknownResourceFmt, domain.ErrUnknownResource, key)
	}
	r.Capacity = math.Max(0, r.Capacity+delta)
	r.Amount = l.clamp(r, r.Amount)
	return nil
}

// Reserve moves amount out of the spendable pool. It fails without mutation
// when the amount is not available.
func (l *Ledger) Reserve(key string, amount float64) error {
	if err := l.Deduct(key, amount); err != nil {
		return err
	}
	if amount > 0 {
		l.reserved[key] += amount
	}
	return nil
}

// Release returns a reserved amount to the spendable pool. The move is not
// clamped: reserved units already count against capacity.
func (l *Ledger) Release(key string, amount float64) error {
	r, ok := l.resources[key]
	if !ok {
		return fmt.Errorf(ErrMsgUnknownResourceFmt, domain.ErrUnknownResource, key)
	}
	if amount <= 0 {
		return nil
	}
	held := l.reserved[key]
	if held+Epsilon < amount {
		return fmt.Errorf(ErrMsgReleaseFmt, domain.ErrInsufficientResources, amount, r.Name, held)
	}
	l.reserved[key] = math.Max(0, held-amount)
	r.Amount += amount
	r.Discovered = true
	return nil
}

// Reserved returns the amount currently held by Reserve
func (l *Ledger) Reserved(key string) float64 {
	return l.reserved[key]
}

// Headroom is how much more of a resource fits under its capacity. Unbounded
// resources report +Inf.
func (l *Ledger) Headroom(key string) float64 {
	r, ok := l.resources[key]
	if !ok {
		return 0
	}
	if !r.Bounded() {
		return math.Inf(1)
	}
	return math.Max(0, r.Capacity-l.reserved[key]-r.Amount)
}

// Discover marks a resource visible without changing its amount
func (l *Ledger) Discover(key string) bool {
	r, ok := l.resources[key]
	if !ok || r.Discovered {
		return false
	}
	r.Discovered = true
	return true
}

// DisplayName returns the resource's name, falling back to its key
func (l *Ledger) DisplayName(key string) string {
	if r, ok := l.resources[key]; ok && r.Name != "" {
		return r.Name
	}
	return key
}

// All returns copies of every resource in catalog order
func (l *Ledger) All() []domain.Resource {
	out := make([]domain.Resource, 0, len(l.order))
	for _, key := range l.order {
		out = append(out, *l.resources[key])
	}
	return out
}

// Restore overwrites amount, capacity and discovery for known resources.
// reserved replaces every reservation and is applied before amounts are
// clamped.
func (l *Ledger) Restore(saved []domain.Resource, reserved map[string]float64) {
	l.reserved = make(map[string]float64, len(reserved))
	for key, amount := range reserved {
		if _, ok := l.resources[key]; ok && amount > 0 {
			l.reserved[key] = amount
		}
	}
	for _, s := range saved {
		r, ok := l.resources[s.Key]
		if !ok {
			continue
		}
		r.Capacity = math.Max(0, s.Capacity)
		r.Amount = l.clamp(r, s.Amount)
		r.Discovered = s.Discovered || r.Amount > 0
	}
}

func (l *Ledger) clamp(r *domain.Resource, amount float64) float64 {
	if amount < Epsilon {
		return 0
	}
	if !r.Bounded() {
		return amount
	}
	limit := math.Max(0, r.Capacity-l.reserved[r.Key])
	if amount > limit {
		return limit
	}
	return amount
}

func sumRequirements(reqs ...[]domain.ResourceAmount) (map[string]float64, []string) {
	totals := make(map[string]float64)
	var order []string
	for _, list := range reqs {
		for _, req := range list {
			if _, seen := totals[req.Resource]; !seen {
				order = append(order, req.Resource)
			}
			totals[req.Resource] += req.Amount.Value()
		}
	}
	return totals, order
}
