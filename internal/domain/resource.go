package domain

import (
	"encoding/json"
	"fmt"
	"math"
)

// Resource is a named quantity tracked by the ledger
type Resource struct {
	Key        string  `json:"key" validate:"required"`
	Name       string  `json:"name" validate:"required"`
	Amount     float64 `json:"amount" validate:"gte=0"`
	Capacity   float64 `json:"capacity" validate:"gte=0"` // 0 means unbounded
	Discovered bool    `json:"discovered"`
}

// Bounded reports whether the resource has a capacity limit
func (r Resource) Bounded() bool {
	return r.Capacity > 0
}

// Quantity is either a fixed amount or an inclusive integer range.
// In JSON it is written as a number (5) or a pair ([20, 25]).
type Quantity struct {
	Min float64
	Max float64
}

// Fixed returns a Quantity with Min == Max
func Fixed(amount float64) Quantity {
	return Quantity{Min: amount, Max: amount}
}

// Range returns a Quantity spanning [min, max]
func Range(min, max int) Quantity {
	return Quantity{Min: float64(min), Max: float64(max)}
}

// IsRange reports whether the quantity is a [min, max] pair
func (q Quantity) IsRange() bool {
	return q.Max > q.Min
}

// Value returns the fixed amount. For ranges this is the lower bound.
func (q Quantity) Value() float64 {
	return q.Min
}

func (q Quantity) String() string {
	if q.IsRange() {
		return fmt.Sprintf("%g-%g", q.Min, q.Max)
	}
	return fmt.Sprintf("%g", q.Min)
}

// MarshalJSON writes a fixed amount as a number and a range as a pair
func (q Quantity) MarshalJSON() ([]byte, error) {
	if q.IsRange() {
		return json.Marshal([2]float64{q.Min, q.Max})
	}
	return json.Marshal(q.Min)
}

// UnmarshalJSON accepts either a number or a two element array
func (q *Quantity) UnmarshalJSON(data []byte) error {
	var single float64
	if err := json.Unmarshal(data, &single); err == nil {
		q.Min, q.Max = single, single
		return nil
	}

	var pair []float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("%w: quantity must be a number or [min, max]: %s", ErrInvalidCatalog, string(data))
	}
	if len(pair) != 2 {
		return fmt.Errorf("%w: quantity range needs exactly two values, got %d", ErrInvalidCatalog, len(pair))
	}
	if pair[0] > pair[1] {
		return fmt.Errorf("%w: quantity range min %g exceeds max %g", ErrInvalidCatalog, pair[0], pair[1])
	}
	if pair[0] != math.Trunc(pair[0]) || pair[1] != math.Trunc(pair[1]) {
		return fmt.Errorf("%w: quantity range bounds must be integers", ErrInvalidCatalog)
	}
	q.Min, q.Max = pair[0], pair[1]
	return nil
}

// ResourceAmount pairs a resource key with a quantity
type ResourceAmount struct {
	Resource string   `json:"resource" validate:"required"`
	Amount   Quantity `json:"amount"`
}

// ResourceRate is a per-second flow of a resource
type ResourceRate struct {
	Resource string  `json:"resource" validate:"required"`
	Rate     float64 `json:"rate" validate:"gt=0"`
}

// Grant records what a completed action actually paid out
type Grant struct {
	Resource   string   `json:"resource"`
	Rolled     float64  `json:"rolled"`
	Amount     float64  `json:"amount"`
	Multiplier float64  `json:"multiplier"`
	Labels     []string `json:"labels,omitempty"`
}

// Refund records what a cancelled action returned
type Refund struct {
	Resource string  `json:"resource"`
	Amount   float64 `json:"amount"`
}
