package domain

import (
	"sort"
	"strings"
)

// Flag is a boolean feature switch set by action completions
type Flag string

// GameFlags holds every flag that has been set
type GameFlags map[Flag]bool

// Set turns a flag on and reports whether it changed
func (f GameFlags) Set(flag Flag) bool {
	if f[flag] {
		return false
	}
	f[flag] = true
	return true
}

// IsSet reports whether a flag is on
func (f GameFlags) IsSet(flag Flag) bool {
	return f[flag]
}

// Fingerprint is a stable string of the set flags, used as a cache key
func (f GameFlags) Fingerprint() string {
	set := make([]string, 0, len(f))
	for flag, on := range f {
		if on {
			set = append(set, string(flag))
		}
	}
	sort.Strings(set)
	return strings.Join(set, ",")
}

// UpgradeEffect multiplies rewards or production while its flag is set.
// A nil Resource applies to every resource; empty Actions applies to every
// action and job.
type UpgradeEffect struct {
	Flag       Flag     `json:"flag" validate:"required"`
	Resource   *string  `json:"resource,omitempty"`
	Actions    []string `json:"actions,omitempty"`
	Multiplier float64  `json:"multiplier" validate:"gt=0"`
	Label      string   `json:"label" validate:"required"`
}

// Matches reports whether the effect applies to the given action/job and resource
func (e UpgradeEffect) Matches(target, resource string) bool {
	if e.Resource != nil && *e.Resource != resource {
		return false
	}
	if len(e.Actions) == 0 {
		return true
	}
	for _, a := range e.Actions {
		if a == target {
			return true
		}
	}
	return false
}
