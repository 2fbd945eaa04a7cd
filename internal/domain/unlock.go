package domain

import (
	"fmt"
	"strings"
)

// UnlockKind is what an unlock reference points at
type UnlockKind string

const (
	UnlockAction   UnlockKind = "action"
	UnlockJob      UnlockKind = "job"
	UnlockBuilding UnlockKind = "building"
	UnlockResource UnlockKind = "resource"
)

// UnlockRef is a parsed unlock reference
type UnlockRef struct {
	Kind UnlockKind
	ID   string
}

func (u UnlockRef) String() string {
	if u.Kind == UnlockAction {
		return u.ID
	}
	return string(u.Kind) + ":" + u.ID
}

// ParseUnlock parses an unlock reference. A bare id names an action;
// "job:", "building:" and "resource:" prefixes name the other kinds.
func ParseUnlock(ref string) (UnlockRef, error) {
	prefix, id, found := strings.Cut(ref, ":")
	if !found {
		if ref == "" {
			return UnlockRef{}, fmt.Errorf("%w: empty unlock reference", ErrInvalidCatalog)
		}
		return UnlockRef{Kind: UnlockAction, ID: ref}, nil
	}

	if id == "" {
		return UnlockRef{}, fmt.Errorf("%w: unlock reference %q has no id", ErrInvalidCatalog, ref)
	}

	switch prefix + ":" {
	case UnlockPrefixJob:
		return UnlockRef{Kind: UnlockJob, ID: id}, nil
	case UnlockPrefixBuilding:
		return UnlockRef{Kind: UnlockBuilding, ID: id}, nil
	case UnlockPrefixResource:
		return UnlockRef{Kind: UnlockResource, ID: id}, nil
	default:
		return UnlockRef{}, fmt.Errorf("%w: unknown unlock prefix %q in %q", ErrInvalidCatalog, prefix, ref)
	}
}
