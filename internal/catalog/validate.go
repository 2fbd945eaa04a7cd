package catalog

import (
	"fmt"

	"github.com/osse101/CrashSite_Go/internal/domain"
)

// Validate checks struct tags on every definition and that every cross
// reference resolves. Errors wrap domain.ErrInvalidCatalog.
func Validate(c *Catalog) error {
	if len(c.Resources) == 0 {
		return fmt.Errorf(ErrFmtNoResources, domain.ErrInvalidCatalog)
	}
	if c.actionIdx == nil {
		c.buildIndex()
	}

	checks := []func(*Catalog) error{
		validateResources,
		validateActions,
		validateJobs,
		validateBuildings,
		validateEffects,
		validateTechnologies,
		validateGates,
		validateStories,
	}
	for _, check := range checks {
		if err := check(c); err != nil {
			return err
		}
	}
	return nil
}

func validateResources(c *Catalog) error {
	seen := make(map[string]bool, len(c.Resources))
	for i := range c.Resources {
		r := &c.Resources[i]
		if err := structValidator.Struct(r); err != nil {
			return fmt.Errorf(ErrFmtFieldInvalid, domain.ErrInvalidCatalog, "resource", r.Key, err)
		}
		if seen[r.Key] {
			return fmt.Errorf(ErrFmtDuplicateID, domain.ErrInvalidCatalog, "resource", r.Key)
		}
		seen[r.Key] = true
	}
	return nil
}

func validateActions(c *Catalog) error {
	seen := make(map[domain.ActionID]bool, len(c.Actions))
	anyUnlocked := false

	for i := range c.Actions {
		a := &c.Actions[i]
		if err := structValidator.Struct(a); err != nil {
			return fmt.Errorf(ErrFmtFieldInvalid, domain.ErrInvalidCatalog, "action", a.ID, err)
		}
		if seen[a.ID] {
			return fmt.Errorf(ErrFmtDuplicateID, domain.ErrInvalidCatalog, "action", a.ID)
		}
		seen[a.ID] = true
		anyUnlocked = anyUnlocked || a.Unlocked

		if err := c.checkAmounts(a.ID, "cost", a.Cost, false); err != nil {
			return err
		}
		if err := c.checkAmounts(a.ID, "drain", a.Drain, false); err != nil {
			return err
		}
		if err := c.checkAmounts(a.ID, "reward", a.Reward, true); err != nil {
			return err
		}

		for s := range a.Stages {
			if err := c.validateStage(a.ID, s, &a.Stages[s]); err != nil {
				return err
			}
		}
	}

	if !anyUnlocked {
		return fmt.Errorf(ErrFmtNoStartingAction, domain.ErrInvalidCatalog)
	}
	return nil
}

func (c *Catalog) validateStage(id domain.ActionID, index int, stage *domain.Stage) error {
	if err := c.checkAmounts(id, "stage cost", stage.Cost, false); err != nil {
		return err
	}
	if err := c.checkAmounts(id, "stage reward", stage.Reward, true); err != nil {
		return err
	}

	if stage.Story != "" {
		if _, ok := c.Stories[stage.Story]; !ok {
			return fmt.Errorf(ErrFmtUnknownStory, domain.ErrInvalidCatalog, id, index, stage.Story)
		}
	}

	for _, raw := range stage.Unlocks {
		ref, err := domain.ParseUnlock(raw)
		if err != nil {
			return fmt.Errorf(ErrFmtUnlockInvalid, domain.ErrInvalidCatalog, id, index, err)
		}
		if err := c.checkUnlock(id, ref); err != nil {
			return err
		}
	}
	return nil
}

func (c *Catalog) checkUnlock(id domain.ActionID, ref domain.UnlockRef) error {
	owner := "action"
	switch ref.Kind {
	case domain.UnlockAction:
		if _, ok := c.Action(domain.ActionID(ref.ID)); !ok {
			return fmt.Errorf(ErrFmtUnknownAction, domain.ErrInvalidCatalog, owner, id, ref.ID)
		}
	case domain.UnlockJob:
		if _, ok := c.Job(domain.JobID(ref.ID)); !ok {
			return fmt.Errorf(ErrFmtUnknownJob, domain.ErrInvalidCatalog, owner, id, ref.ID)
		}
	case domain.UnlockBuilding:
		if _, ok := c.Building(domain.BuildingID(ref.ID)); !ok {
			return fmt.Errorf(ErrFmtUnknownBuilding, domain.ErrInvalidCatalog, owner, id, ref.ID)
		}
	case domain.UnlockResource:
		if !c.HasResource(ref.ID) {
			return fmt.Errorf(ErrFmtUnknownResource, domain.ErrInvalidCatalog, owner, id, ref.ID)
		}
	}
	return nil
}

// checkAmounts verifies resources exist. Only rewards may use ranges.
func (c *Catalog) checkAmounts(id domain.ActionID, field string, amounts []domain.ResourceAmount, rangesAllowed bool) error {
	for _, amt := range amounts {
		if !c.HasResource(amt.Resource) {
			return fmt.Errorf(ErrFmtUnknownResource, domain.ErrInvalidCatalog, "action", id, amt.Resource)
		}
		if !rangesAllowed && amt.Amount.IsRange() {
			return fmt.Errorf(ErrFmtRangeNotAllowed, domain.ErrInvalidCatalog, id, field, amt.Resource)
		}
	}
	return nil
}

func validateJobs(c *Catalog) error {
	seen := make(map[domain.JobID]bool, len(c.Jobs))
	for i := range c.Jobs {
		j := &c.Jobs[i]
		if err := structValidator.Struct(j); err != nil {
			return fmt.Errorf(ErrFmtFieldInvalid, domain.ErrInvalidCatalog, "job", j.ID, err)
		}
		if seen[j.ID] {
			return fmt.Errorf(ErrFmtDuplicateID, domain.ErrInvalidCatalog, "job", j.ID)
		}
		seen[j.ID] = true

		if !c.HasResource(j.Produces) {
			return fmt.Errorf(ErrFmtUnknownResource, domain.ErrInvalidCatalog, "job", j.ID, j.Produces)
		}
		for _, u := range j.Upkeep {
			if !c.HasResource(u.Resource) {
				return fmt.Errorf(ErrFmtUnknownResource, domain.ErrInvalidCatalog, "job", j.ID, u.Resource)
			}
		}
	}
	return nil
}

func validateBuildings(c *Catalog) error {
	seen := make(map[domain.BuildingID]bool, len(c.Buildings))
	for i := range c.Buildings {
		b := &c.Buildings[i]
		if err := structValidator.Struct(b); err != nil {
			return fmt.Errorf(ErrFmtFieldInvalid, domain.ErrInvalidCatalog, "building", b.ID, err)
		}
		if seen[b.ID] {
			return fmt.Errorf(ErrFmtDuplicateID, domain.ErrInvalidCatalog, "building", b.ID)
		}
		seen[b.ID] = true

		for res := range b.CapacityBonus {
			if !c.HasResource(res) {
				return fmt.Errorf(ErrFmtUnknownResource, domain.ErrInvalidCatalog, "building", b.ID, res)
			}
		}
		for job := range b.JobSlots {
			if _, ok := c.Job(job); !ok {
				return fmt.Errorf(ErrFmtUnknownJob, domain.ErrInvalidCatalog, "building", b.ID, job)
			}
		}
	}
	return nil
}

func validateEffects(c *Catalog) error {
	for i := range c.Effects {
		e := &c.Effects[i]
		if err := structValidator.Struct(e); err != nil {
			return fmt.Errorf(ErrFmtFieldInvalid, domain.ErrInvalidCatalog, "effect", e.Label, err)
		}
		if e.Resource != nil && !c.HasResource(*e.Resource) {
			return fmt.Errorf(ErrFmtUnknownResource, domain.ErrInvalidCatalog, "effect", e.Label, *e.Resource)
		}
		for _, target := range e.Actions {
			_, isAction := c.Action(domain.ActionID(target))
			_, isJob := c.Job(domain.JobID(target))
			if !isAction && !isJob {
				return fmt.Errorf(ErrFmtUnknownEffectTarget, domain.ErrInvalidCatalog, e.Label, target)
			}
		}
	}
	return nil
}

func validateTechnologies(c *Catalog) error {
	seen := make(map[string]bool, len(c.Technologies))
	for i := range c.Technologies {
		t := &c.Technologies[i]
		if err := structValidator.Struct(t); err != nil {
			return fmt.Errorf(ErrFmtFieldInvalid, domain.ErrInvalidCatalog, "technology", t.ID, err)
		}
		if seen[t.ID] {
			return fmt.Errorf(ErrFmtDuplicateID, domain.ErrInvalidCatalog, "technology", t.ID)
		}
		seen[t.ID] = true
		if _, ok := c.Action(t.Action); !ok {
			return fmt.Errorf(ErrFmtUnknownAction, domain.ErrInvalidCatalog, "technology", t.ID, t.Action)
		}
	}
	return nil
}

func validateGates(c *Catalog) error {
	for i := range c.Gates {
		g := &c.Gates[i]
		if err := structValidator.Struct(g); err != nil {
			return fmt.Errorf(ErrFmtFieldInvalid, domain.ErrInvalidCatalog, "gate", g.Action, err)
		}
		if _, ok := c.Action(g.Action); !ok {
			return fmt.Errorf(ErrFmtUnknownAction, domain.ErrInvalidCatalog, "gate", g.Action, g.Action)
		}
		for _, req := range g.RequiresCompleted {
			if _, ok := c.Action(req); !ok {
				return fmt.Errorf(ErrFmtUnknownAction, domain.ErrInvalidCatalog, "gate", g.Action, req)
			}
		}
	}
	return nil
}

func validateStories(c *Catalog) error {
	for key, pages := range c.Stories {
		if len(pages) == 0 {
			return fmt.Errorf(ErrFmtEmptyStory, domain.ErrInvalidCatalog, key)
		}
		for i := range pages {
			if err := structValidator.Struct(&pages[i]); err != nil {
				return fmt.Errorf(ErrFmtFieldInvalid, domain.ErrInvalidCatalog, "story", key, err)
			}
		}
	}
	return nil
}
