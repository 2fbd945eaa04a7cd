package catalog

import (
	"fmt"

	"github.com/osse101/CrashSite_Go/internal/domain"
)

// Catalog holds the static game tables. Definitions are never mutated at
// runtime; game state clones what it needs.
type Catalog struct {
	Resources    []domain.Resource
	Actions      []domain.Action
	Jobs         []domain.Job
	Buildings    []domain.Building
	Effects      []domain.UpgradeEffect
	Technologies []domain.Technology
	Gates        []domain.Gate
	Stories      map[domain.StoryKey][]domain.StoryPage

	actionIdx   map[domain.ActionID]int
	jobIdx      map[domain.JobID]int
	buildingIdx map[domain.BuildingID]int
	resourceIdx map[string]int
}

// Action returns the catalog definition for an action
func (c *Catalog) Action(id domain.ActionID) (*domain.Action, bool) {
	i, ok := c.actionIdx[id]
	if !ok {
		return nil, false
	}
	return &c.Actions[i], true
}

// Job returns the catalog definition for a job
func (c *Catalog) Job(id domain.JobID) (*domain.Job, bool) {
	i, ok := c.jobIdx[id]
	if !ok {
		return nil, false
	}
	return &c.Jobs[i], true
}

// Building returns the catalog definition for a building
func (c *Catalog) Building(id domain.BuildingID) (*domain.Building, bool) {
	i, ok := c.buildingIdx[id]
	if !ok {
		return nil, false
	}
	return &c.Buildings[i], true
}

// HasResource reports whether a resource key is defined
func (c *Catalog) HasResource(key string) bool {
	_, ok := c.resourceIdx[key]
	return ok
}

// ResourceName returns a resource's display name, falling back to its key
func (c *Catalog) ResourceName(key string) string {
	if i, ok := c.resourceIdx[key]; ok {
		return c.Resources[i].Name
	}
	return key
}

// Story returns the pages for a story key
func (c *Catalog) Story(key domain.StoryKey) ([]domain.StoryPage, error) {
	pages, ok := c.Stories[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownStory, key)
	}
	return pages, nil
}

// GatesFor returns every gate on an action
func (c *Catalog) GatesFor(id domain.ActionID) []domain.Gate {
	var out []domain.Gate
	for _, g := range c.Gates {
		if g.Action == id {
			out = append(out, g)
		}
	}
	return out
}

// TechnologiesFor returns the technologies researched by an action
func (c *Catalog) TechnologiesFor(id domain.ActionID) []domain.Technology {
	var out []domain.Technology
	for _, t := range c.Technologies {
		if t.Action == id {
			out = append(out, t)
		}
	}
	return out
}

func (c *Catalog) buildIndex() {
	c.actionIdx = make(map[domain.ActionID]int, len(c.Actions))
	for i, a := range c.Actions {
		c.actionIdx[a.ID] = i
	}
	c.jobIdx = make(map[domain.JobID]int, len(c.Jobs))
	for i, j := range c.Jobs {
		c.jobIdx[j.ID] = i
	}
	c.buildingIdx = make(map[domain.BuildingID]int, len(c.Buildings))
	for i, b := range c.Buildings {
		c.buildingIdx[b.ID] = i
	}
	c.resourceIdx = make(map[string]int, len(c.Resources))
	for i, r := range c.Resources {
		c.resourceIdx[r.Key] = i
	}
}
