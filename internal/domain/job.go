package domain

// JobID identifies a crew job
type JobID string

// BuildingID identifies a building
type BuildingID string

// Job converts assigned crew into a steady flow of one resource
type Job struct {
	ID          JobID          `json:"id" validate:"required"`
	Name        string         `json:"name" validate:"required"`
	Description string         `json:"description"`
	Produces    string         `json:"produces" validate:"required"`
	Rate        float64        `json:"rate" validate:"gt=0"` // per assigned crew per second
	Upkeep      []ResourceRate `json:"upkeep,omitempty" validate:"dive"`
	Slots       int            `json:"slots" validate:"gte=0"`
	Unlimited   bool           `json:"unlimited"`

	// Runtime state
	Unlocked bool `json:"unlocked"`
	Assigned int  `json:"assigned"`
}

// Building is a constructed structure that raises capacities and job slots
type Building struct {
	ID            BuildingID         `json:"id" validate:"required"`
	Name          string             `json:"name" validate:"required"`
	Description   string             `json:"description"`
	MaxCount      int                `json:"max_count" validate:"gte=0"` // 0 means unlimited
	CapacityBonus map[string]float64 `json:"capacity_bonus,omitempty"`
	JobSlots      map[JobID]int      `json:"job_slots,omitempty"`
	Flag          Flag               `json:"flag,omitempty"`

	// Runtime state
	Unlocked bool `json:"unlocked"`
	Count    int  `json:"count"`
}

// AtMax reports whether no more copies can be built
func (b *Building) AtMax() bool {
	return b.MaxCount > 0 && b.Count >= b.MaxCount
}

// Technology is researched by an action whose completion sets Flag
type Technology struct {
	ID          string   `json:"id" validate:"required"`
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Action      ActionID `json:"action" validate:"required"`
	Flag        Flag     `json:"flag" validate:"required"`
}
