package catalog

// Config file names inside the catalog filesystem
const (
	ResourcesFile    = "resources.json"
	ActionsFile      = "actions.json"
	JobsFile         = "jobs.json"
	BuildingsFile    = "buildings.json"
	EffectsFile      = "effects.json"
	TechnologiesFile = "technologies.json"
	GatesFile        = "gates.json"
	StoriesFile      = "stories.json"

	SchemaDir = "schemas"
)

// Error message formats. Validation formats take domain.ErrInvalidCatalog first.
const (
	ErrMsgReadConfigFailedFmt  = "failed to read %s: %w"
	ErrMsgSchemaFailedFmt      = "%w: schema validation failed for %s: %v"
	ErrMsgParseConfigFailedFmt = "%w: failed to parse %s: %v"
	ErrFmtFieldInvalid         = "%w: %s %q: %v"
	ErrFmtDuplicateID          = "%w: duplicate %s %q"
	ErrFmtUnknownResource      = "%w: %s %q references unknown resource %q"
	ErrFmtUnknownAction        = "%w: %s %q references unknown action %q"
	ErrFmtUnknownJob           = "%w: %s %q references unknown job %q"
	ErrFmtUnknownBuilding      = "%w: %s %q references unknown building %q"
	ErrFmtUnknownStory         = "%w: action %q stage %d references unknown story %q"
	ErrFmtRangeNotAllowed      = "%w: action %q %s for %q must be a fixed amount"
	ErrFmtUnknownEffectTarget  = "%w: effect %q targets unknown action or job %q"
	ErrFmtUnlockInvalid        = "%w: action %q stage %d: %v"
	ErrFmtEmptyStory           = "%w: story %q has no pages"
	ErrFmtNoResources          = "%w: no resources defined"
	ErrFmtNoStartingAction     = "%w: no action is unlocked at start"
)

// Log messages
const (
	LogMsgCatalogLoaded = "Catalog loaded"
)
