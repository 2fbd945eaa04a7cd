package domain

// Resource keys - stable code identifiers used by handlers and tests
const (
	ResourceEnergy      = "energy"
	ResourceFoodRations = "food_rations"
	ResourceWater       = "water"
	ResourceScrapMetal  = "scrap_metal"
	ResourceCrudePrybar = "crude_prybar"
	ResourceWiring      = "wiring"
	ResourceMedkit      = "medkit"
	ResourceCrew        = "crew"
	ResourceData        = "data"
)

// Action IDs
const (
	ActionSurveyWreckage ActionID = "survey_wreckage"
	ActionForageFood     ActionID = "forage_food"
	ActionRest           ActionID = "rest"
	ActionCollectWater   ActionID = "collect_water"
	ActionSalvageScrap   ActionID = "salvage_scrap"
	ActionCraftPrybar    ActionID = "craft_prybar"
	ActionPryHull        ActionID = "pry_hull"
	ActionSearchCockpit  ActionID = "search_cockpit"
	ActionTendWounded    ActionID = "tend_wounded"
	ActionRouseSurvivors ActionID = "rouse_survivors"
	ActionBuildLeanTo    ActionID = "build_lean_to"
	ActionBuildStorage   ActionID = "build_storage_crate"
	ActionStudyManual    ActionID = "study_survival_manual"
	ActionRigSolarPanel  ActionID = "rig_solar_panel"
	ActionRepairBeacon   ActionID = "repair_beacon"
)

// Job IDs
const (
	JobForager     JobID = "forager"
	JobScavenger   JobID = "scavenger"
	JobWaterRunner JobID = "water_runner"
	JobTechnician  JobID = "technician"
)

// Building IDs
const (
	BuildingLeanTo       BuildingID = "lean_to"
	BuildingStorageCrate BuildingID = "storage_crate"
	BuildingSolarPanel   BuildingID = "solar_panel"
)

// Flags set by completion handlers
const (
	FlagSurvivalManual Flag = "survival_manual"
	FlagSalvageTools   Flag = "salvage_tools"
	FlagShelter        Flag = "shelter"
	FlagSolarPower     Flag = "solar_power"
	FlagCockpitAccess  Flag = "cockpit_access"
	FlagBeaconOnline   Flag = "beacon_online"
)

// Unlock reference prefixes
const (
	UnlockPrefixJob      = "job:"
	UnlockPrefixBuilding = "building:"
	UnlockPrefixResource = "resource:"
)

// Message log limits
const (
	MaxLogEntries = 100
)
