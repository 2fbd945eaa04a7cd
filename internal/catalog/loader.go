package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/CrashSite_Go/internal/domain"
	"github.com/osse101/CrashSite_Go/internal/validation"
)

//go:embed configs
var embedded embed.FS

var structValidator = validator.New()

type resourcesConfig struct {
	Version     string            `json:"version"`
	Description string            `json:"description"`
	Resources   []domain.Resource `json:"resources"`
}

type actionsConfig struct {
	Version     string          `json:"version"`
	Description string          `json:"description"`
	Actions     []domain.Action `json:"actions"`
}

type jobsConfig struct {
	Version     string       `json:"version"`
	Description string       `json:"description"`
	Jobs        []domain.Job `json:"jobs"`
}

type buildingsConfig struct {
	Version     string            `json:"version"`
	Description string            `json:"description"`
	Buildings   []domain.Building `json:"buildings"`
}

type effectsConfig struct {
	Version     string                 `json:"version"`
	Description string                 `json:"description"`
	Effects     []domain.UpgradeEffect `json:"effects"`
}

type technologiesConfig struct {
	Version      string              `json:"version"`
	Description  string              `json:"description"`
	Technologies []domain.Technology `json:"technologies"`
}

type gatesConfig struct {
	Version     string        `json:"version"`
	Description string        `json:"description"`
	Gates       []domain.Gate `json:"gates"`
}

type storiesConfig struct {
	Version     string                                 `json:"version"`
	Description string                                 `json:"description"`
	Stories     map[domain.StoryKey][]domain.StoryPage `json:"stories"`
}

// Load reads the catalog embedded in the binary
func Load() (*Catalog, error) {
	files, err := fs.Sub(embedded, "configs")
	if err != nil {
		return nil, err
	}
	return LoadFS(files)
}

// LoadFS reads, schema-checks and validates every catalog table in files.
// Schemas are read from the schemas/ directory of the same filesystem.
func LoadFS(files fs.FS) (*Catalog, error) {
	schemaFiles, err := fs.Sub(files, SchemaDir)
	if err != nil {
		return nil, err
	}
	schemas := validation.NewSchemaValidator(schemaFiles)

	var (
		resources    resourcesConfig
		actions      actionsConfig
		jobs         jobsConfig
		buildings    buildingsConfig
		effects      effectsConfig
		technologies technologiesConfig
		gates        gatesConfig
		stories      storiesConfig
	)

	tables := []struct {
		name   string
		target any
	}{
		{ResourcesFile, &resources},
		{ActionsFile, &actions},
		{JobsFile, &jobs},
		{BuildingsFile, &buildings},
		{EffectsFile, &effects},
		{TechnologiesFile, &technologies},
		{GatesFile, &gates},
		{StoriesFile, &stories},
	}
	for _, t := range tables {
		if err := readConfig(files, schemas, t.name, t.target); err != nil {
			return nil, err
		}
	}

	c := &Catalog{
		Resources:    resources.Resources,
		Actions:      actions.Actions,
		Jobs:         jobs.Jobs,
		Buildings:    buildings.Buildings,
		Effects:      effects.Effects,
		Technologies: technologies.Technologies,
		Gates:        gates.Gates,
		Stories:      stories.Stories,
	}
	c.buildIndex()

	if err := Validate(c); err != nil {
		return nil, err
	}
	return c, nil
}

func readConfig(files fs.FS, schemas validation.SchemaValidator, name string, target any) error {
	data, err := fs.ReadFile(files, name)
	if err != nil {
		return fmt.Errorf(ErrMsgReadConfigFailedFmt, name, err)
	}

	schemaName := strings.TrimSuffix(name, ".json") + validation.SchemaSuffix
	if err := schemas.ValidateBytes(data, schemaName); err != nil {
		return fmt.Errorf(ErrMsgSchemaFailedFmt, domain.ErrInvalidCatalog, name, err)
	}

	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf(ErrMsgParseConfigFailedFmt, domain.ErrInvalidCatalog, name, err)
	}
	return nil
}
