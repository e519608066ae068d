// Package seed loads the startup data: the college catalog and the consultant roster.
package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/eduadvisor/backoffice/internal/app/models"
	"github.com/eduadvisor/backoffice/internal/app/repositories"
)

//go:embed data/catalog.json
var catalogJSON []byte

// Catalog is the embedded college and course catalog.
type Catalog struct {
	Colleges []models.College `json:"colleges"`
	Courses  []models.Course  `json:"courses"`
}

// LoadCatalog decodes the embedded catalog.
func LoadCatalog() (*Catalog, error) {
	var c Catalog
	if err := json.Unmarshal(catalogJSON, &c); err != nil {
		return nil, fmt.Errorf("failed to decode embedded catalog: %w", err)
	}
	return &c, nil
}

// rosterFile is the on-disk shape of the consultant seed file.
type rosterFile struct {
	Consultants []models.Consultant `yaml:"consultants"`
}

// LoadRoster reads the consultant seed roster. A missing file yields an empty roster.
func LoadRoster(path string) ([]models.Consultant, error) {
	if path == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read consultant roster: %w", err)
	}

	var f rosterFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("failed to parse consultant roster: %w", err)
	}

	seen := make(map[string]struct{}, len(f.Consultants))
	for i, c := range f.Consultants {
		if c.UserID == "" || c.Name == "" || c.Password == "" {
			return nil, fmt.Errorf("consultant roster entry %d: user_id, name and password are required", i)
		}
		if _, dup := seen[c.UserID]; dup {
			return nil, fmt.Errorf("consultant roster: duplicate user_id %q", c.UserID)
		}
		seen[c.UserID] = struct{}{}
	}
	return f.Consultants, nil
}

// RosterLoader is the part of the credential service the seeder needs.
type RosterLoader interface {
	Load(ctx context.Context, seed []models.Consultant) error
}

// CreateDefaultData seeds the catalog when it is empty and loads the consultant
// roster. Every step runs; failures are collected and returned together.
func CreateDefaultData(ctx context.Context, catalog repositories.CatalogStore, credentials RosterLoader, rosterPath string, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (catalog, consultants)...")
	var finalErr error

	// --- Catalog --- //
	empty, err := catalog.IsEmpty(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking catalog")
		finalErr = errors.Join(finalErr, err)
	} else if empty {
		data, err := LoadCatalog()
		if err != nil {
			finalErr = errors.Join(finalErr, err)
		} else if err := catalog.Seed(ctx, data.Colleges, data.Courses); err != nil {
			lgr.Error().Err(err).Msg("Error seeding catalog")
			finalErr = errors.Join(finalErr, err)
		} else {
			lgr.Info().Int("colleges", len(data.Colleges)).Int("courses", len(data.Courses)).Msg("Catalog seeded")
		}
	} else {
		lgr.Info().Msg("Catalog already present, skipping seed")
	}

	// --- Consultant roster --- //
	roster, err := LoadRoster(rosterPath)
	if err != nil {
		lgr.Error().Err(err).Str("path", rosterPath).Msg("Error reading consultant roster")
		finalErr = errors.Join(finalErr, err)
		roster = nil
	}
	if err := credentials.Load(ctx, roster); err != nil {
		lgr.Error().Err(err).Msg("Error loading consultants")
		finalErr = errors.Join(finalErr, err)
	}

	lgr.Info().Msg("Default data check/creation finished.")
	return finalErr
}
