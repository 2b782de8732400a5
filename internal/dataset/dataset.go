// Package dataset holds the compiled-in mock data the site starts with:
// the seed trees, the landing page stats fixture, the donation tiers and a
// handful of demonstration donations.
package dataset

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"github.com/greenlegacy-ng/greenlegacy/internal/domain"
	"github.com/greenlegacy-ng/greenlegacy/internal/validation"
)

//go:embed seed/*.json schemas/*.json
var files embed.FS

// ErrInvalidDataset is returned when seed data passes the schema but breaks a domain rule
var ErrInvalidDataset = errors.New("invalid dataset")

// Dataset is the decoded seed data
type Dataset struct {
	Trees     []domain.Tree
	Stats     domain.TreeStats
	Tiers     []domain.DonationTier
	Donations []domain.Donation
}

type treesFile struct {
	Version     string        `json:"version"`
	Description string        `json:"description"`
	Trees       []domain.Tree `json:"trees"`
}

type statsFile struct {
	Version     string           `json:"version"`
	Description string           `json:"description"`
	Stats       domain.TreeStats `json:"stats"`
}

type tiersFile struct {
	Version     string                `json:"version"`
	Description string                `json:"description"`
	Tiers       []domain.DonationTier `json:"tiers"`
}

type donationsFile struct {
	Version     string            `json:"version"`
	Description string            `json:"description"`
	Donations   []domain.Donation `json:"donations"`
}

// Load decodes and validates the embedded seed files.
// Every call returns freshly decoded values, so callers own the result.
func Load() (*Dataset, error) {
	return loadFS(files)
}

// MustLoad is Load for callers that treat broken seed data as a programming error
func MustLoad() *Dataset {
	ds, err := Load()
	if err != nil {
		panic(err)
	}
	return ds
}

func loadFS(fsys fs.FS) (*Dataset, error) {
	v := validation.NewSchemaValidator(fsys)

	var trees treesFile
	if err := decode(fsys, v, TreesFile, TreesSchema, &trees); err != nil {
		return nil, err
	}
	var stats statsFile
	if err := decode(fsys, v, StatsFile, StatsSchema, &stats); err != nil {
		return nil, err
	}
	var tiers tiersFile
	if err := decode(fsys, v, TiersFile, TiersSchema, &tiers); err != nil {
		return nil, err
	}
	var donations donationsFile
	if err := decode(fsys, v, DonationsFile, DonationsSchema, &donations); err != nil {
		return nil, err
	}

	ds := &Dataset{
		Trees:     trees.Trees,
		Stats:     stats.Stats,
		Tiers:     tiers.Tiers,
		Donations: donations.Donations,
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return ds, nil
}

func decode(fsys fs.FS, v validation.SchemaValidator, name, schema string, out any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf(ErrFmtReadSeedFailed, name, err)
	}

	// Validate against schema first
	if err := v.ValidateBytes(data, schema); err != nil {
		return fmt.Errorf(ErrFmtSchemaFailed, name, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf(ErrFmtParseSeedFailed, name, err)
	}
	return nil
}

// Validate checks the rules a JSON schema cannot express
func (d *Dataset) Validate() error {
	treeIDs := make(map[string]bool, len(d.Trees))
	for _, t := range d.Trees {
		if treeIDs[t.ID] {
			return fmt.Errorf(ErrFmtDuplicateID, ErrInvalidDataset, "tree", t.ID)
		}
		treeIDs[t.ID] = true
	}

	tierIDs := make(map[string]bool, len(d.Tiers))
	for _, t := range d.Tiers {
		if tierIDs[t.ID] {
			return fmt.Errorf(ErrFmtDuplicateID, ErrInvalidDataset, "tier", t.ID)
		}
		tierIDs[t.ID] = true
	}

	donationIDs := make(map[string]bool, len(d.Donations))
	for _, dn := range d.Donations {
		if donationIDs[dn.ID] {
			return fmt.Errorf(ErrFmtDuplicateID, ErrInvalidDataset, "donation", dn.ID)
		}
		donationIDs[dn.ID] = true

		if want := domain.TreesForAmount(dn.Amount); dn.TreesPlanted != want {
			return fmt.Errorf(ErrFmtTreesPlantedMismatch, ErrInvalidDataset, dn.ID, dn.TreesPlanted, dn.Amount, want)
		}
	}
	return nil
}

// TierByID returns the tier with the given id
func (d *Dataset) TierByID(id string) (domain.DonationTier, bool) {
	for _, t := range d.Tiers {
		if t.ID == id {
			return t, true
		}
	}
	return domain.DonationTier{}, false
}
