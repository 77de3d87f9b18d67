package out

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"medcalc/internal/modules/formulary/domain"
	formularyout "medcalc/internal/modules/formulary/port/out"
)

type formularyFile struct {
	Medications []formularyEntry `yaml:"medications"`
}

type formularyEntry struct {
	Name                   string  `yaml:"name"`
	DoseRateMgPerKg        float64 `yaml:"dose_rate_mg_per_kg"`
	ConcentrationMgPerUnit float64 `yaml:"concentration_mg_per_unit"`
	Unit                   string  `yaml:"unit"`
}

// FileCatalogStore reads extra medications from a YAML formulary file.
// A missing file is the common case and yields an empty list.
type FileCatalogStore struct {
	path string
}

func NewFileCatalogStore(path string) formularyout.CatalogStore {
	return &FileCatalogStore{path: path}
}

func (s *FileCatalogStore) Load(_ context.Context) ([]domain.Medication, error) {
	if s.path == "" {
		return []domain.Medication{}, nil
	}
	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.Medication{}, nil
		}
		return nil, fmt.Errorf("read formulary: %w", err)
	}
	var file formularyFile
	decoder := yaml.NewDecoder(bytes.NewReader(b))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		// The YAML library returns io.EOF for an empty document.
		if errors.Is(err, io.EOF) {
			return []domain.Medication{}, nil
		}
		return nil, fmt.Errorf("decode formulary: %w", err)
	}
	meds := make([]domain.Medication, 0, len(file.Medications))
	for _, entry := range file.Medications {
		unit, err := domain.ParseUnit(entry.Unit)
		if err != nil {
			return nil, fmt.Errorf("formulary entry %q: %w", entry.Name, err)
		}
		meds = append(meds, domain.Medication{
			Name:                   entry.Name,
			DoseRateMgPerKg:        entry.DoseRateMgPerKg,
			ConcentrationMgPerUnit: entry.ConcentrationMgPerUnit,
			Unit:                   unit,
		})
	}
	return meds, nil
}
