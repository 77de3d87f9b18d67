package service

import (
	"context"
	"fmt"
	"strings"

	"medcalc/internal/modules/formulary/domain"
	formularyout "medcalc/internal/modules/formulary/port/out"
	apperrors "medcalc/internal/platform/errors"
)

type CatalogService struct {
	store formularyout.CatalogStore
}

func NewCatalogService(store formularyout.CatalogStore) *CatalogService {
	return &CatalogService{store: store}
}

// List merges the builtin catalog with formulary entries. An entry whose name
// matches a builtin medication shadows it in place; new entries are appended
// in file order. The sentinel cannot be redefined.
func (s *CatalogService) List(ctx context.Context) ([]domain.Medication, error) {
	merged := domain.Builtin()
	if s.store == nil {
		return merged, nil
	}
	extra, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	for _, med := range extra {
		if med.IsSentinel() {
			return nil, fmt.Errorf("formulary cannot redefine %q", domain.SentinelName)
		}
		if err := med.Validate(); err != nil {
			return nil, fmt.Errorf("formulary entry %q: %w", med.Name, err)
		}
		merged = upsert(merged, med)
	}
	return merged, nil
}

// Get resolves a medication by exact name first, then by a case-insensitive
// match. Selecting the sentinel is reported as no selection at all.
func (s *CatalogService) Get(ctx context.Context, name string) (domain.Medication, error) {
	name = strings.TrimSpace(name)
	if strings.EqualFold(name, domain.SentinelName) {
		return domain.Medication{}, apperrors.ErrNoMedicationSelected
	}
	meds, err := s.List(ctx)
	if err != nil {
		return domain.Medication{}, err
	}
	for _, med := range meds {
		if med.Name == name {
			return med, nil
		}
	}
	for _, med := range meds {
		if strings.EqualFold(med.Name, name) {
			return med, nil
		}
	}
	return domain.Medication{}, fmt.Errorf("medication %q: %w", name, apperrors.ErrNotFound)
}

func upsert(meds []domain.Medication, med domain.Medication) []domain.Medication {
	for i := range meds {
		if meds[i].Name == med.Name {
			meds[i] = med
			return meds
		}
	}
	return append(meds, med)
}
