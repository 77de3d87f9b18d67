package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"medcalc/internal/modules/formulary/domain"
	"medcalc/internal/modules/formulary/service"
	apperrors "medcalc/internal/platform/errors"
)

type fakeStore struct {
	meds []domain.Medication
	err  error
}

func (f *fakeStore) Load(context.Context) ([]domain.Medication, error) {
	return f.meds, f.err
}

func TestListReturnsBuiltinCatalogWithoutStore(t *testing.T) {
	t.Parallel()
	svc := service.NewCatalogService(nil)
	meds, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list catalog: %v", err)
	}
	if len(meds) != len(domain.Builtin()) {
		t.Fatalf("expected builtin catalog, got %d entries", len(meds))
	}
}

func TestListShadowsByNameAndAppendsNewEntries(t *testing.T) {
	t.Parallel()
	store := &fakeStore{meds: []domain.Medication{
		{Name: "Toltrazuril", DoseRateMgPerKg: 20, ConcentrationMgPerUnit: 50, Unit: domain.UnitMilliliters},
		{Name: "Ponazuril", DoseRateMgPerKg: 30, ConcentrationMgPerUnit: 100, Unit: domain.UnitMilliliters},
	}}
	svc := service.NewCatalogService(store)
	meds, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list catalog: %v", err)
	}
	if len(meds) != len(domain.Builtin())+1 {
		t.Fatalf("expected one appended entry, got %d total", len(meds))
	}
	if meds[0].Name != "Toltrazuril" || meds[0].DoseRateMgPerKg != 20 {
		t.Fatalf("expected shadowed toltrazuril in place, got %+v", meds[0])
	}
	last := meds[len(meds)-1]
	if last.Name != "Ponazuril" || last.ConcentrationMgPerUnit != 100 {
		t.Fatalf("expected ponazuril appended, got %+v", last)
	}
}

func TestListRejectsSentinelRedefinition(t *testing.T) {
	t.Parallel()
	store := &fakeStore{meds: []domain.Medication{
		{Name: domain.SentinelName, DoseRateMgPerKg: 1, ConcentrationMgPerUnit: 1, Unit: domain.UnitMilliliters},
	}}
	if _, err := service.NewCatalogService(store).List(context.Background()); err == nil {
		t.Fatalf("sentinel redefinition should fail")
	}
}

func TestListRejectsInvalidEntries(t *testing.T) {
	t.Parallel()
	store := &fakeStore{meds: []domain.Medication{
		{Name: "Broken", DoseRateMgPerKg: -3, ConcentrationMgPerUnit: 50, Unit: domain.UnitMilliliters},
	}}
	if _, err := service.NewCatalogService(store).List(context.Background()); err == nil {
		t.Fatalf("invalid formulary entry should fail the load")
	}
}

func TestListPropagatesStoreFailure(t *testing.T) {
	t.Parallel()
	store := &fakeStore{err: fmt.Errorf("disk gone")}
	if _, err := service.NewCatalogService(store).List(context.Background()); err == nil {
		t.Fatalf("store failure should propagate")
	}
}

func TestGetExactThenCaseInsensitive(t *testing.T) {
	t.Parallel()
	svc := service.NewCatalogService(nil)
	med, err := svc.Get(context.Background(), "Doxycycline")
	if err != nil {
		t.Fatalf("get doxycycline: %v", err)
	}
	if med.Unit != domain.UnitPill {
		t.Fatalf("expected pill unit, got %s", med.Unit)
	}
	med, err = svc.Get(context.Background(), "  clavamox ")
	if err != nil {
		t.Fatalf("case-insensitive get: %v", err)
	}
	if med.Name != "Clavamox" {
		t.Fatalf("expected Clavamox, got %s", med.Name)
	}
}

func TestGetSentinelAndUnknownNames(t *testing.T) {
	t.Parallel()
	svc := service.NewCatalogService(nil)
	if _, err := svc.Get(context.Background(), domain.SentinelName); !errors.Is(err, apperrors.ErrNoMedicationSelected) {
		t.Fatalf("expected no medication selected, got %v", err)
	}
	if _, err := svc.Get(context.Background(), "Ivermectin"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
