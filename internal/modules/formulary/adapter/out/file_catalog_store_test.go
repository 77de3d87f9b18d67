package out_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	formularyout "medcalc/internal/modules/formulary/adapter/out"
	"medcalc/internal/modules/formulary/domain"
)

func writeFormulary(t *testing.T, raw string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "formulary.yaml")
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write formulary: %v", err)
	}
	return path
}

func TestFileCatalogStoreLoadMissingReturnsEmpty(t *testing.T) {
	t.Parallel()
	store := formularyout.NewFileCatalogStore(filepath.Join(t.TempDir(), "absent.yaml"))
	meds, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load formulary: %v", err)
	}
	if len(meds) != 0 {
		t.Fatalf("expected empty formulary, got %d", len(meds))
	}
}

func TestFileCatalogStoreLoadEmptyPathReturnsEmpty(t *testing.T) {
	t.Parallel()
	meds, err := formularyout.NewFileCatalogStore("").Load(context.Background())
	if err != nil {
		t.Fatalf("load formulary: %v", err)
	}
	if len(meds) != 0 {
		t.Fatalf("expected empty formulary, got %d", len(meds))
	}
}

func TestFileCatalogStoreParsesEntries(t *testing.T) {
	t.Parallel()
	path := writeFormulary(t, `medications:
  - name: Ponazuril
    dose_rate_mg_per_kg: 30
    concentration_mg_per_unit: 150
    unit: ml
  - name: Cephalexin
    dose_rate_mg_per_kg: 22
    concentration_mg_per_unit: 250
    unit: pill
`)
	meds, err := formularyout.NewFileCatalogStore(path).Load(context.Background())
	if err != nil {
		t.Fatalf("load formulary: %v", err)
	}
	if len(meds) != 2 {
		t.Fatalf("expected two entries, got %d", len(meds))
	}
	if meds[0].Name != "Ponazuril" || meds[0].Unit != domain.UnitMilliliters {
		t.Fatalf("unexpected first entry %+v", meds[0])
	}
	if meds[1].Unit != domain.UnitPill || meds[1].ConcentrationMgPerUnit != 250 {
		t.Fatalf("unexpected second entry %+v", meds[1])
	}
}

func TestFileCatalogStoreRejectsUnknownField(t *testing.T) {
	t.Parallel()
	path := writeFormulary(t, `medications:
  - name: Ponazuril
    dose_rate_mg_per_kg: 30
    concentration_mg_per_unit: 150
    unit: ml
    color: blue
`)
	if _, err := formularyout.NewFileCatalogStore(path).Load(context.Background()); err == nil {
		t.Fatalf("expected unknown field error")
	}
}

func TestFileCatalogStoreRejectsUnsupportedUnit(t *testing.T) {
	t.Parallel()
	path := writeFormulary(t, `medications:
  - name: Ponazuril
    dose_rate_mg_per_kg: 30
    concentration_mg_per_unit: 150
    unit: drops
`)
	if _, err := formularyout.NewFileCatalogStore(path).Load(context.Background()); err == nil {
		t.Fatalf("expected unsupported unit error")
	}
}
