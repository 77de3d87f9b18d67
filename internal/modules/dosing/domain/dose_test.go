package domain_test

import (
	"testing"

	"medcalc/internal/modules/dosing/domain"
)

func TestComputeDoseConvertsPoundsAndRounds(t *testing.T) {
	t.Parallel()
	dose, unit := domain.ComputeDose(10, 33, 50, domain.UnitMilliliters)
	if dose != 2.99 {
		t.Fatalf("expected 2.99 mL for 10 lbs at 33 mg/kg over 50 mg/mL, got %v", dose)
	}
	if unit != domain.UnitMilliliters {
		t.Fatalf("expected mL, got %s", unit)
	}
}

func TestComputeDosePillUnit(t *testing.T) {
	t.Parallel()
	dose, unit := domain.ComputeDose(6, 5, 50, domain.UnitPill)
	if dose != 0.27 {
		t.Fatalf("expected 0.27 pills for 6 lbs at 5 mg/kg over 50 mg/pill, got %v", dose)
	}
	if unit != domain.UnitPill {
		t.Fatalf("expected pill unit, got %s", unit)
	}
}

func TestComputeDoseDegenerateInputs(t *testing.T) {
	t.Parallel()
	cases := map[string]struct {
		weight, rate, conc float64
	}{
		"zero weight":            {0, 33, 50},
		"negative weight":        {-4, 33, 50},
		"zero rate":              {10, 0, 50},
		"zero concentration":     {10, 33, 0},
		"negative concentration": {10, 33, -50},
	}
	for name, tc := range cases {
		dose, unit := domain.ComputeDose(tc.weight, tc.rate, tc.conc, domain.UnitPill)
		if dose != 0 {
			t.Fatalf("%s: expected zero dose, got %v", name, dose)
		}
		if unit != domain.UnitMilliliters {
			t.Fatalf("%s: degenerate doses report mL, got %s", name, unit)
		}
	}
}

func TestNormalizeUnit(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"":      domain.UnitMilliliters,
		"ml":    domain.UnitMilliliters,
		" ML ":  domain.UnitMilliliters,
		"pill":  domain.UnitPill,
		"Pills": domain.UnitPill,
	}
	for raw, want := range cases {
		got, err := domain.NormalizeUnit(raw)
		if err != nil {
			t.Fatalf("normalize %q: %v", raw, err)
		}
		if got != want {
			t.Fatalf("normalize %q: expected %s, got %s", raw, want, got)
		}
	}
	if _, err := domain.NormalizeUnit("drops"); err == nil {
		t.Fatalf("expected error for unsupported unit")
	}
}

func TestRound2(t *testing.T) {
	t.Parallel()
	cases := map[float64]float64{
		2.9937092:  2.99,
		0.27215519: 0.27,
		-1.014:     -1.01,
		2.554:      2.55,
		0:          0,
	}
	for in, want := range cases {
		if got := domain.Round2(in); got != want {
			t.Fatalf("round %v: expected %v, got %v", in, want, got)
		}
	}
}
