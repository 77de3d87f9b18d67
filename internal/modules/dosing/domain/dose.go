package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// PoundsToKilograms converts animal weights entered in lbs to the kg
// the dose rates are expressed in.
const PoundsToKilograms = 0.453592

const (
	UnitMilliliters = "mL"
	UnitPill        = "Pill"
)

// NormalizeUnit maps loose unit spellings onto the canonical form.
// An empty string means the caller did not pick one and falls back to mL.
func NormalizeUnit(raw string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return UnitMilliliters, nil
	case "ml":
		return UnitMilliliters, nil
	case "pill", "pills":
		return UnitPill, nil
	default:
		return "", fmt.Errorf("unsupported unit %q", raw)
	}
}

// Profile is the dose rate and concentration a run is calculated against,
// either resolved from the formulary or entered by hand.
type Profile struct {
	Name                   string
	DoseRateMgPerKg        float64
	ConcentrationMgPerUnit float64
	Unit                   string
	Custom                 bool
}

// Line is one weight entry in a run. Invalid lines keep their number so
// the caller can report which animal failed.
type Line struct {
	Number    int
	Raw       string
	WeightLbs float64
	Dose      float64
	Unit      string
	Invalid   bool
}

type Run struct {
	Profile      Profile
	Lines        []Line
	Total        float64
	Unit         string
	Animals      int
	CalculatedAt time.Time
}

// ComputeDose converts a weight in lbs to kg and sizes one dose against
// the given rate and concentration. Non-positive inputs produce a zero
// mL dose rather than an error so a sheet of weights can carry a few
// bad rows without aborting the run.
func ComputeDose(weightLbs, doseRateMgPerKg, concentrationMgPerUnit float64, unit string) (float64, string) {
	weightKg := weightLbs * PoundsToKilograms
	if concentrationMgPerUnit <= 0 || weightKg <= 0 || doseRateMgPerKg <= 0 {
		return 0, UnitMilliliters
	}
	return Round2(weightKg * doseRateMgPerKg / concentrationMgPerUnit), unit
}

// Round2 rounds to two decimals, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
