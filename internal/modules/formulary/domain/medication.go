package domain

import (
	"fmt"
	"strings"
)

type Unit string

const (
	UnitMilliliters Unit = "mL"
	UnitPill        Unit = "Pill"
)

// ParseUnit maps user and formulary-file spellings onto the canonical units.
func ParseUnit(raw string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "ml":
		return UnitMilliliters, nil
	case "pill", "pills":
		return UnitPill, nil
	default:
		return "", fmt.Errorf("unsupported unit %q", raw)
	}
}

func (u Unit) Validate() error {
	switch u {
	case UnitMilliliters, UnitPill:
		return nil
	default:
		return fmt.Errorf("unsupported unit %q", string(u))
	}
}

// SentinelName is the placeholder entry shown before a medication is chosen.
// It never carries dose data and never reaches a calculation.
const SentinelName = "Select a Medication"

type Medication struct {
	Name                   string
	DoseRateMgPerKg        float64
	ConcentrationMgPerUnit float64
	Unit                   Unit
}

func Sentinel() Medication {
	return Medication{Name: SentinelName, Unit: UnitMilliliters}
}

func (m Medication) IsSentinel() bool {
	return m.Name == SentinelName
}

func (m Medication) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("medication name is required")
	}
	if m.DoseRateMgPerKg < 0 {
		return fmt.Errorf("dose rate must be non-negative")
	}
	if m.ConcentrationMgPerUnit < 0 {
		return fmt.Errorf("concentration must be non-negative")
	}
	return m.Unit.Validate()
}

// Dosable reports whether the entry carries enough data to compute a dose.
func (m Medication) Dosable() bool {
	return m.DoseRateMgPerKg > 0 && m.ConcentrationMgPerUnit > 0
}

// Builtin returns the built-in catalog in display order. A formulary file may
// shadow these entries by name or append new ones.
func Builtin() []Medication {
	return []Medication{
		{Name: "Toltrazuril", DoseRateMgPerKg: 33, ConcentrationMgPerUnit: 50, Unit: UnitMilliliters},
		{Name: "Panacur (Fenbendazole)", DoseRateMgPerKg: 50, ConcentrationMgPerUnit: 100, Unit: UnitMilliliters},
		{Name: "Doxycycline", DoseRateMgPerKg: 5, ConcentrationMgPerUnit: 50, Unit: UnitPill},
		{Name: "Amoxicillin", DoseRateMgPerKg: 10, ConcentrationMgPerUnit: 50, Unit: UnitMilliliters},
		{Name: "Metronidazole", DoseRateMgPerKg: 15, ConcentrationMgPerUnit: 50, Unit: UnitMilliliters},
		{Name: "Pyrantel Pamoate", DoseRateMgPerKg: 5, ConcentrationMgPerUnit: 50, Unit: UnitMilliliters},
		{Name: "Clavamox", DoseRateMgPerKg: 13.75, ConcentrationMgPerUnit: 62.5, Unit: UnitMilliliters},
	}
}
