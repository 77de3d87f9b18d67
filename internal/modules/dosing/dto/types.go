package dto

import "time"

// CalcInput carries everything one calculation needs. Custom dose
// values win over the medication selection when both rate and
// concentration are set.
type CalcInput struct {
	Medication          string
	CustomDoseRate      float64
	CustomConcentration float64
	CustomUnit          string
	WeightsText         string
}

type ProfileOutput struct {
	Name                   string
	DoseRateMgPerKg        float64
	ConcentrationMgPerUnit float64
	Unit                   string
	Custom                 bool
}

// LineResult is one animal's dose, or the reason its weight line was
// skipped. Error is empty for good lines.
type LineResult struct {
	Animal    int
	Raw       string
	WeightLbs float64
	Dose      float64
	Unit      string
	Error     string
}

type CalcOutput struct {
	Profile      ProfileOutput
	Results      []LineResult
	Total        float64
	Unit         string
	Animals      int
	CalculatedAt time.Time
}
