package dto

type MedicationOutput struct {
	Name                   string
	DoseRateMgPerKg        float64
	ConcentrationMgPerUnit float64
	Unit                   string
}
