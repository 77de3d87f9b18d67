package apperrors

import "errors"

var (
	ErrNotFound             = errors.New("not found")
	ErrNoMedicationSelected = errors.New("select a valid medication or enter custom dose data")
	ErrZeroDoseParams       = errors.New("dose rate and/or concentration cannot be zero")
	ErrNoWeights            = errors.New("enter at least one animal weight in lbs")
)
