package in

import (
	"context"

	"medcalc/internal/modules/formulary/dto"
)

type Usecase interface {
	List(ctx context.Context) ([]dto.MedicationOutput, error)
	Get(ctx context.Context, name string) (dto.MedicationOutput, error)
}
