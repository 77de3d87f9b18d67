package in

import (
	"context"

	"medcalc/internal/modules/dosing/dto"
)

type Usecase interface {
	Calculate(ctx context.Context, input dto.CalcInput) (dto.CalcOutput, error)
}
