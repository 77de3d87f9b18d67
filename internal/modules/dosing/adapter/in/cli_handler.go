package in

import (
	"context"

	"medcalc/internal/modules/dosing/dto"
	dosingin "medcalc/internal/modules/dosing/port/in"
)

type CLIHandler struct {
	usecase dosingin.Usecase
}

func NewCLIHandler(usecase dosingin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Calculate(ctx context.Context, medication string, customRate, customConcentration float64, customUnit, weightsText string) (dto.CalcOutput, error) {
	return h.usecase.Calculate(ctx, dto.CalcInput{
		Medication:          medication,
		CustomDoseRate:      customRate,
		CustomConcentration: customConcentration,
		CustomUnit:          customUnit,
		WeightsText:         weightsText,
	})
}
