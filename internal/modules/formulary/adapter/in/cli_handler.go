package in

import (
	"context"

	"medcalc/internal/modules/formulary/dto"
	formularyin "medcalc/internal/modules/formulary/port/in"
)

type CLIHandler struct {
	usecase formularyin.Usecase
}

func NewCLIHandler(usecase formularyin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context) ([]dto.MedicationOutput, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Get(ctx context.Context, name string) (dto.MedicationOutput, error) {
	return h.usecase.Get(ctx, name)
}
