package usecase

import (
	"context"

	"medcalc/internal/modules/formulary/domain"
	"medcalc/internal/modules/formulary/dto"
	formularyin "medcalc/internal/modules/formulary/port/in"
	"medcalc/internal/modules/formulary/service"
)

type Interactor struct {
	svc *service.CatalogService
}

func NewInteractor(svc *service.CatalogService) formularyin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) List(ctx context.Context) ([]dto.MedicationOutput, error) {
	meds, err := i.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MedicationOutput, 0, len(meds))
	for _, med := range meds {
		out = append(out, toOutput(med))
	}
	return out, nil
}

func (i *Interactor) Get(ctx context.Context, name string) (dto.MedicationOutput, error) {
	med, err := i.svc.Get(ctx, name)
	if err != nil {
		return dto.MedicationOutput{}, err
	}
	return toOutput(med), nil
}

func toOutput(med domain.Medication) dto.MedicationOutput {
	return dto.MedicationOutput{
		Name:                   med.Name,
		DoseRateMgPerKg:        med.DoseRateMgPerKg,
		ConcentrationMgPerUnit: med.ConcentrationMgPerUnit,
		Unit:                   string(med.Unit),
	}
}
