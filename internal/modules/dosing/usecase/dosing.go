package usecase

import (
	"context"
	"fmt"
	"strings"

	"medcalc/internal/modules/dosing/domain"
	dosingdto "medcalc/internal/modules/dosing/dto"
	dosingin "medcalc/internal/modules/dosing/port/in"
	"medcalc/internal/modules/dosing/service"
	formularyin "medcalc/internal/modules/formulary/port/in"
	apperrors "medcalc/internal/platform/errors"
)

type Interactor struct {
	svc       *service.DoseService
	formulary formularyin.Usecase
}

func NewInteractor(svc *service.DoseService, formulary formularyin.Usecase) dosingin.Usecase {
	return &Interactor{svc: svc, formulary: formulary}
}

func (i *Interactor) Calculate(ctx context.Context, input dosingdto.CalcInput) (dosingdto.CalcOutput, error) {
	profile, err := i.resolveProfile(ctx, input)
	if err != nil {
		return dosingdto.CalcOutput{}, err
	}
	run, err := i.svc.Run(ctx, profile, input.WeightsText)
	if err != nil {
		return dosingdto.CalcOutput{}, err
	}
	return toOutput(run), nil
}

// resolveProfile prefers hand-entered dose values over the medication
// selection; both rate and concentration must be set for the override
// to take effect.
func (i *Interactor) resolveProfile(ctx context.Context, input dosingdto.CalcInput) (domain.Profile, error) {
	if input.CustomDoseRate > 0 && input.CustomConcentration > 0 {
		unit, err := domain.NormalizeUnit(input.CustomUnit)
		if err != nil {
			return domain.Profile{}, err
		}
		return domain.Profile{
			Name:                   "Custom",
			DoseRateMgPerKg:        input.CustomDoseRate,
			ConcentrationMgPerUnit: input.CustomConcentration,
			Unit:                   unit,
			Custom:                 true,
		}, nil
	}

	name := strings.TrimSpace(input.Medication)
	if name == "" {
		return domain.Profile{}, apperrors.ErrNoMedicationSelected
	}
	if i.formulary == nil {
		return domain.Profile{}, fmt.Errorf("formulary usecase is not configured")
	}
	med, err := i.formulary.Get(ctx, name)
	if err != nil {
		return domain.Profile{}, err
	}
	unit, err := domain.NormalizeUnit(med.Unit)
	if err != nil {
		return domain.Profile{}, err
	}
	return domain.Profile{
		Name:                   med.Name,
		DoseRateMgPerKg:        med.DoseRateMgPerKg,
		ConcentrationMgPerUnit: med.ConcentrationMgPerUnit,
		Unit:                   unit,
	}, nil
}

func toOutput(run domain.Run) dosingdto.CalcOutput {
	results := make([]dosingdto.LineResult, 0, len(run.Lines))
	for _, line := range run.Lines {
		result := dosingdto.LineResult{
			Animal:    line.Number,
			Raw:       line.Raw,
			WeightLbs: line.WeightLbs,
			Dose:      line.Dose,
			Unit:      line.Unit,
		}
		if line.Invalid {
			result.Error = fmt.Sprintf("weight %q is not a valid number", line.Raw)
		}
		results = append(results, result)
	}
	return dosingdto.CalcOutput{
		Profile: dosingdto.ProfileOutput{
			Name:                   run.Profile.Name,
			DoseRateMgPerKg:        run.Profile.DoseRateMgPerKg,
			ConcentrationMgPerUnit: run.Profile.ConcentrationMgPerUnit,
			Unit:                   run.Profile.Unit,
			Custom:                 run.Profile.Custom,
		},
		Results:      results,
		Total:        run.Total,
		Unit:         run.Unit,
		Animals:      run.Animals,
		CalculatedAt: run.CalculatedAt,
	}
}
