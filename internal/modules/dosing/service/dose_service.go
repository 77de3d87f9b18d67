package service

import (
	"context"
	"strconv"
	"strings"

	"medcalc/internal/modules/dosing/domain"
	"medcalc/internal/platform/clock"
	apperrors "medcalc/internal/platform/errors"
)

type DoseService struct {
	clock clock.Clock
}

func NewDoseService(clock clock.Clock) *DoseService {
	return &DoseService{clock: clock}
}

// Run doses every weight line against the profile and sums the litter
// total. Blank lines are skipped; unparseable lines are kept as invalid
// results so the whole run never fails over one typo.
func (s *DoseService) Run(_ context.Context, profile domain.Profile, weightsText string) (domain.Run, error) {
	if profile.DoseRateMgPerKg <= 0 || profile.ConcentrationMgPerUnit <= 0 {
		return domain.Run{}, apperrors.ErrZeroDoseParams
	}

	var (
		lines   []domain.Line
		total   float64
		animals int
		number  int
	)
	for _, raw := range strings.Split(weightsText, "\n") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		number++
		weight, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			lines = append(lines, domain.Line{Number: number, Raw: raw, Invalid: true})
			continue
		}
		dose, unit := domain.ComputeDose(weight, profile.DoseRateMgPerKg, profile.ConcentrationMgPerUnit, profile.Unit)
		lines = append(lines, domain.Line{Number: number, Raw: raw, WeightLbs: weight, Dose: dose, Unit: unit})
		total += dose
		if weight > 0 {
			animals++
		}
	}
	if number == 0 {
		return domain.Run{}, apperrors.ErrNoWeights
	}

	return domain.Run{
		Profile:      profile,
		Lines:        lines,
		Total:        domain.Round2(total),
		Unit:         profile.Unit,
		Animals:      animals,
		CalculatedAt: s.clock.Now(),
	}, nil
}
