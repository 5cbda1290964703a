package estimator

import (
	"math"

	"hvac-estimator/domain"
)

func ValidateSavingsInput(in domain.SavingsInput) error {
	if !isFinite(in.HeatingCost) || in.HeatingCost < 0 {
		return domain.NewValidationError("heatingCost", "must not be negative")
	}
	if !isFinite(in.CoolingCost) || in.CoolingCost < 0 {
		return domain.NewValidationError("coolingCost", "must not be negative")
	}
	if in.HeatingCost > MaxPeriodCost {
		return domain.NewValidationError("heatingCost", "exceeds supported maximum")
	}
	if in.CoolingCost > MaxPeriodCost {
		return domain.NewValidationError("coolingCost", "exceeds supported maximum")
	}
	if in.CurrentSystemAgeYears < 0 {
		return domain.NewValidationError("currentSystemAgeYears", "must not be negative")
	}
	if in.CurrentSystemAgeYears > MaxSystemAgeYears {
		return domain.NewValidationError("currentSystemAgeYears", "exceeds supported maximum")
	}
	if _, err := domain.ParseSystemType("currentSystemType", string(in.CurrentSystemType)); err != nil {
		return err
	}
	if _, err := domain.ParseSystemType("targetSystemType", string(in.TargetSystemType)); err != nil {
		return err
	}
	if !in.TargetSystemType.IsUpgradeTarget() {
		return domain.NewValidationError("targetSystemType", "not offered as an upgrade")
	}
	return nil
}

// AgeRetention is the fraction of rated efficiency left after ageYears.
func AgeRetention(ageYears int) float64 {
	return math.Max(MinAgeRetention, 1-float64(ageYears)*AgeDepreciationPerYear)
}

// ProjectSavings compares the aged efficiency of the installed system with
// a new target system.
func ProjectSavings(in domain.SavingsInput) (domain.SavingsResult, error) {
	if err := ValidateSavingsInput(in); err != nil {
		return domain.SavingsResult{}, err
	}

	rated, err := lookup("currentEfficiency", currentEfficiencies, in.CurrentSystemType)
	if err != nil {
		return domain.SavingsResult{}, err
	}
	newEff, err := lookup("targetEfficiency", targetEfficiencies, in.TargetSystemType)
	if err != nil {
		return domain.SavingsResult{}, err
	}
	if newEff <= 0 {
		return domain.SavingsResult{}, &domain.TableIntegrityError{Table: "targetEfficiency", Key: string(in.TargetSystemType)}
	}

	currentEff := rated * AgeRetention(in.CurrentSystemAgeYears)
	return projectSavings(in.HeatingCost+in.CoolingCost, currentEff, newEff), nil
}

// projectSavings never reports negative savings: a target that is not more
// efficient than the installed system saves nothing.
func projectSavings(totalCost, currentEff, newEff float64) domain.SavingsResult {
	projected := totalCost * (currentEff / newEff)
	savings := roundTo2Decimals(math.Max(0, totalCost-projected))

	res := domain.SavingsResult{
		CurrentEfficiencyPct:     roundTo1Decimal(currentEff * 100),
		NewEfficiencyPct:         roundTo1Decimal(newEff * 100),
		AnnualSavings:            savings,
		MonthlySavings:           roundTo2Decimals(savings / MonthsPerYear),
		TenYearSavings:           roundTo2Decimals(savings * ProjectionYears),
		AnnualCarbonReductionKg:  roundTo1Decimal(savings * CarbonKgPerCurrency),
		TenYearCarbonReductionKg: roundTo1Decimal(savings * CarbonKgPerCurrency * ProjectionYears),
		InstallationCost:         ReferenceInstallCost,
	}
	if savings > 0 {
		// floor at 0.01 so an applicable payback never reads as the 0 sentinel
		res.PaybackYears = math.Max(0.01, roundTo2Decimals(ReferenceInstallCost/savings))
		res.PaybackApplicable = true
	}
	return res
}
