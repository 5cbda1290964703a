package estimator

import (
	"github.com/shopspring/decimal"

	"hvac-estimator/domain"
)

// ValidateBuildingProfile rejects profiles the load model cannot size.
func ValidateBuildingProfile(p domain.BuildingProfile) error {
	if !isFinite(p.SquareFootage) || p.SquareFootage <= 0 {
		return domain.NewValidationError("squareFootage", "must be positive")
	}
	if p.SquareFootage > MaxSquareFootage {
		return domain.NewValidationError("squareFootage", "exceeds supported maximum")
	}
	if !isFinite(p.CeilingHeightFt) || p.CeilingHeightFt < 0 {
		return domain.NewValidationError("ceilingHeightFt", "must not be negative")
	}
	if p.CeilingHeightFt > MaxCeilingHeightFt {
		return domain.NewValidationError("ceilingHeightFt", "exceeds supported maximum")
	}
	if p.WindowCount < 0 {
		return domain.NewValidationError("windowCount", "must not be negative")
	}
	if p.WindowCount > MaxWindowCount {
		return domain.NewValidationError("windowCount", "exceeds supported maximum")
	}
	if _, err := domain.ParseInsulationLevel(string(p.InsulationLevel)); err != nil {
		return err
	}
	if _, err := domain.ParseHomeAge(string(p.HomeAgeBracket)); err != nil {
		return err
	}
	if _, err := domain.ParseClimateZone(string(p.ClimateZone)); err != nil {
		return err
	}
	if _, err := domain.ParsePropertyType(string(p.PropertyType)); err != nil {
		return err
	}
	return nil
}

// EstimateLoad converts a building profile into heating and cooling loads
// and the equipment sizes that cover them.
func EstimateLoad(p domain.BuildingProfile) (domain.LoadResult, error) {
	if err := ValidateBuildingProfile(p); err != nil {
		return domain.LoadResult{}, err
	}

	ceiling := p.CeilingHeightFt
	if ceiling == 0 {
		ceiling = ReferenceCeilingFt
	}

	factor, err := composeLoadFactors(p)
	if err != nil {
		return domain.LoadResult{}, err
	}

	// Loads are computed in exact decimal so no step can round down.
	volumeScale := decimal.NewFromFloat(p.SquareFootage).
		Mul(decimal.NewFromFloat(ceiling)).
		Div(decimal.NewFromFloat(ReferenceCeilingFt))
	windows := decimal.NewFromInt(int64(p.WindowCount))

	heating := decimal.NewFromFloat(HeatingBtuPerSqFt).Mul(volumeScale).Mul(factor.heating).
		Add(decimal.NewFromFloat(HeatingBtuPerWindow).Mul(windows))
	cooling := decimal.NewFromFloat(CoolingBtuPerSqFt).Mul(volumeScale).Mul(factor.cooling).
		Add(decimal.NewFromFloat(CoolingBtuPerWindow).Mul(windows))

	btuPerTon := decimal.NewFromFloat(BtuPerTon)
	furnace := ceilTo(heating, decimal.NewFromFloat(FurnaceSizeIncrement))
	acBtu := ceilTo(cooling, btuPerTon.Mul(decimal.NewFromFloat(AcTonIncrement)))
	tons := acBtu.Div(btuPerTon)

	return domain.LoadResult{
		HeatingLoadBtu:        heating.Ceil().InexactFloat64(),
		CoolingLoadBtu:        cooling.Ceil().InexactFloat64(),
		RecommendedFurnaceBtu: furnace.InexactFloat64(),
		RecommendedAcTons:     tons.InexactFloat64(),
		RecommendedAcBtu:      acBtu.InexactFloat64(),
		EfficiencyTier:        recommendTier(p.InsulationLevel),
		HeatingMultiplier:     factor.heating.InexactFloat64(),
		CoolingMultiplier:     factor.cooling.InexactFloat64(),
	}, nil
}

type loadFactor struct {
	heating decimal.Decimal
	cooling decimal.Decimal
}

// composeLoadFactors multiplies the insulation, home-age and climate pairs.
func composeLoadFactors(p domain.BuildingProfile) (loadFactor, error) {
	ins, err := lookup("insulation", insulationFactors, p.InsulationLevel)
	if err != nil {
		return loadFactor{}, err
	}
	age, err := lookup("homeAge", homeAgeFactors, p.HomeAgeBracket)
	if err != nil {
		return loadFactor{}, err
	}
	climate, err := lookup("climate", climateFactors, p.ClimateZone)
	if err != nil {
		return loadFactor{}, err
	}
	return loadFactor{
		heating: decimal.NewFromFloat(ins.Heating).Mul(decimal.NewFromFloat(age.Heating)).Mul(decimal.NewFromFloat(climate.Heating)),
		cooling: decimal.NewFromFloat(ins.Cooling).Mul(decimal.NewFromFloat(age.Cooling)).Mul(decimal.NewFromFloat(climate.Cooling)),
	}, nil
}

func recommendTier(level domain.InsulationLevel) domain.EfficiencyTier {
	switch level {
	case domain.InsulationGood, domain.InsulationExcellent:
		return domain.TierHighEfficiency
	default:
		return domain.TierStandard
	}
}
