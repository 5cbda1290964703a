package estimator

import (
	"hvac-estimator/domain"
)

// ResolveAgeBracket picks the explicit bracket if given, otherwise derives
// it from SystemAgeYears.
func ResolveAgeBracket(in domain.CostInput) (domain.AgeBracket, error) {
	if in.SystemAgeBracket != "" {
		return domain.ParseAgeBracket(string(in.SystemAgeBracket))
	}
	if in.SystemAgeYears == nil {
		return "", domain.NewValidationError("systemAgeBracket", "either systemAgeBracket or systemAgeYears is required")
	}
	return domain.AgeBracketForYears(*in.SystemAgeYears)
}

func ValidateCostInput(in domain.CostInput) error {
	if _, err := domain.ParsePropertyType(string(in.PropertyType)); err != nil {
		return err
	}
	if !isFinite(in.SquareFootage) || in.SquareFootage <= 0 {
		return domain.NewValidationError("squareFootage", "must be positive")
	}
	if in.SquareFootage > MaxSquareFootage {
		return domain.NewValidationError("squareFootage", "exceeds supported maximum")
	}
	if _, err := domain.ParseSystemSelector(string(in.SystemType)); err != nil {
		return err
	}
	if _, err := ResolveAgeBracket(in); err != nil {
		return err
	}
	return nil
}

// EstimateCost prices a replacement as a fixed ±10% band around the
// age-adjusted (and, for bundles, discounted) base price.
func EstimateCost(in domain.CostInput) (domain.CostResult, error) {
	if err := ValidateCostInput(in); err != nil {
		return domain.CostResult{}, err
	}
	bracket, err := ResolveAgeBracket(in)
	if err != nil {
		return domain.CostResult{}, err
	}

	var furnaceBase, acBase float64
	if in.SystemType == domain.SelectFurnace || in.SystemType == domain.SelectBoth {
		if furnaceBase, err = basePrice("furnacePrices", furnacePrices, in.PropertyType, in.SquareFootage); err != nil {
			return domain.CostResult{}, err
		}
	}
	if in.SystemType == domain.SelectAC || in.SystemType == domain.SelectBoth {
		if acBase, err = basePrice("acPrices", acPrices, in.PropertyType, in.SquareFootage); err != nil {
			return domain.CostResult{}, err
		}
	}

	ageMultiplier, err := lookup("ageCost", ageCostMultipliers, bracket)
	if err != nil {
		return domain.CostResult{}, err
	}

	point := (furnaceBase + acBase) * ageMultiplier
	discount := 0.0
	if in.SystemType == domain.SelectBoth {
		discount = point * BundleDiscountRate
		point -= discount
	}

	return domain.CostResult{
		LowEstimate:    roundTo2Decimals(point * RangeLowFactor),
		HighEstimate:   roundTo2Decimals(point * RangeHighFactor),
		PointEstimate:  roundTo2Decimals(point),
		FurnaceBase:    furnaceBase,
		AcBase:         acBase,
		AgeBracket:     bracket,
		AgeMultiplier:  ageMultiplier,
		BundleDiscount: roundTo2Decimals(discount),
	}, nil
}

// basePrice selects the size tier. Boundaries belong to the lower tier.
func basePrice(table string, prices map[domain.PropertyType]PriceTiers, pt domain.PropertyType, sqft float64) (float64, error) {
	tiers, err := lookup(table, prices, pt)
	if err != nil {
		return 0, err
	}
	smallMax, mediumMax := ResidentialStandardMaxSqFt, ResidentialMidMaxSqFt
	if pt == domain.PropertyCommercial {
		smallMax, mediumMax = CommercialSmallMaxSqFt, CommercialMediumMaxSqFt
	}
	switch {
	case sqft <= smallMax:
		return tiers.Small, nil
	case sqft <= mediumMax:
		return tiers.Medium, nil
	default:
		return tiers.Large, nil
	}
}
