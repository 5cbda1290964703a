package estimator

import (
	"fmt"

	"hvac-estimator/domain"
)

// Factor is a heating/cooling multiplier pair.
type Factor struct {
	Heating float64
	Cooling float64
}

var insulationFactors = map[domain.InsulationLevel]Factor{
	domain.InsulationPoor:      {Heating: 1.4, Cooling: 1.3},
	domain.InsulationAverage:   {Heating: 1.0, Cooling: 1.0},
	domain.InsulationGood:      {Heating: 0.8, Cooling: 0.85},
	domain.InsulationExcellent: {Heating: 0.65, Cooling: 0.75},
}

var homeAgeFactors = map[domain.HomeAge]Factor{
	domain.HomeAgePre1980:  {Heating: 1.3, Cooling: 1.2},
	domain.HomeAge1980to00: {Heating: 1.15, Cooling: 1.1},
	domain.HomeAge2000to10: {Heating: 1.0, Cooling: 1.0},
	domain.HomeAgePost2010: {Heating: 0.9, Cooling: 0.95},
}

// Colder zones weight heating up and cooling down.
var climateFactors = map[domain.ClimateZone]Factor{
	domain.ClimateZoneA: {Heating: 1.2, Cooling: 0.9},
	domain.ClimateZoneB: {Heating: 1.0, Cooling: 1.0},
	domain.ClimateZoneC: {Heating: 0.9, Cooling: 1.1},
	domain.ClimateZoneD: {Heating: 0.75, Cooling: 1.25},
}

// PriceTiers holds base prices for the three size brackets of a property type.
type PriceTiers struct {
	Small  float64
	Medium float64
	Large  float64
}

var furnacePrices = map[domain.PropertyType]PriceTiers{
	domain.PropertyResidential: {Small: 3500, Medium: 4500, Large: 6000},
	domain.PropertyCommercial:  {Small: 8000, Medium: 15000, Large: 25000},
}

var acPrices = map[domain.PropertyType]PriceTiers{
	domain.PropertyResidential: {Small: 4000, Medium: 5500, Large: 7000},
	domain.PropertyCommercial:  {Small: 10000, Medium: 18000, Large: 30000},
}

// Older systems mean more remediation work on removal.
var ageCostMultipliers = map[domain.AgeBracket]float64{
	domain.AgeBracket0to5:   1.00,
	domain.AgeBracket6to10:  1.05,
	domain.AgeBracket11to15: 1.10,
	domain.AgeBracket16Plus: 1.15,
}

// Rated efficiency of installed systems, before age depreciation.
var currentEfficiencies = map[domain.SystemType]float64{
	domain.SystemOldFurnace:            0.65,
	domain.SystemStandardFurnace:       0.80,
	domain.SystemHighEfficiencyFurnace: 0.95,
	domain.SystemHeatPump:              0.85,
	domain.SystemGeothermal:            0.98,
	domain.SystemVariableSpeed:         0.90,
	domain.SystemCentralAC:             0.78,
}

// Rated efficiency of new installations. Upgrade targets only.
var targetEfficiencies = map[domain.SystemType]float64{
	domain.SystemHighEfficiencyFurnace: 0.97,
	domain.SystemHeatPump:              0.95,
	domain.SystemGeothermal:            0.99,
	domain.SystemVariableSpeed:         0.96,
}

func lookup[K ~string, V any](table string, m map[K]V, key K) (V, error) {
	v, ok := m[key]
	if !ok {
		var zero V
		return zero, &domain.TableIntegrityError{Table: table, Key: string(key)}
	}
	return v, nil
}

func requireKeys[K ~string, V any](table string, m map[K]V, keys []K) error {
	for _, k := range keys {
		if _, err := lookup(table, m, k); err != nil {
			return err
		}
	}
	return nil
}

func requireEfficiencies(table string, m map[domain.SystemType]float64) error {
	for k, v := range m {
		if v <= 0 || v > 1 {
			return fmt.Errorf("%w: %s[%s] = %v outside (0, 1]", domain.ErrTableIntegrity, table, k, v)
		}
	}
	return nil
}

// VerifyTables checks that every reference table covers its whole enum.
func VerifyTables() error {
	checks := []error{
		requireKeys("insulation", insulationFactors, domain.AllInsulationLevels()),
		requireKeys("homeAge", homeAgeFactors, domain.AllHomeAges()),
		requireKeys("climate", climateFactors, domain.AllClimateZones()),
		requireKeys("furnacePrices", furnacePrices, domain.AllPropertyTypes()),
		requireKeys("acPrices", acPrices, domain.AllPropertyTypes()),
		requireKeys("ageCost", ageCostMultipliers, domain.AllAgeBrackets()),
		requireKeys("currentEfficiency", currentEfficiencies, domain.AllSystemTypes()),
		requireKeys("targetEfficiency", targetEfficiencies, domain.UpgradeTargets()),
		requireEfficiencies("currentEfficiency", currentEfficiencies),
		requireEfficiencies("targetEfficiency", targetEfficiencies),
	}
	for _, err := range checks {
		if err != nil {
			return err
		}
	}
	return nil
}
