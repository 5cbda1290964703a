package domain

import "fmt"

type InsulationLevel string

const (
	InsulationPoor      InsulationLevel = "poor"
	InsulationAverage   InsulationLevel = "average"
	InsulationGood      InsulationLevel = "good"
	InsulationExcellent InsulationLevel = "excellent"
)

// AllInsulationLevels lists levels from worst to best.
func AllInsulationLevels() []InsulationLevel {
	return []InsulationLevel{InsulationPoor, InsulationAverage, InsulationGood, InsulationExcellent}
}

func ParseInsulationLevel(s string) (InsulationLevel, error) {
	return parseEnum("insulationLevel", s, AllInsulationLevels())
}

func (v *InsulationLevel) UnmarshalText(b []byte) error {
	return unmarshalEnum(v, "insulationLevel", b, AllInsulationLevels())
}

type HomeAge string

const (
	HomeAgePre1980  HomeAge = "pre1980"
	HomeAge1980to00 HomeAge = "1980-2000"
	HomeAge2000to10 HomeAge = "2000-2010"
	HomeAgePost2010 HomeAge = "post2010"
)

// AllHomeAges lists brackets from oldest to newest.
func AllHomeAges() []HomeAge {
	return []HomeAge{HomeAgePre1980, HomeAge1980to00, HomeAge2000to10, HomeAgePost2010}
}

func ParseHomeAge(s string) (HomeAge, error) {
	return parseEnum("homeAgeBracket", s, AllHomeAges())
}

func (v *HomeAge) UnmarshalText(b []byte) error {
	return unmarshalEnum(v, "homeAgeBracket", b, AllHomeAges())
}

// ClimateZone orders regions from the most heating-dominated (A) to the
// most cooling-dominated (D).
type ClimateZone string

const (
	ClimateZoneA ClimateZone = "zoneA"
	ClimateZoneB ClimateZone = "zoneB"
	ClimateZoneC ClimateZone = "zoneC"
	ClimateZoneD ClimateZone = "zoneD"
)

func AllClimateZones() []ClimateZone {
	return []ClimateZone{ClimateZoneA, ClimateZoneB, ClimateZoneC, ClimateZoneD}
}

func ParseClimateZone(s string) (ClimateZone, error) {
	return parseEnum("climateZone", s, AllClimateZones())
}

func (v *ClimateZone) UnmarshalText(b []byte) error {
	return unmarshalEnum(v, "climateZone", b, AllClimateZones())
}

type PropertyType string

const (
	PropertyResidential PropertyType = "residential"
	PropertyCommercial  PropertyType = "commercial"
)

func AllPropertyTypes() []PropertyType {
	return []PropertyType{PropertyResidential, PropertyCommercial}
}

func ParsePropertyType(s string) (PropertyType, error) {
	return parseEnum("propertyType", s, AllPropertyTypes())
}

func (v *PropertyType) UnmarshalText(b []byte) error {
	return unmarshalEnum(v, "propertyType", b, AllPropertyTypes())
}

// AgeBracket groups the age of the system being replaced.
type AgeBracket string

const (
	AgeBracket0to5   AgeBracket = "0-5"
	AgeBracket6to10  AgeBracket = "6-10"
	AgeBracket11to15 AgeBracket = "11-15"
	AgeBracket16Plus AgeBracket = "16+"
)

func AllAgeBrackets() []AgeBracket {
	return []AgeBracket{AgeBracket0to5, AgeBracket6to10, AgeBracket11to15, AgeBracket16Plus}
}

func ParseAgeBracket(s string) (AgeBracket, error) {
	return parseEnum("systemAgeBracket", s, AllAgeBrackets())
}

func (v *AgeBracket) UnmarshalText(b []byte) error {
	return unmarshalEnum(v, "systemAgeBracket", b, AllAgeBrackets())
}

// AgeBracketForYears maps a whole number of years onto its bracket.
func AgeBracketForYears(years int) (AgeBracket, error) {
	switch {
	case years < 0:
		return "", NewValidationError("systemAgeYears", "must not be negative")
	case years <= 5:
		return AgeBracket0to5, nil
	case years <= 10:
		return AgeBracket6to10, nil
	case years <= 15:
		return AgeBracket11to15, nil
	default:
		return AgeBracket16Plus, nil
	}
}

// SystemSelector chooses which equipment a replacement quote covers.
type SystemSelector string

const (
	SelectFurnace SystemSelector = "furnace"
	SelectAC      SystemSelector = "ac"
	SelectBoth    SystemSelector = "both"
)

func AllSystemSelectors() []SystemSelector {
	return []SystemSelector{SelectFurnace, SelectAC, SelectBoth}
}

func ParseSystemSelector(s string) (SystemSelector, error) {
	return parseEnum("systemType", s, AllSystemSelectors())
}

func (v *SystemSelector) UnmarshalText(b []byte) error {
	return unmarshalEnum(v, "systemType", b, AllSystemSelectors())
}

// SystemType is an installed or proposed heating/cooling system.
type SystemType string

const (
	SystemOldFurnace            SystemType = "old-furnace"
	SystemStandardFurnace       SystemType = "standard-furnace"
	SystemHighEfficiencyFurnace SystemType = "high-efficiency-furnace"
	SystemHeatPump              SystemType = "heat-pump"
	SystemGeothermal            SystemType = "geothermal"
	SystemVariableSpeed         SystemType = "variable-speed"
	SystemCentralAC             SystemType = "central-ac"
)

// AllSystemTypes lists every system a customer may currently have.
func AllSystemTypes() []SystemType {
	return []SystemType{
		SystemOldFurnace,
		SystemStandardFurnace,
		SystemHighEfficiencyFurnace,
		SystemHeatPump,
		SystemGeothermal,
		SystemVariableSpeed,
		SystemCentralAC,
	}
}

// UpgradeTargets lists the systems offered as replacements.
func UpgradeTargets() []SystemType {
	return []SystemType{
		SystemHighEfficiencyFurnace,
		SystemHeatPump,
		SystemGeothermal,
		SystemVariableSpeed,
	}
}

// ParseSystemType reports failures against field, since several inputs
// carry a SystemType.
func ParseSystemType(field, s string) (SystemType, error) {
	return parseEnum(field, s, AllSystemTypes())
}

func (v *SystemType) UnmarshalText(b []byte) error {
	return unmarshalEnum(v, "systemType", b, AllSystemTypes())
}

// IsUpgradeTarget reports whether t may be quoted as a replacement.
func (t SystemType) IsUpgradeTarget() bool {
	for _, u := range UpgradeTargets() {
		if u == t {
			return true
		}
	}
	return false
}

type EfficiencyTier string

const (
	TierStandard       EfficiencyTier = "standard"
	TierHighEfficiency EfficiencyTier = "high-efficiency"
)

func parseEnum[T ~string](field, s string, allowed []T) (T, error) {
	for _, a := range allowed {
		if string(a) == s {
			return a, nil
		}
	}
	var zero T
	return zero, NewValidationError(field, fmt.Sprintf("unknown value %q (allowed: %v)", s, allowed))
}

func unmarshalEnum[T ~string](dst *T, field string, b []byte, allowed []T) error {
	v, err := parseEnum(field, string(b), allowed)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}
