package domain

// SavingsInput compares the installed system against an upgrade. Costs are
// period-agnostic: pass annual costs to get annual savings.
type SavingsInput struct {
	HeatingCost           float64    `json:"heatingCost"`
	CoolingCost           float64    `json:"coolingCost"`
	CurrentSystemType     SystemType `json:"currentSystemType"`
	CurrentSystemAgeYears int        `json:"currentSystemAgeYears"`
	TargetSystemType      SystemType `json:"targetSystemType"`
}

type SavingsResult struct {
	CurrentEfficiencyPct     float64 `json:"currentEfficiencyPct"`
	NewEfficiencyPct         float64 `json:"newEfficiencyPct"`
	AnnualSavings            float64 `json:"annualSavings"`
	MonthlySavings           float64 `json:"monthlySavings"`
	TenYearSavings           float64 `json:"tenYearSavings"`
	AnnualCarbonReductionKg  float64 `json:"annualCarbonReductionKg"`
	TenYearCarbonReductionKg float64 `json:"tenYearCarbonReductionKg"`
	InstallationCost         float64 `json:"installationCost"`
	// PaybackYears is 0 when PaybackApplicable is false.
	PaybackYears      float64 `json:"paybackYears"`
	PaybackApplicable bool    `json:"paybackApplicable"`
}
