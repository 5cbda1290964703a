package estimator

// TablesVersion identifies the revision of the reference data below and of
// the tables in tables.go. Bump it whenever a number changes so stored
// estimates can be traced to the data that produced them.
const TablesVersion = "2024.1"

// Load model.
const (
	HeatingBtuPerSqFt    = 35.0  // BTU/hr per sq ft at the reference ceiling
	CoolingBtuPerSqFt    = 20.0  // BTU/hr per sq ft at the reference ceiling
	ReferenceCeilingFt   = 8.0   // ft
	HeatingBtuPerWindow  = 500.0 // BTU/hr added per window
	CoolingBtuPerWindow  = 300.0 // BTU/hr added per window
	FurnaceSizeIncrement = 5000.0
	AcTonIncrement       = 0.5
	BtuPerTon            = 12000.0
	MaxSquareFootage     = 1_000_000.0
	MaxCeilingHeightFt   = 60.0
	MaxWindowCount       = 10_000
)

// Cost model.
const (
	ResidentialStandardMaxSqFt = 1500.0
	ResidentialMidMaxSqFt      = 3000.0
	CommercialSmallMaxSqFt     = 2000.0
	CommercialMediumMaxSqFt    = 5000.0

	BundleDiscountRate = 0.05

	// Band ends are point*factor, each rounded to the cent separately, so
	// high/low is 1.10/0.90 only to within a cent.
	RangeLowFactor  = 0.90
	RangeHighFactor = 1.10
)

// Savings model.
const (
	AgeDepreciationPerYear = 0.02
	MinAgeRetention        = 0.6
	CarbonKgPerCurrency    = 8.5    // kg CO2 per currency unit saved
	ReferenceInstallCost   = 8000.0 // currency units
	MaxSystemAgeYears      = 100
	MaxPeriodCost          = 1_000_000.0
	MonthsPerYear          = 12.0
	ProjectionYears        = 10.0
)
