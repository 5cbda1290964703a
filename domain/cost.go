package domain

// CostInput asks for a replacement quote. Either SystemAgeBracket or
// SystemAgeYears identifies the age of the system being replaced; the
// bracket wins when both are set.
type CostInput struct {
	PropertyType     PropertyType   `json:"propertyType"`
	SquareFootage    float64        `json:"squareFootage"`
	SystemAgeBracket AgeBracket     `json:"systemAgeBracket,omitempty"`
	SystemAgeYears   *int           `json:"systemAgeYears,omitempty"`
	SystemType       SystemSelector `json:"systemType"`
}

type CostResult struct {
	LowEstimate    float64    `json:"lowEstimate"`
	HighEstimate   float64    `json:"highEstimate"`
	PointEstimate  float64    `json:"pointEstimate"`
	FurnaceBase    float64    `json:"furnaceBase"`
	AcBase         float64    `json:"acBase"`
	AgeBracket     AgeBracket `json:"ageBracket"`
	AgeMultiplier  float64    `json:"ageMultiplier"`
	BundleDiscount float64    `json:"bundleDiscount"`
}
