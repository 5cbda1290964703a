package domain

// BuildingProfile describes the structure being sized.
type BuildingProfile struct {
	SquareFootage   float64         `json:"squareFootage"`
	CeilingHeightFt float64         `json:"ceilingHeightFt,omitempty"` // 0 means the 8 ft reference
	InsulationLevel InsulationLevel `json:"insulationLevel"`
	WindowCount     int             `json:"windowCount"`
	HomeAgeBracket  HomeAge         `json:"homeAgeBracket"`
	ClimateZone     ClimateZone     `json:"climateZone"`
	PropertyType    PropertyType    `json:"propertyType"`
}

type LoadResult struct {
	HeatingLoadBtu        float64        `json:"heatingLoadBtu"`
	CoolingLoadBtu        float64        `json:"coolingLoadBtu"`
	RecommendedFurnaceBtu float64        `json:"recommendedFurnaceBtu"`
	RecommendedAcTons     float64        `json:"recommendedAcTons"`
	RecommendedAcBtu      float64        `json:"recommendedAcBtu"`
	EfficiencyTier        EfficiencyTier `json:"efficiencyTier"`
	HeatingMultiplier     float64        `json:"heatingMultiplier"`
	CoolingMultiplier     float64        `json:"coolingMultiplier"`
}
