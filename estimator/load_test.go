package estimator

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hvac-estimator/domain"
)

func goldenProfile() domain.BuildingProfile {
	return domain.BuildingProfile{
		SquareFootage:   2000,
		CeilingHeightFt: 8,
		InsulationLevel: domain.InsulationAverage,
		WindowCount:     15,
		HomeAgeBracket:  domain.HomeAge2000to10,
		ClimateZone:     domain.ClimateZoneA,
		PropertyType:    domain.PropertyResidential,
	}
}

func TestEstimateLoad_Golden(t *testing.T) {
	res, err := EstimateLoad(goldenProfile())
	require.NoError(t, err)

	// heating: 35 * 2000 * 1.2 + 15*500 = 91,500
	// cooling: 20 * 2000 * 0.9 + 15*300 = 40,500
	assert.Equal(t, 91500.0, res.HeatingLoadBtu)
	assert.Equal(t, 40500.0, res.CoolingLoadBtu)
	assert.Equal(t, 95000.0, res.RecommendedFurnaceBtu)
	assert.Equal(t, 3.5, res.RecommendedAcTons)
	assert.Equal(t, 42000.0, res.RecommendedAcBtu)
	assert.Equal(t, domain.TierStandard, res.EfficiencyTier)
	assert.InDelta(t, 1.2, res.HeatingMultiplier, 1e-9)
	assert.InDelta(t, 0.9, res.CoolingMultiplier, 1e-9)
}

func TestEstimateLoad_DefaultCeiling(t *testing.T) {
	p := goldenProfile()
	p.CeilingHeightFt = 0

	res, err := EstimateLoad(p)
	require.NoError(t, err)
	assert.Equal(t, 91500.0, res.HeatingLoadBtu)
}

func TestEstimateLoad_CeilingScalesVolume(t *testing.T) {
	p := goldenProfile()
	p.WindowCount = 0
	p.CeilingHeightFt = 12

	res, err := EstimateLoad(p)
	require.NoError(t, err)
	assert.Equal(t, 126000.0, res.HeatingLoadBtu) // 35 * 3000 * 1.2
	assert.Equal(t, 54000.0, res.CoolingLoadBtu)  // 20 * 3000 * 0.9
	assert.Equal(t, 130000.0, res.RecommendedFurnaceBtu)
	assert.Equal(t, 4.5, res.RecommendedAcTons)
}

func TestEstimateLoad_ExactIncrementNotBumped(t *testing.T) {
	p := goldenProfile()
	p.ClimateZone = domain.ClimateZoneB
	p.WindowCount = 0

	res, err := EstimateLoad(p)
	require.NoError(t, err)
	assert.Equal(t, 70000.0, res.HeatingLoadBtu)
	assert.Equal(t, 70000.0, res.RecommendedFurnaceBtu)
	assert.Equal(t, 40000.0, res.CoolingLoadBtu)
	assert.Equal(t, 3.5, res.RecommendedAcTons)
}

func TestEstimateLoad_JustAboveIncrementRoundsUp(t *testing.T) {
	tests := []struct {
		name        string
		sqft        float64
		wantHeating float64
		wantCooling float64
		wantFurnace float64
		wantTons    float64
	}{
		// 35 * 1428.58 = 50,000.3 BTU/hr: one 5,000 step above 50,000
		{"heating", 1428.58, 50001, 28572, 55000, 2.5},
		// 20 * 600.01 = 12,000.2 BTU/hr: one half ton above 1 ton
		{"cooling", 600.01, 21001, 12001, 25000, 1.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := goldenProfile()
			p.ClimateZone = domain.ClimateZoneB
			p.WindowCount = 0
			p.SquareFootage = tt.sqft

			res, err := EstimateLoad(p)
			require.NoError(t, err)
			assert.Equal(t, tt.wantHeating, res.HeatingLoadBtu)
			assert.Equal(t, tt.wantCooling, res.CoolingLoadBtu)
			assert.Equal(t, tt.wantFurnace, res.RecommendedFurnaceBtu)
			assert.Equal(t, tt.wantTons, res.RecommendedAcTons)
			assert.GreaterOrEqual(t, res.RecommendedFurnaceBtu, HeatingBtuPerSqFt*tt.sqft)
			assert.GreaterOrEqual(t, res.RecommendedAcBtu, CoolingBtuPerSqFt*tt.sqft)
		})
	}
}

func TestEstimateLoad_EfficiencyTier(t *testing.T) {
	tests := []struct {
		level domain.InsulationLevel
		want  domain.EfficiencyTier
	}{
		{domain.InsulationPoor, domain.TierStandard},
		{domain.InsulationAverage, domain.TierStandard},
		{domain.InsulationGood, domain.TierHighEfficiency},
		{domain.InsulationExcellent, domain.TierHighEfficiency},
	}
	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			p := goldenProfile()
			p.InsulationLevel = tt.level
			res, err := EstimateLoad(p)
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.EfficiencyTier)
		})
	}
}

func TestEstimateLoad_SizingInvariants(t *testing.T) {
	for _, ins := range domain.AllInsulationLevels() {
		for _, age := range domain.AllHomeAges() {
			for _, zone := range domain.AllClimateZones() {
				for _, sqft := range []float64{1, 333.3, 1234, 2750, 9999} {
					for _, windows := range []int{0, 7, 40} {
						p := domain.BuildingProfile{
							SquareFootage:   sqft,
							CeilingHeightFt: 9.5,
							InsulationLevel: ins,
							WindowCount:     windows,
							HomeAgeBracket:  age,
							ClimateZone:     zone,
							PropertyType:    domain.PropertyResidential,
						}
						res, err := EstimateLoad(p)
						require.NoError(t, err)

						assert.GreaterOrEqual(t, res.HeatingLoadBtu, 0.0)
						assert.GreaterOrEqual(t, res.CoolingLoadBtu, 0.0)
						assert.GreaterOrEqual(t, res.RecommendedFurnaceBtu, res.HeatingLoadBtu)
						assert.GreaterOrEqual(t, res.RecommendedAcTons*BtuPerTon, res.CoolingLoadBtu)
						assert.Zero(t, math.Mod(res.RecommendedFurnaceBtu, FurnaceSizeIncrement))
						assert.Zero(t, math.Mod(res.RecommendedAcTons, AcTonIncrement))
						assert.Less(t, res.RecommendedFurnaceBtu-res.HeatingLoadBtu, FurnaceSizeIncrement)
					}
				}
			}
		}
	}
}

func TestEstimateLoad_Monotonic(t *testing.T) {
	t.Run("square footage", func(t *testing.T) {
		prev := domain.LoadResult{}
		for sqft := 100.0; sqft <= 6000; sqft += 137 {
			p := goldenProfile()
			p.SquareFootage = sqft
			res, err := EstimateLoad(p)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, res.HeatingLoadBtu, prev.HeatingLoadBtu)
			assert.GreaterOrEqual(t, res.CoolingLoadBtu, prev.CoolingLoadBtu)
			prev = res
		}
	})

	t.Run("insulation poor to excellent", func(t *testing.T) {
		prev := domain.LoadResult{HeatingLoadBtu: math.MaxFloat64, CoolingLoadBtu: math.MaxFloat64}
		for _, ins := range domain.AllInsulationLevels() {
			p := goldenProfile()
			p.InsulationLevel = ins
			res, err := EstimateLoad(p)
			require.NoError(t, err)
			assert.LessOrEqual(t, res.HeatingLoadBtu, prev.HeatingLoadBtu)
			assert.LessOrEqual(t, res.CoolingLoadBtu, prev.CoolingLoadBtu)
			prev = res
		}
	})

	t.Run("window count", func(t *testing.T) {
		prev := domain.LoadResult{}
		for windows := 0; windows <= 60; windows += 3 {
			p := goldenProfile()
			p.WindowCount = windows
			res, err := EstimateLoad(p)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, res.HeatingLoadBtu, prev.HeatingLoadBtu)
			assert.GreaterOrEqual(t, res.CoolingLoadBtu, prev.CoolingLoadBtu)
			prev = res
		}
	})
}

func TestEstimateLoad_Idempotent(t *testing.T) {
	a, err := EstimateLoad(goldenProfile())
	require.NoError(t, err)
	b, err := EstimateLoad(goldenProfile())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestEstimateLoad_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *domain.BuildingProfile)
		field  string
	}{
		{"zero square footage", func(p *domain.BuildingProfile) { p.SquareFootage = 0 }, "squareFootage"},
		{"negative square footage", func(p *domain.BuildingProfile) { p.SquareFootage = -10 }, "squareFootage"},
		{"NaN square footage", func(p *domain.BuildingProfile) { p.SquareFootage = math.NaN() }, "squareFootage"},
		{"negative ceiling", func(p *domain.BuildingProfile) { p.CeilingHeightFt = -1 }, "ceilingHeightFt"},
		{"negative windows", func(p *domain.BuildingProfile) { p.WindowCount = -1 }, "windowCount"},
		{"unknown insulation", func(p *domain.BuildingProfile) { p.InsulationLevel = "superb" }, "insulationLevel"},
		{"missing home age", func(p *domain.BuildingProfile) { p.HomeAgeBracket = "" }, "homeAgeBracket"},
		{"unknown climate", func(p *domain.BuildingProfile) { p.ClimateZone = "zoneE" }, "climateZone"},
		{"unknown property", func(p *domain.BuildingProfile) { p.PropertyType = "industrial" }, "propertyType"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := goldenProfile()
			tt.mutate(&p)

			res, err := EstimateLoad(p)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Equal(t, domain.LoadResult{}, res)

			var verr *domain.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}
