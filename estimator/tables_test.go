package estimator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hvac-estimator/domain"
)

func TestVerifyTables(t *testing.T) {
	require.NoError(t, VerifyTables())
}

func TestVerifyTables_DetectsGap(t *testing.T) {
	saved := climateFactors[domain.ClimateZoneD]
	delete(climateFactors, domain.ClimateZoneD)
	t.Cleanup(func() { climateFactors[domain.ClimateZoneD] = saved })

	err := VerifyTables()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTableIntegrity)

	// lookups fail loudly instead of defaulting to a neutral multiplier
	p := goldenProfile()
	p.ClimateZone = domain.ClimateZoneD
	_, err = EstimateLoad(p)
	assert.ErrorIs(t, err, domain.ErrTableIntegrity)
}

func TestVerifyTables_DetectsZeroEfficiency(t *testing.T) {
	saved := targetEfficiencies[domain.SystemHeatPump]
	targetEfficiencies[domain.SystemHeatPump] = 0
	t.Cleanup(func() { targetEfficiencies[domain.SystemHeatPump] = saved })

	assert.ErrorIs(t, VerifyTables(), domain.ErrTableIntegrity)

	_, err := ProjectSavings(domain.SavingsInput{
		HeatingCost:       100,
		CurrentSystemType: domain.SystemOldFurnace,
		TargetSystemType:  domain.SystemHeatPump,
	})
	assert.ErrorIs(t, err, domain.ErrTableIntegrity)
}

func TestClimateFactorsOrderedBySeverity(t *testing.T) {
	zones := domain.AllClimateZones()
	for i := 1; i < len(zones); i++ {
		prev, cur := climateFactors[zones[i-1]], climateFactors[zones[i]]
		assert.Greater(t, prev.Heating, cur.Heating)
		assert.Less(t, prev.Cooling, cur.Cooling)
	}
}
