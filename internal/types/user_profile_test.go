package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserProfile_Unmarshal(t *testing.T) {
	data := []byte(`{
		"preferences": {
			"salary_floor": 150000,
			"salaryTarget": 185000,
			"workplace_types_acceptable": ["remote", "hybrid"],
			"deal_breakers": ["on_site", "less_than_150k_base"],
			"equityPreference": "preferred"
		},
		"background": {
			"targetRoles": ["Director of Analytics"],
			"core_skills": ["python", "sql"],
			"industries": ["insurance"],
			"years_of_experience": 8
		}
	}`)

	var p UserProfile
	require.NoError(t, json.Unmarshal(data, &p))

	require.NotNil(t, p.Preferences.SalaryFloor)
	assert.Equal(t, 150000.0, *p.Preferences.SalaryFloor)
	require.NotNil(t, p.Preferences.SalaryTarget)
	assert.Equal(t, 185000.0, *p.Preferences.SalaryTarget)
	assert.Equal(t, []string{"remote", "hybrid"}, p.Preferences.WorkplaceTypesAcceptable)
	assert.Equal(t, "preferred", p.Preferences.EquityPreference)
	assert.Equal(t, []string{"Director of Analytics"}, p.Background.TargetRoles)
	require.NotNil(t, p.Background.YearsOfExperience)
	assert.Equal(t, 8.0, *p.Background.YearsOfExperience)
}

func TestHasDealBreaker(t *testing.T) {
	p := Preferences{DealBreakers: []string{DealBreakerOnSite, DealBreakerNoEquity}}

	assert.True(t, p.HasDealBreaker(DealBreakerOnSite))
	assert.True(t, p.HasDealBreaker(DealBreakerNoEquity))
	assert.False(t, p.HasDealBreaker(DealBreakerPreRevenue))
	assert.False(t, (&Preferences{}).HasDealBreaker(DealBreakerOnSite))
}
