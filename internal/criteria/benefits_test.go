package criteria

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/jobfit/internal/types"
)

func TestScoreBenefits_PreferredRatio(t *testing.T) {
	profile := &types.UserProfile{
		Preferences: types.Preferences{
			PreferredBenefits: []string{"medical", "401k matching"},
		},
	}
	job := &types.JobPayload{
		FeaturedBenefits: []string{"Medical insurance", "401(k) with match", "Unlimited PTO"},
	}

	result := ScoreBenefits(job, profile)
	assert.Equal(t, 50, result.Score)
	assert.Contains(t, result.Rationale, "2 of 2")
}

func TestScoreBenefits_PartialPreferred(t *testing.T) {
	profile := &types.UserProfile{
		Preferences: types.Preferences{
			PreferredBenefits: []string{"medical", "parental leave"},
		},
	}
	job := &types.JobPayload{FeaturedBenefits: []string{"health insurance"}}

	result := ScoreBenefits(job, profile)
	assert.Equal(t, 25, result.Score)
	assert.Contains(t, result.Rationale, "1 of 2")
}

func TestScoreBenefits_WeightSumWithoutPreferences(t *testing.T) {
	// Medical (12) + retirement (12) detected: (12+12)/2 = 12
	job := &types.JobPayload{
		Description: "We offer health insurance and a 401k retirement plan.",
	}

	result := ScoreBenefits(job, emptyProfile())
	assert.Equal(t, 12, result.Score)
	assert.Equal(t, "medical, retirement", result.ActualValue)
}

func TestScoreBenefits_FeaturedListTakesPriority(t *testing.T) {
	// The featured list says dental only; the description's 401k mention is
	// not consulted when a featured list exists
	job := &types.JobPayload{
		FeaturedBenefits: []string{"Dental coverage"},
		Description:      "Great 401k plan.",
	}

	result := ScoreBenefits(job, emptyProfile())
	assert.Equal(t, "dental", result.ActualValue)
	assert.Equal(t, 3, result.Score)
}

func TestScoreBenefits_NothingToScan(t *testing.T) {
	result := ScoreBenefits(&types.JobPayload{}, emptyProfile())
	assert.Equal(t, 0, result.Score)
	assert.True(t, result.MissingData)
	assert.Equal(t, "none detected", result.ActualValue)
}

func TestScoreBenefits_RichDescriptionCapped(t *testing.T) {
	job := &types.JobPayload{
		Description: `Medical insurance, dental, vision coverage, 401k matching,
unlimited PTO, parental leave, tuition reimbursement, wellness stipend,
life insurance, home office stipend, commuter benefits.`,
	}

	result := ScoreBenefits(job, emptyProfile())
	assert.Equal(t, 41, result.Score) // full catalog weight 82 halved
}

func TestResolveSynonym(t *testing.T) {
	tests := []struct {
		raw     string
		wantKey string
		wantOK  bool
	}{
		{"Comprehensive health coverage", "medical", true},
		{"401(k) with employer match", "retirement", true},
		{"Paid Time Off", "pto", true},
		{"life insurance and AD&D", "life_insurance", true},
		{"free snacks", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			key, ok := resolveSynonym(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantKey, key)
		})
	}
}
