package criteria

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/jobfit/internal/types"
)

func industryProfile(industries ...string) *types.UserProfile {
	return &types.UserProfile{
		Background: types.Background{Industries: industries},
	}
}

func TestScoreIndustryAlignment_ExactMatch(t *testing.T) {
	job := &types.JobPayload{
		Description: "A leading insurtech modernizing claims processing.",
	}

	result := ScoreIndustryAlignment(job, industryProfile("insurance"))
	assert.Equal(t, 50, result.Score)
	assert.Contains(t, result.Rationale, "insurance")
}

func TestScoreIndustryAlignment_Adjacent(t *testing.T) {
	job := &types.JobPayload{
		Description: "We build payments infrastructure for banks.",
	}

	// fintech is adjacent to insurance
	result := ScoreIndustryAlignment(job, industryProfile("insurance"))
	assert.Equal(t, 35, result.Score)
	assert.Contains(t, result.Rationale, "Adjacent")
}

func TestScoreIndustryAlignment_NoOverlap(t *testing.T) {
	job := &types.JobPayload{
		Description: "A freight and supply chain optimization platform.",
	}

	result := ScoreIndustryAlignment(job, industryProfile("healthtech"))
	assert.Equal(t, 20, result.Score)
}

func TestScoreIndustryAlignment_UnknownJobIndustry(t *testing.T) {
	job := &types.JobPayload{Description: "We make great products."}

	result := ScoreIndustryAlignment(job, industryProfile("saas"))
	assert.Equal(t, 25, result.Score)
	assert.True(t, result.MissingData)
}

func TestScoreIndustryAlignment_NoUserIndustries(t *testing.T) {
	job := &types.JobPayload{Description: "A telecom carrier rolling out 5g."}

	result := ScoreIndustryAlignment(job, emptyProfile())
	assert.Equal(t, 25, result.Score)
	assert.True(t, result.MissingData)
	assert.Equal(t, "telecom", result.ActualValue)
}

func TestScoreIndustryAlignment_CompanyNameCounts(t *testing.T) {
	job := &types.JobPayload{Company: "Acme Insurance", Description: "Join our team."}

	result := ScoreIndustryAlignment(job, industryProfile("insurance"))
	assert.Equal(t, 50, result.Score)
}

func TestUserIndustries_FreeText(t *testing.T) {
	categories := userIndustries([]string{"Telecommunications", "B2B Software"})
	assert.Equal(t, []string{"telecom", "saas"}, categories)
}

func TestAdjacent_Symmetric(t *testing.T) {
	assert.True(t, adjacent("telecom", "saas"))
	assert.True(t, adjacent("saas", "telecom"))
	assert.False(t, adjacent("telecom", "healthtech"))
}
