package criteria

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/jobfit/internal/types"
)

func experienceProfile(years float64) *types.UserProfile {
	return &types.UserProfile{
		Background: types.Background{YearsOfExperience: fptr(years)},
	}
}

func TestScoreExperienceLevel_ExplicitYears(t *testing.T) {
	tests := []struct {
		name        string
		description string
		userYears   float64
		wantScore   int
	}{
		{"meets requirement", "Requires 5+ years of Go.", 6, 50},
		{"exactly meets", "5 years of experience needed.", 5, 50},
		{"overqualified", "3+ years required.", 10, 45},
		{"within two years", "7 years of backend experience.", 5, 35},
		{"well short", "10+ yrs leading teams.", 4, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := &types.JobPayload{Description: tt.description}
			result := ScoreExperienceLevel(job, experienceProfile(tt.userYears))
			assert.Equal(t, tt.wantScore, result.Score)
		})
	}
}

func TestScoreExperienceLevel_TakesMaxRequirement(t *testing.T) {
	job := &types.JobPayload{
		Description: "3 years with Python, 8+ years of overall engineering experience.",
	}

	result := ScoreExperienceLevel(job, experienceProfile(8))
	assert.Equal(t, 50, result.Score)
	assert.Equal(t, "8+ years required", result.ActualValue)
}

func TestScoreExperienceLevel_SeniorKeyword(t *testing.T) {
	job := &types.JobPayload{Title: "Senior Engineer", Description: "Join us."}

	result := ScoreExperienceLevel(job, experienceProfile(8))
	assert.Equal(t, 45, result.Score)

	result = ScoreExperienceLevel(job, experienceProfile(2))
	assert.Equal(t, 20, result.Score)
}

func TestScoreExperienceLevel_JuniorKeyword(t *testing.T) {
	job := &types.JobPayload{Description: "An entry-level position for recent graduates."}

	result := ScoreExperienceLevel(job, experienceProfile(1))
	assert.Equal(t, 35, result.Score)
}

func TestScoreExperienceLevel_NoSignal(t *testing.T) {
	result := ScoreExperienceLevel(&types.JobPayload{Description: "A role."}, experienceProfile(5))
	assert.Equal(t, 35, result.Score)
	assert.True(t, result.MissingData)
}

func TestScoreExperienceLevel_UserYearsUnknown(t *testing.T) {
	result := ScoreExperienceLevel(&types.JobPayload{Description: "5+ years required."}, emptyProfile())
	assert.Equal(t, 25, result.Score)
	assert.True(t, result.MissingData)
}

func TestMaxRequiredYears(t *testing.T) {
	n, found := maxRequiredYears("needs 5+ years and 10 yrs preferred")
	assert.True(t, found)
	assert.Equal(t, 10, n)

	_, found = maxRequiredYears("no numbers here")
	assert.False(t, found)
}
