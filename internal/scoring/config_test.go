package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobfit/internal/criteria"
	"github.com/jonathan/jobfit/internal/types"
)

func TestDefaultConfig_Validates(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestValidate_WeightSum(t *testing.T) {
	cfg := DefaultConfig()
	cfg.JobToUserWeights[criteria.NameSalary] = 0.5

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sum to")
}

func TestValidate_MissingCriterion(t *testing.T) {
	cfg := DefaultConfig()
	delete(cfg.UserToJobWeights, criteria.NameIndustry)

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 4")
}

func TestValidate_UnknownCriterionRejected(t *testing.T) {
	cfg := DefaultConfig()
	delete(cfg.UserToJobWeights, criteria.NameIndustry)
	cfg.UserToJobWeights["Astrology"] = 0.15

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing criterion")
}

func TestValidate_NegativeWeight(t *testing.T) {
	cfg := DefaultConfig()
	cfg.UserToJobWeights[criteria.NameSkills] = -0.1
	cfg.UserToJobWeights[criteria.NameTitle] = 0.75

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative weight")
}

func TestValidate_ThresholdOrdering(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GoodFitMin = 85

	assert.Error(t, cfg.Validate())
}

func TestOverallLabelFor(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		score int
		want  types.OverallLabel
	}{
		{100, types.StrongFit},
		{80, types.StrongFit},
		{79, types.GoodFit},
		{70, types.GoodFit},
		{69, types.ModerateFit},
		{50, types.ModerateFit},
		{49, types.WeakFit},
		{30, types.WeakFit},
		{29, types.PoorFit},
		{0, types.PoorFit},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, cfg.OverallLabelFor(tt.score), "score %d", tt.score)
	}
}

func TestFitLabelFor(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, types.FitGood, cfg.fitLabelFor(40))
	assert.Equal(t, types.FitModerate, cfg.fitLabelFor(39))
	assert.Equal(t, types.FitModerate, cfg.fitLabelFor(25))
	assert.Equal(t, types.FitWeak, cfg.fitLabelFor(24))
}
