package interpret

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobfit/internal/criteria"
	"github.com/jonathan/jobfit/internal/types"
)

func fit(results ...types.CriterionResult) types.FitResult {
	return types.FitResult{Breakdown: results}
}

func TestGenerate_StrengthsAndConcerns(t *testing.T) {
	jobToUser := fit(
		types.CriterionResult{Criteria: criteria.NameSalary, Score: 50},
		types.CriterionResult{Criteria: criteria.NameWorkplace, Score: 10},
	)
	userToJob := fit(
		types.CriterionResult{Criteria: criteria.NameSkills, Score: 33},
	)

	got := Generate(jobToUser, userToJob, 62, types.ModerateFit)

	assert.Contains(t, got.Summary, "62/100")
	assert.Contains(t, got.Summary, "moderate fit")
	assert.Contains(t, got.Summary, "strong on Base Salary")
	assert.Contains(t, got.Summary, "Workplace Type")
	assert.Equal(t, "Consider applying", got.Action)
	require.NotEmpty(t, got.Questions)
	assert.Contains(t, got.Questions[0], "workplace arrangement")
}

func TestGenerate_MissingDataNeverAStrength(t *testing.T) {
	jobToUser := fit(
		types.CriterionResult{Criteria: criteria.NameStability, Score: 45, MissingData: true},
	)

	got := Generate(jobToUser, fit(), 45, types.WeakFit)

	assert.NotContains(t, got.Summary, "strong on")
}

func TestGenerate_QuestionCap(t *testing.T) {
	jobToUser := fit(
		types.CriterionResult{Criteria: criteria.NameSalary, Score: 5},
		types.CriterionResult{Criteria: criteria.NameWorkplace, Score: 0},
		types.CriterionResult{Criteria: criteria.NameLifecycle, Score: 15},
		types.CriterionResult{Criteria: criteria.NameStability, Score: 5},
		types.CriterionResult{Criteria: criteria.NameBenefits, Score: 0},
	)

	got := Generate(jobToUser, fit(), 10, types.PoorFit)

	assert.Len(t, got.Questions, maxQuestions)
}

func TestGenerate_GenericQuestionFillsRoom(t *testing.T) {
	got := Generate(fit(), fit(), 85, types.StrongFit)

	assert.Equal(t, "Apply now", got.Action)
	require.Len(t, got.Questions, 1)
	assert.Contains(t, got.Questions[0], "interview process")
}

func TestGenerate_ActionPerLabel(t *testing.T) {
	tests := []struct {
		label types.OverallLabel
		want  string
	}{
		{types.StrongFit, "Apply now"},
		{types.GoodFit, "Apply"},
		{types.ModerateFit, "Consider applying"},
		{types.WeakFit, "Deprioritize"},
		{types.PoorFit, "Skip"},
	}
	for _, tt := range tests {
		got := Generate(fit(), fit(), 0, tt.label)
		assert.Equal(t, tt.want, got.Action, string(tt.label))
	}
}

func TestGenerateRejection(t *testing.T) {
	got := GenerateRejection("The role is on-site and you declared on-site work a deal-breaker")

	assert.Equal(t, "Reject", got.Action)
	assert.Contains(t, got.Summary, "Rejected on a deal-breaker")
	assert.Contains(t, got.Summary, "on-site")
	require.Len(t, got.Questions, 1)
}

func TestJoinNames(t *testing.T) {
	assert.Equal(t, "", joinNames(nil))
	assert.Equal(t, "Salary", joinNames([]string{"Salary"}))
	assert.Equal(t, "Salary and Skill Match", joinNames([]string{"Salary", "Skill Match"}))
	assert.Equal(t, "A, B, and C", joinNames([]string{"A", "B", "C"}))
}
