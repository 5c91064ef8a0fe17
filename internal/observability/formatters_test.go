package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/jobfit/internal/types"
)

func sampleResult() *types.ScoreResult {
	return &types.ScoreResult{
		ScoreID:      "score-1",
		OverallScore: 72,
		OverallLabel: types.GoodFit,
		JobToUserFit: types.FitResult{
			Score: 38,
			Label: types.FitGood,
			Breakdown: []types.CriterionResult{
				{Criteria: "Base Salary", Score: 50, Rationale: "Max salary meets target"},
				{Criteria: "Benefits", Score: 12, Rationale: "Limited benefits found", MissingData: false},
			},
		},
		UserToJobFit: types.FitResult{
			Score: 34,
			Label: types.FitGood,
			Breakdown: []types.CriterionResult{
				{
					Criteria:      "Skill Match",
					Score:         33,
					Rationale:     "Matched 2 of 3 core skills",
					MatchedSkills: []string{"python", "sql"},
					MissingSkills: []string{"tableau"},
				},
			},
		},
		Interpretation: types.Interpretation{
			Summary:   "Good fit with strong salary alignment.",
			Action:    "Worth applying",
			Questions: []string{"What does the onboarding plan look like?"},
		},
	}
}

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResult(sampleResult())
	output := buf.String()

	assert.Contains(t, output, "FIT SCORE")
	assert.Contains(t, output, "72 / 100")
	assert.Contains(t, output, "GOOD FIT")
	assert.Contains(t, output, "JOB → USER FIT")
	assert.Contains(t, output, "Base Salary")
	assert.Contains(t, output, "USER → JOB FIT")
	assert.Contains(t, output, "matched: python, sql")
	assert.Contains(t, output, "missing: tableau")
	assert.Contains(t, output, "INTERPRETATION")
	assert.Contains(t, output, "Worth applying")
}

func TestPrintResult_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResult(nil)

	assert.Empty(t, buf.String())
}

func TestPrintResult_DealBreaker(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := sampleResult()
	result.OverallLabel = types.HardNo
	result.DealBreakerTriggered = "on_site"

	p.PrintResult(result)
	output := buf.String()

	assert.Contains(t, output, "HARD NO")
	assert.Contains(t, output, "Deal-breaker: on_site")
}

func TestPrintResult_MissingDataFlag(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := sampleResult()
	result.JobToUserFit.Breakdown[1].MissingData = true

	p.PrintResult(result)

	assert.Contains(t, buf.String(), "(missing data)")
}

func TestPrintResult_BoxLinesBounded(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := sampleResult()
	result.JobToUserFit.Breakdown[0].Rationale = strings.Repeat("very long rationale ", 10)

	p.PrintResult(result)

	for _, line := range strings.Split(buf.String(), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth+2, "line overflows box: %q", line)
	}
}

func TestJoinCapped(t *testing.T) {
	assert.Equal(t, "a, b", joinCapped([]string{"a", "b"}))
	assert.Equal(t, "a, b, c, d, e ... and 2 more",
		joinCapped([]string{"a", "b", "c", "d", "e", "f", "g"}))
}
