package criteria

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/jonathan/jobfit/internal/types"
)

const stabilityDescription = "Headcount trend as a proxy for organizational stability"

// growthPercentPattern pulls a signed percentage out of free text like
// "+5% over last 6 months" or "grew 12.5% YoY".
var growthPercentPattern = regexp.MustCompile(`([+-]?\d+(?:\.\d+)?)\s*%`)

var (
	stabilityGrowthKeywords  = []string{"growing team", "doubling", "headcount growth", "expanding the team", "growing rapidly"}
	stabilityDeclineKeywords = []string{"shrinking", "attrition", "headcount reduction", "downsizing", "layoff"}
)

// ScoreOrgStability parses a growth percentage from the headcount-growth
// text and maps it through banded thresholds. With no parseable number it
// falls back to growth/decline keywords in the description.
func ScoreOrgStability(job *types.JobPayload, _ *types.UserProfile) types.CriterionResult {
	result := types.CriterionResult{
		Criteria:    NameStability,
		Description: stabilityDescription,
	}

	if rate, ok := parseGrowthPercent(job.HeadcountGrowth); ok {
		result.Score = growthRateScore(rate)
		result.ActualValue = fmt.Sprintf("%+.1f%% headcount growth", rate)
		result.Rationale = fmt.Sprintf("Headcount trend of %+.1f%%", rate)
		return result
	}

	switch {
	case containsAny(job.Description, stabilityGrowthKeywords):
		result.Score = 40
		result.ActualValue = "growth signals"
		result.Rationale = "No growth figure, but the description signals team growth"
	case containsAny(job.Description, stabilityDeclineKeywords):
		result.Score = 15
		result.ActualValue = "decline signals"
		result.Rationale = "No growth figure, and the description signals contraction"
	default:
		result.Score = 35
		result.MissingData = true
		result.ActualValue = "unknown"
		result.Rationale = "No headcount trend data available"
	}

	return result
}

// parseGrowthPercent extracts the first percentage from the text. Unparseable
// text is treated as absent, never as zero.
func parseGrowthPercent(text string) (float64, bool) {
	match := growthPercentPattern.FindStringSubmatch(text)
	if match == nil {
		return 0, false
	}
	rate, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, false
	}
	return rate, true
}

func growthRateScore(rate float64) int {
	switch {
	case rate >= 15:
		return 50
	case rate >= 10:
		return 45
	case rate >= 5:
		return 40
	case rate >= 0:
		return 35
	case rate > -5:
		return 15
	default:
		return 5
	}
}
