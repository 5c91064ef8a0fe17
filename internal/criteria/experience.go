package criteria

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/jonathan/jobfit/internal/types"
)

const experienceDescription = "How your years of experience compare to what the posting asks for"

// yearsPattern matches "5+ years", "7 yrs", "10 years of experience".
var yearsPattern = regexp.MustCompile(`(?i)\b(\d{1,2})\s*\+?\s*(?:years?|yrs?)\b`)

var (
	seniorKeywords = []string{"senior", "staff engineer", "principal", "seasoned", "extensive experience"}
	juniorKeywords = []string{"junior", "entry-level", "entry level", "early career", "new grad", "recent graduate"}
)

// ScoreExperienceLevel extracts explicit year requirements from the
// description (taking the maximum when several appear) and compares them to
// the user's declared experience. Without an explicit figure it falls back
// to senior/junior keyword presence.
func ScoreExperienceLevel(job *types.JobPayload, profile *types.UserProfile) types.CriterionResult {
	result := types.CriterionResult{
		Criteria:    NameExperience,
		Description: experienceDescription,
	}

	if profile.Background.YearsOfExperience == nil {
		result.Score = 25
		result.MissingData = true
		result.ActualValue = "unknown"
		result.Rationale = "Your years of experience are not set in the profile"
		return result
	}
	years := *profile.Background.YearsOfExperience

	required, found := maxRequiredYears(job.Description)
	if found {
		result.ActualValue = fmt.Sprintf("%d+ years required", required)
		result.Score, result.Rationale = compareYears(years, float64(required))
		return result
	}

	switch {
	case containsAny(job.Title+" "+job.Description, seniorKeywords):
		if years >= 5 {
			result.Score = 45
			result.Rationale = fmt.Sprintf("Senior role and you have %.0f years", years)
		} else {
			result.Score = 20
			result.Rationale = fmt.Sprintf("Senior role but you have %.0f years", years)
		}
		result.ActualValue = "senior-level language"
	case containsAny(job.Title+" "+job.Description, juniorKeywords):
		result.Score = 35
		result.ActualValue = "junior-level language"
		result.Rationale = "Junior-level role; experience unlikely to be a blocker"
	default:
		result.Score = 35
		result.MissingData = true
		result.ActualValue = "unspecified"
		result.Rationale = "No experience requirement found in the posting"
	}

	return result
}

// maxRequiredYears returns the largest explicit year requirement mentioned.
func maxRequiredYears(description string) (int, bool) {
	matches := yearsPattern.FindAllStringSubmatch(description, -1)
	if len(matches) == 0 {
		return 0, false
	}
	max := 0
	for _, m := range matches {
		if n, err := strconv.Atoi(m[1]); err == nil && n > max {
			max = n
		}
	}
	return max, max > 0
}

func compareYears(userYears, required float64) (int, string) {
	switch {
	case userYears >= required+5:
		return 45, fmt.Sprintf("You exceed the %.0f-year requirement by 5+ years; possible overqualification", required)
	case userYears >= required:
		return 50, fmt.Sprintf("You meet the %.0f-year requirement with %.0f years", required, userYears)
	case userYears >= required-2:
		return 35, fmt.Sprintf("You are within 2 years of the %.0f-year requirement", required)
	default:
		return 15, fmt.Sprintf("You are well short of the %.0f-year requirement with %.0f years", required, userYears)
	}
}
