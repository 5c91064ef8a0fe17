package criteria

import (
	"fmt"
	"strings"

	"github.com/jonathan/jobfit/internal/types"
)

// Normalized workplace types.
const (
	WorkplaceRemote = "remote"
	WorkplaceHybrid = "hybrid"
	WorkplaceOnSite = "on_site"
)

const workplaceDescription = "Whether the job's workplace arrangement fits your acceptable list"

// NormalizeWorkplace maps free-text workplace descriptions to
// remote|hybrid|on_site. Returns "" when the text carries no signal.
// Hybrid is checked first: "hybrid remote" postings mean hybrid.
func NormalizeWorkplace(raw string) string {
	lower := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case lower == "":
		return ""
	case strings.Contains(lower, "hybrid"):
		return WorkplaceHybrid
	case strings.Contains(lower, "remote") || strings.Contains(lower, "work from home") || strings.Contains(lower, "wfh"):
		return WorkplaceRemote
	case strings.Contains(lower, "on-site") || strings.Contains(lower, "onsite") ||
		strings.Contains(lower, "on site") || strings.Contains(lower, "on_site") ||
		strings.Contains(lower, "in office") ||
		strings.Contains(lower, "in-office") || strings.Contains(lower, "in person") ||
		strings.Contains(lower, "in-person") || strings.Contains(lower, "office-based"):
		return WorkplaceOnSite
	default:
		return ""
	}
}

// ScoreWorkplaceType scores the job's workplace arrangement against the
// user's acceptable and unacceptable lists.
func ScoreWorkplaceType(job *types.JobPayload, profile *types.UserProfile) types.CriterionResult {
	result := types.CriterionResult{
		Criteria:    NameWorkplace,
		Description: workplaceDescription,
	}

	normalized := NormalizeWorkplace(job.WorkplaceType)
	if normalized == "" {
		result.Score = 25
		result.MissingData = true
		result.ActualValue = "unknown"
		result.Rationale = "Workplace type not stated; assuming moderate fit"
		return result
	}
	result.ActualValue = normalized

	if workplaceListContains(profile.Preferences.WorkplaceTypesUnacceptable, normalized) {
		result.Score = 0
		result.Rationale = fmt.Sprintf("%s is on your unacceptable list", normalized)
		return result
	}

	if workplaceListContains(profile.Preferences.WorkplaceTypesAcceptable, normalized) {
		switch normalized {
		case WorkplaceRemote:
			result.Score = 50
		case WorkplaceHybrid:
			result.Score = 35
		default:
			result.Score = 25
		}
		result.Rationale = fmt.Sprintf("%s is on your acceptable list", normalized)
		return result
	}

	result.Score = 20
	result.Rationale = fmt.Sprintf("%s is not on either of your workplace lists", normalized)
	return result
}

func workplaceListContains(list []string, normalized string) bool {
	for _, entry := range list {
		if NormalizeWorkplace(entry) == normalized {
			return true
		}
	}
	return false
}
