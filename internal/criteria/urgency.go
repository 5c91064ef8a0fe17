package criteria

import (
	"fmt"
	"strings"

	"github.com/jonathan/jobfit/internal/types"
)

const urgencyDescription = "How urgently the company appears to be hiring for this role"

var urgencyKeywords = []string{
	"immediately", "immediate start", "asap", "urgent", "urgently",
	"backfill", "newly created role", "newly created position",
	"start right away", "hit the ground running", "fast-paced hiring",
}

// ScoreHiringUrgency maps the explicit urgency signal when present,
// otherwise falls back to urgency keywords in the description.
func ScoreHiringUrgency(job *types.JobPayload, _ *types.UserProfile) types.CriterionResult {
	result := types.CriterionResult{
		Criteria:    NameUrgency,
		Description: urgencyDescription,
	}

	urgency := strings.ToLower(strings.TrimSpace(job.HiringUrgency))
	switch urgency {
	case "high":
		result.Score = 50
	case "moderate":
		result.Score = 35
	case "low", "exploratory":
		result.Score = 15
	default:
		if containsAny(job.Description, urgencyKeywords) {
			result.Score = 40
			result.ActualValue = "keyword signals"
			result.Rationale = "Description language suggests an urgent hire"
		} else {
			result.Score = 25
			result.MissingData = true
			result.ActualValue = "unknown"
			result.Rationale = "No urgency signal; assuming a standard process"
		}
		return result
	}

	result.ActualValue = urgency
	result.Rationale = fmt.Sprintf("Posting declares %s hiring urgency", urgency)
	return result
}
