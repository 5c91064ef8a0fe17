package criteria

import "github.com/jonathan/jobfit/internal/types"

const equityDescription = "Whether the posting mentions equity and performance bonus"

// ScoreEquityBonus counts which of {bonus, equity} the posting mentions and
// maps the count to {0, 25, 50}. Nil flags mean the signal is unknown, not
// absent; both unknown marks the criterion as missing data.
func ScoreEquityBonus(job *types.JobPayload, _ *types.UserProfile) types.CriterionResult {
	result := types.CriterionResult{
		Criteria:    NameEquityBonus,
		Description: equityDescription,
	}

	mentioned := 0
	if job.BonusMentioned != nil && *job.BonusMentioned {
		mentioned++
	}
	if job.EquityMentioned != nil && *job.EquityMentioned {
		mentioned++
	}

	switch mentioned {
	case 2:
		result.Score = 50
		result.ActualValue = "equity and bonus"
		result.Rationale = "Both equity and bonus are mentioned"
	case 1:
		result.Score = 25
		if job.EquityMentioned != nil && *job.EquityMentioned {
			result.ActualValue = "equity only"
			result.Rationale = "Equity is mentioned, bonus is not"
		} else {
			result.ActualValue = "bonus only"
			result.Rationale = "Bonus is mentioned, equity is not"
		}
	default:
		result.Score = 0
		result.ActualValue = "none"
		result.Rationale = "Neither equity nor bonus is mentioned"
	}

	if job.BonusMentioned == nil && job.EquityMentioned == nil {
		result.MissingData = true
		result.ActualValue = "unknown"
		result.Rationale = "No equity or bonus signal in the posting"
	}

	return result
}
