package criteria

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/jonathan/jobfit/internal/skills"
	"github.com/jonathan/jobfit/internal/types"
)

const skillsDescription = "How much of the job's required skill set your core skills cover"

// DefaultDesiredBonus is the share of the required-side shortfall that a
// full desired-skill match can recover.
const DefaultDesiredBonus = 0.2

// SkillMatchDeps carries the matcher, the optional extractor, and tuning for
// the skill criterion. Logger may be nil.
type SkillMatchDeps struct {
	Matcher      *skills.Matcher
	Extractor    skills.Extractor
	Logger       *zap.Logger
	DesiredBonus float64 // 0 disables the desired-skill bonus
}

// ScoreSkillMatch scores skill overlap between the posting and the user's
// core skills. Structured phrase lists on the payload take priority; next
// the optional extractor; finally the deterministic description scan. An
// extractor failure is logged and absorbed, never surfaced.
func ScoreSkillMatch(ctx context.Context, job *types.JobPayload, profile *types.UserProfile, deps SkillMatchDeps) types.CriterionResult {
	result := types.CriterionResult{
		Criteria:    NameSkills,
		Description: skillsDescription,
	}

	matcher := deps.Matcher
	if matcher == nil {
		matcher = skills.NewMatcher(nil, nil, 0)
	}

	userSkills := matcher.Normalizer().Normalize(profile.Background.CoreSkills)
	if len(userSkills) == 0 {
		result.Score = 15
		result.MissingData = true
		result.ActualValue = "no skills in profile"
		result.Rationale = "No core skills declared; cannot assess overlap"
		return result
	}

	if len(job.RequiredSkills) > 0 {
		match := matcher.MatchPhrases(job.RequiredSkills, userSkills)
		desired := matcher.MatchPhrases(job.DesiredSkills, userSkills)
		fillResult(&result, match, desiredBonus(match.Ratio, desired, deps.DesiredBonus))
		return result
	}

	if deps.Extractor != nil {
		extracted, err := deps.Extractor.AnalyzeJobSkills(ctx, job.Description, skills.ExtractOptions{
			JobURL:     job.URL,
			UserSkills: rawSkillNames(userSkills),
		})
		if err == nil && extracted != nil {
			fillResult(&result, skills.MatchResult{
				Matched: extracted.Matched,
				Missing: extracted.Missing,
				Ratio:   extractedRatio(extracted),
			}, 0)
			return result
		}
		if deps.Logger != nil {
			deps.Logger.Warn("skill extractor failed, falling back to keyword matcher", zap.Error(err))
		}
	}

	if job.Description == "" {
		result.Score = 25
		result.MissingData = true
		result.ActualValue = "no description"
		result.Rationale = "No description or skill list to match against"
		return result
	}

	fillResult(&result, matcher.MatchDescription(job.Description, userSkills), 0)
	return result
}

func fillResult(result *types.CriterionResult, match skills.MatchResult, bonus float64) {
	result.MatchedSkills = match.Matched
	result.MissingSkills = match.Missing
	result.Score = roundScore(match.Ratio*MaxCriterionScore + bonus)
	result.ActualValue = fmt.Sprintf("%d of %d skills matched",
		len(match.Matched), len(match.Matched)+len(match.Missing))
	result.Rationale = fmt.Sprintf("Matched %.0f%% of the job's skill set", match.Ratio*100)
	if bonus > 0 {
		result.Rationale += fmt.Sprintf(" (+%.0f desired-skill bonus)", math.Round(bonus))
	}
}

// desiredBonus recovers up to DesiredBonus of the required-side shortfall in
// proportion to the desired-skill ratio.
func desiredBonus(requiredRatio float64, desired skills.MatchResult, factor float64) float64 {
	if factor <= 0 || len(desired.Matched)+len(desired.Missing) == 0 {
		return 0
	}
	shortfall := (1 - requiredRatio) * MaxCriterionScore
	return desired.Ratio * shortfall * factor
}

func extractedRatio(extracted *skills.ExtractedSkills) float64 {
	total := len(extracted.Matched) + len(extracted.Missing)
	if total == 0 {
		return 0
	}
	return float64(len(extracted.Matched)) / float64(total)
}

func rawSkillNames(userSkills []skills.NormalizedSkill) []string {
	names := make([]string, len(userSkills))
	for i, s := range userSkills {
		names[i] = s.Name
	}
	return names
}
