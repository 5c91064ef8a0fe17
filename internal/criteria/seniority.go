package criteria

import (
	"fmt"
	"strings"

	"github.com/jonathan/jobfit/internal/types"
)

const titleDescription = "How well the job title matches your target seniority and roles"

// seniorityTiers are tested against the job title in descending order of
// seniority; the first tier matched wins.
var seniorityTiers = []struct {
	score    int
	label    string
	keywords []string
}{
	{50, "executive", []string{"chief ", "cto", "cpo", "coo", "ceo", "vp ", "vp,", "vice president", "svp", "evp"}},
	{45, "head-of", []string{"head of"}},
	{40, "director", []string{"director"}},
	{30, "manager", []string{"manager"}},
}

var titleBonusKeywords = []string{"growth", "revenue"}

// ScoreTitleSeniority scores the job title against seniority keyword tiers,
// falling back to the user's target-role list, with a small bonus for
// growth/revenue-oriented titles.
func ScoreTitleSeniority(job *types.JobPayload, profile *types.UserProfile) types.CriterionResult {
	result := types.CriterionResult{
		Criteria:    NameTitle,
		Description: titleDescription,
		ActualValue: job.Title,
	}

	if strings.TrimSpace(job.Title) == "" {
		result.Score = 20
		result.MissingData = true
		result.ActualValue = "unknown"
		result.Rationale = "No job title supplied"
		return result
	}

	titleLower := strings.ToLower(job.Title)
	matched := false
	for _, tier := range seniorityTiers {
		if containsAny(titleLower, tier.keywords) {
			result.Score = tier.score
			result.Rationale = fmt.Sprintf("Title matches the %s tier", tier.label)
			matched = true
			break
		}
	}

	if !matched {
		if role, ok := matchTargetRole(titleLower, profile.Background.TargetRoles); ok {
			result.Score = 45
			result.Rationale = fmt.Sprintf("Title matches your target role %q", role)
		} else {
			result.Score = 20
			result.Rationale = "Title matches neither a seniority tier nor your target roles"
		}
	}

	if containsAny(titleLower, titleBonusKeywords) {
		result.Score = clampScore(result.Score + 5)
		result.Rationale += "; growth/revenue focus bonus"
	}

	return result
}

func matchTargetRole(titleLower string, targetRoles []string) (string, bool) {
	for _, role := range targetRoles {
		roleLower := strings.ToLower(strings.TrimSpace(role))
		if roleLower == "" {
			continue
		}
		if strings.Contains(titleLower, roleLower) || strings.Contains(roleLower, titleLower) {
			return role, true
		}
	}
	return "", false
}
