// Package criteria implements the per-criterion heuristic scorers. Each
// scorer is a pure function of the job payload and user profile, returning a
// bounded CriterionResult. Missing data is never an error: every scorer has
// an explicit default score and sets the missing_data flag instead.
package criteria

import (
	"fmt"
	"math"
	"strings"
)

// Criterion names. The aggregators key their weight tables on these.
const (
	NameSalary      = "Base Salary"
	NameWorkplace   = "Workplace Type"
	NameEquityBonus = "Equity & Bonus"
	NameBenefits    = "Benefits"
	NameLifecycle   = "Business Lifecycle"
	NameStability   = "Org Stability"
	NameUrgency     = "Hiring Urgency"
	NameTitle       = "Title Match"
	NameSkills      = "Skill Match"
	NameIndustry    = "Industry Alignment"
	NameExperience  = "Experience Level"
)

// MaxCriterionScore bounds every criterion score.
const MaxCriterionScore = 50

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > MaxCriterionScore {
		return MaxCriterionScore
	}
	return score
}

func roundScore(score float64) int {
	return clampScore(int(math.Round(score)))
}

// containsAny reports whether any needle occurs in haystack. Both sides are
// compared lower-cased; needles are plain substrings, not word-guarded.
func containsAny(haystack string, needles []string) bool {
	lower := strings.ToLower(haystack)
	for _, needle := range needles {
		if needle == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(needle)) {
			return true
		}
	}
	return false
}

func formatMoney(v float64) string {
	n := int64(math.Round(v))
	s := fmt.Sprintf("%d", n)
	if n < 0 {
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := "$" + strings.Join(parts, ",")
	if n < 0 {
		out = "-" + out
	}
	return out
}
