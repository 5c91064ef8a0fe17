// Package interpret derives the human-readable reading of a score: a short
// summary, a recommended action, and follow-up questions worth asking.
package interpret

import (
	"fmt"
	"strings"

	"github.com/jonathan/jobfit/internal/criteria"
	"github.com/jonathan/jobfit/internal/types"
)

const (
	strengthMin  = 45 // criteria scoring at or above this count as strengths
	concernMax   = 20 // criteria scoring at or below this count as concerns
	maxQuestions = 3
)

// actionForLabel maps each overall label to its action tier. Deriving the
// action from the already-computed label keeps the interpreter's tiers in
// lock-step with the combiner's threshold table.
var actionForLabel = map[types.OverallLabel]string{
	types.StrongFit:   "Apply now",
	types.GoodFit:     "Apply",
	types.ModerateFit: "Consider applying",
	types.WeakFit:     "Deprioritize",
	types.PoorFit:     "Skip",
	types.HardNo:      "Reject",
}

// concernQuestions maps criterion names to a targeted follow-up question.
var concernQuestions = map[string]string{
	criteria.NameSalary:     "Is there flexibility on the posted compensation range?",
	criteria.NameWorkplace:  "Is there any flexibility on the workplace arrangement?",
	criteria.NameSkills:     "Which of the missing skills are hard blockers versus learnable on the job?",
	criteria.NameLifecycle:  "How is the business funded and what is the runway?",
	criteria.NameStability:  "How has the team's headcount changed over the last year?",
	criteria.NameExperience: "Would the team consider a candidate slightly outside the stated experience range?",
	criteria.NameBenefits:   "Can the recruiter share the full benefits summary?",
}

// genericQuestions by action tier, asked when concern-specific questions
// leave room.
var genericQuestions = map[string]string{
	"Apply now":         "What does the interview process look like and how fast can it move?",
	"Apply":             "What would success in the first six months look like?",
	"Consider applying": "What stands out about this role compared to your other options?",
	"Deprioritize":      "Is anything about this role compelling enough to revisit later?",
	"Skip":              "Should postings like this be filtered out of future searches?",
}

// Generate composes the interpretation from both breakdowns and the already
// combined overall label.
func Generate(jobToUser, userToJob types.FitResult, overallScore int, overallLabel types.OverallLabel) types.Interpretation {
	strengths := collect(jobToUser.Breakdown, userToJob.Breakdown, func(r types.CriterionResult) bool {
		return r.Score >= strengthMin && !r.MissingData
	})
	concerns := collect(jobToUser.Breakdown, userToJob.Breakdown, func(r types.CriterionResult) bool {
		return r.Score <= concernMax
	})

	action := actionForLabel[overallLabel]
	return types.Interpretation{
		Summary:   summarize(overallScore, overallLabel, strengths, concerns),
		Action:    action,
		Questions: questions(action, concerns),
	}
}

// GenerateRejection replaces the interpretation when a deal-breaker fired.
// Scores stay visible in the breakdown; the summary explains the rejection.
func GenerateRejection(reason string) types.Interpretation {
	return types.Interpretation{
		Summary:   fmt.Sprintf("Rejected on a deal-breaker: %s.", strings.TrimSuffix(reason, ".")),
		Action:    actionForLabel[types.HardNo],
		Questions: []string{"Has anything changed about this constraint since you set it?"},
	}
}

func collect(a, b []types.CriterionResult, keep func(types.CriterionResult) bool) []string {
	var names []string
	for _, r := range a {
		if keep(r) {
			names = append(names, r.Criteria)
		}
	}
	for _, r := range b {
		if keep(r) {
			names = append(names, r.Criteria)
		}
	}
	return names
}

func summarize(score int, label types.OverallLabel, strengths, concerns []string) string {
	first := fmt.Sprintf("This role scores %d/100 (%s).", score, strings.ToLower(string(label)))

	var second string
	switch {
	case len(strengths) > 0 && len(concerns) > 0:
		second = fmt.Sprintf("It is strong on %s, but %s %s a concern.",
			joinNames(strengths), joinNames(concerns), isAre(len(concerns)))
	case len(strengths) > 0:
		second = fmt.Sprintf("It is strong on %s with no major concerns.", joinNames(strengths))
	case len(concerns) > 0:
		second = fmt.Sprintf("%s %s a concern and nothing stands out as a strength.",
			joinNames(concerns), isAre(len(concerns)))
	default:
		second = "Nothing stands out strongly in either direction."
	}

	return first + " " + second
}

func questions(action string, concerns []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, concern := range concerns {
		if q, ok := concernQuestions[concern]; ok && !seen[q] {
			out = append(out, q)
			seen[q] = true
			if len(out) == maxQuestions {
				return out
			}
		}
	}
	if q, ok := genericQuestions[action]; ok && len(out) < maxQuestions {
		out = append(out, q)
	}
	return out
}

func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + ", and " + names[len(names)-1]
	}
}

func isAre(n int) string {
	if n == 1 {
		return "is"
	}
	return "are"
}
