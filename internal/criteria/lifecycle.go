package criteria

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/jobfit/internal/types"
)

const lifecycleDescription = "Where the company sits in its lifecycle: seed through maturity, or decline"

// Lifecycle categories and their fixed scores.
const (
	lifecycleSeed      = "seed"
	lifecycleStartup   = "startup"
	lifecycleGrowth    = "growth"
	lifecycleExpansion = "expansion"
	lifecycleMaturity  = "maturity"
	lifecycleDecline   = "decline"
	lifecycleUnknown   = "unknown"
)

var lifecycleScores = map[string]int{
	lifecycleSeed:      15,
	lifecycleStartup:   25,
	lifecycleGrowth:    45,
	lifecycleExpansion: 45,
	lifecycleMaturity:  50,
	lifecycleDecline:   5,
	lifecycleUnknown:   25,
}

// Decline signals are word-boundary guarded: "rif" must not fire on
// "sacrifice", "terrific" and the like.
var declinePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\blay-?offs?\b`),
	regexp.MustCompile(`(?i)\blaid off\b`),
	regexp.MustCompile(`(?i)\bbankruptc?y?\b`),
	regexp.MustCompile(`(?i)\brif\b`),
	regexp.MustCompile(`(?i)\breduction in force\b`),
	regexp.MustCompile(`(?i)\bdownsizing\b`),
	regexp.MustCompile(`(?i)\brestructuring\b`),
	regexp.MustCompile(`(?i)\bwinding down\b`),
	regexp.MustCompile(`(?i)\bhiring freeze\b`),
}

var (
	maturityKeywords  = []string{"fortune 500", "industry leader", "publicly traded", "well-established", "established leader", "market leader", "decades of"}
	growthKeywords    = []string{"fast-growing", "fast growing", "hypergrowth", "hyper-growth", "rapid growth", "scaling", "series b", "series c", "series d"}
	expansionKeywords = []string{"expanding", "expansion", "new markets", "opening offices", "international growth"}
	startupKeywords   = []string{"startup", "start-up", "early-stage", "early stage", "series a"}
	seedKeywords      = []string{"seed stage", "seed-stage", "pre-seed", "seed round", "pre-revenue", "stealth"}
)

// ScoreBusinessLifecycle classifies the company's lifecycle stage via a
// priority-ordered cascade: the explicit stage field, decline signals,
// then stage keywords from mature to seed, then headcount thresholds.
// The first category matched wins.
func ScoreBusinessLifecycle(job *types.JobPayload, _ *types.UserProfile) types.CriterionResult {
	result := types.CriterionResult{
		Criteria:    NameLifecycle,
		Description: lifecycleDescription,
	}

	category, source := classifyLifecycle(job)
	result.Score = lifecycleScores[category]
	result.ActualValue = category
	if category == lifecycleUnknown {
		result.MissingData = true
		result.Rationale = "No lifecycle signal found; assuming mid-range stability"
	} else {
		result.Rationale = fmt.Sprintf("Classified as %s (%s)", category, source)
	}
	return result
}

// LifecycleCategory exposes the cascade's verdict for callers that need the
// raw category, such as the deal-breaker gate. Returns "unknown" when no
// signal exists.
func LifecycleCategory(job *types.JobPayload) string {
	category, _ := classifyLifecycle(job)
	return category
}

// IsDecliningCompany reports whether the lifecycle cascade classifies the
// company as declining.
func IsDecliningCompany(job *types.JobPayload) bool {
	return LifecycleCategory(job) == lifecycleDecline
}

var preRevenuePattern = regexp.MustCompile(`(?i)\bpre-?revenue\b`)

// MentionsPreRevenue reports whether the stage field or description
// explicitly calls the company pre-revenue.
func MentionsPreRevenue(job *types.JobPayload) bool {
	return preRevenuePattern.MatchString(job.CompanyStage) ||
		preRevenuePattern.MatchString(job.Description) ||
		LifecycleCategory(job) == lifecycleSeed && strings.Contains(strings.ToLower(job.CompanyStage), "pre-seed")
}

func classifyLifecycle(job *types.JobPayload) (category, source string) {
	if stage := stageFieldCategory(job.CompanyStage); stage != "" {
		return stage, "explicit stage field"
	}

	text := job.Description
	for _, pattern := range declinePatterns {
		if pattern.MatchString(text) {
			return lifecycleDecline, "decline signal in description"
		}
	}

	cascades := []struct {
		category string
		keywords []string
	}{
		{lifecycleMaturity, maturityKeywords},
		{lifecycleGrowth, growthKeywords},
		{lifecycleExpansion, expansionKeywords},
		{lifecycleStartup, startupKeywords},
		{lifecycleSeed, seedKeywords},
	}
	for _, c := range cascades {
		if containsAny(text, c.keywords) {
			return c.category, "keyword in description"
		}
	}

	if job.Headcount != nil {
		switch {
		case *job.Headcount > 1000:
			return lifecycleMaturity, "headcount over 1000"
		case *job.Headcount > 200:
			return lifecycleGrowth, "headcount over 200"
		case *job.Headcount > 50:
			return lifecycleStartup, "headcount over 50"
		default:
			return lifecycleSeed, "headcount under 50"
		}
	}

	return lifecycleUnknown, ""
}

// stageFieldCategory maps the free-text company stage field to a category.
func stageFieldCategory(stage string) string {
	lower := strings.ToLower(strings.TrimSpace(stage))
	switch {
	case lower == "":
		return ""
	case strings.Contains(lower, "pre-seed") || strings.Contains(lower, "seed") || strings.Contains(lower, "pre-revenue"):
		return lifecycleSeed
	case strings.Contains(lower, "decline") || strings.Contains(lower, "distress"):
		return lifecycleDecline
	case strings.Contains(lower, "series a") || strings.Contains(lower, "startup") || strings.Contains(lower, "early"):
		return lifecycleStartup
	case strings.Contains(lower, "series") || strings.Contains(lower, "growth"):
		return lifecycleGrowth
	case strings.Contains(lower, "expansion") || strings.Contains(lower, "expanding"):
		return lifecycleExpansion
	case strings.Contains(lower, "public") || strings.Contains(lower, "enterprise") || strings.Contains(lower, "mature") || strings.Contains(lower, "established"):
		return lifecycleMaturity
	default:
		return ""
	}
}
