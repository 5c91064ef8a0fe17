package criteria

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/jobfit/internal/types"
)

const benefitsDescription = "Which benefit categories the posting offers, against your preferred list"

// benefitCategory is one entry in the fixed benefits catalog. Weight reflects
// how much the category typically matters; patterns detect it in free text.
type benefitCategory struct {
	key      string
	weight   int
	patterns []*regexp.Regexp
}

var benefitCatalog = []benefitCategory{
	{key: "medical", weight: 12, patterns: compileAll(
		`medical insurance`, `health insurance`, `health\s?care coverage`, `medical,?\s+dental`)},
	{key: "retirement", weight: 12, patterns: compileAll(
		`401\s*\(?k\)?`, `retirement plan`, `pension`, `retirement matching`)},
	{key: "pto", weight: 10, patterns: compileAll(
		`unlimited pto`, `paid time off`, `\bpto\b`, `vacation (?:days|policy|time)`)},
	{key: "parental_leave", weight: 8, patterns: compileAll(
		`parental leave`, `maternity`, `paternity`)},
	{key: "learning", weight: 8, patterns: compileAll(
		`tuition`, `learning budget`, `professional development`, `education stipend`, `conference budget`)},
	{key: "dental", weight: 6, patterns: compileAll(`dental`)},
	{key: "wellness", weight: 6, patterns: compileAll(
		`wellness`, `gym membership`, `fitness stipend`, `mental health (?:support|benefits|days)`)},
	{key: "life_insurance", weight: 6, patterns: compileAll(
		`life insurance`, `disability insurance`, `long-?term disability`)},
	{key: "home_office", weight: 6, patterns: compileAll(
		`home office stipend`, `remote work stipend`, `internet stipend`, `equipment budget`)},
	{key: "vision", weight: 4, patterns: compileAll(`vision (?:insurance|coverage|plan)`, `\bvision\b`)},
	{key: "commuter", weight: 4, patterns: compileAll(`commuter benefits?`, `transit (?:pass|subsidy|benefits?)`)},
}

// benefitSynonyms maps substrings seen in featured-benefit lists and user
// preference strings to catalog keys.
var benefitSynonyms = map[string]string{
	"medical":         "medical",
	"health":          "medical",
	"healthcare":      "medical",
	"dental":          "dental",
	"vision":          "vision",
	"401":             "retirement",
	"retirement":      "retirement",
	"pension":         "retirement",
	"pto":             "pto",
	"paid time off":   "pto",
	"vacation":        "pto",
	"parental":        "parental_leave",
	"maternity":       "parental_leave",
	"paternity":       "parental_leave",
	"tuition":         "learning",
	"learning":        "learning",
	"development":     "learning",
	"education":       "learning",
	"wellness":        "wellness",
	"gym":             "wellness",
	"fitness":         "wellness",
	"mental health":   "wellness",
	"life insurance":  "life_insurance",
	"disability":      "life_insurance",
	"home office":     "home_office",
	"remote stipend":  "home_office",
	"equipment":       "home_office",
	"commuter":        "commuter",
	"transit":         "commuter",
}

func compileAll(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		compiled[i] = regexp.MustCompile(`(?i)` + p)
	}
	return compiled
}

// ScoreBenefits detects benefit categories in the posting. The explicit
// featured-benefits list takes priority over regex detection in the
// description. With declared preferences the score is the preferred-coverage
// ratio; without, it is the capped sum of matched category weights.
func ScoreBenefits(job *types.JobPayload, profile *types.UserProfile) types.CriterionResult {
	result := types.CriterionResult{
		Criteria:    NameBenefits,
		Description: benefitsDescription,
	}

	detected := detectBenefits(job)
	if len(detected) == 0 {
		result.ActualValue = "none detected"
	} else {
		result.ActualValue = strings.Join(sortedKeys(detected), ", ")
	}
	if job.Description == "" && len(job.FeaturedBenefits) == 0 {
		result.MissingData = true
	}

	preferred := resolvePreferred(profile.Preferences.PreferredBenefits)
	if len(preferred) > 0 {
		matched := 0
		for _, key := range preferred {
			if detected[key] {
				matched++
			}
		}
		result.Score = roundScore(float64(matched) / float64(len(preferred)) * MaxCriterionScore)
		result.Rationale = fmt.Sprintf("%d of %d preferred benefit categories offered", matched, len(preferred))
		return result
	}

	weightSum := 0
	for _, cat := range benefitCatalog {
		if detected[cat.key] {
			weightSum += cat.weight
		}
	}
	result.Score = clampScore(weightSum / 2)
	result.Rationale = fmt.Sprintf("%d benefit categories detected", len(detected))
	return result
}

// detectBenefits returns the set of catalog keys offered by the job.
func detectBenefits(job *types.JobPayload) map[string]bool {
	detected := make(map[string]bool)

	if len(job.FeaturedBenefits) > 0 {
		for _, featured := range job.FeaturedBenefits {
			if key, ok := resolveSynonym(featured); ok {
				detected[key] = true
			}
		}
		return detected
	}

	for _, cat := range benefitCatalog {
		for _, pattern := range cat.patterns {
			if pattern.MatchString(job.Description) {
				detected[cat.key] = true
				break
			}
		}
	}
	return detected
}

// resolveSynonym maps a free-text benefit phrase to a catalog key.
func resolveSynonym(raw string) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(raw))
	if lower == "" {
		return "", false
	}
	// Longest synonym wins so "life insurance" beats "insurance"-adjacent keys.
	bestKey := ""
	bestLen := 0
	for synonym, key := range benefitSynonyms {
		if strings.Contains(lower, synonym) && len(synonym) > bestLen {
			bestKey = key
			bestLen = len(synonym)
		}
	}
	return bestKey, bestKey != ""
}

func resolvePreferred(preferred []string) []string {
	keys := make([]string, 0, len(preferred))
	seen := make(map[string]bool)
	for _, p := range preferred {
		if key, ok := resolveSynonym(p); ok && !seen[key] {
			keys = append(keys, key)
			seen[key] = true
		}
	}
	return keys
}

func sortedKeys(set map[string]bool) []string {
	// Catalog order keeps output deterministic.
	keys := make([]string, 0, len(set))
	for _, cat := range benefitCatalog {
		if set[cat.key] {
			keys = append(keys, cat.key)
		}
	}
	return keys
}
