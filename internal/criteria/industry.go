package criteria

import (
	"fmt"
	"strings"

	"github.com/jonathan/jobfit/internal/types"
)

const industryDescription = "Whether the company's industry lines up with your background"

// industryKeywords maps industry categories to detection keywords checked
// against the description, company name and the user's industry strings.
var industryKeywords = map[string][]string{
	"telecom":       {"telecom", "telecommunications", "5g", "broadband", "carrier", "wireless"},
	"insurance":     {"insurance", "insurtech", "underwriting", "claims", "actuarial"},
	"saas":          {"saas", "b2b software", "software-as-a-service", "subscription software", "cloud platform"},
	"fintech":       {"fintech", "payments", "banking", "lending", "trading", "financial services"},
	"healthtech":    {"healthtech", "healthcare", "health tech", "medical", "clinical", "patient", "pharma"},
	"ecommerce":     {"e-commerce", "ecommerce", "marketplace", "retail", "online shopping"},
	"edtech":        {"edtech", "education", "learning platform", "e-learning"},
	"martech":       {"martech", "marketing technology", "adtech", "advertising"},
	"cybersecurity": {"cybersecurity", "security platform", "infosec", "threat detection"},
	"logistics":     {"logistics", "supply chain", "freight", "shipping", "fulfillment"},
	"media":         {"media", "streaming", "entertainment", "publishing", "gaming"},
}

// industryAdjacency lists category pairs close enough to count as a partial
// match. Pairs are stored one way; lookups check both directions.
var industryAdjacency = map[string][]string{
	"telecom":    {"saas", "media"},
	"insurance":  {"fintech", "healthtech"},
	"saas":       {"martech", "fintech", "cybersecurity"},
	"fintech":    {"ecommerce"},
	"healthtech": {"edtech"},
	"ecommerce":  {"logistics", "martech"},
}

// ScoreIndustryAlignment compares the industries detected in the posting
// against the user's declared industries: exact category overlap scores 50,
// an adjacent pairing 35, anything else 20.
func ScoreIndustryAlignment(job *types.JobPayload, profile *types.UserProfile) types.CriterionResult {
	result := types.CriterionResult{
		Criteria:    NameIndustry,
		Description: industryDescription,
	}

	jobCategories := detectIndustries(job.Description + " " + job.Company)
	userCategories := userIndustries(profile.Background.Industries)

	if len(jobCategories) == 0 {
		result.Score = 25
		result.MissingData = true
		result.ActualValue = "unknown"
		result.Rationale = "Could not determine the company's industry"
		return result
	}
	result.ActualValue = strings.Join(jobCategories, ", ")

	if len(userCategories) == 0 {
		result.Score = 25
		result.MissingData = true
		result.Rationale = "No industries declared in your profile"
		return result
	}

	if shared := firstShared(jobCategories, userCategories); shared != "" {
		result.Score = 50
		result.Rationale = fmt.Sprintf("Direct industry match on %s", shared)
		return result
	}

	if a, b := firstAdjacent(jobCategories, userCategories); a != "" {
		result.Score = 35
		result.Rationale = fmt.Sprintf("Adjacent industries: %s is close to your %s background", a, b)
		return result
	}

	result.Score = 20
	result.Rationale = "No overlap between the company's industry and your background"
	return result
}

// detectIndustries returns categories whose keywords appear in the text, in
// a stable order.
func detectIndustries(text string) []string {
	var detected []string
	for _, category := range industryOrder {
		if containsAny(text, industryKeywords[category]) {
			detected = append(detected, category)
		}
	}
	return detected
}

// industryOrder fixes iteration order over the keyword map.
var industryOrder = []string{
	"telecom", "insurance", "saas", "fintech", "healthtech",
	"ecommerce", "edtech", "martech", "cybersecurity", "logistics", "media",
}

func userIndustries(raw []string) []string {
	seen := make(map[string]bool)
	var categories []string
	for _, industry := range raw {
		for _, category := range industryOrder {
			if category == strings.ToLower(strings.TrimSpace(industry)) || containsAny(industry, industryKeywords[category]) {
				if !seen[category] {
					seen[category] = true
					categories = append(categories, category)
				}
			}
		}
	}
	return categories
}

func firstShared(a, b []string) string {
	set := make(map[string]bool, len(b))
	for _, s := range b {
		set[s] = true
	}
	for _, s := range a {
		if set[s] {
			return s
		}
	}
	return ""
}

func firstAdjacent(jobCats, userCats []string) (string, string) {
	for _, j := range jobCats {
		for _, u := range userCats {
			if adjacent(j, u) {
				return j, u
			}
		}
	}
	return "", ""
}

func adjacent(a, b string) bool {
	for _, n := range industryAdjacency[a] {
		if n == b {
			return true
		}
	}
	for _, n := range industryAdjacency[b] {
		if n == a {
			return true
		}
	}
	return false
}
