package skills

import (
	"strings"
	"unicode"
)

// DefaultSimilarityThreshold is the minimum fuzzy-tier similarity for a
// required phrase to count as matched.
const DefaultSimilarityThreshold = 0.7

// MatchResult is the outcome of matching skill phrases against a user's
// normalized skill set. Matched and Missing hold lower-cased skill names.
type MatchResult struct {
	Matched []string `json:"matched"`
	Missing []string `json:"missing"`
	Ratio   float64  `json:"ratio"` // matched / total, 0 when total is 0
}

// Matcher matches required/desired skill phrases against normalized user
// skills using an exact-canonical, exact-name, then fuzzy-similarity cascade.
type Matcher struct {
	normalizer *Normalizer
	similarity Similarity
	threshold  float64
}

// NewMatcher creates a Matcher. A nil similarity falls back to TokenJaccard;
// a non-positive threshold falls back to DefaultSimilarityThreshold.
func NewMatcher(normalizer *Normalizer, similarity Similarity, threshold float64) *Matcher {
	if normalizer == nil {
		normalizer = NewNormalizer(nil)
	}
	if similarity == nil {
		similarity = TokenJaccard
	}
	if threshold <= 0 {
		threshold = DefaultSimilarityThreshold
	}
	return &Matcher{normalizer: normalizer, similarity: similarity, threshold: threshold}
}

// MatchPhrases matches each extracted phrase against the user's skills.
// Tiers run in strict priority order per phrase and the first success wins:
// canonical-key equality, then case-insensitive name equality, then token
// similarity at or above the threshold.
func (m *Matcher) MatchPhrases(phrases []string, userSkills []NormalizedSkill) MatchResult {
	result := MatchResult{Matched: []string{}, Missing: []string{}}
	if len(phrases) == 0 {
		return result
	}

	byCanonical := make(map[string]bool, len(userSkills))
	byName := make(map[string]bool, len(userSkills))
	for _, skill := range userSkills {
		byCanonical[skill.Canonical] = true
		byName[strings.ToLower(skill.Name)] = true
	}

	for _, phrase := range phrases {
		normalized, ok := m.normalizer.NormalizeOne(phrase)
		if !ok {
			continue
		}
		lower := strings.ToLower(normalized.Name)

		switch {
		case byCanonical[normalized.Canonical]:
			result.Matched = append(result.Matched, lower)
		case byName[lower]:
			result.Matched = append(result.Matched, lower)
		case m.fuzzyMatch(lower, userSkills):
			result.Matched = append(result.Matched, lower)
		default:
			result.Missing = append(result.Missing, lower)
		}
	}

	total := len(result.Matched) + len(result.Missing)
	if total > 0 {
		result.Ratio = float64(len(result.Matched)) / float64(total)
	}
	return result
}

func (m *Matcher) fuzzyMatch(phrase string, userSkills []NormalizedSkill) bool {
	for _, skill := range userSkills {
		if m.similarity(phrase, strings.ToLower(skill.Name)) >= m.threshold {
			return true
		}
	}
	return false
}

// MatchDescription scans the job description for each user skill, matching
// on the skill's name, its raw spelling, and any taxonomy aliases, with word
// boundaries. This is the deterministic fallback when no extractor is
// available: the user's skill set stands in for the required phrase list.
func (m *Matcher) MatchDescription(description string, userSkills []NormalizedSkill) MatchResult {
	result := MatchResult{Matched: []string{}, Missing: []string{}}
	if len(userSkills) == 0 {
		return result
	}

	textLower := strings.ToLower(description)
	for _, skill := range userSkills {
		if m.skillInText(textLower, skill) {
			result.Matched = append(result.Matched, strings.ToLower(skill.Name))
		} else {
			result.Missing = append(result.Missing, strings.ToLower(skill.Name))
		}
	}

	result.Ratio = float64(len(result.Matched)) / float64(len(userSkills))
	return result
}

func (m *Matcher) skillInText(textLower string, skill NormalizedSkill) bool {
	terms := []string{skill.Name, skill.Raw}
	if entry, ok := m.normalizer.Taxonomy().Lookup(skill.Name); ok {
		terms = append(terms, entry.Aliases...)
	}

	for _, term := range terms {
		if containsWord(textLower, strings.ToLower(strings.TrimSpace(term))) {
			return true
		}
	}
	return false
}

// containsWord reports whether term occurs in text delimited by
// non-alphanumeric characters. Both arguments must already be lower-cased.
func containsWord(text, term string) bool {
	if term == "" {
		return false
	}
	for start := 0; ; {
		i := strings.Index(text[start:], term)
		if i < 0 {
			return false
		}
		i += start
		end := i + len(term)
		if boundary(text, i-1) && boundary(text, end) {
			return true
		}
		start = i + 1
	}
}

func boundary(text string, i int) bool {
	if i < 0 || i >= len(text) {
		return true
	}
	r := rune(text[i])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// Normalizer returns the matcher's normalizer.
func (m *Matcher) Normalizer() *Normalizer { return m.normalizer }

// Threshold returns the fuzzy-tier threshold in use.
func (m *Matcher) Threshold() float64 { return m.threshold }
