// Package skills provides skill normalization, matching and optional
// LLM-backed extraction for the scoring engine.
package skills

import (
	"strings"

	"github.com/jonathan/jobfit/internal/taxonomy"
)

// NormalizedSkill is a user skill resolved against the taxonomy.
type NormalizedSkill struct {
	Canonical string `json:"canonical"`
	Name      string `json:"name"`
	Category  string `json:"category,omitempty"`
	Raw       string `json:"raw,omitempty"` // original user-supplied string
}

// Normalizer maps raw skill strings to canonical entries.
type Normalizer struct {
	tax *taxonomy.Taxonomy
}

// NewNormalizer creates a Normalizer over the given taxonomy.
// A nil taxonomy falls back to the built-in catalog.
func NewNormalizer(tax *taxonomy.Taxonomy) *Normalizer {
	if tax == nil {
		tax = taxonomy.Default()
	}
	return &Normalizer{tax: tax}
}

// NormalizeOne resolves a single raw skill string. Strings with no catalog
// entry get a canonical key derived from the string itself. Returns false
// for empty or whitespace-only input.
func (n *Normalizer) NormalizeOne(raw string) (NormalizedSkill, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return NormalizedSkill{}, false
	}

	if entry, ok := n.tax.Lookup(trimmed); ok {
		return NormalizedSkill{
			Canonical: entry.Canonical,
			Name:      entry.Name,
			Category:  entry.Category,
			Raw:       trimmed,
		}, true
	}

	return NormalizedSkill{
		Canonical: taxonomy.CanonicalKey(trimmed),
		Name:      trimmed,
		Raw:       trimmed,
	}, true
}

// Normalize resolves a list of raw skill strings, deduplicating by canonical
// key. The first occurrence wins.
func (n *Normalizer) Normalize(raw []string) []NormalizedSkill {
	out := make([]NormalizedSkill, 0, len(raw))
	seen := make(map[string]bool, len(raw))

	for _, s := range raw {
		skill, ok := n.NormalizeOne(s)
		if !ok || seen[skill.Canonical] {
			continue
		}
		seen[skill.Canonical] = true
		out = append(out, skill)
	}

	return out
}

// Taxonomy returns the taxonomy backing this normalizer.
func (n *Normalizer) Taxonomy() *taxonomy.Taxonomy { return n.tax }
