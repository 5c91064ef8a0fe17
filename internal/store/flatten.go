// Package store persists scoring results. Results are flattened to a flat
// field set before storage so downstream consumers never need to parse the
// nested breakdown.
package store

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"github.com/jonathan/jobfit/internal/types"
)

// skillListSeparator joins matched/missing skill lists into single columns.
const skillListSeparator = "; "

// Record is the flat persistence shape of one ScoreResult.
type Record struct {
	ScoreID        string    `json:"score_id"`
	JobID          string    `json:"job_id"`
	Timestamp      time.Time `json:"timestamp"`
	OverallScore   int       `json:"overall_score"`
	OverallLabel   string    `json:"overall_label"`
	JobToUserScore int       `json:"job_to_user_score"`
	UserToJobScore int       `json:"user_to_job_score"`
	MatchedSkills  string    `json:"matched_skills"`
	MissingSkills  string    `json:"missing_skills"`
	Action         string    `json:"action"`
	Summary        string    `json:"summary"`
	DealBreaker    string    `json:"deal_breaker,omitempty"`
}

// Flatten converts a ScoreResult into its flat record. The label passes
// through CoerceLabel so the stored value is always a member of the allowed
// enum.
func Flatten(result *types.ScoreResult) Record {
	record := Record{
		ScoreID:        result.ScoreID,
		JobID:          result.JobID,
		Timestamp:      result.Timestamp,
		OverallScore:   result.OverallScore,
		OverallLabel:   CoerceLabel(string(result.OverallLabel)),
		JobToUserScore: result.JobToUserFit.Score,
		UserToJobScore: result.UserToJobFit.Score,
		Action:         result.Interpretation.Action,
		Summary:        result.Interpretation.Summary,
		DealBreaker:    result.DealBreakerTriggered,
	}

	if skill := result.SkillBreakdown(); skill != nil {
		record.MatchedSkills = strings.Join(skill.MatchedSkills, skillListSeparator)
		record.MissingSkills = strings.Join(skill.MissingSkills, skillListSeparator)
	}

	return record
}

// allowedLabels is the fixed enum the downstream record store accepts.
var allowedLabels = []types.OverallLabel{
	types.StrongFit, types.GoodFit, types.ModerateFit,
	types.WeakFit, types.PoorFit, types.HardNo,
}

// CoerceLabel maps an arbitrary label string onto the allowed enum.
// Unrecognized labels are coerced to the nearest member by keyword, never
// passed through raw.
func CoerceLabel(raw string) string {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	for _, label := range allowedLabels {
		if normalized == string(label) {
			return string(label)
		}
	}

	switch {
	case strings.Contains(normalized, "HARD") || strings.Contains(normalized, "REJECT"):
		return string(types.HardNo)
	case strings.Contains(normalized, "STRONG"):
		return string(types.StrongFit)
	case strings.Contains(normalized, "GOOD"):
		return string(types.GoodFit)
	case strings.Contains(normalized, "WEAK"):
		return string(types.WeakFit)
	case strings.Contains(normalized, "POOR") || strings.Contains(normalized, "NO FIT"):
		return string(types.PoorFit)
	default:
		return string(types.ModerateFit)
	}
}

// CacheKey derives a stable cache key for a job/profile pair. The profile is
// part of the key: the same job scores differently for different profiles.
func CacheKey(jobKey string, profile *types.UserProfile) string {
	profileJSON, _ := json.Marshal(profile)
	sum := sha256.Sum256(append([]byte(jobKey+"|"), profileJSON...))
	return "jobfit:score:" + hex.EncodeToString(sum[:16])
}
