package types

import "time"

// FitLabel qualifies one of the two 0-50 fit sub-scores.
type FitLabel string

// Fit sub-score labels.
const (
	FitGood     FitLabel = "GOOD"
	FitModerate FitLabel = "MODERATE"
	FitWeak     FitLabel = "WEAK"
)

// OverallLabel qualifies the combined 0-100 score.
type OverallLabel string

// Overall score labels. HardNo is terminal: it is forced by a deal-breaker
// and never produced by the threshold table.
const (
	StrongFit   OverallLabel = "STRONG FIT"
	GoodFit     OverallLabel = "GOOD FIT"
	ModerateFit OverallLabel = "MODERATE FIT"
	WeakFit     OverallLabel = "WEAK FIT"
	PoorFit     OverallLabel = "POOR FIT"
	HardNo      OverallLabel = "HARD NO"
)

// CriterionResult is the outcome of one independently scored factor.
type CriterionResult struct {
	Criteria      string   `json:"criteria"`
	Description   string   `json:"criteria_description,omitempty"`
	ActualValue   string   `json:"actual_value,omitempty"`
	Score         int      `json:"score"`
	Rationale     string   `json:"rationale"`
	Weight        float64  `json:"weight,omitempty"`
	MissingData   bool     `json:"missing_data,omitempty"`
	MatchedSkills []string `json:"matched_skills,omitempty"`
	MissingSkills []string `json:"missing_skills,omitempty"`
}

// FitResult is one side's weighted aggregate plus its per-criterion breakdown.
type FitResult struct {
	Score     int               `json:"score"`
	Label     FitLabel          `json:"label"`
	Breakdown []CriterionResult `json:"breakdown"`
}

// Interpretation is the human-readable reading of a score.
type Interpretation struct {
	Summary   string   `json:"summary"`
	Action    string   `json:"action"`
	Questions []string `json:"questions,omitempty"`
}

// ScoreResult is the terminal artifact of one scoring call. It is created
// once per call and never mutated afterwards.
type ScoreResult struct {
	ScoreID              string         `json:"score_id"`
	JobID                string         `json:"job_id,omitempty"`
	Timestamp            time.Time      `json:"timestamp"`
	OverallScore         int            `json:"overall_score"`
	OverallLabel         OverallLabel   `json:"overall_label"`
	JobToUserFit         FitResult      `json:"job_to_user_fit"`
	UserToJobFit         FitResult      `json:"user_to_job_fit"`
	Interpretation       Interpretation `json:"interpretation"`
	DealBreakerTriggered string         `json:"deal_breaker_triggered,omitempty"`
}

// SkillBreakdown returns the skill-match criterion from the user→job side,
// or nil if absent. Downstream export joins its matched/missing lists.
func (r *ScoreResult) SkillBreakdown() *CriterionResult {
	for i := range r.UserToJobFit.Breakdown {
		if r.UserToJobFit.Breakdown[i].Criteria == "Skill Match" {
			return &r.UserToJobFit.Breakdown[i]
		}
	}
	return nil
}
