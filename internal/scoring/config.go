// Package scoring combines the per-criterion scorers into the two fit
// sub-scores and the overall 0-100 recommendation. The whole pipeline is a
// single-pass, side-effect-free evaluation over immutable inputs.
package scoring

import (
	"fmt"
	"math"

	"github.com/jonathan/jobfit/internal/criteria"
	"github.com/jonathan/jobfit/internal/skills"
	"github.com/jonathan/jobfit/internal/types"
)

// Config is the immutable tuning profile bound at engine construction.
// Alternate profiles construct their own Config; there are no module-level
// mutable tables.
type Config struct {
	// Weight tables, keyed by criterion name. Each table must cover exactly
	// the criteria its side evaluates and sum to 1.0; Validate enforces this
	// so a removed criterion can never silently scale the sub-score down.
	JobToUserWeights map[string]float64
	UserToJobWeights map[string]float64

	// Fit sub-score label thresholds.
	FitGoodMin     int
	FitModerateMin int

	// Overall label thresholds, descending.
	StrongFitMin   int
	GoodFitMin     int
	ModerateFitMin int
	WeakFitMin     int

	// Skill matching tuning.
	SimilarityThreshold float64
	DesiredBonus        float64
}

// jobToUserOrder and userToJobOrder fix the breakdown ordering. Weights are
// applied in lock-step with these lists.
var jobToUserOrder = []string{
	criteria.NameSalary,
	criteria.NameWorkplace,
	criteria.NameEquityBonus,
	criteria.NameBenefits,
	criteria.NameLifecycle,
	criteria.NameStability,
	criteria.NameUrgency,
}

var userToJobOrder = []string{
	criteria.NameSkills,
	criteria.NameTitle,
	criteria.NameExperience,
	criteria.NameIndustry,
}

// DefaultConfig returns the canonical tuning profile. Earlier profiles with
// tables that no longer summed to 1.0 after criteria were removed have been
// rebalanced into this one.
func DefaultConfig() Config {
	return Config{
		JobToUserWeights: map[string]float64{
			criteria.NameSalary:      0.25,
			criteria.NameWorkplace:   0.20,
			criteria.NameLifecycle:   0.15,
			criteria.NameEquityBonus: 0.10,
			criteria.NameBenefits:    0.10,
			criteria.NameStability:   0.10,
			criteria.NameUrgency:     0.10,
		},
		UserToJobWeights: map[string]float64{
			criteria.NameSkills:     0.40,
			criteria.NameTitle:      0.25,
			criteria.NameExperience: 0.20,
			criteria.NameIndustry:   0.15,
		},
		FitGoodMin:          40,
		FitModerateMin:      25,
		StrongFitMin:        80,
		GoodFitMin:          70,
		ModerateFitMin:      50,
		WeakFitMin:          30,
		SimilarityThreshold: skills.DefaultSimilarityThreshold,
		DesiredBonus:        criteria.DefaultDesiredBonus,
	}
}

// Validate checks that each weight table covers exactly its ordered
// criterion list and sums to 1.0.
func (c Config) Validate() error {
	if err := validateWeights("job_to_user", c.JobToUserWeights, jobToUserOrder); err != nil {
		return err
	}
	if err := validateWeights("user_to_job", c.UserToJobWeights, userToJobOrder); err != nil {
		return err
	}
	if c.SimilarityThreshold < 0 || c.SimilarityThreshold > 1 {
		return fmt.Errorf("similarity threshold %.2f out of range [0,1]", c.SimilarityThreshold)
	}
	if c.StrongFitMin <= c.GoodFitMin || c.GoodFitMin <= c.ModerateFitMin || c.ModerateFitMin <= c.WeakFitMin {
		return fmt.Errorf("overall thresholds must be strictly descending")
	}
	return nil
}

const weightSumTolerance = 1e-6

func validateWeights(side string, weights map[string]float64, order []string) error {
	if len(weights) != len(order) {
		return fmt.Errorf("%s weights: have %d entries, expected %d", side, len(weights), len(order))
	}
	sum := 0.0
	for _, name := range order {
		w, ok := weights[name]
		if !ok {
			return fmt.Errorf("%s weights: missing criterion %q", side, name)
		}
		if w < 0 {
			return fmt.Errorf("%s weights: negative weight for %q", side, name)
		}
		sum += w
	}
	if math.Abs(sum-1.0) > weightSumTolerance {
		return fmt.Errorf("%s weights sum to %.4f, expected 1.0", side, sum)
	}
	return nil
}

// OverallLabelFor maps a 0-100 score into the 5-band threshold table.
// The interpreter derives its action tiers from the label this returns, so
// the two systems can never disagree on a band.
func (c Config) OverallLabelFor(score int) types.OverallLabel {
	switch {
	case score >= c.StrongFitMin:
		return types.StrongFit
	case score >= c.GoodFitMin:
		return types.GoodFit
	case score >= c.ModerateFitMin:
		return types.ModerateFit
	case score >= c.WeakFitMin:
		return types.WeakFit
	default:
		return types.PoorFit
	}
}

// fitLabelFor maps a 0-50 sub-score into its label.
func (c Config) fitLabelFor(score int) types.FitLabel {
	switch {
	case score >= c.FitGoodMin:
		return types.FitGood
	case score >= c.FitModerateMin:
		return types.FitModerate
	default:
		return types.FitWeak
	}
}
