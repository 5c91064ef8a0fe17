package criteria

import (
	"fmt"

	"github.com/jonathan/jobfit/internal/types"
)

const salaryDescription = "How the posted compensation compares to your salary floor and target"

// ScoreSalary scores the posted salary against the user's floor and target.
// The upper bound is the primary signal: it is the employer's stated ceiling.
// An undisclosed salary gets a low fixed score rather than a neutral one —
// non-transparency is itself a signal.
func ScoreSalary(job *types.JobPayload, profile *types.UserProfile) types.CriterionResult {
	result := types.CriterionResult{
		Criteria:    NameSalary,
		Description: salaryDescription,
	}

	if job.SalaryMax == nil {
		result.Score = 10
		result.MissingData = true
		result.ActualValue = "not disclosed"
		result.Rationale = "Salary not disclosed; treating non-transparency as a weak signal"
		return result
	}

	max := *job.SalaryMax
	result.ActualValue = formatMoney(max)
	if job.SalaryMin != nil {
		result.ActualValue = fmt.Sprintf("%s - %s", formatMoney(*job.SalaryMin), formatMoney(max))
	}

	floor, target := salaryBounds(&profile.Preferences)
	if floor == 0 && target == 0 {
		result.Score = 35
		result.MissingData = true
		result.Rationale = "No salary floor or target set in profile; salary is disclosed"
		return result
	}

	switch {
	case max >= target:
		result.Score = MaxCriterionScore
		result.Rationale = fmt.Sprintf("Max %s meets or beats your target %s", formatMoney(max), formatMoney(target))
	case max >= floor:
		// Linear interpolation from 25 at the floor to 50 at the target.
		fraction := (max - floor) / (target - floor)
		result.Score = roundScore(25 + fraction*25)
		result.Rationale = fmt.Sprintf("Max %s sits between your floor %s and target %s",
			formatMoney(max), formatMoney(floor), formatMoney(target))
	default:
		pctUnder := (floor - max) / floor * 100
		result.Score = bandBelowFloor(pctUnder)
		result.Rationale = fmt.Sprintf("Max %s is %.0f%% under your floor %s",
			formatMoney(max), pctUnder, formatMoney(floor))
	}

	// Secondary penalty: an acceptable ceiling can still hide a low offer if
	// the posted minimum starts under the floor.
	if job.SalaryMin != nil && floor > 0 && *job.SalaryMin < floor && max >= floor {
		penalty := minBelowFloorPenalty((floor - *job.SalaryMin) / floor * 100)
		result.Score = clampScore(result.Score - penalty)
		result.Rationale += fmt.Sprintf("; posted minimum %s is under your floor (-%d)",
			formatMoney(*job.SalaryMin), penalty)
	}

	return result
}

// salaryBounds resolves the user's floor and target, deriving one from the
// other when only one is set.
func salaryBounds(prefs *types.Preferences) (floor, target float64) {
	if prefs.SalaryFloor != nil {
		floor = *prefs.SalaryFloor
	}
	if prefs.SalaryTarget != nil {
		target = *prefs.SalaryTarget
	}
	if floor == 0 && target > 0 {
		floor = target * 0.8
	}
	if target == 0 && floor > 0 {
		target = floor * 1.25
	}
	if target <= floor && floor > 0 {
		target = floor * 1.01 // avoid a zero-width interpolation band
	}
	return floor, target
}

func bandBelowFloor(pctUnder float64) int {
	switch {
	case pctUnder <= 10:
		return 20
	case pctUnder <= 20:
		return 15
	case pctUnder <= 30:
		return 10
	default:
		return 5
	}
}

func minBelowFloorPenalty(pctUnder float64) int {
	switch {
	case pctUnder >= 30:
		return 15
	case pctUnder >= 15:
		return 10
	default:
		return 5
	}
}
