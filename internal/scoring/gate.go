package scoring

import (
	"fmt"

	"github.com/jonathan/jobfit/internal/criteria"
	"github.com/jonathan/jobfit/internal/types"
)

// GateResult is the deal-breaker gate's verdict.
type GateResult struct {
	Triggered bool
	Tag       string
	Reason    string
}

// hardSalaryFloor is implied by the less_than_150k_base tag when the profile
// sets no explicit floor.
const hardSalaryFloor = 150000

// EvaluateDealBreakers checks the user's declared deal-breaker tags against
// the job, in a fixed order, returning on the first violation. A tag whose
// signal is absent from the payload is skipped, never assumed violated.
// The gate is a pure predicate: it does not suppress criterion scoring.
func EvaluateDealBreakers(job *types.JobPayload, profile *types.UserProfile) GateResult {
	prefs := &profile.Preferences

	if prefs.HasDealBreaker(types.DealBreakerOnSite) {
		if criteria.NormalizeWorkplace(job.WorkplaceType) == criteria.WorkplaceOnSite {
			return GateResult{
				Triggered: true,
				Tag:       types.DealBreakerOnSite,
				Reason:    "The role is on-site and you declared on-site work a deal-breaker",
			}
		}
	}

	if prefs.HasDealBreaker(types.DealBreakerLowBase) && job.SalaryMax != nil {
		floor := float64(hardSalaryFloor)
		if prefs.SalaryFloor != nil {
			floor = *prefs.SalaryFloor
		}
		if *job.SalaryMax < floor {
			return GateResult{
				Triggered: true,
				Tag:       types.DealBreakerLowBase,
				Reason:    fmt.Sprintf("The posted maximum is below your %s salary floor", formatFloor(floor)),
			}
		}
	}

	if prefs.HasDealBreaker(types.DealBreakerNoEquity) && job.EquityMentioned != nil {
		if !*job.EquityMentioned {
			return GateResult{
				Triggered: true,
				Tag:       types.DealBreakerNoEquity,
				Reason:    "No equity is offered and you declared missing equity a deal-breaker",
			}
		}
	}

	if prefs.HasDealBreaker(types.DealBreakerPreRevenue) {
		if criteria.MentionsPreRevenue(job) {
			return GateResult{
				Triggered: true,
				Tag:       types.DealBreakerPreRevenue,
				Reason:    "The company is pre-revenue and you declared that a deal-breaker",
			}
		}
	}

	if prefs.HasDealBreaker(types.DealBreakerDecliningCompany) {
		if criteria.IsDecliningCompany(job) {
			return GateResult{
				Triggered: true,
				Tag:       types.DealBreakerDecliningCompany,
				Reason:    "The company shows decline signals and you declared that a deal-breaker",
			}
		}
	}

	return GateResult{}
}

func formatFloor(floor float64) string {
	if floor >= 1000 && floor == float64(int(floor)) && int(floor)%1000 == 0 {
		return fmt.Sprintf("$%dk", int(floor)/1000)
	}
	return fmt.Sprintf("$%.0f", floor)
}
