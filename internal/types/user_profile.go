package types

import "encoding/json"

// Deal-breaker tags a user may declare. Unknown tags are ignored by the gate.
const (
	DealBreakerOnSite           = "on_site"
	DealBreakerLowBase          = "less_than_150k_base"
	DealBreakerNoEquity         = "no_equity"
	DealBreakerPreRevenue       = "pre_revenue"
	DealBreakerDecliningCompany = "declining_company"
)

// Preferences captures what the user wants from a job.
type Preferences struct {
	SalaryFloor                *float64 `json:"salary_floor,omitempty"`
	SalaryTarget               *float64 `json:"salary_target,omitempty"`
	WorkplaceTypesAcceptable   []string `json:"workplace_types_acceptable,omitempty"`
	WorkplaceTypesUnacceptable []string `json:"workplace_types_unacceptable,omitempty"`
	DealBreakers               []string `json:"deal_breakers,omitempty"`
	PreferredBenefits          []string `json:"preferred_benefits,omitempty"`
	EquityPreference           string   `json:"equity_preference,omitempty"` // required|preferred|indifferent
}

// Background captures what the user brings to a job.
type Background struct {
	TargetRoles       []string `json:"target_roles,omitempty"`
	CoreSkills        []string `json:"core_skills,omitempty"`
	Industries        []string `json:"industries,omitempty"`
	YearsOfExperience *float64 `json:"years_of_experience,omitempty"`
}

// UserProfile is the stored career profile a job is scored against.
// Immutable input; the engine never mutates it.
type UserProfile struct {
	Preferences Preferences `json:"preferences"`
	Background  Background  `json:"background"`
}

// UnmarshalJSON accepts both snake_case and camelCase field names.
func (p *Preferences) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	p.SalaryFloor = firstFloatPtr(raw, "salary_floor", "salaryFloor")
	p.SalaryTarget = firstFloatPtr(raw, "salary_target", "salaryTarget")
	p.WorkplaceTypesAcceptable = firstStrings(raw, "workplace_types_acceptable", "workplaceTypesAcceptable")
	p.WorkplaceTypesUnacceptable = firstStrings(raw, "workplace_types_unacceptable", "workplaceTypesUnacceptable")
	p.DealBreakers = firstStrings(raw, "deal_breakers", "dealBreakers")
	p.PreferredBenefits = firstStrings(raw, "preferred_benefits", "preferredBenefits")
	p.EquityPreference = firstString(raw, "equity_preference", "equityPreference")

	return nil
}

// UnmarshalJSON accepts both snake_case and camelCase field names.
func (b *Background) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	b.TargetRoles = firstStrings(raw, "target_roles", "targetRoles")
	b.CoreSkills = firstStrings(raw, "core_skills", "coreSkills")
	b.Industries = firstStrings(raw, "industries")
	b.YearsOfExperience = firstFloatPtr(raw, "years_of_experience", "yearsOfExperience")

	return nil
}

// HasDealBreaker reports whether the user declared the given tag.
func (p *Preferences) HasDealBreaker(tag string) bool {
	for _, t := range p.DealBreakers {
		if t == tag {
			return true
		}
	}
	return false
}
