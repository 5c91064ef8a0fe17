// Package types provides type definitions for structured data used throughout the jobfit system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "encoding/json"

// JobPayload represents one scraped job posting. It is an immutable input to
// the scoring engine; scorers read from it but never write to it.
type JobPayload struct {
	ID               string   `json:"job_id,omitempty"`
	URL              string   `json:"job_url,omitempty"`
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	Location         string   `json:"location,omitempty"`
	WorkplaceType    string   `json:"workplace_type,omitempty"` // free text, normalized by the workplace scorer
	SalaryMin        *float64 `json:"salary_min,omitempty"`
	SalaryMax        *float64 `json:"salary_max,omitempty"`
	EquityMentioned  *bool    `json:"equity_mentioned,omitempty"`
	BonusMentioned   *bool    `json:"bonus_mentioned,omitempty"`
	Description      string   `json:"description,omitempty"`
	Headcount        *int     `json:"headcount,omitempty"`
	HeadcountGrowth  string   `json:"headcount_growth,omitempty"` // free text, e.g. "+5% over last 6 months"
	CompanyStage     string   `json:"company_stage,omitempty"`
	HiringUrgency    string   `json:"hiring_urgency,omitempty"` // high|moderate|low|exploratory when present
	ApplicantCount   *int     `json:"applicant_count,omitempty"`
	FeaturedBenefits []string `json:"featured_benefits,omitempty"`

	// Skill phrases supplied by an upstream extraction step, when available.
	// Absent on most payloads; the matcher falls back to scanning Description.
	RequiredSkills []string `json:"required_skills,omitempty"`
	DesiredSkills  []string `json:"desired_skills,omitempty"`
}

// UnmarshalJSON accepts both snake_case and camelCase field names, since
// payloads come from scrapers that disagree on casing.
func (p *JobPayload) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	p.ID = firstString(raw, "job_id", "jobId", "id")
	p.URL = firstString(raw, "job_url", "jobUrl", "url")
	p.Title = firstString(raw, "title", "job_title", "jobTitle")
	p.Company = firstString(raw, "company", "company_name", "companyName")
	p.Location = firstString(raw, "location")
	p.WorkplaceType = firstString(raw, "workplace_type", "workplaceType")
	p.SalaryMin = firstFloatPtr(raw, "salary_min", "salaryMin")
	p.SalaryMax = firstFloatPtr(raw, "salary_max", "salaryMax")
	p.EquityMentioned = firstBoolPtr(raw, "equity_mentioned", "equityMentioned")
	p.BonusMentioned = firstBoolPtr(raw, "bonus_mentioned", "bonusMentioned")
	p.Description = firstString(raw, "description", "job_description", "jobDescription")
	p.Headcount = firstIntPtr(raw, "headcount", "company_headcount", "companyHeadcount")
	p.HeadcountGrowth = firstString(raw, "headcount_growth", "headcountGrowth")
	p.CompanyStage = firstString(raw, "company_stage", "companyStage")
	p.HiringUrgency = firstString(raw, "hiring_urgency", "hiringUrgency")
	p.ApplicantCount = firstIntPtr(raw, "applicant_count", "applicantCount")
	p.FeaturedBenefits = firstStrings(raw, "featured_benefits", "featuredBenefits")
	p.RequiredSkills = firstStrings(raw, "required_skills", "requiredSkills")
	p.DesiredSkills = firstStrings(raw, "desired_skills", "desiredSkills")

	return nil
}
