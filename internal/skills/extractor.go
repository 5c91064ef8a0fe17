package skills

import "context"

// ExtractOptions carries per-call options for an Extractor.
type ExtractOptions struct {
	JobURL     string
	UserSkills []string
	SkipCache  bool
}

// ExtractedSkills is an extractor's verdict on the user's skills against a
// job description.
type ExtractedSkills struct {
	Matched []string `json:"matched"`
	Missing []string `json:"missing"`
}

// Extractor analyzes a job description against the user's skills. It is an
// optional collaborator: callers must fall back to the keyword matcher when
// no extractor is configured or a call fails.
type Extractor interface {
	AnalyzeJobSkills(ctx context.Context, description string, opts ExtractOptions) (*ExtractedSkills, error)
}
