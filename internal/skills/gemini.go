package skills

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/jonathan/jobfit/internal/llm"
)

// GeminiExtractor is an Extractor backed by an LLM client. Results are cached
// per job URL; ExtractOptions.SkipCache bypasses the cache for one call.
type GeminiExtractor struct {
	client llm.Client

	mu    sync.Mutex
	cache map[string]*ExtractedSkills
}

// NewGeminiExtractor creates an LLM-backed skill extractor.
func NewGeminiExtractor(client llm.Client) *GeminiExtractor {
	return &GeminiExtractor{
		client: client,
		cache:  make(map[string]*ExtractedSkills),
	}
}

// AnalyzeJobSkills asks the LLM which of the user's skills the description
// calls for. The caller is responsible for falling back to the keyword
// matcher on error.
func (e *GeminiExtractor) AnalyzeJobSkills(ctx context.Context, description string, opts ExtractOptions) (*ExtractedSkills, error) {
	if e.client == nil {
		return nil, fmt.Errorf("no LLM client configured")
	}
	if strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("empty job description")
	}

	if opts.JobURL != "" && !opts.SkipCache {
		e.mu.Lock()
		cached, ok := e.cache[opts.JobURL]
		e.mu.Unlock()
		if ok {
			return cached, nil
		}
	}

	response, err := e.client.GenerateJSON(ctx, buildSkillMatchPrompt(description, opts.UserSkills))
	if err != nil {
		return nil, fmt.Errorf("LLM call failed: %w", err)
	}

	extracted, err := parseSkillMatchResponse(response)
	if err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	if opts.JobURL != "" {
		e.mu.Lock()
		e.cache[opts.JobURL] = extracted
		e.mu.Unlock()
	}

	return extracted, nil
}

func buildSkillMatchPrompt(description string, userSkills []string) string {
	skillsJSON, _ := json.Marshal(userSkills)

	var sb strings.Builder
	sb.WriteString("You are an expert at reading job postings.\n")
	sb.WriteString("Given a candidate's skills and a job description, decide which skills ")
	sb.WriteString("the posting asks for (explicitly or via close synonyms) and which it does not.\n\n")
	sb.WriteString(fmt.Sprintf("Candidate skills:\n%s\n\n", string(skillsJSON)))
	sb.WriteString("Job description:\n\"\"\"\n")
	sb.WriteString(description)
	sb.WriteString("\n\"\"\"\n\n")
	sb.WriteString("Respond with ONLY this JSON object, skill names lower-cased:\n")
	sb.WriteString(`{"matched": ["..."], "missing": ["..."]}`)
	return sb.String()
}

func parseSkillMatchResponse(response string) (*ExtractedSkills, error) {
	response = strings.TrimSpace(response)
	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start == -1 || end == -1 || end <= start {
		return nil, fmt.Errorf("no JSON object found in response")
	}

	var extracted ExtractedSkills
	if err := json.Unmarshal([]byte(response[start:end+1]), &extracted); err != nil {
		return nil, fmt.Errorf("JSON parse error: %w", err)
	}

	for i, s := range extracted.Matched {
		extracted.Matched[i] = strings.ToLower(strings.TrimSpace(s))
	}
	for i, s := range extracted.Missing {
		extracted.Missing[i] = strings.ToLower(strings.TrimSpace(s))
	}

	return &extracted, nil
}
