package scoring

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/jobfit/internal/criteria"
	"github.com/jonathan/jobfit/internal/interpret"
	"github.com/jonathan/jobfit/internal/skills"
	"github.com/jonathan/jobfit/internal/taxonomy"
	"github.com/jonathan/jobfit/internal/types"
)

// Engine evaluates jobs against a user profile. It holds no per-call state:
// one Engine may score many jobs concurrently.
type Engine struct {
	cfg       Config
	matcher   *skills.Matcher
	extractor skills.Extractor
	logger    *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithExtractor injects the optional LLM-backed skill extractor. The engine
// falls back to the keyword matcher whenever it fails.
func WithExtractor(extractor skills.Extractor) Option {
	return func(e *Engine) { e.extractor = extractor }
}

// WithLogger injects a logger for non-fatal events such as extractor
// fallbacks. The scoring math never logs.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithTaxonomy replaces the built-in skill catalog.
func WithTaxonomy(tax *taxonomy.Taxonomy) Option {
	return func(e *Engine) {
		e.matcher = skills.NewMatcher(skills.NewNormalizer(tax), nil, e.cfg.SimilarityThreshold)
	}
}

// WithSimilarity swaps the fuzzy-tier similarity function.
func WithSimilarity(sim skills.Similarity) Option {
	return func(e *Engine) {
		e.matcher = skills.NewMatcher(e.matcher.Normalizer(), sim, e.cfg.SimilarityThreshold)
	}
}

// New creates an Engine with the given tuning profile. The config is
// validated here so a malformed weight table fails construction instead of
// silently scaling scores.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scoring config: %w", err)
	}

	e := &Engine{
		cfg:     cfg,
		matcher: skills.NewMatcher(nil, nil, cfg.SimilarityThreshold),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// ScoreJob evaluates one job against the profile and returns the terminal
// ScoreResult. Criterion scores are always computed, even when a
// deal-breaker fires, so callers can show why a job was rejected.
func (e *Engine) ScoreJob(ctx context.Context, job *types.JobPayload, profile *types.UserProfile) (*types.ScoreResult, error) {
	if job == nil {
		return nil, fmt.Errorf("job payload is nil")
	}
	if profile == nil {
		return nil, fmt.Errorf("user profile is nil")
	}

	jobToUser := e.aggregate(e.evalJobToUser(job, profile), e.cfg.JobToUserWeights, jobToUserOrder)
	userToJob := e.aggregate(e.evalUserToJob(ctx, job, profile), e.cfg.UserToJobWeights, userToJobOrder)

	overall := jobToUser.Score + userToJob.Score
	label := e.cfg.OverallLabelFor(overall)
	interpretation := interpret.Generate(jobToUser, userToJob, overall, label)

	result := &types.ScoreResult{
		ScoreID:        uuid.NewString(),
		JobID:          job.ID,
		Timestamp:      time.Now().UTC(),
		OverallScore:   overall,
		OverallLabel:   label,
		JobToUserFit:   jobToUser,
		UserToJobFit:   userToJob,
		Interpretation: interpretation,
	}

	if gate := EvaluateDealBreakers(job, profile); gate.Triggered {
		result.OverallLabel = types.HardNo
		result.DealBreakerTriggered = gate.Tag
		result.Interpretation = interpret.GenerateRejection(gate.Reason)
	}

	return result, nil
}

// ScoreBatch scores many jobs concurrently against one profile. The engine
// is stateless, so the only coordination needed is the errgroup itself.
func (e *Engine) ScoreBatch(ctx context.Context, jobs []*types.JobPayload, profile *types.UserProfile) ([]*types.ScoreResult, error) {
	results := make([]*types.ScoreResult, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	for i, job := range jobs {
		g.Go(func() error {
			result, err := e.ScoreJob(ctx, job, profile)
			if err != nil {
				return fmt.Errorf("job %d: %w", i, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (e *Engine) evalJobToUser(job *types.JobPayload, profile *types.UserProfile) []types.CriterionResult {
	return []types.CriterionResult{
		criteria.ScoreSalary(job, profile),
		criteria.ScoreWorkplaceType(job, profile),
		criteria.ScoreEquityBonus(job, profile),
		criteria.ScoreBenefits(job, profile),
		criteria.ScoreBusinessLifecycle(job, profile),
		criteria.ScoreOrgStability(job, profile),
		criteria.ScoreHiringUrgency(job, profile),
	}
}

func (e *Engine) evalUserToJob(ctx context.Context, job *types.JobPayload, profile *types.UserProfile) []types.CriterionResult {
	return []types.CriterionResult{
		criteria.ScoreSkillMatch(ctx, job, profile, criteria.SkillMatchDeps{
			Matcher:      e.matcher,
			Extractor:    e.extractor,
			Logger:       e.logger,
			DesiredBonus: e.cfg.DesiredBonus,
		}),
		criteria.ScoreTitleSeniority(job, profile),
		criteria.ScoreExperienceLevel(job, profile),
		criteria.ScoreIndustryAlignment(job, profile),
	}
}

// aggregate computes the weighted sub-score. Results arrive in the same
// order as the weight table's criterion list; each criterion's weight is
// recorded on its breakdown entry.
func (e *Engine) aggregate(results []types.CriterionResult, weights map[string]float64, order []string) types.FitResult {
	weighted := 0.0
	for i := range results {
		w := weights[order[i]]
		results[i].Weight = w
		weighted += float64(results[i].Score) * w
	}

	score := int(math.Round(weighted))
	return types.FitResult{
		Score:     score,
		Label:     e.cfg.fitLabelFor(score),
		Breakdown: results,
	}
}
