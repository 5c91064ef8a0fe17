package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/jobfit/internal/config"
	"github.com/jonathan/jobfit/internal/llm"
	"github.com/jonathan/jobfit/internal/logger"
	"github.com/jonathan/jobfit/internal/observability"
	"github.com/jonathan/jobfit/internal/schemas"
	"github.com/jonathan/jobfit/internal/scoring"
	"github.com/jonathan/jobfit/internal/skills"
	"github.com/jonathan/jobfit/internal/store"
	"github.com/jonathan/jobfit/internal/types"
)

var scoreCommand = &cobra.Command{
	Use:   "score",
	Short: "Score one or more job postings against a profile",
	Long: `Reads a job posting (or, with --batch, an array of postings) and a user
profile from JSON files, scores the fit, and prints the result as JSON.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runScoreCmd,
}

var (
	scoreConfigPath string
	scoreJobPath    string
	scoreProfile    string
	scoreBatch      bool
	scoreVerbose    bool
	scoreAPIKey     string
	scoreDBURL      string
	scoreThreshold  float64
	scoreBonus      float64
)

func init() {
	scoreCommand.Flags().StringVar(&scoreConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	scoreCommand.Flags().StringVarP(&scoreJobPath, "job", "j", "", "Path to job posting JSON file")
	scoreCommand.Flags().StringVarP(&scoreProfile, "profile", "p", "", "Path to user profile JSON file")
	scoreCommand.Flags().BoolVar(&scoreBatch, "batch", false, "Treat the job file as a JSON array of postings")
	scoreCommand.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print the formatted criterion breakdown")
	scoreCommand.Flags().StringVar(&scoreAPIKey, "api-key", "", "Gemini API Key for LLM skill extraction (optional, defaults to GEMINI_API_KEY env var)")
	scoreCommand.Flags().StringVar(&scoreDBURL, "db-url", "", "PostgreSQL connection URL for score persistence (optional, defaults to DATABASE_URL env var)")
	scoreCommand.Flags().Float64Var(&scoreThreshold, "similarity-threshold", 0, "Fuzzy skill match cutoff (0.0-1.0)")
	scoreCommand.Flags().Float64Var(&scoreBonus, "desired-bonus", 0, "Fraction of the required-skill shortfall recoverable via desired skills")

	rootCmd.AddCommand(scoreCommand)
}

func runScoreCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := mergedScoreConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Job == "" {
		return fmt.Errorf("--job is required (or set 'job' in the config file)")
	}
	if cfg.Profile == "" {
		return fmt.Errorf("--profile is required (or set 'profile' in the config file)")
	}

	log, err := logger.New(false, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	engine, closeLLM, err := buildEngine(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeLLM()

	jobs, err := loadJobs(cfg.Job, scoreBatch)
	if err != nil {
		return err
	}
	profile, err := loadProfile(cfg.Profile)
	if err != nil {
		return err
	}

	results, err := engine.ScoreBatch(ctx, jobs, profile)
	if err != nil {
		return fmt.Errorf("scoring failed: %w", err)
	}

	if cfg.DatabaseURL != "" {
		if err := persistResults(ctx, cfg.DatabaseURL, results, log); err != nil {
			log.Warn("score persistence failed", zap.Error(err))
		}
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		for _, result := range results {
			printer.PrintResult(result)
		}
	}

	return printResults(results, scoreBatch)
}

// mergedScoreConfig layers the config file, environment, and CLI flags in
// ascending priority.
func mergedScoreConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if scoreConfigPath != "" {
		loaded, err := config.LoadConfig(scoreConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	cfg.FromEnv()

	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("job") {
		cfg.Job = scoreJobPath
	}
	if cmd.Flags().Changed("profile") {
		cfg.Profile = scoreProfile
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = scoreAPIKey
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = scoreDBURL
	}
	if cmd.Flags().Changed("similarity-threshold") {
		cfg.SimilarityThreshold = scoreThreshold
	}
	if cmd.Flags().Changed("desired-bonus") {
		cfg.DesiredSkillBonus = scoreBonus
	}
	if scoreVerbose {
		cfg.Verbose = true
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// buildEngine constructs the scoring engine, attaching the LLM extractor
// when an API key is available. The returned func closes the LLM client.
func buildEngine(ctx context.Context, cfg config.Config, log *zap.Logger) (*scoring.Engine, func(), error) {
	scoringCfg := scoring.DefaultConfig()
	if cfg.SimilarityThreshold > 0 {
		scoringCfg.SimilarityThreshold = cfg.SimilarityThreshold
	}
	if cfg.DesiredSkillBonus > 0 {
		scoringCfg.DesiredBonus = cfg.DesiredSkillBonus
	}

	opts := []scoring.Option{scoring.WithLogger(log)}
	closeLLM := func() {}

	if cfg.APIKey != "" {
		llmCfg := llm.DefaultConfig()
		if cfg.Model != "" {
			llmCfg.Model = cfg.Model
		}
		client, err := llm.NewGeminiClient(ctx, llmCfg, cfg.APIKey)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
		opts = append(opts, scoring.WithExtractor(skills.NewGeminiExtractor(client)))
		closeLLM = func() { _ = client.Close() }
	}

	engine, err := scoring.New(scoringCfg, opts...)
	if err != nil {
		closeLLM()
		return nil, nil, err
	}
	return engine, closeLLM, nil
}

// loadJobs reads one posting, or an array of postings with batch set. Every
// posting is schema-validated before decoding.
func loadJobs(path string, batch bool) ([]*types.JobPayload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file: %w", err)
	}

	var raws []json.RawMessage
	if batch {
		if err := json.Unmarshal(data, &raws); err != nil {
			return nil, fmt.Errorf("failed to parse job array: %w", err)
		}
		if len(raws) == 0 {
			return nil, fmt.Errorf("job file contains no postings")
		}
	} else {
		raws = []json.RawMessage{data}
	}

	jobs := make([]*types.JobPayload, 0, len(raws))
	for i, raw := range raws {
		if err := schemas.ValidateJobPayload(raw); err != nil {
			return nil, fmt.Errorf("invalid job at index %d: %w", i, err)
		}
		var job types.JobPayload
		if err := json.Unmarshal(raw, &job); err != nil {
			return nil, fmt.Errorf("failed to parse job at index %d: %w", i, err)
		}
		jobs = append(jobs, &job)
	}
	return jobs, nil
}

func loadProfile(path string) (*types.UserProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}
	if err := schemas.ValidateUserProfile(data); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}

	var profile types.UserProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	return &profile, nil
}

func persistResults(ctx context.Context, databaseURL string, results []*types.ScoreResult, log *zap.Logger) error {
	db, err := store.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	for _, result := range results {
		if err := db.SaveScore(ctx, store.Flatten(result)); err != nil {
			log.Warn("failed to save score",
				zap.String("score_id", result.ScoreID),
				zap.Error(err),
			)
		}
	}
	return nil
}

// printResults writes the JSON results to stdout: a single object for one
// posting, an array for batch runs.
func printResults(results []*types.ScoreResult, batch bool) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	if !batch && len(results) == 1 {
		return enc.Encode(results[0])
	}
	return enc.Encode(results)
}
