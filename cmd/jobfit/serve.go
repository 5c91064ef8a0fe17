package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobfit/internal/config"
	"github.com/jonathan/jobfit/internal/llm"
	"github.com/jonathan/jobfit/internal/logger"
	"github.com/jonathan/jobfit/internal/scoring"
	"github.com/jonathan/jobfit/internal/server"
	"github.com/jonathan/jobfit/internal/skills"
)

var (
	servePort       int
	serveConfigPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server exposing scoring endpoints. Postgres persistence and Redis caching are enabled when DATABASE_URL and REDIS_URL are configured.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	var cfg config.Config
	if serveConfigPath != "" {
		loaded, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}
	cfg.FromEnv()
	if cmd.Flags().Changed("port") || cfg.Port == 0 {
		cfg.Port = servePort
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(true, os.Getenv("LOG_LEVEL") == "debug")
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	scoringCfg := scoring.DefaultConfig()
	if cfg.SimilarityThreshold > 0 {
		scoringCfg.SimilarityThreshold = cfg.SimilarityThreshold
	}
	if cfg.DesiredSkillBonus > 0 {
		scoringCfg.DesiredBonus = cfg.DesiredSkillBonus
	}

	opts := []scoring.Option{scoring.WithLogger(log)}
	if cfg.APIKey != "" {
		llmCfg := llm.DefaultConfig()
		if cfg.Model != "" {
			llmCfg.Model = cfg.Model
		}
		client, err := llm.NewGeminiClient(ctx, llmCfg, cfg.APIKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer func() { _ = client.Close() }()
		opts = append(opts, scoring.WithExtractor(skills.NewGeminiExtractor(client)))
	}

	engine, err := scoring.New(scoringCfg, opts...)
	if err != nil {
		return err
	}

	srv, err := server.New(server.Config{
		Port:        cfg.Port,
		DatabaseURL: cfg.DatabaseURL,
		RedisURL:    cfg.RedisURL,
		CacheTTL:    time.Duration(cfg.CacheTTLHours) * time.Hour,
	}, engine, log)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
