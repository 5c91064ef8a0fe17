package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool for score persistence.
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool.
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// SaveScore persists a flattened score record. Re-saving the same score_id
// is a no-op: results are immutable once written.
func (db *DB) SaveScore(ctx context.Context, record Record) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO scores (score_id, job_id, scored_at, overall_score, overall_label,
		                     job_to_user_score, user_to_job_score, matched_skills,
		                     missing_skills, action, summary, deal_breaker)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 ON CONFLICT (score_id) DO NOTHING`,
		record.ScoreID, record.JobID, record.Timestamp, record.OverallScore,
		record.OverallLabel, record.JobToUserScore, record.UserToJobScore,
		record.MatchedSkills, record.MissingSkills, record.Action,
		record.Summary, record.DealBreaker,
	)
	if err != nil {
		return fmt.Errorf("failed to save score: %w", err)
	}
	return nil
}

// GetScore retrieves a flattened score record by its ID. Returns nil when no
// record exists.
func (db *DB) GetScore(ctx context.Context, scoreID string) (*Record, error) {
	var r Record
	err := db.pool.QueryRow(ctx,
		`SELECT score_id, job_id, scored_at, overall_score, overall_label,
		        job_to_user_score, user_to_job_score, matched_skills,
		        missing_skills, action, summary, deal_breaker
		 FROM scores WHERE score_id = $1`,
		scoreID,
	).Scan(&r.ScoreID, &r.JobID, &r.Timestamp, &r.OverallScore, &r.OverallLabel,
		&r.JobToUserScore, &r.UserToJobScore, &r.MatchedSkills,
		&r.MissingSkills, &r.Action, &r.Summary, &r.DealBreaker)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get score: %w", err)
	}
	return &r, nil
}

// ListScoresByJob retrieves all score records for a job, newest first.
func (db *DB) ListScoresByJob(ctx context.Context, jobID string) ([]Record, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT score_id, job_id, scored_at, overall_score, overall_label,
		        job_to_user_score, user_to_job_score, matched_skills,
		        missing_skills, action, summary, deal_breaker
		 FROM scores WHERE job_id = $1 ORDER BY scored_at DESC`,
		jobID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list scores: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ScoreID, &r.JobID, &r.Timestamp, &r.OverallScore,
			&r.OverallLabel, &r.JobToUserScore, &r.UserToJobScore,
			&r.MatchedSkills, &r.MissingSkills, &r.Action, &r.Summary,
			&r.DealBreaker); err != nil {
			return nil, fmt.Errorf("failed to scan score row: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
