package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/jonathan/jobfit/internal/schemas"
	"github.com/jonathan/jobfit/internal/store"
	"github.com/jonathan/jobfit/internal/types"
)

// ScoreRequest carries one job posting and the profile to score it against.
// Raw JSON is kept so inputs can be schema-validated before decoding.
type ScoreRequest struct {
	Job       json.RawMessage `json:"job" validate:"required"`
	Profile   json.RawMessage `json:"profile" validate:"required"`
	SkipCache bool            `json:"skip_cache,omitempty"`
}

// BatchScoreRequest carries multiple job postings scored against one profile.
type BatchScoreRequest struct {
	Jobs    []json.RawMessage `json:"jobs" validate:"required,min=1,max=50"`
	Profile json.RawMessage   `json:"profile" validate:"required"`
}

// handleScore scores a single job posting against a profile.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Missing required fields: "+err.Error())
		return
	}

	job, profile, verr := decodeScoreInputs(req.Job, req.Profile)
	if verr != nil {
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return
	}

	cacheKey := ""
	if s.cache != nil && !req.SkipCache {
		cacheKey = store.CacheKey(jobCacheKey(job), profile)
		if cached, err := s.cache.Get(ctx, cacheKey); err != nil {
			s.logger.Warn("cache read failed", zap.Error(err))
		} else if cached != nil {
			s.jsonResponse(w, http.StatusOK, cached)
			return
		}
	}

	result, err := s.engine.ScoreJob(ctx, job, profile)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Scoring failed: "+err.Error())
		return
	}

	if cacheKey != "" {
		if err := s.cache.Set(ctx, cacheKey, result); err != nil {
			s.logger.Warn("cache write failed", zap.Error(err))
		}
	}
	s.persistScore(r, result)

	s.jsonResponse(w, http.StatusOK, result)
}

// handleScoreBatch scores multiple job postings against one profile.
func (s *Server) handleScoreBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req BatchScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Missing required fields: "+err.Error())
		return
	}

	if err := schemas.ValidateUserProfile(req.Profile); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid profile: "+err.Error())
		return
	}
	var profile types.UserProfile
	if err := json.Unmarshal(req.Profile, &profile); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid profile: "+err.Error())
		return
	}

	jobs := make([]*types.JobPayload, 0, len(req.Jobs))
	for i, raw := range req.Jobs {
		if err := schemas.ValidateJobPayload(raw); err != nil {
			s.errorResponse(w, http.StatusBadRequest,
				"Invalid job at index "+strconv.Itoa(i)+": "+err.Error())
			return
		}
		var job types.JobPayload
		if err := json.Unmarshal(raw, &job); err != nil {
			s.errorResponse(w, http.StatusBadRequest,
				"Invalid job at index "+strconv.Itoa(i)+": "+err.Error())
			return
		}
		jobs = append(jobs, &job)
	}

	results, err := s.engine.ScoreBatch(ctx, jobs, &profile)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Scoring failed: "+err.Error())
		return
	}

	for _, result := range results {
		s.persistScore(r, result)
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"results": results,
		"count":   len(results),
	})
}

// handleGetScore retrieves a stored score by its ID.
func (s *Server) handleGetScore(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		err := &ErrStoreUnavailable{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	scoreID := r.PathValue("id")
	record, err := s.db.GetScore(r.Context(), scoreID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if record == nil {
		notFound := &ErrScoreNotFound{ScoreID: scoreID}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, record)
}

// handleListJobScores lists stored scores for one job, newest first.
func (s *Server) handleListJobScores(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		err := &ErrStoreUnavailable{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	jobID := r.PathValue("id")
	records, err := s.db.ListScoresByJob(r.Context(), jobID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"scores": records,
		"count":  len(records),
	})
}

// decodeScoreInputs schema-validates and decodes the raw job and profile.
func decodeScoreInputs(rawJob, rawProfile json.RawMessage) (*types.JobPayload, *types.UserProfile, *ErrValidation) {
	if err := schemas.ValidateJobPayload(rawJob); err != nil {
		return nil, nil, &ErrValidation{Field: "job", Message: err.Error()}
	}
	if err := schemas.ValidateUserProfile(rawProfile); err != nil {
		return nil, nil, &ErrValidation{Field: "profile", Message: err.Error()}
	}

	var job types.JobPayload
	if err := json.Unmarshal(rawJob, &job); err != nil {
		return nil, nil, &ErrValidation{Field: "job", Message: err.Error()}
	}
	var profile types.UserProfile
	if err := json.Unmarshal(rawProfile, &profile); err != nil {
		return nil, nil, &ErrValidation{Field: "profile", Message: err.Error()}
	}

	return &job, &profile, nil
}

// persistScore saves a result when a store is configured. Persistence
// failures never fail the scoring request.
func (s *Server) persistScore(r *http.Request, result *types.ScoreResult) {
	if s.db == nil {
		return
	}
	if err := s.db.SaveScore(r.Context(), store.Flatten(result)); err != nil {
		s.logger.Warn("failed to persist score",
			zap.String("score_id", result.ScoreID),
			zap.Error(err),
		)
	}
}

// jobCacheKey picks the most stable identity a payload carries.
func jobCacheKey(job *types.JobPayload) string {
	if job.URL != "" {
		return job.URL
	}
	if job.ID != "" {
		return job.ID
	}
	return job.Title + "|" + job.Company
}

