package server

import (
	"fmt"
	"net/http"
)

// ErrScoreNotFound indicates no stored score exists for the requested ID
type ErrScoreNotFound struct {
	ScoreID string
}

func (e *ErrScoreNotFound) Error() string {
	return fmt.Sprintf("score not found: %s", e.ScoreID)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrStoreUnavailable indicates the server runs without a configured score store
type ErrStoreUnavailable struct{}

func (e *ErrStoreUnavailable) Error() string {
	return "score store is not configured"
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrScoreNotFound:
		return http.StatusNotFound
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrStoreUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
