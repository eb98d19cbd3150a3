package service

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/dyslexiaid/dyslexiaid-go/internal/model"
	"github.com/dyslexiaid/dyslexiaid-go/internal/repository"
)

var (
	ErrResultFieldsMissing = errors.New("Missing required test result data")
	ErrResultBadFormat     = errors.New("Invalid data types or format for score, misses, or accuracy")
)

// ResultService handles test result submission business logic.
type ResultService struct {
	repo *repository.ResultRepository
}

// NewResultService creates a new ResultService.
func NewResultService(repo *repository.ResultRepository) *ResultService {
	return &ResultService{repo: repo}
}

// Submit validates and stores a test result for the user. The store keeps
// one row per (user, test); a repeat submission overwrites the earlier one.
func (s *ResultService) Submit(ctx context.Context, userID string, req model.SubmitResultRequest) (model.TestResult, error) {
	if strings.TrimSpace(req.TestName) == "" || req.Score == nil || req.Misses == nil || req.Accuracy == nil {
		return model.TestResult{}, ErrResultFieldsMissing
	}

	score := req.Score.Float64()
	misses := req.Misses.Float64()
	accuracy := req.Accuracy.Float64()

	if math.IsNaN(score) || math.IsNaN(misses) || math.IsNaN(accuracy) ||
		math.IsInf(score, 0) || math.IsInf(misses, 0) || math.IsInf(accuracy, 0) {
		return model.TestResult{}, ErrResultBadFormat
	}
	if score < 0 || misses < 0 || score != math.Trunc(score) || misses != math.Trunc(misses) {
		return model.TestResult{}, ErrResultBadFormat
	}
	// Counts must fit the store's integer column; past this they cannot be
	// real attempt counts anyway.
	if score > math.MaxInt32 || misses > math.MaxInt32 {
		return model.TestResult{}, ErrResultBadFormat
	}
	if accuracy < 0 || accuracy > 100 {
		return model.TestResult{}, ErrResultBadFormat
	}

	result := model.TestResult{
		UserID:   userID,
		TestName: strings.TrimSpace(req.TestName),
		Score:    int(score),
		Misses:   int(misses),
		Accuracy: accuracy,
	}

	if err := s.repo.Upsert(ctx, &result); err != nil {
		return model.TestResult{}, err
	}

	return result, nil
}

// List returns all stored results for the user, most recent first.
func (s *ResultService) List(ctx context.Context, userID string) ([]model.TestResult, error) {
	return s.repo.ListByUser(ctx, userID)
}
