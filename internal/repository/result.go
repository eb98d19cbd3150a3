package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dyslexiaid/dyslexiaid-go/internal/model"
)

// ErrNoRowReturned is reported when an upsert succeeds but yields no row.
var ErrNoRowReturned = errors.New("upsert returned no row")

// ResultRepository handles test result persistence operations.
type ResultRepository struct {
	db *pgxpool.Pool
}

// NewResultRepository creates a new ResultRepository.
func NewResultRepository(db *pgxpool.Pool) *ResultRepository {
	return &ResultRepository{db: db}
}

// Upsert inserts a test result or, when a row for (user_id, test_name)
// already exists, overwrites its score, misses, accuracy and timestamp.
// Only the most recent attempt per test is kept.
func (r *ResultRepository) Upsert(ctx context.Context, result *model.TestResult) error {
	query := `
		INSERT INTO test_results (user_id, test_name, score, misses, accuracy)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, test_name)
		DO UPDATE SET
			score      = EXCLUDED.score,
			misses     = EXCLUDED.misses,
			accuracy   = EXCLUDED.accuracy,
			updated_at = CURRENT_TIMESTAMP
		RETURNING id, updated_at`

	err := r.db.QueryRow(ctx, query,
		result.UserID, result.TestName, result.Score, result.Misses, result.Accuracy,
	).Scan(&result.ID, &result.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNoRowReturned
		}
		return err
	}

	return nil
}

// ListByUser retrieves all stored results for a user, most recent first.
func (r *ResultRepository) ListByUser(ctx context.Context, userID string) ([]model.TestResult, error) {
	query := `SELECT id, user_id, test_name, score, misses, accuracy, updated_at
		FROM test_results WHERE user_id = $1 ORDER BY updated_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []model.TestResult
	for rows.Next() {
		var res model.TestResult
		if err := rows.Scan(
			&res.ID, &res.UserID, &res.TestName,
			&res.Score, &res.Misses, &res.Accuracy, &res.UpdatedAt,
		); err != nil {
			return nil, err
		}
		results = append(results, res)
	}

	return results, rows.Err()
}
