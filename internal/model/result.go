package model

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"
)

// TestResult represents one stored attempt per (user, test) pair. Repeat
// submissions overwrite the row, so only the latest attempt survives.
type TestResult struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"userId"`
	TestName  string    `json:"testName"`
	Score     int       `json:"score"`
	Misses    int       `json:"misses"`
	Accuracy  float64   `json:"accuracy"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SubmitResultRequest represents a test result submission.
type SubmitResultRequest struct {
	TestName string  `json:"testName"`
	Score    *Number `json:"score"`
	Misses   *Number `json:"misses"`
	Accuracy *Number `json:"accuracy"`
}

// SubmitResultResponse wraps the stored row returned after an upsert.
type SubmitResultResponse struct {
	Message string     `json:"message"`
	Result  TestResult `json:"result"`
}

// Number is a float64 that unmarshals from either a JSON number or a
// numeric string. Clients format accuracy with toFixed-style rounding and
// send it as a string, while score and misses arrive as plain numbers.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*n = Number(v)
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(n))
}

func (n Number) Float64() float64 { return float64(n) }

// NewNumber wraps a float64 for use in a request literal.
func NewNumber(v float64) *Number {
	n := Number(v)
	return &n
}
