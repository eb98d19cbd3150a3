package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitResultRequestDecodesStringAccuracy(t *testing.T) {
	// Web clients send accuracy as a toFixed string alongside numeric
	// score and misses.
	body := `{"testName":"Word Scramble","score":8,"misses":2,"accuracy":"80.00"}`

	var req SubmitResultRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	assert.Equal(t, "Word Scramble", req.TestName)
	assert.Equal(t, 8.0, req.Score.Float64())
	assert.Equal(t, 2.0, req.Misses.Float64())
	assert.Equal(t, 80.0, req.Accuracy.Float64())
}

func TestSubmitResultRequestDecodesNumericAccuracy(t *testing.T) {
	body := `{"testName":"Letter Identification","score":5,"misses":0,"accuracy":100}`

	var req SubmitResultRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	assert.Equal(t, 100.0, req.Accuracy.Float64())
}

func TestSubmitResultRequestMissingFieldsAreNil(t *testing.T) {
	body := `{"testName":"Word Scramble"}`

	var req SubmitResultRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	assert.Nil(t, req.Score)
	assert.Nil(t, req.Misses)
	assert.Nil(t, req.Accuracy)
}

func TestSubmitResultRequestRejectsNonNumericStrings(t *testing.T) {
	body := `{"testName":"Word Scramble","score":1,"misses":0,"accuracy":"lots"}`

	var req SubmitResultRequest
	assert.Error(t, json.Unmarshal([]byte(body), &req))
}

func TestNumberMarshalsAsJSONNumber(t *testing.T) {
	data, err := json.Marshal(NewNumber(80))
	require.NoError(t, err)
	assert.Equal(t, "80", string(data))
}
