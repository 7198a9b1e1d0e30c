package utils

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON_Success(t *testing.T) {
	rr := httptest.NewRecorder()

	n, err := WriteJSON(rr, map[string]string{"status": "ok"}, 200)
	require.NoError(t, err)
	assert.Positive(t, n)
	assert.Equal(t, 200, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestWriteJSON_MarshalError(t *testing.T) {
	rr := httptest.NewRecorder()

	// channels are not JSON-serializable
	_, err := WriteJSON(rr, make(chan int), 200)
	assert.Error(t, err)
	assert.Equal(t, 500, rr.Code)
}

func TestWriteJSONMessage(t *testing.T) {
	rr := httptest.NewRecorder()

	WriteJSONMessage(rr, "Task not found", 404)
	assert.Equal(t, 404, rr.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "Task not found", body["message"])
}
