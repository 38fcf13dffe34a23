package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func TestError_Body(t *testing.T) {
	c, w := newContext()
	Error(c, http.StatusNotFound, "NOT_FOUND", "Provider not found")

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", body["code"])
	assert.Equal(t, "Provider not found", body["message"])
	assert.NotContains(t, body, "errors")
}

func TestErrorWithDetails_Body(t *testing.T) {
	c, w := newContext()
	ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", []map[string]string{{"field": "email", "message": "bad"}})

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "VALIDATION_ERROR", body["code"])
	assert.Len(t, body["errors"], 1)
}

func TestSuccess_WritesDataAsBody(t *testing.T) {
	c, w := newContext()
	Success(c, http.StatusCreated, gin.H{"message": "ok"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"message":"ok"}`, w.Body.String())
}

func TestInternal_HidesError(t *testing.T) {
	c, w := newContext()
	Internal(c, "LOAD_FAILED", errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
	require.Len(t, c.Errors, 1)
}
