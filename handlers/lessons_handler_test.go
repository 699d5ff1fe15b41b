package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLessonsReturnsSeededList(t *testing.T) {
	deps := newTestDeps(t)

	req := httptest.NewRequest(http.MethodGet, "/api/lessons", nil)
	rr := httptest.NewRecorder()
	LessonsHandler(deps)(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp LessonsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Lessons)

	// Ordered by sequence number.
	for i := 1; i < len(resp.Lessons); i++ {
		assert.Less(t, resp.Lessons[i-1].Seqno, resp.Lessons[i].Seqno)
	}
}

func TestLessonsWrapsListInObject(t *testing.T) {
	deps := newTestDeps(t)

	req := httptest.NewRequest(http.MethodGet, "/api/lessons", nil)
	rr := httptest.NewRecorder()
	LessonsHandler(deps)(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &raw))
	assert.Contains(t, raw, "lessons")
}
