package node

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApiServer_Rank(t *testing.T) {
	e := NewApiServer(testNode())
	body := `{"id": "web", "corpus": {"a": ["b"], "b": ["a"]}, "config": {"samples": 100}, "seed": 3}`
	req := httptest.NewRequest(http.MethodPost, "/rank", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var result Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "web", result.Id)
	assert.InDelta(t, 0.5, result.Iteration["a"], 1e-3)
	assert.InDelta(t, 0.5, result.Iteration["b"], 1e-3)
	assert.InDelta(t, 1.0, result.Sampling.Sum(), 1e-9)
}

func TestApiServer_GetResult(t *testing.T) {
	e := NewApiServer(testNode())
	body := `{"id": "stored", "corpus": {"a": ["b"], "b": []}, "config": {"samples": 10}}`
	req := httptest.NewRequest(http.MethodPost, "/rank", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rank/stored", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var result Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "stored", result.Id)
	assert.Len(t, result.Iteration, 2)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rank/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestApiServer_RankErrors(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"malformed", `{"corpus": `},
		{"empty corpus", `{"corpus": {}}`},
		{"bad damping", `{"corpus": {"a": []}, "config": {"damping": 3}}`},
	}

	e := NewApiServer(testNode())
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/rank", strings.NewReader(c.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestApiServer_Health(t *testing.T) {
	e := NewApiServer(testNode())
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
