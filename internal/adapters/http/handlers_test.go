package httpadapter

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/twentyfour/internal/checker"
	"svw.info/twentyfour/internal/generator"
	"svw.info/twentyfour/internal/infrastructure/storage"
	"svw.info/twentyfour/internal/solver"
	"svw.info/twentyfour/internal/usecase"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	s := solver.NewExhaustiveSolver()
	uc := usecase.NewService(
		s,
		generator.NewValidGameGenerator(s),
		checker.New(),
		storage.NewFS(t.TempDir()),
	)
	router := gin.New()
	New(uc, nil).Register(router.Group("/"))
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandleSolve(t *testing.T) {
	router := newTestRouter(t)
	w := postJSON(t, router, "/api/solve", map[string]any{"numbers": []int{2, 5, 8, 2}})
	require.Equal(t, http.StatusOK, w.Code)

	var resp solveResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 4, resp.Count)
	assert.Contains(t, resp.Solutions, "(2*(5+8))-2")
}

func TestHandleSolveEmptyResultIsOK(t *testing.T) {
	router := newTestRouter(t)
	w := postJSON(t, router, "/api/solve", map[string]any{"numbers": []int{1, 1, 1, 1}})
	require.Equal(t, http.StatusOK, w.Code)

	var resp solveResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Zero(t, resp.Count)
}

func TestHandleSolveBadInput(t *testing.T) {
	router := newTestRouter(t)
	w := postJSON(t, router, "/api/solve", map[string]any{"numbers": []int{1, 2, 3}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleDealSeeded(t *testing.T) {
	router := newTestRouter(t)
	w := postJSON(t, router, "/api/deal", map[string]any{"count": 2, "seed": 42})
	require.Equal(t, http.StatusOK, w.Code)

	var resp dealResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Games, 2)
	assert.Equal(t, int64(42), resp.Seed)
	for _, g := range resp.Games {
		assert.NotEmpty(t, g.Solutions)
	}
}

func TestHandleDealBadCount(t *testing.T) {
	router := newTestRouter(t)
	w := postJSON(t, router, "/api/deal", map[string]any{"count": -3})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleCheck(t *testing.T) {
	router := newTestRouter(t)
	w := postJSON(t, router, "/api/check", map[string]any{
		"numbers":    []int{2, 5, 8, 2},
		"expression": "(2*(5+8))-2",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp checkResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Verdict.OK)
	assert.Equal(t, "24", resp.Verdict.Value)
}

func TestHandleCheckMalformed(t *testing.T) {
	router := newTestRouter(t)
	w := postJSON(t, router, "/api/check", map[string]any{
		"numbers":    []int{2, 5, 8, 2},
		"expression": "2+(5",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSaveLoadList(t *testing.T) {
	router := newTestRouter(t)
	w := postJSON(t, router, "/api/save", map[string]any{
		"numbers":   []int{2, 5, 8, 2},
		"solutions": []string{"(2*(5+8))-2"},
		"name":      "classic",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var saved saveResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &saved))
	require.NotEmpty(t, saved.ID)

	w = postJSON(t, router, "/api/load", map[string]any{"id": saved.ID})
	require.Equal(t, http.StatusOK, w.Code)
	var loaded loadResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &loaded))
	require.NotNil(t, loaded.Game)
	assert.Equal(t, [4]int{2, 5, 8, 2}, loaded.Game.Numbers)

	req := httptest.NewRequest(http.MethodGet, "/api/list", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	var listed listResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed.Games, 1)
	assert.Equal(t, saved.ID, listed.Games[0].ID)
}
