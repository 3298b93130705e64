package ui

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"thyroidrisk/domain/core"
	"thyroidrisk/domain/dataset"
	"thyroidrisk/internal/errors"
	"thyroidrisk/internal/loader"
	"thyroidrisk/internal/views"
)

type MockLoadHistory struct {
	mock.Mock
}

func (m *MockLoadHistory) Record(ctx context.Context, record *dataset.LoadRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockLoadHistory) ListRecent(ctx context.Context, limit int) ([]*dataset.LoadRecord, error) {
	args := m.Called(ctx, limit)
	records, _ := args.Get(0).([]*dataset.LoadRecord)
	return records, args.Error(1)
}

func TestAPIPages(t *testing.T) {
	h := newTestServer(t, newTestCache(t.TempDir()), nil)

	rec := get(t, h, "/api/pages")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var pages []pageSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pages))
	require.Len(t, pages, len(views.Pages()))
	assert.Equal(t, pageSummary{Slug: "overview", Title: "Overview", Icon: "📊"}, pages[0])
	assert.Equal(t, "key-insights", pages[5].Slug)
}

func TestAPIPageView(t *testing.T) {
	h := newTestServer(t, newTestCache(t.TempDir()), nil)

	rec := get(t, h, "/api/pages/data-exploration")
	require.Equal(t, http.StatusOK, rec.Code)

	var view struct {
		Page   string `json:"page"`
		Title  string `json:"title"`
		Blocks []struct {
			Kind string `json:"kind"`
		} `json:"blocks"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, "data-exploration", view.Page)
	assert.Equal(t, "Data Exploration", view.Title)
	require.NotEmpty(t, view.Blocks)
	assert.Equal(t, "header", view.Blocks[0].Kind)
}

func TestAPIUnknownPage(t *testing.T) {
	h := newTestServer(t, newTestCache(t.TempDir()), nil)

	rec := get(t, h, "/api/pages/nowhere")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, errors.CodeNotFound, resp.Code)
}

func TestAPIPageFailedLoad(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "original.csv"), []byte("a,b\n\"broken\n"), 0o644))
	h := newTestServer(t, newTestCache(dir), nil)

	rec := get(t, h, "/api/pages/overview")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, errors.CodeLoadFailed, resp.Code)
	require.Len(t, resp.Notices, 1)
	assert.Equal(t, loader.LevelError, resp.Notices[0].Level)
}

func TestAPIStatus(t *testing.T) {
	h := newTestServer(t, newTestCache(t.TempDir()), nil)

	var before loader.Status
	require.NoError(t, json.Unmarshal(get(t, h, "/api/status").Body.Bytes(), &before))
	assert.False(t, before.Loaded)
	assert.Empty(t, before.Notices)

	get(t, h, "/api/pages/overview")

	var after loader.Status
	require.NoError(t, json.Unmarshal(get(t, h, "/api/status").Body.Bytes(), &after))
	assert.True(t, after.Loaded)
	assert.Equal(t, "sample", after.Source)
	assert.Equal(t, 100, after.Rows)
	assert.Equal(t, 7, after.Columns)
	assert.NotEmpty(t, after.LoadID)
	assert.Equal(t, []loader.Notice{
		{Level: loader.LevelError, Message: loader.MsgCreatingSample},
	}, after.Notices)
}

func TestAPILoadsWithoutHistory(t *testing.T) {
	h := newTestServer(t, newTestCache(t.TempDir()), nil)

	rec := get(t, h, "/api/loads")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestAPILoads(t *testing.T) {
	loadedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	records := []*dataset.LoadRecord{{
		ID:       core.LoadID("0190f6a2-8a6b-7c3e-9d1f-2b4c6d8e0f12"),
		Source:   "thyroid_cancer_risk_data.csv",
		Rows:     212691,
		Columns:  17,
		Notices:  []string{"success: " + loader.MsgLoadedOriginal},
		LoadedAt: loadedAt,
	}}

	tests := []struct {
		name   string
		query  string
		limit  int
		status int
	}{
		{name: "default limit", query: "", limit: defaultLoadsLimit, status: http.StatusOK},
		{name: "explicit limit", query: "?limit=5", limit: 5, status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			history := &MockLoadHistory{}
			history.On("ListRecent", mock.Anything, tt.limit).Return(records, nil)
			h := newTestServer(t, newTestCache(t.TempDir()), history)

			rec := get(t, h, "/api/loads"+tt.query)
			require.Equal(t, tt.status, rec.Code)

			var got []*dataset.LoadRecord
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, records, got)
			history.AssertExpectations(t)
		})
	}
}

func TestAPILoadsErrors(t *testing.T) {
	t.Run("invalid limit", func(t *testing.T) {
		h := newTestServer(t, newTestCache(t.TempDir()), &MockLoadHistory{})

		for _, q := range []string{"?limit=0", "?limit=-3", "?limit=ten"} {
			rec := get(t, h, "/api/loads"+q)
			assert.Equal(t, http.StatusBadRequest, rec.Code, q)
		}
	})

	t.Run("repository failure", func(t *testing.T) {
		history := &MockLoadHistory{}
		history.On("ListRecent", mock.Anything, defaultLoadsLimit).
			Return(nil, errors.DatabaseError("list loads", fmt.Errorf("connection refused")))
		h := newTestServer(t, newTestCache(t.TempDir()), history)

		rec := get(t, h, "/api/loads")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		var resp errorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, errors.CodeDatabaseError, resp.Code)
	})
}
