package ui

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thyroidrisk/adapters/datareadiness/synthesizer"
	"thyroidrisk/internal/loader"
	"thyroidrisk/internal/views"
	"thyroidrisk/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestCache builds a cache over dir/cleaned.csv and dir/original.csv
func newTestCache(dir string) *loader.Cache {
	l := &loader.Loader{
		Primary:  filepath.Join(dir, "cleaned.csv"),
		Fallback: filepath.Join(dir, "original.csv"),
		Sample:   synthesizer.DefaultSynthesisConfig(),
	}
	return loader.NewCache(l, nil)
}

func newTestServer(t *testing.T, cache *loader.Cache, history ports.LoadHistoryRepository) http.Handler {
	t.Helper()
	srv, err := NewServer(cache, views.NewRouter(10), history, Assets)
	require.NoError(t, err)
	return srv.Handler()
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestIndexRedirectsToOverview(t *testing.T) {
	h := newTestServer(t, newTestCache(t.TempDir()), nil)

	rec := get(t, h, "/")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/page/overview", rec.Header().Get("Location"))
}

func TestUnknownPageRedirectsToOverview(t *testing.T) {
	h := newTestServer(t, newTestCache(t.TempDir()), nil)

	rec := get(t, h, "/page/nowhere")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/page/overview", rec.Header().Get("Location"))
}

func TestEveryPageRendersWithSampleData(t *testing.T) {
	h := newTestServer(t, newTestCache(t.TempDir()), nil)

	for _, page := range views.Pages() {
		t.Run(page.Slug(), func(t *testing.T) {
			rec := get(t, h, "/page/"+page.Slug())
			require.Equal(t, http.StatusOK, rec.Code)

			body := rec.Body.String()
			assert.Contains(t, body, "Thyroid Cancer Risk Analysis Dashboard")
			assert.Contains(t, body, loader.MsgCreatingSample)
			assert.Contains(t, body, msgDashboardLoaded)
			assert.Contains(t, body, `data-page="`+page.Slug()+`"`)
			assert.Contains(t, body, `class="active"`)
			assert.Contains(t, body, "</html>")
		})
	}
}

func TestOverviewPageContent(t *testing.T) {
	dir := t.TempDir()
	csv := "Age,Thyroid Cancer Risk\n40,High\n52,Low\n61,High\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cleaned.csv"), []byte(csv), 0o644))
	h := newTestServer(t, newTestCache(dir), nil)

	body := get(t, h, "/page/overview").Body.String()
	assert.Contains(t, body, loader.MsgLoadedCleaned)
	assert.Contains(t, body, "High Risk Cases")
	assert.Contains(t, body, "About This Analysis")
	assert.NotContains(t, body, loader.MsgCreatingSample)
}

func TestChartsAreEmbeddedAsSVG(t *testing.T) {
	h := newTestServer(t, newTestCache(t.TempDir()), nil)

	body := get(t, h, "/page/demographic-analysis").Body.String()
	assert.Contains(t, body, "<svg")
	assert.NotContains(t, body, "&lt;svg")
}

func TestFailedLoadRendersErrorOnly(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cleaned.csv"), []byte("a,b\n\"broken\n"), 0o644))
	h := newTestServer(t, newTestCache(dir), nil)

	rec := get(t, h, "/page/overview")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "Error loading data:")
	assert.Contains(t, body, "notice-error")
	assert.NotContains(t, body, msgDashboardLoaded)
	assert.NotContains(t, body, `class="view"`)
}

func TestHealth(t *testing.T) {
	cache := newTestCache(t.TempDir())
	h := newTestServer(t, cache, nil)

	rec := get(t, h, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","loaded":false}`, rec.Body.String())

	get(t, h, "/page/overview")
	assert.JSONEq(t, `{"status":"ok","loaded":true}`, get(t, h, "/healthz").Body.String())
}

func TestStaticAssets(t *testing.T) {
	h := newTestServer(t, newTestCache(t.TempDir()), nil)

	rec := get(t, h, "/static/dashboard.css")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), ".sidebar")
}
