package ui

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"thyroidrisk/domain/dataset"
	"thyroidrisk/internal/errors"
	"thyroidrisk/internal/loader"
	"thyroidrisk/internal/views"
	"thyroidrisk/ports"
)

const defaultLoadsLimit = 20

// API serves the dashboard views and load status as JSON
type API struct {
	router  *chi.Mux
	cache   *loader.Cache
	views   *views.Router
	history ports.LoadHistoryRepository
}

type pageSummary struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
	Icon  string `json:"icon"`
}

type errorResponse struct {
	Error   string          `json:"error"`
	Code    string          `json:"code"`
	Notices []loader.Notice `json:"notices,omitempty"`
}

// NewAPI builds the chi router. Paths are relative, the caller chooses the mount point.
func NewAPI(cache *loader.Cache, router *views.Router, history ports.LoadHistoryRepository) *API {
	a := &API{
		router:  chi.NewRouter(),
		cache:   cache,
		views:   router,
		history: history,
	}

	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)

	a.router.Get("/pages", a.handlePages)
	a.router.Get("/pages/{slug}", a.handlePage)
	a.router.Get("/status", a.handleStatus)
	a.router.Get("/loads", a.handleLoads)

	return a
}

func (a *API) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.router.ServeHTTP(w, r)
}

func (a *API) handlePages(w http.ResponseWriter, r *http.Request) {
	pages := views.Pages()
	out := make([]pageSummary, len(pages))
	for i, p := range pages {
		out[i] = pageSummary{Slug: p.Slug(), Title: p.Title(), Icon: p.Icon()}
	}
	writeJSON(w, http.StatusOK, out)
}

func (a *API) handlePage(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	page, ok := views.ParsePage(slug)
	if !ok {
		writeError(w, http.StatusNotFound, errors.NotFound("page "+strconv.Quote(slug)), nil)
		return
	}

	snap, err := a.cache.Get(r.Context())
	if err != nil {
		var notices []loader.Notice
		if failed, ok := loader.AsFailedLoad(err); ok {
			notices = failed.Notices
		}
		writeError(w, http.StatusInternalServerError, err, notices)
		return
	}

	writeJSON(w, http.StatusOK, a.views.Render(page, snap.Table))
}

func (a *API) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.cache.Status())
}

func (a *API) handleLoads(w http.ResponseWriter, r *http.Request) {
	limit := defaultLoadsLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, errors.InvalidInput("limit must be a positive integer"), nil)
			return
		}
		limit = n
	}

	if a.history == nil {
		writeJSON(w, http.StatusOK, []*dataset.LoadRecord{})
		return
	}

	records, err := a.history.ListRecent(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err, nil)
		return
	}
	if records == nil {
		records = []*dataset.LoadRecord{}
	}
	writeJSON(w, http.StatusOK, records)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[API] Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error, notices []loader.Notice) {
	writeJSON(w, status, errorResponse{
		Error:   err.Error(),
		Code:    errors.GetCode(err),
		Notices: notices,
	})
}
