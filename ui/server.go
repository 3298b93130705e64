package ui

import (
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"thyroidrisk/internal/loader"
	"thyroidrisk/internal/views"
	"thyroidrisk/ports"
)

const msgDashboardLoaded = "Dashboard loaded successfully!"

// Server is the dashboard web server
type Server struct {
	router    *gin.Engine
	cache     *loader.Cache
	views     *views.Router
	history   ports.LoadHistoryRepository
	templates *template.Template
	assets    fs.FS
}

// NewServer wires the dashboard around cache. assets must contain templates/
// and static/; pass Assets outside of tests. history may be nil.
func NewServer(cache *loader.Cache, router *views.Router, history ports.LoadHistoryRepository, assets fs.FS) (*Server, error) {
	templates, err := parseTemplates(assets)
	if err != nil {
		return nil, err
	}

	s := &Server{
		router:    gin.New(),
		cache:     cache,
		views:     router,
		history:   history,
		templates: templates,
		assets:    assets,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s, nil
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	s.router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/page/"+views.PageOverview.Slug())
	})
	s.router.GET("/page/:slug", s.handlePage)
	s.router.GET("/healthz", s.handleHealth)

	api := http.StripPrefix("/api", NewAPI(s.cache, s.views, s.history))
	s.router.Any("/api/*path", gin.WrapH(api))
}

// Handler exposes the engine for tests and custom listeners
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the web server
func (s *Server) Start(addr string) error {
	log.Printf("[Server] Dashboard listening on http://%s", addr)
	return s.router.Run(addr)
}

type navItem struct {
	Title  string
	Slug   string
	Icon   string
	Active bool
}

type pageData struct {
	Title   string
	Nav     []navItem
	Notices []loader.Notice
	View    *views.View
}

func navigation(active views.Page) []navItem {
	pages := views.Pages()
	items := make([]navItem, len(pages))
	for i, p := range pages {
		items[i] = navItem{Title: p.Title(), Slug: p.Slug(), Icon: p.Icon(), Active: p == active}
	}
	return items
}

func (s *Server) handlePage(c *gin.Context) {
	page, ok := views.ParsePage(c.Param("slug"))
	if !ok {
		c.Redirect(http.StatusFound, "/page/"+page.Slug())
		return
	}

	data := pageData{Title: page.Title(), Nav: navigation(page)}

	snap, err := s.cache.Get(c.Request.Context())
	if err != nil {
		if failed, ok := loader.AsFailedLoad(err); ok {
			data.Notices = failed.Notices
		} else {
			data.Notices = []loader.Notice{{Level: loader.LevelError, Message: fmt.Sprintf("Error loading data: %v", err)}}
		}
		log.Printf("[Server] Rendering %s without data: %v", page.Slug(), err)
		s.renderTemplate(c, http.StatusInternalServerError, "layout", data)
		return
	}

	view := s.views.Render(page, snap.Table)
	data.Notices = append(append([]loader.Notice{}, snap.Notices...),
		loader.Notice{Level: loader.LevelSuccess, Message: msgDashboardLoaded})
	data.View = &view

	s.renderTemplate(c, http.StatusOK, "layout", data)
}

func (s *Server) handleHealth(c *gin.Context) {
	status := s.cache.Status()
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"loaded": status.Loaded,
	})
}
