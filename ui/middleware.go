package ui

import (
	"io/fs"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// setupMiddleware configures Gin middleware
func (s *Server) setupMiddleware() {
	s.router.Use(gin.Logger())
	s.router.Use(gin.Recovery())

	staticFS, err := fs.Sub(s.assets, "static")
	if err != nil {
		log.Printf("[Server] No static assets: %v", err)
		return
	}
	s.router.StaticFS("/static", http.FS(staticFS))
}
