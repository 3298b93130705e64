package ui

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"thyroidrisk/internal/loader"
)

// Assets holds the dashboard templates and stylesheet
//
//go:embed templates/*.html static/*
var Assets embed.FS

var funcMap = template.FuncMap{
	"noticeIcon": func(level loader.NoticeLevel) string {
		switch level {
		case loader.LevelSuccess:
			return "✅"
		case loader.LevelError:
			return "❌"
		default:
			return "ℹ️"
		}
	},
	"add": func(a, b int) int { return a + b },
}

func parseTemplates(assets fs.FS) (*template.Template, error) {
	templates, err := template.New("").Funcs(funcMap).ParseFS(assets, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return templates, nil
}

// renderTemplate executes a template into a buffer first so a failure never
// leaves a half-written page behind
func (s *Server) renderTemplate(c *gin.Context, status int, name string, data interface{}) {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		log.Printf("[Server] Template error for %s: %v", name, err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Template rendering failed"})
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if _, err := buf.WriteTo(c.Writer); err != nil {
		log.Printf("[Server] Error writing %s response: %v", name, err)
	}
}
