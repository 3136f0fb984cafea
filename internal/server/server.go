package server

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mkiyama/gitlogview/config"
)

//go:embed web
var webFS embed.FS

// Server serves the log API and the terminal-emulator front-end.
type Server struct {
	engine *gin.Engine
	cfg    *config.Config
	log    *logrus.Logger
}

// New creates the HTTP server for the given configuration.
func New(cfg *config.Config, log *logrus.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	// Repository names must match routes exactly; no redirect guessing.
	engine.RedirectTrailingSlash = false
	engine.RedirectFixedPath = false

	s := &Server{
		engine: engine,
		cfg:    cfg,
		log:    log,
	}

	engine.Use(s.recovery())
	s.setupRoutes()
	return s
}

// serveEmbedded serves a file from the embedded FS with the given content
// type. The file is read once at startup, not per request.
func serveEmbedded(webContent fs.FS, name string, contentType string) gin.HandlerFunc {
	data, err := fs.ReadFile(webContent, name)
	return func(c *gin.Context) {
		if err != nil {
			c.String(http.StatusNotFound, "file not found: %s", name)
			return
		}
		c.Data(http.StatusOK, contentType, data)
	}
}

func (s *Server) setupRoutes() {
	webContent, _ := fs.Sub(webFS, "web")
	shell := serveEmbedded(webContent, "index.html", "text/html; charset=utf-8")

	// Usage banner.
	s.engine.GET("/", s.handleUsage)

	// Plain-text log API.
	s.engine.GET("/api/:repo", s.handleLog)

	// Terminal-emulator shell; the page derives the repository name from
	// its own URL and fetches /api/<repo>.
	s.engine.GET("/:repo", shell)
}

// recovery converts an unhandled panic into a structured error response
// instead of letting it kill the serving process.
func (s *Server) recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				s.log.WithFields(logrus.Fields{
					"path":  c.Request.URL.Path,
					"panic": r,
				}).Error("request failed")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"message": fmt.Sprint(r),
					"status":  http.StatusInternalServerError,
				})
			}
		}()
		c.Next()
	}
}

// Start runs the server. Blocks until the server is stopped.
func (s *Server) Start() error {
	return s.engine.Run(":" + s.cfg.Port)
}
