// Package server serves the portfolio site and its admin dashboard.
package server

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/greeting"
	"github.com/Zachkp/portfolio/internal/logging"
	"github.com/Zachkp/portfolio/internal/store"
	"github.com/Zachkp/portfolio/internal/theme"
)

type Server struct {
	cfg      config.Config
	db       *store.DB
	catalog  content.Catalog
	render   *htmlRender
	router   *gin.Engine
	greeting *greeting.Sequencer

	adminToken  string
	hashingSalt string

	// background analytics writes
	wg sync.WaitGroup
	// now is replaced in tests
	now func() time.Time
}

// New builds the server and its routes. db may be nil, which disables
// visitor tracking and the admin dashboard's numbers.
func New(cfg config.Config, db *store.DB, catalog content.Catalog) (*Server, error) {
	h, err := newHTMLRender(cfg.TemplateDir)
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:         cfg,
		db:          db,
		catalog:     catalog,
		render:      h,
		greeting:    greeting.NewSequencer(),
		adminToken:  generateToken(),
		hashingSalt: generateToken(),
		now:         time.Now,
	}
	s.router = s.routes()
	return s, nil
}

func generateToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		logging.Log.Fatal("Failed to generate token: ", err)
	}
	return hex.EncodeToString(b)
}

// Router exposes the handler for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), logging.Middleware(), theme.Middleware(), s.visitorTrackingMiddleware())
	r.HTMLRender = s.render

	r.Static("/images", s.cfg.ImagesDir)
	r.Static("/static", s.cfg.StaticDir)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Home page route
	r.GET("/", s.handleHome)

	// HTMX fragments
	r.GET("/nav", s.handleNav)
	r.GET("/sections/portfolio", s.handlePortfolio)
	r.GET("/sections/achievements", s.handleAchievements)
	r.GET("/sections/gallery", s.handleGallery)
	r.GET("/contact-form", s.handleContactForm)

	r.GET("/certificates", s.handleCertificates)
	r.GET("/certificates/grid", s.handleCertificatesGrid)

	r.GET("/loading", s.handleLoading)
	r.POST("/theme", s.handleTheme)

	s.setupAdminRoutes(r)
	return r
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	if dir := s.templateWatchDir(); dir != "" {
		if err := s.render.watchTemplates(ctx, dir); err != nil {
			return err
		}
		logging.Log.Infof("Watching %s for template changes", dir)
	}
	if s.db != nil {
		go s.retentionLoop(ctx)
	}

	srv := &http.Server{
		Addr:              ":" + s.cfg.Port,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Log.Infof("Listening on :%s", s.cfg.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(err, "serving")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := srv.Shutdown(shutdownCtx)
	s.Wait()
	return errors.Wrap(err, "shutting down")
}

// templateWatchDir is the directory to reload templates from, or "" when
// reloading is off. Embedded templates cannot be watched.
func (s *Server) templateWatchDir() string {
	if !s.cfg.WatchTemplates {
		return ""
	}
	if s.cfg.TemplateDir == "" {
		logging.Log.Warn("Template watching needs template_dir; serving embedded templates without reload")
		return ""
	}
	return s.cfg.TemplateDir
}

// Wait blocks until background analytics writes finish.
func (s *Server) Wait() {
	s.wg.Wait()
}

// background runs fn outside the request.
func (s *Server) background(fn func()) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		fn()
	}()
}

// retentionLoop removes old analytics at startup and once a day after.
func (s *Server) retentionLoop(ctx context.Context) {
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		s.cleanupOldVisitorData()
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (s *Server) cleanupOldVisitorData() {
	removed, err := s.db.Cleanup(s.cfg.RetentionMonths, s.now())
	if err != nil {
		logging.Log.WithError(err).Error("Error cleaning up old visitor data")
		return
	}
	if removed > 0 {
		logging.Log.Infof("Privacy cleanup: Removed %d records older than %d months", removed, s.cfg.RetentionMonths)
	}
}
