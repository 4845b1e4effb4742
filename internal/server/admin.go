package server

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/logging"
)

// Middleware to check admin authentication
func (s *Server) adminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("admin_token")
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(s.adminToken)) != 1 {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// adminCredentials falls back to development defaults only in debug mode.
func (s *Server) adminCredentials() (string, string, bool) {
	username, password := s.cfg.Admin.Username, s.cfg.Admin.Password
	if gin.Mode() == gin.DebugMode {
		if username == "" {
			username = "admin"
			logging.Log.Warn("Using default admin username. Set ADMIN_USERNAME environment variable.")
		}
		if password == "" {
			password = "admin123"
			logging.Log.Warn("Using default admin password. Set ADMIN_PASSWORD environment variable.")
		}
	}
	return username, password, username != "" && password != ""
}

func checkCredential(given, want string) bool {
	return subtle.ConstantTimeCompare([]byte(given), []byte(want)) == 1
}

// requireDB answers 503 when analytics are disabled.
func (s *Server) requireDB(c *gin.Context) bool {
	if s.db != nil {
		return true
	}
	c.HTML(http.StatusServiceUnavailable, "admin-error.html", gin.H{
		"error": "Visitor analytics are disabled",
	})
	return false
}

// Setup all admin routes
func (s *Server) setupAdminRoutes(r *gin.Engine) {
	// Privacy policy route
	r.GET("/privacy", func(c *gin.Context) {
		c.HTML(http.StatusOK, "privacy.html", gin.H{
			"title":     "Privacy Policy",
			"retention": s.cfg.RetentionMonths,
		})
	})

	// Admin login page
	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{
			"title": "Admin Login",
		})
	})

	// Admin login handler
	r.POST("/admin/login", func(c *gin.Context) {
		username := c.PostForm("username")
		password := c.PostForm("password")

		wantUser, wantPass, enabled := s.adminCredentials()
		if enabled && checkCredential(username, wantUser) && checkCredential(password, wantPass) {
			// Secure cookie (24 hours)
			c.SetCookie("admin_token", s.adminToken, 3600*24, "/admin", "", false, true)
			logging.Log.Infof("Admin login successful from %s", s.hashIP(c.ClientIP()))
			c.Redirect(http.StatusFound, "/admin/dashboard")
			return
		}

		logging.Log.Warnf("Failed admin login attempt from %s", s.hashIP(c.ClientIP()))
		c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
			"title": "Admin Login",
			"error": "Invalid credentials",
		})
	})

	// Admin logout
	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie("admin_token", "", -1, "/admin", "", false, true)
		logging.Log.Infof("Admin logout from %s", s.hashIP(c.ClientIP()))
		c.Redirect(http.StatusFound, "/admin/login")
	})

	// Protected admin routes group
	adminGroup := r.Group("/admin")
	adminGroup.Use(s.adminAuthMiddleware())

	adminGroup.GET("/dashboard", func(c *gin.Context) {
		if !s.requireDB(c) {
			return
		}
		stats, err := s.db.Stats(s.now())
		if err != nil {
			logging.Log.WithError(err).Error("Error loading admin stats")
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load statistics",
			})
			return
		}

		c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{
			"stats": stats,
		})
	})

	// JSON stats for HTMX polling
	adminGroup.GET("/api/stats", func(c *gin.Context) {
		if s.db == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "analytics disabled"})
			return
		}
		stats, err := s.db.Stats(s.now())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	adminGroup.GET("/visitors", func(c *gin.Context) {
		if !s.requireDB(c) {
			return
		}
		visitors, err := s.db.RecentVisitors(200)
		if err != nil {
			logging.Log.WithError(err).Error("Error loading visitors")
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load visitors",
			})
			return
		}

		c.HTML(http.StatusOK, "admin-visitors.html", gin.H{
			"visitors": visitors,
		})
	})

	adminGroup.POST("/privacy/cleanup", func(c *gin.Context) {
		if s.db == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "analytics disabled"})
			return
		}
		s.background(s.cleanupOldVisitorData)
		c.JSON(http.StatusOK, gin.H{"message": "Privacy cleanup initiated"})
	})

	// Statistics export (for backups or analysis)
	adminGroup.GET("/export/stats", func(c *gin.Context) {
		if s.db == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "analytics disabled"})
			return
		}
		stats, err := s.db.Stats(s.now())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.Header("Content-Disposition", "attachment; filename=portfolio-stats.json")
		logging.Log.Infof("Admin stats exported by %s", s.hashIP(c.ClientIP()))
		c.JSON(http.StatusOK, stats)
	})
}
