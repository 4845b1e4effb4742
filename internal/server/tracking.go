package server

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/logging"
)

// Hash IP address for privacy compliance (consistent per IP while the
// process runs)
func (s *Server) hashIP(ip string) string {
	hash := sha256.New()
	hash.Write([]byte(ip + s.hashingSalt))
	return hex.EncodeToString(hash.Sum(nil))[:16]
}

// untrackedPrefixes are never recorded as page views.
var untrackedPrefixes = []string{
	"/static/", "/images/", "/admin/", "/favicon", "/privacy", "/healthz",
	"/nav", "/sections/", "/certificates/grid", "/loading", "/theme", "/contact-form",
}

func doNotTrack(c *gin.Context) bool {
	return c.GetHeader("DNT") == "1" || c.GetHeader("Sec-GPC") == "1"
}

// Privacy-conscious visitor tracking middleware
func (s *Server) visitorTrackingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if s.db == nil || doNotTrack(c) {
			c.Next()
			return
		}
		for _, prefix := range untrackedPrefixes {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}

		hashedIP := s.hashIP(c.ClientIP())
		userAgent := c.GetHeader("User-Agent")
		at := s.now()
		s.background(func() {
			if err := s.db.TrackVisit(hashedIP, userAgent, path, at); err != nil {
				logging.Log.WithError(err).Error("Error recording visitor")
			}
		})
		c.Next()
	}
}

// recordOpen counts one lightbox view of an item.
func (s *Server) recordOpen(c *gin.Context, widget, key string) {
	if s.db == nil || key == "" || doNotTrack(c) {
		return
	}
	hashedIP := s.hashIP(c.ClientIP())
	at := s.now()
	s.background(func() {
		if err := s.db.RecordOpen(widget, key, hashedIP, at); err != nil {
			logging.Log.WithError(err).Error("Error recording overlay open")
		}
	})
}
