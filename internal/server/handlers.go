package server

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/greeting"
	"github.com/Zachkp/portfolio/internal/logging"
	"github.com/Zachkp/portfolio/internal/store"
	"github.com/Zachkp/portfolio/internal/theme"
	"github.com/Zachkp/portfolio/internal/view"
)

func isHTMX(c *gin.Context) bool {
	return c.GetHeader("HX-Request") == "true"
}

// initialNav is the navbar before any scroll event.
func initialNav(c *gin.Context, base string) navView {
	return buildNav(view.Position{Active: sections[0].ID}, string(theme.FromContext(c).Current()), base)
}

func (s *Server) handleHome(c *gin.Context) {
	about, err := s.catalog.Profile.About()
	if err != nil {
		logging.Log.WithError(err).Error("Error rendering about section")
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{
			"error": "Sorry, this page could not be rendered.",
		})
		return
	}

	portfolio := s.portfolioState(c)
	achievements := s.achievementsState(c)
	gallery := s.galleryState(c)

	c.HTML(http.StatusOK, "index.html", gin.H{
		"theme":        string(theme.FromContext(c).Current()),
		"nav":          initialNav(c, ""),
		"profile":      s.catalog.Profile,
		"about":        about,
		"portfolio":    portfolio,
		"achievements": achievements,
		"gallery":      gallery,
	})
}

// Navbar fragment, requested on scroll with the measured section layout.
// Only registered sections take part, whatever the client sends.
func (s *Server) handleNav(c *gin.Context) {
	offset, err := strconv.Atoi(c.Query("y"))
	if err != nil || offset < 0 {
		offset = 0
	}
	layout := registeredLayout(view.ParseLayout(c.Query("layout")))
	tracker := view.NewTracker(layout, registeredActive(c.Query("active")))

	nav := buildNav(tracker.Update(offset), string(theme.FromContext(c).Current()), c.Query("base"))
	c.HTML(http.StatusOK, "nav.html", nav)
}

func (s *Server) portfolioState(c *gin.Context) portfolioView {
	v := buildPortfolio(s.catalog.Projects, c.Query(paramVideo))
	if v.Open != nil {
		s.recordOpen(c, store.WidgetVideo, v.Open.Slug)
	}
	return v
}

func (s *Server) achievementsState(c *gin.Context) achievementsView {
	v := buildAchievements(s.catalog.Achievements, c.Query(paramExpanded), c.Query(paramAward))
	if v.Open != nil {
		s.recordOpen(c, store.WidgetAchievement, v.Open.Slug)
	}
	return v
}

func (s *Server) galleryState(c *gin.Context) galleryView {
	v := buildGallery(s.catalog.Gallery, c.Query(paramGalleryCategory), c.Query(paramGalleryPhoto), c.Query(paramNav))
	if v.Open != nil {
		s.recordOpen(c, store.WidgetGallery, v.Open.ID)
	}
	return v
}

func (s *Server) handlePortfolio(c *gin.Context) {
	c.HTML(http.StatusOK, "portfolio.html", s.portfolioState(c))
}

func (s *Server) handleAchievements(c *gin.Context) {
	c.HTML(http.StatusOK, "achievements.html", s.achievementsState(c))
}

func (s *Server) handleGallery(c *gin.Context) {
	c.HTML(http.StatusOK, "gallery.html", s.galleryState(c))
}

func (s *Server) certificatesState(c *gin.Context) certificatesView {
	v := buildCertificates(s.catalog.Certificates, c.Query(paramCategory), c.Query(paramCertificate), c.Query(paramNav))
	if v.Open != nil {
		s.recordOpen(c, store.WidgetCertificate, v.Open.ID)
	}
	return v
}

// Certificates page route
func (s *Server) handleCertificates(c *gin.Context) {
	c.HTML(http.StatusOK, "certificates.html", gin.H{
		"theme":        string(theme.FromContext(c).Current()),
		"nav":          initialNav(c, "/"),
		"profile":      s.catalog.Profile,
		"certificates": s.certificatesState(c),
	})
}

func (s *Server) handleCertificatesGrid(c *gin.Context) {
	c.HTML(http.StatusOK, "certificate-grid.html", s.certificatesState(c))
}

// Contact form fragment. Submission is left to the visitor's mail client.
func (s *Server) handleContactForm(c *gin.Context) {
	c.HTML(http.StatusOK, "contact-form.html", gin.H{
		"title":   "Contact Me",
		"profile": s.catalog.Profile,
	})
}

// Loading screen greetings as server-sent events. The sequence stops when
// the client goes away.
func (s *Server) handleLoading(c *gin.Context) {
	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")

	err := s.greeting.Run(c.Request.Context(), func(step greeting.Step) {
		c.SSEvent(string(step.Kind), step)
		c.Writer.Flush()
	})
	if err != nil {
		logging.Log.WithError(err).Debug("Loading stream closed early")
	}
}

func (s *Server) handleTheme(c *gin.Context) {
	theme.FromContext(c).Toggle()

	if isHTMX(c) {
		c.Header("HX-Refresh", "true")
		c.Status(http.StatusNoContent)
		return
	}
	c.Redirect(http.StatusSeeOther, backTo(c.Request.Referer()))
}

// backTo keeps redirects on this site.
func backTo(referer string) string {
	u, err := url.Parse(referer)
	if err != nil || !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(u.Path, "//") {
		return "/"
	}
	return (&url.URL{Path: u.Path, RawQuery: u.RawQuery}).String()
}
