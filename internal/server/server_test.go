package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/greeting"
	"github.com/Zachkp/portfolio/internal/logging"
	"github.com/Zachkp/portfolio/internal/store"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func testConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		Port:            "0",
		StaticDir:       t.TempDir(),
		ImagesDir:       t.TempDir(),
		RetentionMonths: 12,
		LogLevel:        "info",
		Admin:           config.AdminConfig{Username: "meet", Password: "s3cret"},
	}
}

func newTestServer(t *testing.T, db *store.DB) *Server {
	t.Helper()
	srv, err := New(testConfig(t), db, content.Default())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv
}

func openMemory(t *testing.T) *store.DB {
	t.Helper()
	db, err := store.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func get(t *testing.T, srv *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", target, nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	return w
}

func document(t *testing.T, w *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	doc, err := goquery.NewDocumentFromReader(w.Body)
	if err != nil {
		t.Fatalf("parsing html: %v", err)
	}
	return doc
}

func dataIDs(doc *goquery.Document, selector string) []string {
	var ids []string
	doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
		ids = append(ids, s.AttrOr("data-id", ""))
	})
	return ids
}

func TestHealthCheck(t *testing.T) {
	srv := newTestServer(t, nil)
	w := get(t, srv, "/healthz")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", body["status"])
	}
}

func TestHomePage(t *testing.T) {
	srv := newTestServer(t, nil)
	doc := document(t, get(t, srv, "/"))

	active := doc.Find("#navbar a.nav-link.active")
	if active.Length() != 1 || active.AttrOr("data-section", "") != "home" {
		t.Errorf("expected only home highlighted, got %d links", active.Length())
	}
	for _, id := range []string{"home", "about", "portfolio", "achievements", "gallery", "contact"} {
		if doc.Find("section#"+id).Length() != 1 {
			t.Errorf("missing section %q", id)
		}
	}
	if got := doc.Find(".gallery-card").Length(); got != 8 {
		t.Errorf("expected 8 gallery cards, got %d", got)
	}
	if doc.Find(".about-text strong").Length() == 0 {
		t.Error("expected about text rendered from markdown")
	}
	if doc.Find(".modal").Length() != 0 {
		t.Error("no overlay should be open on a plain visit")
	}
}

func TestNavHighlightsScrolledSection(t *testing.T) {
	srv := newTestServer(t, nil)
	layout := "home:0:700,about:700:600,portfolio:1300:900,achievements:2200:800,gallery:3000:1000,contact:4000:600"

	doc := document(t, get(t, srv, "/nav?y=1250&active=about&layout="+url.QueryEscape(layout)))
	active := doc.Find("a.nav-link.active")
	if active.Length() != 1 || active.AttrOr("data-section", "") != "portfolio" {
		t.Errorf("expected portfolio highlighted, got %v", active.Map(func(_ int, s *goquery.Selection) string {
			return s.AttrOr("data-section", "")
		}))
	}
	if !doc.Find("#navbar").HasClass("scrolled") {
		t.Error("expected scrolled navbar")
	}
	if doc.Find(".scroll-top").Length() != 1 {
		t.Error("expected back-to-top control")
	}
}

func TestNavKeepsLastKnownSection(t *testing.T) {
	srv := newTestServer(t, nil)
	// Past the end of every band.
	doc := document(t, get(t, srv, "/nav?y=9000&active=gallery&layout="+url.QueryEscape("home:0:700,gallery:700:600")))
	if got := doc.Find("a.nav-link.active").AttrOr("data-section", ""); got != "gallery" {
		t.Errorf("expected gallery to stay active, got %q", got)
	}
}

func TestNavFromCertificatesPage(t *testing.T) {
	srv := newTestServer(t, nil)

	doc := document(t, get(t, srv, "/certificates"))
	refresh := doc.Find("#navbar").AttrOr("hx-get", "")
	if refresh != "/nav?active=home&base=%2F" {
		t.Fatalf("unexpected nav refresh URL %q", refresh)
	}

	// The certificates page measures no sections.
	doc = document(t, get(t, srv, refresh+"&y=300&layout="))
	if href := doc.Find(`a.nav-link[data-section="about"]`).AttrOr("href", ""); href != "/#about" {
		t.Errorf("expected about link to the home page, got %q", href)
	}
	if href := doc.Find("a.nav-brand").AttrOr("href", ""); href != "/#home" {
		t.Errorf("expected brand link to the home page, got %q", href)
	}
	if got := doc.Find("#navbar").AttrOr("hx-get", ""); got != refresh {
		t.Errorf("expected base to survive the swap, got %q", got)
	}
}

func TestNavRejectsForeignBase(t *testing.T) {
	srv := newTestServer(t, nil)
	doc := document(t, get(t, srv, "/nav?y=0&base="+url.QueryEscape("https://evil.example/")))
	if href := doc.Find(`a.nav-link[data-section="about"]`).AttrOr("href", ""); href != "#about" {
		t.Errorf("expected in-page anchor, got %q", href)
	}
}

func TestNavUsesRegisteredSections(t *testing.T) {
	srv := newTestServer(t, nil)

	tests := []struct {
		name, query, want string
	}{
		{"unknown layout id", "y=50&layout=" + url.QueryEscape("home:0:800,bogus:0:800"), "home"},
		{"no layout or active", "y=0", "home"},
		{"unknown active", "y=0&active=bogus", "home"},
		{"document order beats client order", "y=650&layout=" + url.QueryEscape("about:700:600,home:0:800"), "about"},
	}
	for _, tt := range tests {
		doc := document(t, get(t, srv, "/nav?"+tt.query))
		active := doc.Find("a.nav-link.active")
		if active.Length() != 1 || active.AttrOr("data-section", "") != tt.want {
			t.Errorf("%s: expected only %s highlighted, got %d links", tt.name, tt.want, active.Length())
		}
		if refresh := doc.Find("#navbar").AttrOr("hx-get", ""); refresh != "/nav?active="+tt.want {
			t.Errorf("%s: unexpected refresh URL %q", tt.name, refresh)
		}
	}
}

func TestGalleryFilter(t *testing.T) {
	srv := newTestServer(t, nil)
	doc := document(t, get(t, srv, "/sections/gallery?gallery=coding"))

	ids := dataIDs(doc, ".gallery-card")
	want := []string{"img-1", "img-4", "img-7"}
	if strings.Join(ids, ",") != strings.Join(want, ",") {
		t.Errorf("expected %v, got %v", want, ids)
	}
	if got := doc.Find(".filter-btn.active").AttrOr("data-filter", ""); got != "coding" {
		t.Errorf("expected coding filter selected, got %q", got)
	}
}

func TestGalleryUnknownFilterShowsAll(t *testing.T) {
	srv := newTestServer(t, nil)
	doc := document(t, get(t, srv, "/sections/gallery?gallery=nope"))
	if got := doc.Find(".gallery-card").Length(); got != 8 {
		t.Errorf("expected 8 cards, got %d", got)
	}
	if got := doc.Find(".filter-btn.active").AttrOr("data-filter", ""); got != "all" {
		t.Errorf("expected all selected, got %q", got)
	}
}

func TestGalleryLightboxNavigation(t *testing.T) {
	srv := newTestServer(t, nil)

	doc := document(t, get(t, srv, "/sections/gallery?gallery=coding&photo=img-7&nav=next"))
	if got := doc.Find(".lightbox").AttrOr("data-id", ""); got != "img-1" {
		t.Errorf("expected next to wrap to img-1, got %q", got)
	}
	if got := doc.Find(".lightbox-position").Text(); got != "1 / 3" {
		t.Errorf("expected position 1 / 3, got %q", got)
	}

	doc = document(t, get(t, srv, "/sections/gallery?gallery=coding&photo=img-1&nav=prev"))
	if got := doc.Find(".lightbox").AttrOr("data-id", ""); got != "img-7" {
		t.Errorf("expected prev to wrap to img-7, got %q", got)
	}
}

func TestCertificateNavigation(t *testing.T) {
	srv := newTestServer(t, nil)

	steps := []struct {
		from, nav, want string
	}{
		{"cert-3", "next", "cert-4"},
		{"cert-4", "next", "cert-5"},
		{"cert-6", "next", "cert-1"},
		{"cert-1", "prev", "cert-6"},
	}
	for _, s := range steps {
		doc := document(t, get(t, srv, "/certificates/grid?cert="+s.from+"&nav="+s.nav))
		if got := doc.Find(".lightbox").AttrOr("data-id", ""); got != s.want {
			t.Errorf("%s %s: expected %s, got %q", s.nav, s.from, s.want, got)
		}
	}
}

func TestCertificateNavigationWithinFilter(t *testing.T) {
	srv := newTestServer(t, nil)

	doc := document(t, get(t, srv, "/certificates/grid?category=technical&cert=cert-3&nav=next"))
	if got := doc.Find(".lightbox").AttrOr("data-id", ""); got != "cert-5" {
		t.Errorf("expected cert-5, got %q", got)
	}
	if got := doc.Find(".lightbox-position").Text(); got != "3 / 3" {
		t.Errorf("expected position 3 / 3, got %q", got)
	}

	doc = document(t, get(t, srv, "/certificates/grid?category=technical&cert=cert-5&nav=next"))
	if got := doc.Find(".lightbox").AttrOr("data-id", ""); got != "cert-1" {
		t.Errorf("expected wrap to cert-1, got %q", got)
	}
	if got := dataIDs(doc, ".certificate-card"); strings.Join(got, ",") != "cert-1,cert-3,cert-5" {
		t.Errorf("unexpected technical cards %v", got)
	}
}

func TestCertificatesPage(t *testing.T) {
	srv := newTestServer(t, nil)
	doc := document(t, get(t, srv, "/certificates?category=creative"))

	if got := dataIDs(doc, ".certificate-card"); strings.Join(got, ",") != "cert-2,cert-4" {
		t.Errorf("unexpected creative cards %v", got)
	}
	if got := doc.Find(".certificate-card .badge").First().Text(); got != "Creative" {
		t.Errorf("expected Creative badge, got %q", got)
	}
	if href := doc.Find("a.nav-link").First().AttrOr("href", ""); href != "/#home" {
		t.Errorf("expected nav links back to the home page, got %q", href)
	}
}

func TestAchievementsToggle(t *testing.T) {
	srv := newTestServer(t, nil)

	doc := document(t, get(t, srv, "/sections/achievements"))
	if doc.Find(".achievement-detail").Length() != 0 {
		t.Fatal("nothing should be expanded by default")
	}
	if got := doc.Find(".achievement-toggle").Length(); got != 2 {
		t.Errorf("expected toggles only on entries with detail, got %d", got)
	}

	doc = document(t, get(t, srv, "/sections/achievements?expanded=1"))
	expanded := doc.Find(".achievement-card.expanded")
	if expanded.Length() != 1 || expanded.AttrOr("id", "") != "achievement-best-short-film" {
		t.Errorf("expected best-short-film expanded, got %d cards", expanded.Length())
	}
	toggle := expanded.Find(".achievement-toggle").AttrOr("hx-get", "")
	if toggle != "/sections/achievements" {
		t.Errorf("expected collapse link without state, got %q", toggle)
	}
}

func TestAchievementCertificate(t *testing.T) {
	srv := newTestServer(t, nil)
	doc := document(t, get(t, srv, "/sections/achievements?award=technical-innovation"))

	if got := doc.Find(".lightbox img").AttrOr("src", ""); got != "/images/certificates/technical-innovation.svg" {
		t.Errorf("unexpected certificate image %q", got)
	}

	doc = document(t, get(t, srv, "/sections/achievements?award=hackathon-champion"))
	if doc.Find(".lightbox").Length() != 0 {
		t.Error("achievement without certificate must not open")
	}
}

func TestVideoModal(t *testing.T) {
	srv := newTestServer(t, nil)
	doc := document(t, get(t, srv, "/sections/portfolio?video=urban-stories"))

	src := doc.Find(".video-modal iframe").AttrOr("src", "")
	if src != "https://www.youtube.com/embed/dQw4w9WgXcQ?autoplay=1" {
		t.Errorf("unexpected embed URL %q", src)
	}
	if doc.Find("#project-urban-stories .link-github").Length() != 0 {
		t.Error("film projects must not show code links")
	}

	doc = document(t, get(t, srv, "/sections/portfolio?video=weather-dashboard"))
	if doc.Find(".video-modal").Length() != 0 {
		t.Error("project without video must not open")
	}
}

func TestContactForm(t *testing.T) {
	srv := newTestServer(t, nil)
	doc := document(t, get(t, srv, "/contact-form"))

	for _, name := range []string{"name", "email", "subject", "message"} {
		if doc.Find(`#contact-form [name="`+name+`"]`).Length() != 1 {
			t.Errorf("missing %s field", name)
		}
	}
	if action := doc.Find("#contact-form").AttrOr("action", ""); !strings.HasPrefix(action, "mailto:") {
		t.Errorf("expected mailto action, got %q", action)
	}
}

func TestThemeToggle(t *testing.T) {
	srv := newTestServer(t, nil)

	req := httptest.NewRequest("POST", "/theme", nil)
	req.Header.Set("Referer", "http://localhost:8080/certificates?category=creative")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/certificates?category=creative" {
		t.Errorf("unexpected redirect %q", loc)
	}
	if cookie := w.Header().Get("Set-Cookie"); !strings.Contains(cookie, "theme=dark") {
		t.Errorf("expected dark theme cookie, got %q", cookie)
	}

	req = httptest.NewRequest("POST", "/theme", nil)
	req.Header.Set("HX-Request", "true")
	req.AddCookie(&http.Cookie{Name: "theme", Value: "dark"})
	w = httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusNoContent || w.Header().Get("HX-Refresh") != "true" {
		t.Errorf("expected HTMX refresh, got %d", w.Code)
	}
	if cookie := w.Header().Get("Set-Cookie"); !strings.Contains(cookie, "theme=light") {
		t.Errorf("expected light theme cookie, got %q", cookie)
	}
}

func TestBackTo(t *testing.T) {
	tests := []struct {
		referer, want string
	}{
		{"", "/"},
		{"http://localhost/?gallery=coding", "/?gallery=coding"},
		{"https://evil.example//phish", "/"},
		{"not a url\x7f", "/"},
	}
	for _, tt := range tests {
		if got := backTo(tt.referer); got != tt.want {
			t.Errorf("backTo(%q) = %q, want %q", tt.referer, got, tt.want)
		}
	}
}

func TestLoadingStream(t *testing.T) {
	srv := newTestServer(t, nil)
	srv.greeting = &greeting.Sequencer{
		Greetings:   greeting.Default[:2],
		Interval:    20 * time.Millisecond,
		FadeOut:     5 * time.Millisecond,
		Linger:      5 * time.Millisecond,
		MaxDuration: time.Second,
	}

	w := get(t, srv, "/loading")
	body := w.Body.String()
	if got := strings.Count(body, "event:show"); got != 2 {
		t.Errorf("expected 2 show events, got %d:\n%s", got, body)
	}
	if !strings.Contains(body, "event:complete") {
		t.Errorf("expected complete event:\n%s", body)
	}
}

func TestVisitorTracking(t *testing.T) {
	db := openMemory(t)
	srv := newTestServer(t, db)

	get(t, srv, "/")
	get(t, srv, "/sections/gallery?photo=img-2")
	get(t, srv, "/static/styles.css")

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("DNT", "1")
	srv.Router().ServeHTTP(httptest.NewRecorder(), req)

	srv.Wait()

	stats, err := db.Stats(time.Now())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.TotalVisitors != 1 {
		t.Errorf("expected 1 tracked visit, got %d", stats.TotalVisitors)
	}
	if stats.TotalOpens != 1 || len(stats.TopItems) != 1 || stats.TopItems[0].ItemKey != "img-2" {
		t.Errorf("expected one gallery open for img-2, got %+v", stats.TopItems)
	}
}

func TestAdminLogin(t *testing.T) {
	db := openMemory(t)
	srv := newTestServer(t, db)

	w := get(t, srv, "/admin/dashboard")
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/admin/login" {
		t.Fatalf("expected redirect to login, got %d", w.Code)
	}

	login := func(password string) *httptest.ResponseRecorder {
		form := url.Values{"username": {"meet"}, "password": {password}}
		req := httptest.NewRequest("POST", "/admin/login", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		srv.Router().ServeHTTP(w, req)
		return w
	}

	if w := login("wrong"); w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for bad password, got %d", w.Code)
	}

	w = login("s3cret")
	if w.Code != http.StatusFound {
		t.Fatalf("expected redirect after login, got %d", w.Code)
	}
	var token *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == "admin_token" {
			token = c
		}
	}
	if token == nil {
		t.Fatal("expected admin_token cookie")
	}

	req := httptest.NewRequest("GET", "/admin/dashboard", nil)
	req.AddCookie(token)
	w = httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	doc := document(t, w)
	if got := doc.Find("#total-visitors span").Text(); got != "0" {
		t.Errorf("expected 0 visitors, got %q", got)
	}

	req = httptest.NewRequest("GET", "/admin/export/stats", nil)
	req.AddCookie(token)
	w = httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	if !strings.Contains(w.Header().Get("Content-Disposition"), "attachment") {
		t.Errorf("expected attachment export, got %q", w.Header().Get("Content-Disposition"))
	}
}

func TestAdminLoginDisabledWithoutCredentials(t *testing.T) {
	cfg := testConfig(t)
	cfg.Admin = config.AdminConfig{}
	srv, err := New(cfg, nil, content.Default())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	form := url.Values{"username": {""}, "password": {""}}
	req := httptest.NewRequest("POST", "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestPrivacyPage(t *testing.T) {
	srv := newTestServer(t, nil)
	doc := document(t, get(t, srv, "/privacy"))
	if !strings.Contains(doc.Find("main").Text(), "after 12 months") {
		t.Error("expected retention period on privacy page")
	}
}

func TestTemplateWatchDir(t *testing.T) {
	var buf bytes.Buffer
	logging.Log.SetOutput(&buf)
	defer logging.Log.SetOutput(os.Stderr)

	srv := newTestServer(t, nil)
	srv.cfg.WatchTemplates = true
	if dir := srv.templateWatchDir(); dir != "" {
		t.Errorf("expected no watch without template_dir, got %q", dir)
	}
	if !strings.Contains(buf.String(), "template_dir") {
		t.Errorf("expected a warning, got %q", buf.String())
	}

	srv.cfg.TemplateDir = t.TempDir()
	if dir := srv.templateWatchDir(); dir != srv.cfg.TemplateDir {
		t.Errorf("expected %q, got %q", srv.cfg.TemplateDir, dir)
	}

	srv.cfg.WatchTemplates = false
	if dir := srv.templateWatchDir(); dir != "" {
		t.Errorf("expected watching off, got %q", dir)
	}
}
