package theme

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

type memoryPreference struct {
	value  string
	stored bool
}

func (m *memoryPreference) Load() (string, bool) { return m.value, m.stored }
func (m *memoryPreference) Store(t Theme)        { m.value, m.stored = string(t), true }

func TestNewDefaultsToLight(t *testing.T) {
	if got := New(&memoryPreference{}).Current(); got != Light {
		t.Errorf("expected light, got %s", got)
	}
	if got := New(&memoryPreference{value: "neon", stored: true}).Current(); got != Light {
		t.Errorf("expected unknown stored value to fall back to light, got %s", got)
	}
	if got := New(&memoryPreference{value: "dark", stored: true}).Current(); got != Dark {
		t.Errorf("expected stored dark, got %s", got)
	}
}

func TestTogglePersists(t *testing.T) {
	pref := &memoryPreference{}
	ctl := New(pref)

	if got := ctl.Toggle(); got != Dark {
		t.Fatalf("expected dark after toggle, got %s", got)
	}
	if pref.value != "dark" {
		t.Errorf("expected dark persisted, got %q", pref.value)
	}
	if got := ctl.Toggle(); got != Light {
		t.Errorf("expected light after second toggle, got %s", got)
	}
}

func TestMiddlewareReadsCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware())
	r.POST("/theme", func(c *gin.Context) {
		c.String(http.StatusOK, string(FromContext(c).Toggle()))
	})

	req := httptest.NewRequest(http.MethodPost, "/theme", nil)
	req.AddCookie(&http.Cookie{Name: "theme", Value: "dark"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Body.String() != "light" {
		t.Errorf("expected toggle from dark to light, got %q", w.Body.String())
	}
	if !strings.Contains(w.Header().Get("Set-Cookie"), "theme=light") {
		t.Errorf("expected theme cookie to be written, got %q", w.Header().Get("Set-Cookie"))
	}
}
