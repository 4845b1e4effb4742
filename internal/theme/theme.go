// Package theme holds the visitor's light/dark preference.
package theme

import "github.com/gin-gonic/gin"

type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"

	// Default applies when no preference is stored.
	Default = Light
)

func (t Theme) Valid() bool {
	return t == Light || t == Dark
}

// Opposite is the theme Toggle switches to.
func (t Theme) Opposite() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// Preference persists the chosen theme.
type Preference interface {
	Load() (string, bool)
	Store(Theme)
}

// Controller owns the current theme. Toggle is the only way to change it.
type Controller struct {
	pref    Preference
	current Theme
}

// New reads the stored preference, falling back to Default for missing or
// unknown values.
func New(pref Preference) *Controller {
	current := Default
	if raw, ok := pref.Load(); ok && Theme(raw).Valid() {
		current = Theme(raw)
	}
	return &Controller{pref: pref, current: current}
}

func (c *Controller) Current() Theme {
	return c.current
}

// Toggle flips between light and dark and persists the result.
func (c *Controller) Toggle() Theme {
	c.current = c.current.Opposite()
	c.pref.Store(c.current)
	return c.current
}

const (
	cookieName = "theme"
	contextKey = "theme"
	cookieAge  = 3600 * 24 * 365
)

// cookiePreference stores the theme in a long-lived cookie.
type cookiePreference struct {
	c *gin.Context
}

func (p cookiePreference) Load() (string, bool) {
	v, err := p.c.Cookie(cookieName)
	if err != nil {
		return "", false
	}
	return v, true
}

func (p cookiePreference) Store(t Theme) {
	p.c.SetCookie(cookieName, string(t), cookieAge, "/", "", false, true)
}

// Middleware attaches a cookie-backed Controller to every request.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(contextKey, New(cookiePreference{c: c}))
		c.Next()
	}
}

// FromContext returns the request's Controller. Requests that skipped the
// middleware get a Controller backed by the cookie anyway.
func FromContext(c *gin.Context) *Controller {
	if v, ok := c.Get(contextKey); ok {
		if ctl, ok := v.(*Controller); ok {
			return ctl
		}
	}
	ctl := New(cookiePreference{c: c})
	c.Set(contextKey, ctl)
	return ctl
}
