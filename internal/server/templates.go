package server

import (
	"context"
	"embed"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gin-gonic/gin/render"
	"github.com/pkg/errors"

	"github.com/Zachkp/portfolio/internal/logging"
	"github.com/Zachkp/portfolio/internal/view"
)

//go:embed templates
var templateFS embed.FS

var templateFuncs = template.FuncMap{
	"title": view.Title,
	"year":  func() int { return time.Now().Year() },
}

func parseTemplates(fsys fs.FS) (*template.Template, error) {
	t, err := template.New("").Funcs(templateFuncs).ParseFS(fsys, "*.html")
	if err != nil {
		return nil, errors.Wrap(err, "parsing templates")
	}
	return t, nil
}

// htmlRender serves gin's HTML rendering from a template set that can be
// swapped while requests are in flight.
type htmlRender struct {
	mu   sync.RWMutex
	tmpl *template.Template
}

func newHTMLRender(dir string) (*htmlRender, error) {
	h := &htmlRender{}
	if err := h.load(dir); err != nil {
		return nil, err
	}
	return h, nil
}

// load parses templates from dir, or the embedded set when dir is empty.
func (h *htmlRender) load(dir string) error {
	var fsys fs.FS
	if dir != "" {
		fsys = os.DirFS(dir)
	} else {
		sub, err := fs.Sub(templateFS, "templates")
		if err != nil {
			return err
		}
		fsys = sub
	}

	t, err := parseTemplates(fsys)
	if err != nil {
		return err
	}
	h.mu.Lock()
	h.tmpl = t
	h.mu.Unlock()
	return nil
}

func (h *htmlRender) Instance(name string, data any) render.Render {
	h.mu.RLock()
	t := h.tmpl
	h.mu.RUnlock()
	return render.HTML{Template: t, Name: name, Data: data}
}

// watchTemplates reparses dir whenever an .html file in it changes, until
// ctx is done. A broken edit keeps the previous templates.
func (h *htmlRender) watchTemplates(ctx context.Context, dir string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "creating template watcher")
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return errors.Wrapf(err, "watching %s", dir)
	}

	go func() {
		defer w.Close()

		const debounce = 100 * time.Millisecond
		var reload <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-w.Events:
				if !ok {
					return
				}
				if !strings.HasSuffix(filepath.Base(event.Name), ".html") {
					continue
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
					reload = time.After(debounce)
				}

			case <-reload:
				reload = nil
				if err := h.load(dir); err != nil {
					logging.Log.WithError(err).Warn("Template reload failed, keeping previous templates")
					continue
				}
				logging.Log.Info("Templates reloaded")

			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logging.Log.WithError(err).Debug("Template watcher error")
			}
		}
	}()
	return nil
}
