package content

import (
	"bytes"
	"html/template"

	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var md = goldmark.New(
	goldmark.WithExtensions(extension.Typographer),
)

// RenderMarkdown converts trusted in-source markdown to HTML. Raw HTML in
// the source is dropped by goldmark's default renderer.
func RenderMarkdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", errors.Wrap(err, "rendering markdown")
	}
	return template.HTML(buf.String()), nil
}

// About renders the profile biography.
func (p Profile) About() (template.HTML, error) {
	return RenderMarkdown(p.AboutSource)
}
