// Package page wraps rendered sections and a table of contents into a
// complete HTML document.
package page

import (
	_ "embed"
	"html/template"
	"log/slog"
	"strings"
)

// FallbackNotice replaces the page when the template cannot be rendered.
const FallbackNotice = `<p class="render-error">template error</p>`

// DefaultDescription is used when a document has no description.
const DefaultDescription = "no description"

//go:embed template.html
var pageSource string

var pageTemplate = template.Must(template.New("page").Parse(pageSource))

// TagLink is a tag name and the page listing documents with that tag.
type TagLink struct {
	Name string
	URL  string
}

// Data holds the template slots. Body and TOC are trusted markup.
type Data struct {
	Title        string
	Description  string
	CanonicalURL string
	PreviewImage string
	Body         string
	Tags         []TagLink
	TOC          string
}

type view struct {
	Title        string
	Description  string
	CanonicalURL string
	PreviewImage string
	Body         template.HTML
	Tags         []TagLink
	TOC          template.HTML
}

// Renderer executes a page template.
type Renderer struct {
	tmpl *template.Template
	log  *slog.Logger
}

// NewRenderer returns a Renderer for the built-in page template.
func NewRenderer(log *slog.Logger) *Renderer {
	return &Renderer{tmpl: pageTemplate, log: log}
}

// NewRendererFromTemplate returns a Renderer for a custom template. The
// template receives the same fields as Data.
func NewRendererFromTemplate(tmpl *template.Template, log *slog.Logger) *Renderer {
	return &Renderer{tmpl: tmpl, log: log}
}

// Render returns the complete document. It does not fail: when the
// template cannot be executed FallbackNotice is returned instead.
func (r *Renderer) Render(d Data) string {
	if d.Description == "" {
		d.Description = DefaultDescription
	}
	v := view{
		Title:        d.Title,
		Description:  d.Description,
		CanonicalURL: d.CanonicalURL,
		PreviewImage: d.PreviewImage,
		Body:         template.HTML(d.Body),
		Tags:         d.Tags,
		TOC:          template.HTML(d.TOC),
	}

	var sb strings.Builder
	if err := r.tmpl.Execute(&sb, v); err != nil {
		if r.log != nil {
			r.log.Error("page template failed", "error", err)
		}
		return FallbackNotice
	}
	return sb.String()
}

// TagLinks builds links for tags under prefix, e.g. "/tags/go.html".
func TagLinks(prefix string, tags []string) []TagLink {
	if len(tags) == 0 {
		return nil
	}
	links := make([]TagLink, 0, len(tags))
	for _, tag := range tags {
		links = append(links, TagLink{Name: tag, URL: TagURL(prefix, tag)})
	}
	return links
}

// TagURL returns the listing page for a single tag.
func TagURL(prefix, tag string) string {
	return prefix + tag + ".html"
}
