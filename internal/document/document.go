// Package document runs the full conversion of one source document into a
// sectioned page.
package document

import (
	"crypto/sha256"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/dgallion1/docsect/internal/convert"
	"github.com/dgallion1/docsect/internal/frontmatter"
	"github.com/dgallion1/docsect/internal/heading"
	"github.com/dgallion1/docsect/internal/page"
	"github.com/dgallion1/docsect/internal/section"
	"github.com/dgallion1/docsect/internal/toc"
)

// Options controls page metadata and layout.
type Options struct {
	SiteURL      string
	PreviewImage string
	TagURLPrefix string
	BaseIndent   int
}

// DefaultOptions mirrors the service defaults.
func DefaultOptions() Options {
	return Options{
		SiteURL:      "https://example.com/sample",
		PreviewImage: "https://example.com/ogp.png",
		TagURLPrefix: "/tags/",
		BaseIndent:   2,
	}
}

// Result holds every intermediate product of a conversion.
type Result struct {
	Meta        frontmatter.Meta `json:"meta"`
	Fragment    string           `json:"fragment"`
	Sections    string           `json:"sections"`
	TOC         string           `json:"toc"`
	Page        string           `json:"page"`
	ContentHash string           `json:"content_hash"`
}

// Processor converts documents. It holds no per-document state and is safe
// for concurrent use.
type Processor struct {
	opts  Options
	pages *page.Renderer
	log   *slog.Logger
}

func NewProcessor(opts Options, log *slog.Logger) *Processor {
	return &Processor{
		opts:  opts,
		pages: page.NewRenderer(log),
		log:   log,
	}
}

// Process converts src, picking the source format from filename.
func (p *Processor) Process(src []byte, filename string) (*Result, error) {
	conv, err := convert.ForFile(filename)
	if err != nil {
		return nil, err
	}

	meta, body, err := splitMeta(conv, src, filename)
	if err != nil {
		return nil, err
	}

	fragment, err := conv.Convert(body)
	if err != nil {
		return nil, fmt.Errorf("convert %s: %w", filename, err)
	}

	fragment = toc.AnchorHeadings(fragment, heading.Headings(fragment))
	headings := heading.Headings(fragment)
	spans := make([]heading.Span, len(headings))
	for i, h := range headings {
		spans[i] = h.Span
	}

	tree := section.BuildSpans(fragment, spans)
	sections := section.RenderIndent(tree, p.opts.BaseIndent)
	tocHTML := toc.Render(toc.BuildHeadings(headings))

	p.log.Debug("converted document",
		"filename", filename,
		"title", meta.Title,
		"headings", len(headings),
		"top_level_nodes", len(tree.Children),
	)

	return &Result{
		Meta:     meta,
		Fragment: fragment,
		Sections: sections,
		TOC:      tocHTML,
		Page: p.pages.Render(page.Data{
			Title:        meta.Title,
			Description:  meta.Description,
			CanonicalURL: p.opts.SiteURL,
			PreviewImage: p.opts.PreviewImage,
			Body:         sections,
			Tags:         page.TagLinks(p.opts.TagURLPrefix, meta.Tags),
			TOC:          tocHTML,
		}),
		ContentHash: ContentHashHex(src),
	}, nil
}

// splitMeta separates metadata from the convertible body. Only converters
// that read front matter have their first lines consumed; other formats keep
// the whole source and take their title from the document or the filename.
func splitMeta(conv convert.Converter, src []byte, filename string) (frontmatter.Meta, []byte, error) {
	if convert.ReadsFrontMatter(conv) {
		meta, body, err := frontmatter.Split(string(src))
		if err != nil {
			return meta, nil, err
		}
		return meta, []byte(body), nil
	}

	var meta frontmatter.Meta
	if t, ok := conv.(convert.Titler); ok {
		meta.Title = t.Title(src)
	}
	if meta.Title == "" {
		base := filepath.Base(filename)
		meta.Title = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return meta, src, nil
}

// ContentHashHex computes SHA-256 of content and returns hex string.
func ContentHashHex(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h[:])
}
