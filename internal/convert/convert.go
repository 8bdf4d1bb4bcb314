// Package convert turns source documents into rendered HTML fragments whose
// headings and explicit-close markers drive sectioning.
package convert

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Converter renders raw document bytes as an HTML fragment.
type Converter interface {
	Convert(src []byte) (string, error)
}

// FrontMatterReader is implemented by converters whose sources open with a
// title, description and tag header that must be split off before
// conversion.
type FrontMatterReader interface {
	ReadsFrontMatter() bool
}

// Titler is implemented by converters that can find a title inside the
// source itself.
type Titler interface {
	Title(src []byte) string
}

// ReadsFrontMatter reports whether c expects a front matter header.
func ReadsFrontMatter(c Converter) bool {
	fm, ok := c.(FrontMatterReader)
	return ok && fm.ReadsFrontMatter()
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
	".txt":      true,
	".html":     true,
	".htm":      true,
	".docx":     true,
	".pdf":      true,
}

// ForFile returns the appropriate converter for a filename.
func ForFile(filename string) (Converter, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".md", ".markdown":
		return NewMarkdownConverter(), nil
	case ".txt":
		return &TextConverter{}, nil
	case ".html", ".htm":
		return &HTMLConverter{}, nil
	case ".docx":
		return &DOCXConverter{}, nil
	case ".pdf":
		return &PDFConverter{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %q", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}
