package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/dgallion1/docsect/internal/convert"
	"github.com/dgallion1/docsect/internal/document"
)

// Output formats for conversion results.
const (
	formatPage     = "page"
	formatSections = "sections"
	formatTOC      = "toc"
	formatJSON     = "json"
)

func validFormat(f string) bool {
	switch f {
	case formatPage, formatSections, formatTOC, formatJSON:
		return true
	}
	return false
}

// handleConvert converts the raw request body synchronously.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	filename := sanitizeFilename(r.URL.Query().Get("filename"))
	if filename == "unnamed" {
		filename = "doc.md"
	}
	if !convert.IsSupportedExtension(filename) {
		jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)), http.StatusBadRequest)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = formatPage
	}
	if !validFormat(format) {
		jsonError(w, fmt.Sprintf("unknown format: %s", format), http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			jsonError(w, fmt.Sprintf("document exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
			return
		}
		jsonError(w, "failed to read body", http.StatusBadRequest)
		return
	}

	res, err := s.proc.Process(data, filename)
	if err != nil {
		jsonError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	writeResult(w, res, format)
}

func writeResult(w http.ResponseWriter, res *document.Result, format string) {
	w.Header().Set("ETag", `"`+res.ContentHash[:16]+`"`)
	switch format {
	case formatJSON:
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(res)
	case formatSections:
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		io.WriteString(w, res.Sections)
	case formatTOC:
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		io.WriteString(w, res.TOC)
	default:
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		io.WriteString(w, res.Page)
	}
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	// Remove any path separators that might have survived.
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
