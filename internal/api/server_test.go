package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dgallion1/docsect/internal/config"
	"github.com/dgallion1/docsect/internal/document"
	"github.com/dgallion1/docsect/internal/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const doc = "My Doc\nAbout it.\n\n# Top\n\nIntro.\n\n## Child\n\nBody.\n"

func newTestServer(t *testing.T, apiKey string) (*Server, *pipeline.Orchestrator) {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := config.Config{
		APIKey:         apiKey,
		MaxUploadBytes: 1024,
	}
	proc := document.NewProcessor(document.DefaultOptions(), log)
	orch := pipeline.NewOrchestrator(pipeline.Options{WorkerCount: 2, MaxQueueSize: 10}, proc, log)
	orch.Start(context.Background())
	t.Cleanup(orch.Stop)
	return NewServer(orch, proc, log, cfg), orch
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t, "secret")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestConvert_Formats(t *testing.T) {
	srv, _ := newTestServer(t, "")

	tests := []struct {
		format   string
		contains string
		ctype    string
	}{
		{"", "<title>My Doc</title>", "text/html"},
		{"page", `<meta name="description" content="About it.">`, "text/html"},
		{"sections", `<div class="section">`, "text/html"},
		{"toc", `<a href="#child">Child</a>`, "text/html"},
		{"json", `"content_hash"`, "application/json"},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodPost, "/api/convert?format="+tt.format, strings.NewReader(doc))
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code, "format %q: %s", tt.format, rec.Body.String())
		assert.Contains(t, rec.Body.String(), tt.contains, "format %q", tt.format)
		assert.Contains(t, rec.Header().Get("Content-Type"), tt.ctype)
		assert.NotEmpty(t, rec.Header().Get("ETag"))
	}
}

func TestConvert_JSONBody(t *testing.T) {
	srv, _ := newTestServer(t, "")
	req := httptest.NewRequest(http.MethodPost, "/api/convert?format=json", strings.NewReader(doc))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var res document.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "My Doc", res.Meta.Title)
	assert.Contains(t, res.Fragment, `<h2 id="child">Child</h2>`)
}

func TestConvert_Errors(t *testing.T) {
	srv, _ := newTestServer(t, "")

	tests := []struct {
		name   string
		url    string
		body   string
		status int
	}{
		{"bad format", "/api/convert?format=pdf", doc, http.StatusBadRequest},
		{"bad extension", "/api/convert?filename=x.csv", doc, http.StatusBadRequest},
		{"too large", "/api/convert", strings.Repeat("a", 2048), http.StatusRequestEntityTooLarge},
		{"bad yaml", "/api/convert", "---\ntitle: [\n---\n", http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, tt.url, strings.NewReader(tt.body)))
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}

func TestAuth(t *testing.T) {
	srv, _ := newTestServer(t, "secret")

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/convert", strings.NewReader(doc)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/convert", strings.NewReader(doc))
	req.Header.Set("Authorization", "Bearer wrong")
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/convert", strings.NewReader(doc))
	req.Header.Set("Authorization", "Bearer secret")
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBatchConvert(t *testing.T) {
	srv, orch := newTestServer(t, "")

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for name, content := range map[string]string{"a.md": doc, "b.txt": "Plain\n\nparagraph", "c.csv": "a,b"} {
		fw, err := mw.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/convert/batch", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())

	var resp struct {
		Jobs []map[string]any `json:"jobs"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Jobs, 3)

	var jobIDs []string
	for _, j := range resp.Jobs {
		if j["filename"] == "c.csv" {
			assert.Contains(t, j["error"], "unsupported file type")
			continue
		}
		jobIDs = append(jobIDs, j["job_id"].(string))
	}
	require.Len(t, jobIDs, 2)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for _, id := range jobIDs {
		require.NoError(t, orch.GetJob(id).Wait(ctx))

		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/jobs/"+id, nil))
		require.Equal(t, http.StatusOK, rec.Code)
		var snap pipeline.JobSnapshot
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
		assert.Equal(t, pipeline.StatusCompleted, snap.Status)

		rec = httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/jobs/"+id+"/result?format=sections", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestJobs_NotFound(t *testing.T) {
	srv, _ := newTestServer(t, "")
	for _, path := range []string{"/api/jobs/nope", "/api/jobs/nope/result"} {
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"../../etc/passwd.md", "passwd.md"},
		{"", "unnamed"},
		{"a..b.md", "a_b.md"},
		{`dir\file.md`, "dir_file.md"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeFilename(tt.in), tt.in)
	}
}
