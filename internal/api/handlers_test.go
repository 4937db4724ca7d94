package api

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"podblog/internal/jobs"
	"podblog/internal/llm"
	"podblog/internal/pipeline"
	"podblog/internal/storage"
	"podblog/internal/transcribe"
)

type stubTranscriber struct{}

func (stubTranscriber) Transcribe(ctx context.Context, audioPath, language string) (*transcribe.Result, error) {
	return &transcribe.Result{Transcript: "a transcript", Provider: "stub"}, nil
}

func (stubTranscriber) Name() string { return "stub" }

type stubModel struct{}

func (stubModel) Complete(ctx context.Context, system, human string) (string, error) {
	return "model output", nil
}

func (stubModel) CompleteWithTools(ctx context.Context, system, human string, tools []llm.Tool) (string, error) {
	return "model output", nil
}

func newTestServer(t *testing.T) (*gin.Engine, *jobs.Store, *storage.Output) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	output, err := storage.NewOutput(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	store := jobs.NewStore()
	factory := func(string) llm.Model { return stubModel{} }
	runner := pipeline.NewRunner(stubTranscriber{}, factory, nil, store, output)

	r := gin.New()
	NewServer(runner, store, output, t.TempDir()).RegisterRoutes(r)
	return r, store, output
}

func multipartUpload(t *testing.T, filename string, fields map[string][]string) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fw.Write([]byte("fake audio bytes")); err != nil {
		t.Fatal(err)
	}
	for key, values := range fields {
		for _, v := range values {
			mw.WriteField(key, v)
		}
	}
	mw.Close()
	return &body, mw.FormDataContentType()
}

func TestUploadStartsJob(t *testing.T) {
	r, store, _ := newTestServer(t)

	body, contentType := multipartUpload(t, "episode.mp3", map[string][]string{
		"content_types": {"blog", "faq"},
	})
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			JobID string `json:"job_id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data.JobID == "" {
		t.Fatal("no job_id in response")
	}

	job, ok := store.Get(resp.Data.JobID)
	if !ok {
		t.Fatal("job not registered")
	}
	if job.SourceName != "episode.mp3" {
		t.Fatalf("source = %q", job.SourceName)
	}

	// Let the background pipeline settle before the temp dirs are removed.
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if job, _ := store.Get(resp.Data.JobID); job.Status != jobs.StatusProcessing {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("job never finished")
}

func TestUploadRejectsUnsupportedFormat(t *testing.T) {
	r, _, _ := newTestServer(t)

	body, contentType := multipartUpload(t, "notes.txt", nil)
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "only audio files") {
		t.Fatalf("body = %s", w.Body.String())
	}
}

func TestUploadRejectsUnknownContentType(t *testing.T) {
	r, _, _ := newTestServer(t)

	body, contentType := multipartUpload(t, "episode.mp3", map[string][]string{
		"content_types": {"blog", "podcast"},
	})
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestStatusUnknownJob(t *testing.T) {
	r, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/status/nope", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestDownloadUnknownFile(t *testing.T) {
	r, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/download/missing.md", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestDownloadExistingFile(t *testing.T) {
	r, _, output := newTestServer(t)

	filename, err := output.Save("# Blog", "job-1_ep_blog", "md")
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/download/"+filename, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if w.Body.String() != "# Blog" {
		t.Fatalf("body = %q", w.Body.String())
	}
}

func TestHealth(t *testing.T) {
	r, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}
