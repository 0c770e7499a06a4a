package httpclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aalvaropc/wxsend/internal/domain"
)

func TestBuildRequestNoBody(t *testing.T) {
	assert := func(r *http.Request, body []byte) {
		if r.Method != http.MethodGet {
			t.Fatalf("expected method GET, got %s", r.Method)
		}
		if r.URL.Path != "/people" {
			t.Fatalf("expected path /people, got %s", r.URL.Path)
		}
		if r.URL.Query().Get("email") != "a@b.c" {
			t.Fatalf("expected email query, got %q", r.URL.RawQuery)
		}
		if r.Header.Get("Authorization") != "Bearer tok" {
			t.Fatalf("expected bearer header")
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Fatalf("expected explicit content-type to be kept, got %s", ct)
		}
		if len(body) != 0 {
			t.Fatalf("expected empty body, got %q", body)
		}
	}

	runRequest(t, domain.RequestSpec{
		Method: domain.MethodGet,
		Headers: domain.Headers{
			"Authorization": "Bearer tok",
			"Content-Type":  "application/json",
		},
		Body: domain.BodySpec{Type: domain.BodyNone},
	}, "/people?email=a%40b.c", assert)
}

func TestBuildRequestMultipart(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.txt")
	if err := os.WriteFile(path, []byte("file-content"), 0o644); err != nil {
		t.Fatal(err)
	}

	assert := func(r *http.Request, _ []byte) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected method POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); !strings.HasPrefix(ct, "multipart/form-data; boundary=") {
			t.Fatalf("expected multipart content-type, got %s", ct)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("expected multipart body: %v", err)
		}
		if got := r.FormValue("toPersonId"); got != "P123" {
			t.Fatalf("expected toPersonId=P123, got %q", got)
		}
		if got := r.FormValue("text"); got != "hello" {
			t.Fatalf("expected text=hello, got %q", got)
		}

		f, hdr, err := r.FormFile("files")
		if err != nil {
			t.Fatalf("expected files part: %v", err)
		}
		defer f.Close()
		if hdr.Filename != "report.txt" {
			t.Fatalf("expected filename report.txt, got %q", hdr.Filename)
		}
		if !strings.HasPrefix(hdr.Header.Get("Content-Type"), "text/plain") {
			t.Fatalf("expected text/plain part, got %q", hdr.Header.Get("Content-Type"))
		}
		content, _ := io.ReadAll(f)
		if string(content) != "file-content" {
			t.Fatalf("expected file content, got %q", content)
		}
	}

	runRequest(t, domain.RequestSpec{
		Method:  domain.MethodPost,
		Headers: domain.Headers{"Authorization": "Bearer tok"},
		Body: domain.BodySpec{
			Type: domain.BodyMultipart,
			Fields: []domain.FormField{
				{Name: "toPersonId", Value: "P123"},
				{Name: "text", Value: "hello"},
			},
			Files: []domain.FormFile{{Name: "files", Path: path}},
		},
	}, "/messages", assert)
}

func TestBuildRequestMultipartMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "gone.bin")

	_, err := BuildRequest(context.Background(), domain.RequestSpec{
		Method: domain.MethodPost,
		URL:    "http://example.invalid/messages",
		Body: domain.BodySpec{
			Type:  domain.BodyMultipart,
			Files: []domain.FormFile{{Name: "files", Path: missing}},
		},
	})
	if err == nil {
		t.Fatalf("expected error for unreadable file")
	}
	if !domain.IsKind(err, domain.KindInput) {
		t.Fatalf("expected input kind, got %v", err)
	}
	if !strings.Contains(err.Error(), missing) {
		t.Fatalf("expected path in error, got %v", err)
	}
}

func TestBuildRequestRequiresURL(t *testing.T) {
	_, err := BuildRequest(context.Background(), domain.RequestSpec{Method: domain.MethodGet})
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config, got %v", err)
	}
}

func TestContentTypeFor(t *testing.T) {
	if got := contentTypeFor("blob.unknownext"); got != defaultFileContentType {
		t.Fatalf("expected octet-stream fallback, got %q", got)
	}
	if got := contentTypeFor("a.png"); got != "image/png" {
		t.Fatalf("expected image/png, got %q", got)
	}
}

func runRequest(t *testing.T, spec domain.RequestSpec, path string, assert func(*http.Request, []byte)) {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body []byte
		if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/") {
			var err error
			body, err = io.ReadAll(r.Body)
			if err != nil {
				t.Errorf("failed reading body: %v", err)
			}
		}
		assert(r, body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	spec.URL = server.URL + path

	req, err := BuildRequest(context.Background(), spec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("failed request: %v", err)
	}
	resp.Body.Close()
}
