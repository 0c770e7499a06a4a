package httpclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/wxsend/internal/domain"
)

const defaultFileContentType = "application/octet-stream"

// BuildRequest builds an HTTP request from a domain RequestSpec.
// Multipart bodies are fully buffered, file parts included.
func BuildRequest(ctx context.Context, spec domain.RequestSpec) (*http.Request, error) {
	if strings.TrimSpace(spec.URL) == "" {
		return nil, &domain.OpError{
			Op:   "httpclient.build",
			Kind: domain.KindInvalidConfig,
			Err:  domain.ErrInvalidRequest,
		}
	}

	var bodyReader *bytes.Reader
	contentType := ""

	switch spec.Body.Type {
	case domain.BodyNone, "":
		bodyReader = bytes.NewReader(nil)
	case domain.BodyMultipart:
		payload, ct, err := encodeMultipart(spec.Body)
		if err != nil {
			return nil, err
		}
		bodyReader = bytes.NewReader(payload)
		contentType = ct
	default:
		return nil, &domain.OpError{
			Op:   "httpclient.build",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("unsupported body type %q: %w", spec.Body.Type, domain.ErrInvalidRequest),
		}
	}

	var body io.Reader = bodyReader
	if bodyReader.Len() == 0 {
		body = http.NoBody
	}

	req, err := http.NewRequestWithContext(ctx, string(spec.Method), spec.URL, body)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "httpclient.build",
			Kind: domain.KindInvalidConfig,
			Err:  err,
		}
	}

	for k, v := range spec.Headers {
		req.Header.Set(k, v)
	}

	// The multipart boundary lives in the content type, so it always wins.
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	return req, nil
}

func encodeMultipart(spec domain.BodySpec) ([]byte, string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	for _, f := range spec.Fields {
		if err := mw.WriteField(f.Name, f.Value); err != nil {
			return nil, "", &domain.OpError{
				Op:   "httpclient.multipart",
				Kind: domain.KindInput,
				Err:  fmt.Errorf("failed to create multipart form: %w", err),
			}
		}
	}

	for _, f := range spec.Files {
		if err := writeFilePart(mw, f); err != nil {
			return nil, "", &domain.OpError{
				Op:   "httpclient.multipart",
				Kind: domain.KindInput,
				Path: f.Path,
				Err:  fmt.Errorf("failed to create multipart form: %w", err),
			}
		}
	}

	if err := mw.Close(); err != nil {
		return nil, "", &domain.OpError{
			Op:   "httpclient.multipart",
			Kind: domain.KindInput,
			Err:  fmt.Errorf("failed to create multipart form: %w", err),
		}
	}

	return buf.Bytes(), mw.FormDataContentType(), nil
}

func writeFilePart(mw *multipart.Writer, f domain.FormFile) error {
	file, err := os.Open(f.Path)
	if err != nil {
		return err
	}
	defer file.Close()

	name := filepath.Base(f.Path)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="%s"; filename="%s"`, quoteEscaper.Replace(f.Name), quoteEscaper.Replace(name)))
	h.Set("Content-Type", contentTypeFor(name))

	part, err := mw.CreatePart(h)
	if err != nil {
		return err
	}
	_, err = io.Copy(part, file)
	return err
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func contentTypeFor(name string) string {
	if ct := mime.TypeByExtension(filepath.Ext(name)); ct != "" {
		return ct
	}
	return defaultFileContentType
}
