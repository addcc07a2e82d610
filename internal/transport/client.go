// Package transport performs the single outbound exchange with the cover
// service: one multipart POST per file.
package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/kurochkinivan/cover_client/internal/domain"
)

const (
	coverPath  = "/cover"
	healthPath = "/health"
	formField  = "file"

	// maxErrorBody limits how much of a failed response is read while
	// looking for the error reason.
	maxErrorBody = 64 << 10
)

type Client struct {
	httpClient *http.Client
	userAgent  string
}

func New(timeout time.Duration, userAgent string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  userAgent,
	}
}

// NewWithHTTPClient is used by tests to point the client at httptest servers.
func NewWithHTTPClient(httpClient *http.Client, userAgent string) *Client {
	return &Client{
		httpClient: httpClient,
		userAgent:  userAgent,
	}
}

// Submit posts src to {endpoint}/cover and returns the response body on a
// 2xx status. Any other outcome is an error whose message is suitable for
// showing next to the entry.
func (c *Client) Submit(ctx context.Context, src domain.Source, endpoint string) ([]byte, error) {
	body, contentType := multipartBody(src)
	defer body.Close()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, joinURL(endpoint, coverPath), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", contentType)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errorFromResponse(resp)
	}

	blob, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return blob, nil
}

// Ping checks that the service answers on {endpoint}/health.
func (c *Client) Ping(ctx context.Context, endpoint string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, joinURL(endpoint, healthPath), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{StatusCode: resp.StatusCode, Message: statusMessage(resp.StatusCode)}
	}

	return nil
}

// multipartBody streams the source through a pipe so large files are never
// buffered whole.
func multipartBody(src domain.Source) (io.ReadCloser, string) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		pw.CloseWithError(writeFilePart(mw, src))
	}()

	return pr, mw.FormDataContentType()
}

func writeFilePart(mw *multipart.Writer, src domain.Source) (err error) {
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, formField, src.Name()))
	header.Set("Content-Type", src.ContentType())

	part, err := mw.CreatePart(header)
	if err != nil {
		return fmt.Errorf("failed to create form part: %w", err)
	}

	rc, err := src.Open()
	if err != nil {
		return fmt.Errorf("failed to open %q: %w", src.Name(), err)
	}
	defer func() { err = errors.Join(err, rc.Close()) }()

	if _, err := io.Copy(part, rc); err != nil {
		return fmt.Errorf("failed to write %q: %w", src.Name(), err)
	}

	return mw.Close()
}

type errorResponse struct {
	Error string `json:"error"`
}

func errorFromResponse(resp *http.Response) error {
	message := statusMessage(resp.StatusCode)

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err == nil {
		var body errorResponse
		if json.Unmarshal(data, &body) == nil && strings.TrimSpace(body.Error) != "" {
			message = body.Error
		}
	}

	return &Error{StatusCode: resp.StatusCode, Message: message}
}

func statusMessage(code int) string {
	return fmt.Sprintf("HTTP %d", code)
}

func joinURL(base, path string) string {
	return strings.TrimRight(base, "/") + path
}
