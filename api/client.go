// Package api is the HTTP client for the bakery backend. Authentication is
// session-cookie based; every call maps backend failures onto the domain
// error taxonomy.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"bakeryctl/domain"
)

const headerCorrelationID = "X-Correlation-Id"

// Client is the shared base for all backend calls.
type Client struct {
	BaseURL *url.URL
	HTTP    *http.Client
	Logger  *slog.Logger
}

// New constructs a Client against baseURL. A cookie jar is always installed
// so the backend's session cookie survives across calls; pass jar nil to get
// a fresh one.
func New(baseURL string, timeout time.Duration, jar http.CookieJar, logger *slog.Logger) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base url %q: scheme and host required", baseURL)
	}
	if jar == nil {
		jar, err = cookiejar.New(nil)
		if err != nil {
			return nil, err
		}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		BaseURL: u,
		HTTP:    &http.Client{Timeout: timeout, Jar: jar},
		Logger:  logger,
	}, nil
}

// do issues one request against the backend. Transport failures become
// NetworkError; non-2xx responses are mapped by checkStatus at the call site
// so that callers can read the body first when they need the message.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Response, error) {
	rel := &url.URL{Path: path}
	u := c.BaseURL.ResolveReference(rel)

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, domain.NewUnexpectedError("build request", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	cid := uuid.NewString()
	req.Header.Set(headerCorrelationID, cid)

	start := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		c.Logger.Error("request failed",
			"method", method, "path", path, "correlation_id", cid, "error", err)
		return nil, domain.NewNetworkError(u.String(), err)
	}
	c.Logger.Debug("request done",
		"method", method, "path", path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
		"correlation_id", cid)
	return resp, nil
}

// doJSON issues a request and decodes a 2xx JSON response into out (out may
// be nil when the body is irrelevant). Non-2xx responses come back as the
// mapped domain error.
func (c *Client) doJSON(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	contentType := ""
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return domain.NewUnexpectedError("encode "+path, err)
		}
		body = bytes.NewReader(b)
		contentType = "application/json"
	}

	resp, err := c.do(ctx, method, path, body, contentType)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return domain.NewUnexpectedError("decode "+path, err)
	}
	return nil
}

// checkStatus maps a non-2xx response to the domain error taxonomy, reading
// the body for the server's message.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	b, _ := io.ReadAll(resp.Body)
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return domain.NewAuthRequiredError()
	case http.StatusForbidden:
		return domain.NewAccessDeniedError()
	default:
		return domain.NewServerError(resp.StatusCode, errorMessage(b))
	}
}

// errorMessage extracts a human message from an error body: a JSON object's
// "error" or "message" field when present, otherwise the raw text.
func errorMessage(body []byte) string {
	text := strings.TrimSpace(string(body))
	if text == "" {
		return ""
	}
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return text
}

// Cookies returns the jar's cookies for the base URL in persistable form.
func (c *Client) Cookies() []domain.SessionCookie {
	cookies := c.HTTP.Jar.Cookies(c.BaseURL)
	out := make([]domain.SessionCookie, 0, len(cookies))
	for _, ck := range cookies {
		out = append(out, domain.SessionCookie{Name: ck.Name, Value: ck.Value, Path: ck.Path})
	}
	return out
}

// RestoreCookies seeds the jar with cookies saved by a previous invocation.
func (c *Client) RestoreCookies(cookies []domain.SessionCookie) {
	if len(cookies) == 0 {
		return
	}
	restored := make([]*http.Cookie, 0, len(cookies))
	for _, ck := range cookies {
		path := ck.Path
		if path == "" {
			path = "/"
		}
		restored = append(restored, &http.Cookie{Name: ck.Name, Value: ck.Value, Path: path})
	}
	c.HTTP.Jar.SetCookies(c.BaseURL, restored)
}
