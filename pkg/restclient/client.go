package restclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"consulate-console/pkg/log"
)

// Config configures the upstream backend client.
type Config struct {
	BaseURL     string
	AccessToken string
	Timeout     time.Duration
}

// Client is the HTTP wrapper for the upstream content backend REST API.
// One instance is shared by every resource repository.
type Client struct {
	baseURL    string
	httpClient *http.Client
	l          log.Logger
}

// New creates a new backend client. When an access token is configured the
// underlying http.Client injects it as a Bearer header on every request.
func New(cfg Config, l log.Logger) *Client {
	var httpClient *http.Client
	if cfg.AccessToken != "" {
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.AccessToken})
		httpClient = oauth2.NewClient(context.Background(), src)
	} else {
		httpClient = &http.Client{}
	}
	if cfg.Timeout > 0 {
		httpClient.Timeout = cfg.Timeout
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
		l:          l,
	}
}

// Get issues GET {base}{path}?{query} and decodes the body into out.
// An empty list is a normal 200 from the backend, never an error here.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to build GET %s request: %w", path, err)
	}

	return c.do(req, out)
}

// PostJSON issues POST {base}{path} with a JSON body.
func (c *Client) PostJSON(ctx context.Context, path string, body, out any) error {
	return c.sendJSON(ctx, http.MethodPost, path, body, out)
}

// PutJSON issues PUT {base}{path} with a JSON body.
func (c *Client) PutJSON(ctx context.Context, path string, body, out any) error {
	return c.sendJSON(ctx, http.MethodPut, path, body, out)
}

// PostForm issues POST {base}{path} with a multipart/form-data body.
// Used when the payload carries file uploads.
func (c *Client) PostForm(ctx context.Context, path string, form *Form, out any) error {
	return c.sendForm(ctx, http.MethodPost, path, form, out)
}

// PutForm issues PUT {base}{path} with a multipart/form-data body.
func (c *Client) PutForm(ctx context.Context, path string, form *Form, out any) error {
	return c.sendForm(ctx, http.MethodPut, path, form, out)
}

// Delete issues DELETE {base}{path}.
func (c *Client) Delete(ctx context.Context, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build DELETE %s request: %w", path, err)
	}

	return c.do(req, nil)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, body, out any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal %s %s body: %w", method, path, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("failed to build %s %s request: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *Client) sendForm(ctx context.Context, method, path string, form *Form, out any) error {
	contentType, body, err := form.Encode()
	if err != nil {
		return fmt.Errorf("failed to encode %s %s multipart body: %w", method, path, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build %s %s request: %w", method, path, err)
	}
	req.Header.Set("Content-Type", contentType)

	return c.do(req, out)
}

// do executes the request and maps every failure to *APIError. Transport
// failures carry Status 0; non-2xx responses carry the upstream status and
// a best-effort message extracted from the body.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{Status: 0, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		return &APIError{
			Status:  resp.StatusCode,
			Message: extractMessage(raw, resp.StatusCode),
			Data:    json.RawMessage(raw),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &APIError{Status: resp.StatusCode, Message: fmt.Sprintf("failed to decode response: %v", err)}
	}
	return nil
}

// extractMessage pulls a human message out of an upstream error body,
// falling back to the HTTP status text.
func extractMessage(raw []byte, status int) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}
	return http.StatusText(status)
}
