package portalapi

import (
	"context"
	"fmt"
	"net/http"
	"portal_electro/internal/session"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// APIError is a non-2xx answer of the portal backend. Body keeps the raw payload for
// diagnostics.
type APIError struct {
	StatusCode int
	Method     string
	Path       string
	Body       string
}

func (e *APIError) Error() string {
	body := strings.TrimSpace(e.Body)
	if len(body) > 512 {
		body = body[:512] + "..."
	}
	if body == "" {
		return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, body)
}

func (e *APIError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// Client talks to the portal REST backend. Every request carries the bearer token of the
// credentials found in its context. Calls are never retried.
type Client struct {
	http   *resty.Client
	logger *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	httpClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		creds, ok := session.FromContext(req.Context())
		if !ok || !creds.Valid() {
			return session.ErrMissingToken
		}
		req.SetAuthToken(creds.Token)
		return nil
	})

	return &Client{http: httpClient, logger: logger.Named("portalapi")}
}

// Do sends body (when non-nil) and decodes a 2xx answer into result (when non-nil).
func (c *Client) Do(ctx context.Context, method, path string, query map[string]string, body, result any) error {
	req := c.http.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}
	if body != nil {
		req.SetBody(body)
	}
	if result != nil {
		req.SetResult(result)
	}

	start := time.Now()
	resp, err := req.Execute(method, path)
	if err != nil {
		c.logger.Error("backend call failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if resp.IsError() {
		apiErr := &APIError{
			StatusCode: resp.StatusCode(),
			Method:     method,
			Path:       path,
			Body:       resp.String(),
		}
		c.logger.Warn("backend returned an error",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status_code", apiErr.StatusCode),
			zap.String("body", apiErr.Body),
			zap.Duration("elapsed", time.Since(start)),
		)
		return apiErr
	}

	c.logger.Debug("backend call",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status_code", resp.StatusCode()),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}

func (c *Client) Get(ctx context.Context, path string, query map[string]string, result any) error {
	return c.Do(ctx, resty.MethodGet, path, query, nil, result)
}

func (c *Client) Post(ctx context.Context, path string, body, result any) error {
	return c.Do(ctx, resty.MethodPost, path, nil, body, result)
}

func (c *Client) Put(ctx context.Context, path string, body, result any) error {
	return c.Do(ctx, resty.MethodPut, path, nil, body, result)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.Do(ctx, resty.MethodDelete, path, nil, nil, nil)
}
