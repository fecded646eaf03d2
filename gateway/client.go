package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/exebone56/ecom-pulse2/appctx"
	"github.com/exebone56/ecom-pulse2/config"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// TokenSource yields the persisted bearer token. It is consulted on every
// request, never cached, so a login performed by another process using the
// same store is picked up on the next call.
type TokenSource interface {
	AccessToken() (string, bool)
}

// Client is the single HTTP gateway behind every resource client. All
// failures it returns are *APIError; callers never see a raw transport error.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	logger  *logrus.Logger
	tracer  trace.Tracer
}

func NewClient(cfg *config.Config, tokens TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.HTTPTimeout},
		tokens:  tokens,
		logger:  config.GetLogger(),
		tracer:  otel.Tracer("ecom-pulse/gateway"),
	}
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, contentType string, body io.Reader, out any) error {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint = endpoint + "?" + params.Encode()
	}

	ctx, span := c.tracer.Start(ctx, method+" "+path)
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return &APIError{Message: err.Error()}
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	cid, ok := appctx.GetString(ctx, appctx.ContextKeyCorrelationId)
	if !ok || cid == "" {
		cid = uuid.NewString()
	}
	req.Header.Set("X-Correlation-Id", cid)

	// Some endpoints are public; a missing token never blocks the call.
	if c.tokens != nil {
		if token, ok := c.tokens.AccessToken(); ok && token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		span.RecordError(err)
		config.LogError(c.logger, "gateway", "do", method+" "+path, nil, err)
		return unreachableError()
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return unreachableError()
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := apiErrorFromBody(resp.StatusCode, respBody)
		span.RecordError(apiErr)
		return apiErr
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return &APIError{Status: resp.StatusCode, Message: fmt.Sprintf("unexpected response payload: %v", err)}
		}
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, params, "", nil, out)
}

func (c *Client) doJSON(ctx context.Context, method, path string, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return &APIError{Message: err.Error()}
		}
		body = strings.NewReader(string(raw))
	}
	return c.do(ctx, method, path, nil, "application/json", body, out)
}

func (c *Client) doMultipart(ctx context.Context, method, path string, f *form, out any) error {
	contentType, body, err := f.encode()
	if err != nil {
		return &APIError{Message: err.Error()}
	}
	return c.do(ctx, method, path, nil, contentType, body, out)
}

// getBytes fetches a binary endpoint (spreadsheet templates and the like).
func (c *Client) getBytes(ctx context.Context, path string, params url.Values) ([]byte, error) {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint = endpoint + "?" + params.Encode()
	}

	ctx, span := c.tracer.Start(ctx, http.MethodGet+" "+path)
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &APIError{Message: err.Error()}
	}
	req.Header.Set("X-Correlation-Id", uuid.NewString())
	if c.tokens != nil {
		if token, ok := c.tokens.AccessToken(); ok && token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		span.RecordError(err)
		config.LogError(c.logger, "gateway", "getBytes", path, nil, err)
		return nil, unreachableError()
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, unreachableError()
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apiErrorFromBody(resp.StatusCode, data)
	}
	return data, nil
}
