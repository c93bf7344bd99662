// Package icpclient is an HTTP client for the ICP classification service.
package icpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client calls a running classification service.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// New creates a Client for baseURL. apiKey may be empty for a dev-mode server.
func New(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// WithHTTPClient replaces the underlying http.Client.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.client = hc
	return c
}

// Ping checks the service health endpoint.
func (c *Client) Ping(ctx context.Context) (*Health, error) {
	var h Health
	if err := c.do(ctx, http.MethodGet, "/api/v1/health", nil, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

// Classify classifies a canonical input record.
func (c *Client) Classify(ctx context.Context, in Input) (*Classification, error) {
	if in.Constraints == nil {
		in.Constraints = []string{}
	}
	var out Classification
	if err := c.do(ctx, http.MethodPost, "/api/v1/classify", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ClassifyAnswers classifies raw questionnaire answers.
func (c *Client) ClassifyAnswers(ctx context.Context, a Answers) (*AnswersClassification, error) {
	var out AnswersClassification
	if err := c.do(ctx, http.MethodPost, "/api/v1/onboarding/classify", a, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Categories lists every category in canonical order.
func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	var out struct {
		Categories []Category `json:"categories"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/icps", nil, &out); err != nil {
		return nil, err
	}
	return out.Categories, nil
}

// do sends an authenticated JSON request and decodes the response into out.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if c.baseURL == "" {
		return errors.New("icp server URL not configured")
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode, Title: http.StatusText(resp.StatusCode)}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if strings.Contains(resp.Header.Get("Content-Type"), "json") {
		_ = json.Unmarshal(data, apiErr)
		apiErr.StatusCode = resp.StatusCode
	} else if len(data) > 0 {
		apiErr.Detail = strings.TrimSpace(string(data))
	}
	return apiErr
}
