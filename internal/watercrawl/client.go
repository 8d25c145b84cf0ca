// Package watercrawl is a thin HTTP client for the Watercrawl crawling
// service (https://docs.watercrawl.dev). It submits crawl requests, reads
// their status, and pages through results; all crawling happens service-side.
package watercrawl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

const (
	defaultBaseURL = "https://app.watercrawl.dev"
	apiPrefix      = "/api/v1/core/crawl-requests/"

	// maxErrorBody bounds how much of an error response is kept for messages.
	maxErrorBody = 4 * 1024
)

// Client is the surface the datasource needs from the Watercrawl API.
type Client interface {
	CreateCrawlRequest(ctx context.Context, url string, spider SpiderOptions, page PageOptions) (*CrawlJob, error)
	GetCrawlRequest(ctx context.Context, id string) (*CrawlJob, error)
	GetCrawlResults(ctx context.Context, id string) ([]ResultPage, error)
	ListCrawlRequests(ctx context.Context, pageSize int) (*RequestList, error)
}

// Option configures a Client.
type Option func(*options)

type options struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// WithBaseURL overrides the Watercrawl API base URL.
func WithBaseURL(url string) Option {
	return func(o *options) { o.baseURL = url }
}

// WithHTTPClient overrides the HTTP client used for requests.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

// WithLogger overrides the logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

type client struct {
	apiKey  string
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

// New creates a Watercrawl API client.
func New(apiKey string, opts ...Option) Client {
	o := &options{
		baseURL:    defaultBaseURL,
		httpClient: http.DefaultClient,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return &client{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(o.baseURL, "/"),
		http:    o.httpClient,
		log:     o.logger,
	}
}

// CreateCrawlRequest submits a new crawl job and returns its identifier and
// initial status.
func (c *client) CreateCrawlRequest(ctx context.Context, url string, spider SpiderOptions, page PageOptions) (*CrawlJob, error) {
	body := createRequestBody{
		URL: url,
		Options: CrawlOptions{
			SpiderOptions: spider,
			PageOptions:   page,
		},
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("watercrawl: marshal request: %w", err)
	}

	var job CrawlJob
	if err := c.do(ctx, http.MethodPost, c.baseURL+apiPrefix, payload, &job); err != nil {
		return nil, err
	}
	c.log.Info("crawl request created",
		zap.String("uuid", job.UUID),
		zap.String("url", url),
		zap.Int("page_limit", spider.PageLimit),
	)
	return &job, nil
}

// GetCrawlRequest reads the current status of a crawl job.
func (c *client) GetCrawlRequest(ctx context.Context, id string) (*CrawlJob, error) {
	var job CrawlJob
	if err := c.do(ctx, http.MethodGet, c.baseURL+apiPrefix+id+"/", nil, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// GetCrawlResults fetches all result pages of a job, following the listing's
// next links. Service order is preserved.
func (c *client) GetCrawlResults(ctx context.Context, id string) ([]ResultPage, error) {
	next := c.baseURL + apiPrefix + id + "/results/?prefetched=true"

	var pages []ResultPage
	for next != "" {
		var listing resultsListing
		if err := c.do(ctx, http.MethodGet, next, nil, &listing); err != nil {
			return nil, err
		}
		pages = append(pages, listing.Results...)
		next = listing.Next
	}
	return pages, nil
}

// ListCrawlRequests lists existing crawl jobs; used as a credential probe.
func (c *client) ListCrawlRequests(ctx context.Context, pageSize int) (*RequestList, error) {
	if pageSize <= 0 {
		pageSize = 1
	}
	var list RequestList
	url := fmt.Sprintf("%s%s?page_size=%d", c.baseURL, apiPrefix, pageSize)
	if err := c.do(ctx, http.MethodGet, url, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// do performs one API round trip and decodes a 2xx body into out.
func (c *client) do(ctx context.Context, method, url string, payload []byte, out any) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("watercrawl: create request: %w", err)
	}
	req.Header.Set("X-API-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("watercrawl: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.statusError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("watercrawl: decode response: %w", err)
	}
	return nil
}

// statusError maps a non-2xx response onto the client's error kinds.
func (c *client) statusError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	detail := strings.TrimSpace(string(raw))

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w (status %d)", ErrInvalidAPIKey, resp.StatusCode)
	case http.StatusBadRequest:
		if detail == "" {
			return ErrValidation
		}
		return fmt.Errorf("%w: %s", ErrValidation, detail)
	default:
		c.log.Warn("unexpected API response",
			zap.Int("status", resp.StatusCode),
			zap.String("url", resp.Request.URL.String()),
		)
		return &APIError{StatusCode: resp.StatusCode, Body: detail}
	}
}

var _ Client = (*client)(nil)
