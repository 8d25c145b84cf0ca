package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Crawl job statuses as reported by the Watercrawl service.
const (
	StatusPending   = "pending"
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Crawl message statuses emitted to the host while a job is monitored.
const (
	MessageProcessing = "processing"
	MessageCompleted  = "completed"
	MessageFailed     = "failed"
	MessageTimeout    = "timeout"
)

// CrawlRequest is the configuration surface the host sends for one crawl
// invocation. It is constructed once per invocation and never mutated after
// Normalize.
type CrawlRequest struct {
	URL             string `json:"url" binding:"required,url"`
	MaxDepth        int    `json:"max_depth"`
	Limit           int    `json:"limit"`
	IgnoreRendering bool   `json:"ignore_rendering"`
	IncludePaths    string `json:"include_paths"`
	ExcludePaths    string `json:"exclude_paths"`
	OnlyMainContent bool   `json:"only_main_content"`
	ProxyServerSlug string `json:"proxy_server_slug"`
	AllowedDomains  string `json:"allowed_domains"`
	IncludeTags     string `json:"include_tags"`
	ExcludeTags     string `json:"exclude_tags"`
	Locale          string `json:"locale"`
	ExtraHeaders    string `json:"extra_headers"`
}

// Normalize applies the documented defaults and returns a copy; the receiver
// is left untouched.
func (r CrawlRequest) Normalize() CrawlRequest {
	if r.MaxDepth <= 0 {
		r.MaxDepth = 1
	}
	if r.Limit <= 0 {
		r.Limit = 1
	}
	return r
}

// Validate checks the fields that binding tags cannot express.
func (r *CrawlRequest) Validate() error {
	if strings.TrimSpace(r.URL) == "" {
		return fmt.Errorf("url is required")
	}
	if r.ExtraHeaders != "" {
		if _, err := r.ExtraHeaderMap(); err != nil {
			return err
		}
	}
	return nil
}

// ExtraHeaderMap parses the extra_headers JSON object.
func (r *CrawlRequest) ExtraHeaderMap() (map[string]string, error) {
	if r.ExtraHeaders == "" {
		return nil, nil
	}
	headers := map[string]string{}
	if err := json.Unmarshal([]byte(r.ExtraHeaders), &headers); err != nil {
		return nil, fmt.Errorf("extra_headers must be valid JSON: %w", err)
	}
	return headers, nil
}

// SplitList splits a comma-separated parameter into trimmed non-empty items.
// The result is never nil; the service expects a JSON array even when empty.
func SplitList(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			items = append(items, p)
		}
	}
	return items
}

// CrawledPage is one page record in the host's output format. Fields map 1:1
// from the service's result payload.
type CrawledPage struct {
	SourceURL   string `json:"source_url"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
}

// CrawlMessage is one progress update streamed to the host. The final message
// carries a terminal status and, on completion, the full page list.
type CrawlMessage struct {
	Status      string        `json:"status"`
	Total       int           `json:"total"`
	Completed   int           `json:"completed"`
	WebInfoList []CrawledPage `json:"web_info_list,omitempty"`
	Error       string        `json:"error,omitempty"`
}

// Terminal reports whether no further messages follow this one.
func (m CrawlMessage) Terminal() bool {
	switch m.Status {
	case MessageCompleted, MessageFailed, MessageTimeout:
		return true
	}
	return false
}
