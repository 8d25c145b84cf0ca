package watercrawl

// SpiderOptions control link discovery on the service side.
type SpiderOptions struct {
	MaxDepth       int      `json:"max_depth"`
	PageLimit      int      `json:"page_limit"`
	ExcludePaths   []string `json:"exclude_paths"`
	IncludePaths   []string `json:"include_paths"`
	AllowedDomains []string `json:"allowed_domains,omitempty"`
	ProxyServer    string   `json:"proxy_server,omitempty"`
}

// PageOptions control per-page rendering and extraction on the service side.
type PageOptions struct {
	OnlyMainContent bool              `json:"only_main_content"`
	IgnoreRendering bool              `json:"ignore_rendering"`
	ExcludeTags     []string          `json:"exclude_tags,omitempty"`
	IncludeTags     []string          `json:"include_tags,omitempty"`
	Locale          string            `json:"locale,omitempty"`
	ExtraHeaders    map[string]string `json:"extra_headers,omitempty"`
}

// CrawlOptions is the options envelope the service expects and echoes back.
type CrawlOptions struct {
	SpiderOptions SpiderOptions `json:"spider_options"`
	PageOptions   PageOptions   `json:"page_options"`
}

// createRequestBody is the POST /crawl-requests/ payload.
type createRequestBody struct {
	URL     string       `json:"url"`
	Options CrawlOptions `json:"options"`
}

// CrawlJob is a crawl request as the service reports it. The service owns the
// job; callers only poll it.
type CrawlJob struct {
	UUID    string       `json:"uuid"`
	Status  string       `json:"status"`
	URL     string       `json:"url"`
	Options CrawlOptions `json:"options"`
}

// ResultMetadata carries the page metadata fields the datasource maps from.
type ResultMetadata struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	OGTitle       string `json:"og:title"`
	OGDescription string `json:"og:description"`
}

// ResultContent is the extracted content of one crawled page.
type ResultContent struct {
	Markdown string         `json:"markdown"`
	Metadata ResultMetadata `json:"metadata"`
}

// ResultPage is one entry of the results listing.
type ResultPage struct {
	URL    string        `json:"url"`
	Result ResultContent `json:"result"`
}

// resultsListing is one page of GET …/results/ (cursor-paginated).
type resultsListing struct {
	Count   int          `json:"count"`
	Next    string       `json:"next"`
	Results []ResultPage `json:"results"`
}

// RequestList is one page of GET /crawl-requests/.
type RequestList struct {
	Count   int        `json:"count"`
	Next    string     `json:"next"`
	Results []CrawlJob `json:"results"`
}
