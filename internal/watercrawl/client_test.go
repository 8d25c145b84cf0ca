package watercrawl_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fuzumoe/watercrawl-datasource/internal/watercrawl"
)

func TestCreateCrawlRequest(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var captured struct {
			URL     string                  `json:"url"`
			Options watercrawl.CrawlOptions `json:"options"`
		}
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/v1/core/crawl-requests/", r.URL.Path)
			assert.Equal(t, "test-key", r.Header.Get("X-API-Key"))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			fmt.Fprint(w, `{"uuid":"job-1","status":"pending","url":"https://example.com","options":{"spider_options":{"max_depth":1,"page_limit":1,"exclude_paths":[],"include_paths":[]},"page_options":{"only_main_content":false,"ignore_rendering":false}}}`)
		}))
		defer srv.Close()

		client := watercrawl.New("test-key", watercrawl.WithBaseURL(srv.URL))
		job, err := client.CreateCrawlRequest(context.Background(), "https://example.com",
			watercrawl.SpiderOptions{MaxDepth: 1, PageLimit: 1, ExcludePaths: []string{}, IncludePaths: []string{"/docs/*"}},
			watercrawl.PageOptions{OnlyMainContent: true},
		)

		require.NoError(t, err)
		assert.Equal(t, "job-1", job.UUID)
		assert.Equal(t, "pending", job.Status)
		assert.Equal(t, "https://example.com", captured.URL)
		assert.Equal(t, 1, captured.Options.SpiderOptions.MaxDepth)
		assert.Equal(t, []string{"/docs/*"}, captured.Options.SpiderOptions.IncludePaths)
		assert.True(t, captured.Options.PageOptions.OnlyMainContent)
	})

	t.Run("Unauthorized", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		client := watercrawl.New("bad-key", watercrawl.WithBaseURL(srv.URL))
		_, err := client.CreateCrawlRequest(context.Background(), "https://example.com",
			watercrawl.SpiderOptions{}, watercrawl.PageOptions{})

		require.Error(t, err)
		assert.ErrorIs(t, err, watercrawl.ErrInvalidAPIKey)
	})

	t.Run("Bad Request", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"url":["Enter a valid URL."]}`)
		}))
		defer srv.Close()

		client := watercrawl.New("test-key", watercrawl.WithBaseURL(srv.URL))
		_, err := client.CreateCrawlRequest(context.Background(), "not-a-url",
			watercrawl.SpiderOptions{}, watercrawl.PageOptions{})

		require.Error(t, err)
		assert.ErrorIs(t, err, watercrawl.ErrValidation)
		assert.Contains(t, err.Error(), "Enter a valid URL")
	})

	t.Run("Transport Error", func(t *testing.T) {
		client := watercrawl.New("test-key", watercrawl.WithBaseURL("http://127.0.0.1:1"))
		_, err := client.CreateCrawlRequest(context.Background(), "https://example.com",
			watercrawl.SpiderOptions{}, watercrawl.PageOptions{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "request failed")
	})
}

func TestGetCrawlRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/core/crawl-requests/job-1/", r.URL.Path)
		fmt.Fprint(w, `{"uuid":"job-1","status":"running"}`)
	}))
	defer srv.Close()

	client := watercrawl.New("test-key", watercrawl.WithBaseURL(srv.URL))
	job, err := client.GetCrawlRequest(context.Background(), "job-1")

	require.NoError(t, err)
	assert.Equal(t, "running", job.Status)
}

func TestGetCrawlResults(t *testing.T) {
	t.Run("Follows Pagination", func(t *testing.T) {
		var srv *httptest.Server
		srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v1/core/crawl-requests/job-1/results/", r.URL.Path)
			if r.URL.Query().Get("page") == "2" {
				fmt.Fprint(w, `{"count":3,"next":"","results":[{"url":"https://example.com/c","result":{"markdown":"# C","metadata":{"title":"C"}}}]}`)
				return
			}
			assert.Equal(t, "true", r.URL.Query().Get("prefetched"))
			fmt.Fprintf(w, `{"count":3,"next":"%s/api/v1/core/crawl-requests/job-1/results/?page=2","results":[`+
				`{"url":"https://example.com/a","result":{"markdown":"# A","metadata":{"title":"A"}}},`+
				`{"url":"https://example.com/b","result":{"markdown":"# B","metadata":{"title":"B"}}}]}`, srv.URL)
		}))
		defer srv.Close()

		client := watercrawl.New("test-key", watercrawl.WithBaseURL(srv.URL))
		pages, err := client.GetCrawlResults(context.Background(), "job-1")

		require.NoError(t, err)
		require.Len(t, pages, 3)
		// service order preserved
		assert.Equal(t, "https://example.com/a", pages[0].URL)
		assert.Equal(t, "https://example.com/b", pages[1].URL)
		assert.Equal(t, "https://example.com/c", pages[2].URL)
		assert.Equal(t, "# A", pages[0].Result.Markdown)
	})

	t.Run("Empty", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, `{"count":0,"next":"","results":[]}`)
		}))
		defer srv.Close()

		client := watercrawl.New("test-key", watercrawl.WithBaseURL(srv.URL))
		pages, err := client.GetCrawlResults(context.Background(), "job-1")

		require.NoError(t, err)
		assert.Empty(t, pages)
	})
}

func TestListCrawlRequests(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v1/core/crawl-requests/", r.URL.Path)
			assert.Equal(t, "1", r.URL.Query().Get("page_size"))
			fmt.Fprint(w, `{"count":12,"next":"","results":[{"uuid":"job-9","status":"completed"}]}`)
		}))
		defer srv.Close()

		client := watercrawl.New("test-key", watercrawl.WithBaseURL(srv.URL))
		list, err := client.ListCrawlRequests(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, 12, list.Count)
		require.Len(t, list.Results, 1)
		assert.Equal(t, "job-9", list.Results[0].UUID)
	})

	t.Run("Not Found", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		client := watercrawl.New("test-key", watercrawl.WithBaseURL(srv.URL))
		_, err := client.ListCrawlRequests(context.Background(), 1)

		require.Error(t, err)
		assert.True(t, watercrawl.IsNotFound(err))

		var apiErr *watercrawl.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	})
}
