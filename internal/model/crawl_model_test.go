package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fuzumoe/watercrawl-datasource/internal/model"
)

func TestCrawlRequestNormalize(t *testing.T) {
	t.Run("Applies Defaults", func(t *testing.T) {
		req := model.CrawlRequest{URL: "https://example.com"}
		got := req.Normalize()

		assert.Equal(t, 1, got.MaxDepth)
		assert.Equal(t, 1, got.Limit)
		// receiver untouched
		assert.Equal(t, 0, req.MaxDepth)
		assert.Equal(t, 0, req.Limit)
	})

	t.Run("Keeps Explicit Values", func(t *testing.T) {
		req := model.CrawlRequest{URL: "https://example.com", MaxDepth: 3, Limit: 25}
		got := req.Normalize()

		assert.Equal(t, 3, got.MaxDepth)
		assert.Equal(t, 25, got.Limit)
	})
}

func TestCrawlRequestValidate(t *testing.T) {
	t.Run("URL Required", func(t *testing.T) {
		req := model.CrawlRequest{URL: "   "}
		err := req.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "url is required")
	})

	t.Run("Malformed Extra Headers", func(t *testing.T) {
		req := model.CrawlRequest{URL: "https://example.com", ExtraHeaders: "{not json"}
		err := req.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "extra_headers")
	})

	t.Run("Valid Extra Headers", func(t *testing.T) {
		req := model.CrawlRequest{URL: "https://example.com", ExtraHeaders: `{"X-Custom":"1"}`}
		require.NoError(t, req.Validate())

		headers, err := req.ExtraHeaderMap()
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"X-Custom": "1"}, headers)
	})

	t.Run("Empty Extra Headers", func(t *testing.T) {
		req := model.CrawlRequest{URL: "https://example.com"}
		headers, err := req.ExtraHeaderMap()
		require.NoError(t, err)
		assert.Nil(t, headers)
	})
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{}, model.SplitList(""))
	assert.Equal(t, []string{"/blog/*"}, model.SplitList("/blog/*"))
	assert.Equal(t, []string{"/a", "/b"}, model.SplitList(" /a , /b "))
	assert.Equal(t, []string{"/a"}, model.SplitList("/a,,"))
}

func TestCrawlMessageTerminal(t *testing.T) {
	assert.False(t, model.CrawlMessage{Status: model.MessageProcessing}.Terminal())
	assert.True(t, model.CrawlMessage{Status: model.MessageCompleted}.Terminal())
	assert.True(t, model.CrawlMessage{Status: model.MessageFailed}.Terminal())
	assert.True(t, model.CrawlMessage{Status: model.MessageTimeout}.Terminal())
}
