package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/fuzumoe/watercrawl-datasource/internal/watercrawl"
)

// Credential validation errors surfaced to the host.
var (
	ErrInvalidAPIKey  = errors.New("invalid API key")
	ErrInvalidBaseURL = errors.New("invalid base URL")
)

// Credentials is what the host configures for the Watercrawl connection.
type Credentials struct {
	APIKey  string `json:"api_key" binding:"required"`
	BaseURL string `json:"base_url"`
}

// ProviderService validates datasource credentials against the live service.
type ProviderService interface {
	ValidateCredentials(ctx context.Context, creds Credentials) error
}

// ClientFactory builds a Watercrawl client for a given credential set.
type ClientFactory func(apiKey string, opts ...watercrawl.Option) watercrawl.Client

type providerService struct {
	newClient ClientFactory
	opts      []watercrawl.Option
}

// NewProviderService constructs a ProviderService. Extra options (HTTP client,
// logger) are applied to every probe client it builds.
func NewProviderService(factory ClientFactory, opts ...watercrawl.Option) ProviderService {
	if factory == nil {
		factory = watercrawl.New
	}
	return &providerService{newClient: factory, opts: opts}
}

// ValidateCredentials checks the base URL shape, then probes the service with
// a one-item listing request.
func (s *providerService) ValidateCredentials(ctx context.Context, creds Credentials) error {
	if creds.APIKey == "" {
		return fmt.Errorf("%w: api key is required", ErrInvalidAPIKey)
	}
	if creds.BaseURL != "" {
		if !validBaseURL(creds.BaseURL) {
			return ErrInvalidBaseURL
		}
	}

	opts := s.opts
	if creds.BaseURL != "" {
		opts = append(append([]watercrawl.Option{}, opts...), watercrawl.WithBaseURL(creds.BaseURL))
	}
	client := s.newClient(creds.APIKey, opts...)

	_, err := client.ListCrawlRequests(ctx, 1)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, watercrawl.ErrInvalidAPIKey):
		return ErrInvalidAPIKey
	case watercrawl.IsNotFound(err):
		return ErrInvalidBaseURL
	default:
		return err
	}
}

// validBaseURL accepts http(s) URLs with a host part.
func validBaseURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}
