package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/fuzumoe/watercrawl-datasource/internal/service"
	"github.com/fuzumoe/watercrawl-datasource/internal/watercrawl"
)

func factoryFor(client watercrawl.Client) service.ClientFactory {
	return func(apiKey string, opts ...watercrawl.Option) watercrawl.Client {
		return client
	}
}

func TestProviderService_ValidateCredentials(t *testing.T) {
	t.Run("Valid Credentials", func(t *testing.T) {
		client := new(MockWatercrawlClient)
		client.On("ListCrawlRequests", mock.Anything, 1).
			Return(&watercrawl.RequestList{Count: 0}, nil).Once()

		svc := service.NewProviderService(factoryFor(client))
		err := svc.ValidateCredentials(context.Background(), service.Credentials{APIKey: "key"})
		assert.NoError(t, err)
		client.AssertExpectations(t)
	})

	t.Run("Missing API Key", func(t *testing.T) {
		client := new(MockWatercrawlClient)
		svc := service.NewProviderService(factoryFor(client))

		err := svc.ValidateCredentials(context.Background(), service.Credentials{})
		assert.ErrorIs(t, err, service.ErrInvalidAPIKey)
		client.AssertNotCalled(t, "ListCrawlRequests", mock.Anything, mock.Anything)
	})

	t.Run("Rejected API Key", func(t *testing.T) {
		client := new(MockWatercrawlClient)
		client.On("ListCrawlRequests", mock.Anything, 1).
			Return(nil, watercrawl.ErrInvalidAPIKey).Once()

		svc := service.NewProviderService(factoryFor(client))
		err := svc.ValidateCredentials(context.Background(), service.Credentials{APIKey: "bad"})
		assert.ErrorIs(t, err, service.ErrInvalidAPIKey)
		client.AssertExpectations(t)
	})

	t.Run("Malformed Base URL", func(t *testing.T) {
		client := new(MockWatercrawlClient)
		svc := service.NewProviderService(factoryFor(client))

		for _, raw := range []string{"ftp://example.com", "not a url", "https://"} {
			err := svc.ValidateCredentials(context.Background(), service.Credentials{
				APIKey:  "key",
				BaseURL: raw,
			})
			assert.ErrorIs(t, err, service.ErrInvalidBaseURL, "base url %q", raw)
		}
		client.AssertNotCalled(t, "ListCrawlRequests", mock.Anything, mock.Anything)
	})

	t.Run("Base URL Without Service", func(t *testing.T) {
		client := new(MockWatercrawlClient)
		client.On("ListCrawlRequests", mock.Anything, 1).
			Return(nil, &watercrawl.APIError{StatusCode: http.StatusNotFound}).Once()

		svc := service.NewProviderService(factoryFor(client))
		err := svc.ValidateCredentials(context.Background(), service.Credentials{
			APIKey:  "key",
			BaseURL: "https://selfhosted.example.com",
		})
		assert.ErrorIs(t, err, service.ErrInvalidBaseURL)
		client.AssertExpectations(t)
	})

	t.Run("Transport Error Passes Through", func(t *testing.T) {
		client := new(MockWatercrawlClient)
		wantErr := errors.New("watercrawl: request failed: connection refused")
		client.On("ListCrawlRequests", mock.Anything, 1).Return(nil, wantErr).Once()

		svc := service.NewProviderService(factoryFor(client))
		err := svc.ValidateCredentials(context.Background(), service.Credentials{APIKey: "key"})
		assert.ErrorIs(t, err, wantErr)
		client.AssertExpectations(t)
	})
}
