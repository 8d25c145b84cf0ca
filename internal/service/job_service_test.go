package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fuzumoe/watercrawl-datasource/internal/model"
	"github.com/fuzumoe/watercrawl-datasource/internal/repository"
	"github.com/fuzumoe/watercrawl-datasource/internal/service"
)

func TestJobService_Get(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		repo := new(MockJobRepo)
		now := time.Now()
		repo.On("FindByUUID", "abc").Return(&model.CrawlJob{
			ID:        1,
			JobUUID:   "abc",
			URL:       "https://example.com",
			Status:    model.StatusCompleted,
			PageCount: 3,
			CreatedAt: now,
			UpdatedAt: now,
		}, nil).Once()

		svc := service.NewJobService(repo)
		dto, err := svc.Get("abc")
		require.NoError(t, err)
		assert.Equal(t, "abc", dto.JobUUID)
		assert.Equal(t, model.StatusCompleted, dto.Status)
		assert.Equal(t, 3, dto.PageCount)
		repo.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		repo := new(MockJobRepo)
		repo.On("FindByUUID", "missing").Return(nil, errors.New("crawl job not found")).Once()

		svc := service.NewJobService(repo)
		_, err := svc.Get("missing")
		assert.Error(t, err)
		repo.AssertExpectations(t)
	})
}

func TestJobService_List(t *testing.T) {
	t.Run("Paginates", func(t *testing.T) {
		repo := new(MockJobRepo)
		p := repository.Pagination{Page: 2, PageSize: 2}
		repo.On("List", p).Return([]model.CrawlJob{
			{ID: 3, JobUUID: "c", URL: "https://c.example.com", Status: model.StatusRunning},
			{ID: 4, JobUUID: "d", URL: "https://d.example.com", Status: model.StatusPending},
		}, nil).Once()
		repo.On("Count").Return(5, nil).Once()

		svc := service.NewJobService(repo)
		resp, err := svc.List(p)
		require.NoError(t, err)
		require.Len(t, resp.Data, 2)
		assert.Equal(t, "c", resp.Data[0].JobUUID)
		assert.Equal(t, 2, resp.Pagination.Page)
		assert.Equal(t, 2, resp.Pagination.PageSize)
		assert.Equal(t, 5, resp.Pagination.TotalItems)
		assert.Equal(t, 3, resp.Pagination.TotalPages)
		repo.AssertExpectations(t)
	})

	t.Run("List Error", func(t *testing.T) {
		repo := new(MockJobRepo)
		p := repository.Pagination{Page: 1, PageSize: 10}
		repo.On("List", p).Return(nil, errors.New("db error")).Once()

		svc := service.NewJobService(repo)
		_, err := svc.List(p)
		assert.Error(t, err)
		repo.AssertNotCalled(t, "Count")
	})

	t.Run("Count Error", func(t *testing.T) {
		repo := new(MockJobRepo)
		p := repository.Pagination{Page: 1, PageSize: 10}
		repo.On("List", p).Return([]model.CrawlJob{}, nil).Once()
		repo.On("Count").Return(0, errors.New("db error")).Once()

		svc := service.NewJobService(repo)
		_, err := svc.List(p)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "count crawl jobs")
		repo.AssertExpectations(t)
	})
}
