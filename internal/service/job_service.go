package service

import (
	"fmt"

	"github.com/fuzumoe/watercrawl-datasource/internal/model"
	"github.com/fuzumoe/watercrawl-datasource/internal/repository"
)

// JobService exposes the crawl job history to the host.
type JobService interface {
	Get(jobUUID string) (*model.CrawlJobDTO, error)
	List(p repository.Pagination) (*model.PaginatedResponse[model.CrawlJobDTO], error)
}

type jobService struct {
	repo repository.CrawlJobRepository
}

// NewJobService constructs a JobService.
func NewJobService(r repository.CrawlJobRepository) JobService {
	return &jobService{repo: r}
}

func (s *jobService) Get(jobUUID string) (*model.CrawlJobDTO, error) {
	j, err := s.repo.FindByUUID(jobUUID)
	if err != nil {
		return nil, err
	}
	return j.ToDTO(), nil
}

func (s *jobService) List(p repository.Pagination) (*model.PaginatedResponse[model.CrawlJobDTO], error) {
	jobs, err := s.repo.List(p)
	if err != nil {
		return nil, err
	}

	totalCount, err := s.repo.Count()
	if err != nil {
		return nil, fmt.Errorf("count crawl jobs: %w", err)
	}

	totalPages := totalCount / p.Limit()
	if totalCount%p.Limit() > 0 {
		totalPages++
	}

	dtos := make([]model.CrawlJobDTO, len(jobs))
	for i, j := range jobs {
		dtos[i] = *j.ToDTO()
	}

	return &model.PaginatedResponse[model.CrawlJobDTO]{
		Data: dtos,
		Pagination: model.PaginationMetaDTO{
			Page:       p.Page,
			PageSize:   p.Limit(),
			TotalItems: totalCount,
			TotalPages: totalPages,
		},
	}, nil
}
