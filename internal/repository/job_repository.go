package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/fuzumoe/watercrawl-datasource/internal/model"
)

// CrawlJobRepository defines DB ops around crawl job history rows.
type CrawlJobRepository interface {
	Create(j *model.CrawlJob) error
	FindByUUID(jobUUID string) (*model.CrawlJob, error)
	List(p Pagination) ([]model.CrawlJob, error)
	Count() (int, error)
	UpdateStatus(jobUUID, status string) error
	Finish(jobUUID, status string, pageCount int, jobErr string) error
}

type crawlJobRepo struct {
	db *gorm.DB
}

// NewCrawlJobRepo constructs a CrawlJobRepository.
func NewCrawlJobRepo(db *gorm.DB) CrawlJobRepository {
	return &crawlJobRepo{db: db}
}

func (r *crawlJobRepo) Create(j *model.CrawlJob) error {
	return r.db.Create(j).Error
}

func (r *crawlJobRepo) FindByUUID(jobUUID string) (*model.CrawlJob, error) {
	var j model.CrawlJob
	if err := r.db.Where("job_uuid = ?", jobUUID).First(&j).Error; err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *crawlJobRepo) List(p Pagination) ([]model.CrawlJob, error) {
	var jobs []model.CrawlJob
	if err := r.db.
		Order("created_at DESC").
		Offset(p.Offset()).
		Limit(p.Limit()).
		Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *crawlJobRepo) Count() (int, error) {
	var count int64
	if err := r.db.Model(&model.CrawlJob{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

func (r *crawlJobRepo) UpdateStatus(jobUUID, status string) error {
	res := r.db.Model(&model.CrawlJob{}).
		Where("job_uuid = ?", jobUUID).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.New("crawl job not found")
	}
	return nil
}

// Finish records the terminal state of a job in one update.
func (r *crawlJobRepo) Finish(jobUUID, status string, pageCount int, jobErr string) error {
	res := r.db.Model(&model.CrawlJob{}).
		Where("job_uuid = ?", jobUUID).
		Updates(map[string]any{
			"status":     status,
			"page_count": pageCount,
			"error":      jobErr,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.New("crawl job not found")
	}
	return nil
}
