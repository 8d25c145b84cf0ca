package model

import (
	"time"

	"gorm.io/gorm"
)

// CrawlJob records one crawl submission and its terminal outcome. The job
// itself lives in the Watercrawl service; this row is history only.
type CrawlJob struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	JobUUID   string         `gorm:"type:varchar(64);not null;uniqueIndex" json:"job_uuid"`
	URL       string         `gorm:"type:text;not null" json:"url"`
	MaxDepth  int            `gorm:"not null;default:1" json:"max_depth"`
	PageLimit int            `gorm:"not null;default:1" json:"page_limit"`
	Status    string         `gorm:"type:enum('pending','running','completed','failed');default:'pending';not null" json:"status"`
	PageCount int            `gorm:"not null;default:0" json:"page_count"`
	Error     string         `gorm:"type:text" json:"error,omitempty"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName returns the name of the table for CrawlJob.
func (CrawlJob) TableName() string {
	return "crawl_jobs"
}

// CrawlJobDTO is the data transfer object for CrawlJob.
type CrawlJobDTO struct {
	ID        uint      `json:"id"`
	JobUUID   string    `json:"job_uuid"`
	URL       string    `json:"url"`
	MaxDepth  int       `json:"max_depth"`
	PageLimit int       `json:"page_limit"`
	Status    string    `json:"status"`
	PageCount int       `json:"page_count"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToDTO converts a CrawlJob model to a CrawlJobDTO.
func (j *CrawlJob) ToDTO() *CrawlJobDTO {
	return &CrawlJobDTO{
		ID:        j.ID,
		JobUUID:   j.JobUUID,
		URL:       j.URL,
		MaxDepth:  j.MaxDepth,
		PageLimit: j.PageLimit,
		Status:    j.Status,
		PageCount: j.PageCount,
		Error:     j.Error,
		CreatedAt: j.CreatedAt,
		UpdatedAt: j.UpdatedAt,
	}
}

// JobFromRequest builds the history row for a freshly submitted request.
func JobFromRequest(jobUUID string, req *CrawlRequest) *CrawlJob {
	return &CrawlJob{
		JobUUID:   jobUUID,
		URL:       req.URL,
		MaxDepth:  req.MaxDepth,
		PageLimit: req.Limit,
		Status:    StatusPending,
	}
}

// PaginationMetaDTO describes one page of a paginated listing.
type PaginationMetaDTO struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

// PaginatedResponse wraps a page of DTOs with pagination metadata.
type PaginatedResponse[T any] struct {
	Data       []T               `json:"data"`
	Pagination PaginationMetaDTO `json:"pagination"`
}
