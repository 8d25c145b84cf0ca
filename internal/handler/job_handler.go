package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fuzumoe/watercrawl-datasource/internal/repository"
	"github.com/fuzumoe/watercrawl-datasource/internal/service"
)

// JobHandler exposes the crawl job history.
type JobHandler struct {
	jobService service.JobService
}

func NewJobHandler(svc service.JobService) *JobHandler { return &JobHandler{jobService: svc} }

func parseUUIDParam(c *gin.Context, name string) (string, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid job id"})
		return "", false
	}
	return id.String(), true
}

func paginationFromQuery(c *gin.Context) repository.Pagination {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	return repository.Pagination{Page: page, PageSize: size}
}

// @Summary List crawl jobs (paginated)
// @Tags    jobs
// @Produce json
// @Param   page      query int false "page"
// @Param   page_size query int false "page_size"
// @Success 200 {object} model.PaginatedResponse[model.CrawlJobDTO]
// @Security PluginAuth
// @Router  /api/v1/jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	items, err := h.jobService.List(paginationFromQuery(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Get one crawl job
// @Tags    jobs
// @Produce json
// @Param   id path string true "job UUID"
// @Success 200 {object} model.CrawlJobDTO
// @Failure 404 {object} map[string]string "error"
// @Security PluginAuth
// @Router  /api/v1/jobs/{id} [get]
func (h *JobHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	dto, err := h.jobService.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto)
}

// RegisterRoutes mounts the job endpoints on the given router group.
func (h *JobHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/jobs", h.List)
	rg.GET("/jobs/:id", h.Get)
}
