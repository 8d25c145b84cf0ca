package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fuzumoe/watercrawl-datasource/internal/model"
	"github.com/fuzumoe/watercrawl-datasource/internal/service"
	"github.com/fuzumoe/watercrawl-datasource/internal/watercrawl"
)

// DatasourceHandler exposes the website-crawl datasource to the host.
type DatasourceHandler struct {
	crawlService    service.CrawlService
	providerService service.ProviderService
}

// NewDatasourceHandler creates a new DatasourceHandler.
func NewDatasourceHandler(cs service.CrawlService, ps service.ProviderService) *DatasourceHandler {
	return &DatasourceHandler{
		crawlService:    cs,
		providerService: ps,
	}
}

// @Summary Run a website crawl
// @Description Submits a crawl job and streams progress messages as NDJSON.
// @Description The final message carries a terminal status and the page list.
// @Tags    datasource
// @Accept  json
// @Produce json
// @Param   input body model.CrawlRequest true "crawl parameters"
// @Success 200 {object} model.CrawlMessage
// @Failure 400 {object} map[string]string "error"
// @Failure 401 {object} map[string]string "error"
// @Security PluginAuth
// @Router  /api/v1/datasource/crawl [post]
func (h *DatasourceHandler) Crawl(c *gin.Context) {
	var req model.CrawlRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	msgs, err := h.crawlService.Crawl(c.Request.Context(), &req)
	if err != nil {
		c.JSON(crawlErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Type", "application/x-ndjson")
	c.Status(http.StatusOK)
	enc := json.NewEncoder(c.Writer)
	for msg := range msgs {
		if err := enc.Encode(msg); err != nil {
			return
		}
		c.Writer.Flush()
	}
}

// @Summary Validate Watercrawl credentials
// @Tags    datasource
// @Accept  json
// @Produce json
// @Param   input body service.Credentials true "credentials"
// @Success 200 {object} map[string]string "valid"
// @Failure 400 {object} map[string]string "error"
// @Failure 401 {object} map[string]string "error"
// @Security PluginAuth
// @Router  /api/v1/datasource/validate [post]
func (h *DatasourceHandler) Validate(c *gin.Context) {
	var creds service.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	switch err := h.providerService.ValidateCredentials(c.Request.Context(), creds); {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": "valid"})
	case errors.Is(err, service.ErrInvalidAPIKey):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidBaseURL):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	}
}

// crawlErrorStatus maps submission errors onto HTTP statuses.
func crawlErrorStatus(err error) int {
	switch {
	case errors.Is(err, watercrawl.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, watercrawl.ErrInvalidAPIKey):
		return http.StatusUnauthorized
	default:
		return http.StatusBadGateway
	}
}

// RegisterRoutes mounts the datasource endpoints on the given router group.
func (h *DatasourceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/datasource/crawl", h.Crawl)
	rg.POST("/datasource/validate", h.Validate)
}
