package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/job-tracker/internal/dtos"
	"github.com/justsurfingit/job-tracker/internal/models"
	"github.com/justsurfingit/job-tracker/internal/services"
	"go.uber.org/zap"
)

type ApplicationHandler struct {
	ApplicationService *services.ApplicationService
	NewsService        *services.NewsService
	Logger             *zap.Logger
}

func NewApplicationHandler(apps *services.ApplicationService, news *services.NewsService, logger *zap.Logger) *ApplicationHandler {
	return &ApplicationHandler{
		ApplicationService: apps,
		NewsService:        news,
		Logger:             logger,
	}
}

// ListApplications is GET /applications?q=&status=
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	query := c.Query("q")
	status := c.Query("status")
	if status == "" {
		status = models.StatusFilterAll
	}

	apps, err := h.ApplicationService.List(c.Request.Context(), query, status)
	if err != nil {
		respondError(c, h.Logger, err, "Failed to list applications")
		return
	}

	resp := gin.H{"applications": apps, "count": len(apps)}
	if len(apps) == 0 {
		if query != "" || status != models.StatusFilterAll {
			resp["message"] = "No applications match. Try adjusting your search or filters."
		} else {
			resp["message"] = "No applications yet. Add one to get started!"
		}
	}
	c.JSON(http.StatusOK, resp)
}

// CreateApplication is POST /applications
func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	var req dtos.ApplicationCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidJSON(c, err)
		return
	}
	app, err := h.ApplicationService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.Logger, err, "Failed to add application")
		return
	}
	c.JSON(http.StatusCreated, app)
}

func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	app, err := h.ApplicationService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.Logger, err, "Failed to load application")
		return
	}
	c.JSON(http.StatusOK, app)
}

func (h *ApplicationHandler) DeleteApplication(c *gin.Context) {
	if err := h.ApplicationService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.Logger, err, "Failed to delete application")
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdateStatus is PATCH /applications/:id/status
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var req dtos.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidJSON(c, err)
		return
	}
	app, err := h.ApplicationService.UpdateStatus(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, h.Logger, err, "Failed to update status")
		return
	}
	c.JSON(http.StatusOK, app)
}

// Summarize is POST /applications/:id/summary
func (h *ApplicationHandler) Summarize(c *gin.Context) {
	res, err := h.ApplicationService.Summarize(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.Logger, err, "Failed to generate summary. Please ensure the job posting link is a valid URL.")
		return
	}
	c.JSON(http.StatusOK, res)
}

// CompanyNews is GET /applications/:id/news
func (h *ApplicationHandler) CompanyNews(c *gin.Context) {
	app, err := h.ApplicationService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.Logger, err, "Failed to load application")
		return
	}
	articles, err := h.NewsService.CompanyFeed(c.Request.Context(), app.Company)
	if err != nil {
		respondError(c, h.Logger, err, "Failed to fetch company news")
		return
	}
	respondArticles(c, articles, "No news found for "+app.Company+".")
}

func (h *ApplicationHandler) Timeline(c *gin.Context) {
	events, err := h.ApplicationService.Timeline(c.Request.Context())
	if err != nil {
		respondError(c, h.Logger, err, "Failed to build timeline")
		return
	}
	resp := gin.H{"events": events}
	if len(events) == 0 {
		resp["message"] = "Your timeline is empty. Add applications to see your journey here."
	}
	c.JSON(http.StatusOK, resp)
}
