package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/job-tracker/internal/models"
	"github.com/justsurfingit/job-tracker/internal/services"
	"go.uber.org/zap"
)

type NewsHandler struct {
	NewsService *services.NewsService
	Logger      *zap.Logger
}

func NewNewsHandler(news *services.NewsService, logger *zap.Logger) *NewsHandler {
	return &NewsHandler{NewsService: news, Logger: logger}
}

// Feed is GET /news?category=. Without a category it serves the career feed.
func (h *NewsHandler) Feed(c *gin.Context) {
	var (
		articles []models.NewsArticle
		err      error
	)
	if category := c.Query("category"); category != "" {
		articles, err = h.NewsService.CategoryFeed(c.Request.Context(), category)
	} else {
		articles, err = h.NewsService.CareerFeed(c.Request.Context())
	}
	if err != nil {
		respondError(c, h.Logger, err, "Failed to fetch news")
		return
	}
	respondArticles(c, articles, "No news articles found. Please check the configuration or try again later.")
}

func (h *NewsHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": services.NewsCategories})
}

// respondArticles always answers 200; an empty list is informational.
func respondArticles(c *gin.Context, articles []models.NewsArticle, emptyMsg string) {
	if articles == nil {
		articles = []models.NewsArticle{}
	}
	resp := gin.H{"articles": articles, "count": len(articles)}
	if len(articles) == 0 {
		resp["message"] = emptyMsg
	}
	c.JSON(http.StatusOK, resp)
}
