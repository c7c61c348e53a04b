package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/job-tracker/internal/dtos"
	"github.com/justsurfingit/job-tracker/internal/services"
	"go.uber.org/zap"
)

type AIHandler struct {
	LLMService *services.LLMService
	Logger     *zap.Logger
}

func NewAIHandler(llm *services.LLMService, logger *zap.Logger) *AIHandler {
	return &AIHandler{LLMService: llm, Logger: logger}
}

// Summarize is POST /ai/summarize
func (h *AIHandler) Summarize(c *gin.Context) {
	var req dtos.SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidJSON(c, err)
		return
	}
	res, err := h.LLMService.Summarize(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.Logger, err, "Failed to generate summary.")
		return
	}
	c.JSON(http.StatusOK, res)
}

// KeyDates is POST /ai/dates
func (h *AIHandler) KeyDates(c *gin.Context) {
	var req dtos.DateExtractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidJSON(c, err)
		return
	}
	dates, err := h.LLMService.DetermineKeyDates(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.Logger, err, "Failed to determine key dates.")
		return
	}
	c.JSON(http.StatusOK, dates)
}
