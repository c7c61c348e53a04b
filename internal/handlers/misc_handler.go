package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/job-tracker/internal/models"
)

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ListStatuses is GET /statuses, the values the status filter accepts.
func ListStatuses(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"statuses": models.ApplicationStatuses, "all": models.StatusFilterAll})
}

type JobBoardHandler struct {
	Boards []models.JobBoard
}

func NewJobBoardHandler(boards []models.JobBoard) *JobBoardHandler {
	return &JobBoardHandler{Boards: boards}
}

func (h *JobBoardHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"boards": h.Boards})
}

