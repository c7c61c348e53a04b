package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/job-tracker/internal/logger"
	"github.com/justsurfingit/job-tracker/internal/metrics"
	"go.uber.org/zap"
)

type RouterConfig struct {
	Applications *ApplicationHandler
	AI           *AIHandler
	News         *NewsHandler
	JobBoards    *JobBoardHandler

	// AILimiter guards the routes that call the hosted model
	AILimiter gin.HandlerFunc

	AllowOrigins    []string
	AllowAllOrigins bool
	Logger          *zap.Logger
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), logger.Middleware(cfg.Logger), metrics.Middleware())

	corsConfig := cors.DefaultConfig()
	if cfg.AllowAllOrigins || len(cfg.AllowOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.AllowOrigins
	}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", logger.RequestIDHeader}
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	r.Use(cors.New(corsConfig))

	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	aiLimit := cfg.AILimiter
	if aiLimit == nil {
		aiLimit = func(c *gin.Context) { c.Next() }
	}

	api := r.Group("/api/v1")
	{
		api.GET("/health", HealthCheck)
		api.GET("/statuses", ListStatuses)

		// Application Routes
		api.GET("/applications", cfg.Applications.ListApplications)
		api.POST("/applications", cfg.Applications.CreateApplication)
		api.GET("/applications/:id", cfg.Applications.GetApplication)
		api.DELETE("/applications/:id", cfg.Applications.DeleteApplication)
		api.PATCH("/applications/:id/status", cfg.Applications.UpdateStatus)
		api.POST("/applications/:id/summary", aiLimit, cfg.Applications.Summarize)
		api.GET("/applications/:id/news", cfg.Applications.CompanyNews)
		api.GET("/timeline", cfg.Applications.Timeline)

		// AI Routes
		ai := api.Group("/ai", aiLimit)
		ai.POST("/summarize", cfg.AI.Summarize)
		ai.POST("/dates", cfg.AI.KeyDates)

		api.GET("/news", cfg.News.Feed)
		api.GET("/news/categories", cfg.News.Categories)
		api.GET("/job-boards", cfg.JobBoards.List)
	}
	return r
}
