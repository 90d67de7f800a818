// Package server wires the HTTP surface of the AI engine: routing,
// middleware, and the JSON handlers that front the analysis and chat
// pipelines.
package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"fertilitynest/ai-engine/internal/ai"
	"fertilitynest/ai-engine/internal/config"
)

type App struct {
	cfg     config.Config
	log     *zap.Logger
	gateway *ai.Gateway
}

func New(cfg config.Config, gateway *ai.Gateway, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	return &App{cfg: cfg, log: log, gateway: gateway}
}

func (a *App) Router() *gin.Engine {
	router := gin.New()
	router.Use(a.requestLogMiddleware())
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     a.cfg.CORSAllowOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", a.handleHealth)

	api := router.Group("/api")
	if a.cfg.ServiceJWTSecret != "" {
		api.Use(a.authMiddleware())
	}
	api.POST("/chat", a.handleChat)
	api.POST("/analyze-emotion", a.handleAnalyzeEmotion)
	api.POST("/analyze-sentiment", a.handleAnalyzeSentiment)
	api.POST("/generate-insights", a.handleGenerateInsights)

	return router
}

func (a *App) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": a.cfg.AppName,
	})
}

func (a *App) requestLogMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		c.Next()

		a.log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("request_id", requestID),
		)
	}
}

func writeError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"success": false,
		"error":   message,
	})
}
