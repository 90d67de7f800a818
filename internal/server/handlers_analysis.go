package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fertilitynest/ai-engine/internal/emotion"
	"fertilitynest/ai-engine/internal/textproc"
)

type analyzeRequest struct {
	Text string `json:"text"`
}

func (a *App) handleAnalyzeEmotion(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Text == "" {
		writeError(c, http.StatusBadRequest, "Text is required")
		return
	}

	mood := emotion.Detect(req.Text)

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"emotion":          mood.Emotion,
		"distressLevel":    mood.DistressLevel,
		"distressDetected": mood.DistressLevel >= distressThreshold,
		"keywords":         textproc.ExtractKeywords(req.Text),
	})
}

func (a *App) handleAnalyzeSentiment(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Text == "" {
		writeError(c, http.StatusBadRequest, "Text is required")
		return
	}

	sentiment := a.gateway.AnalyzeSentiment(c.Request.Context(), req.Text)

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"sentiment":     sentiment.Sentiment,
		"emotion":       sentiment.Emotion,
		"distressLevel": sentiment.DistressLevel,
	})
}
