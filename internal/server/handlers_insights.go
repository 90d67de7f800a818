package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (a *App) handleGenerateInsights(c *gin.Context) {
	var data map[string]any
	if err := c.ShouldBindJSON(&data); err != nil || len(data) == 0 {
		writeError(c, http.StatusBadRequest, "Data is required")
		return
	}

	prompt := buildInsightsPrompt(data)
	insights := a.gateway.GetCompletion(c.Request.Context(), prompt, a.cfg.AIMaxOutputTokens)

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"insights": insights,
	})
}
