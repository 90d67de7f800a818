package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fertilitynest/ai-engine/internal/ai"
	"fertilitynest/ai-engine/internal/emotion"
	"fertilitynest/ai-engine/internal/textproc"
)

// distressThreshold is the distress level at which the caller should
// surface crisis resources alongside the reply.
const distressThreshold = 7

type chatContext struct {
	JourneyType    string   `json:"userJourneyType"`
	CurrentStage   string   `json:"fertilityStage"`
	CycleDay       int      `json:"cycleDay"`
	RecentSymptoms []string `json:"recentSymptoms"`
	Medications    []string `json:"recentMedications"`
}

type chatHistoryItem struct {
	Sender  string `json:"sender"`
	Content string `json:"content"`
}

type chatRequest struct {
	Message string            `json:"message"`
	Context chatContext       `json:"context"`
	History []chatHistoryItem `json:"history"`
}

func (a *App) handleChat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Message == "" {
		writeError(c, http.StatusBadRequest, "Message is required")
		return
	}

	// Emotion runs on the raw message; normalization is for the model,
	// not the classifier.
	mood := emotion.Detect(req.Message)

	history := make([]ai.ChatTurn, 0, len(req.History))
	for _, item := range req.History {
		role := "assistant"
		if item.Sender == "user" {
			role = "user"
		}
		history = append(history, ai.ChatTurn{Role: role, Content: item.Content})
	}

	systemPrompt := buildChatSystemPrompt(req.Context)
	answer := a.gateway.GetChatResponse(
		c.Request.Context(),
		systemPrompt,
		textproc.Normalize(req.Message),
		history,
	)

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"response":         answer,
		"emotion":          mood.Emotion,
		"distressLevel":    mood.DistressLevel,
		"distressDetected": mood.DistressLevel >= distressThreshold,
	})
}
