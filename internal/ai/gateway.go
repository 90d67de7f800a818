package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"fertilitynest/ai-engine/internal/emotion"
)

const (
	chatFallback       = "I apologize, but I'm having trouble connecting to my knowledge base right now. Could you please try again in a moment?"
	completionFallback = "I apologize, but I'm having trouble generating a response right now. Please try again later."

	defaultMaxTokens = 500
)

// Sentiment is the structured result of the sentiment-extraction call.
type Sentiment struct {
	Sentiment     string `json:"sentiment"`
	Emotion       string `json:"emotion"`
	DistressLevel int    `json:"distressLevel"`
}

func neutralSentiment() Sentiment {
	return Sentiment{Sentiment: "neutral", Emotion: "neutral", DistressLevel: 0}
}

// Gateway wraps a Provider with the fail-soft contract: a conversational
// companion must never show a raw error to an end user, so every provider
// failure maps to a safe default and is logged instead of returned.
type Gateway struct {
	provider Provider
	log      *zap.Logger
}

func NewGateway(provider Provider, log *zap.Logger) *Gateway {
	if log == nil {
		log = zap.NewNop()
	}
	return &Gateway{provider: provider, log: log}
}

// GetChatResponse forwards a conversation to the provider and returns its
// reply, or the fixed apology fallback on any provider failure.
func (g *Gateway) GetChatResponse(ctx context.Context, systemMessage, userMessage string, history []ChatTurn) string {
	answer, err := g.provider.ChatResponse(ctx, systemMessage, userMessage, history)
	if err != nil {
		g.log.Error("chat response failed", zap.Error(err))
		return chatFallback
	}
	return answer
}

// GetCompletion runs single-turn generation with a token budget.
func (g *Gateway) GetCompletion(ctx context.Context, prompt string, maxTokens int) string {
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	answer, err := g.provider.Completion(ctx, prompt, maxTokens)
	if err != nil {
		g.log.Error("completion failed", zap.Error(err))
		return completionFallback
	}
	return answer
}

// AnalyzeSentiment asks the provider for a three-key JSON verdict on text
// and best-effort decodes it. Generated output is noisy by nature, so any
// parse or shape failure yields the neutral default rather than an error.
func (g *Gateway) AnalyzeSentiment(ctx context.Context, text string) Sentiment {
	response := g.GetCompletion(ctx, buildSentimentPrompt(text), defaultMaxTokens)

	result, err := parseSentimentJSON(response)
	if err != nil {
		g.log.Warn("sentiment response was not usable",
			zap.String("response", truncateForLog(response, 512)),
			zap.Error(err))
		return neutralSentiment()
	}
	return result
}

func buildSentimentPrompt(text string) string {
	return fmt.Sprintf(`Analyze the sentiment and emotion in the following text.
Return a JSON object with keys for 'sentiment' (positive, negative, or neutral),
'emotion' (happy, sad, angry, anxious, distressed, hopeful, or neutral),
and 'distressLevel' (0-10 scale).

Text: %q

JSON:`, text)
}

func parseSentimentJSON(response string) (Sentiment, error) {
	candidate := stripCodeFences(response)

	var result Sentiment
	if err := json.Unmarshal([]byte(candidate), &result); err != nil {
		return Sentiment{}, err
	}

	switch result.Sentiment {
	case "positive", "negative", "neutral":
	default:
		return Sentiment{}, fmt.Errorf("unknown sentiment %q", result.Sentiment)
	}
	if !emotion.IsValidLabel(result.Emotion) {
		return Sentiment{}, fmt.Errorf("unknown emotion %q", result.Emotion)
	}
	if result.DistressLevel < 0 || result.DistressLevel > 10 {
		return Sentiment{}, fmt.Errorf("distress level %d out of range", result.DistressLevel)
	}
	return result, nil
}

// Models often wrap JSON answers in markdown code fences.
func stripCodeFences(response string) string {
	candidate := strings.TrimSpace(response)
	if strings.HasPrefix(candidate, "```json") {
		candidate = candidate[len("```json"):]
	}
	if strings.HasSuffix(candidate, "```") {
		candidate = candidate[:len(candidate)-len("```")]
	}
	return strings.TrimSpace(candidate)
}

func truncateForLog(value string, limit int) string {
	trimmed := strings.TrimSpace(value)
	if limit <= 0 || len(trimmed) <= limit {
		return trimmed
	}
	return trimmed[:limit] + "...(truncated)"
}
